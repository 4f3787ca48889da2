package math

import (
	"testing"

	"github.com/texmath/texmath/layout"
	"github.com/texmath/texmath/parse"
)

func TestLayoutArrayTwoByTwoSizing(t *testing.T) {
	ctx := testContext(t)
	cells := [][]*layout.Frame{
		{ctx.RuneFrame('1'), ctx.RuneFrame('2')},
		{ctx.RuneFrame('3'), ctx.RuneFrame('4')},
	}
	columns := []parse.ColumnSpec{{Align: parse.ColumnCenter}, {Align: parse.ColumnCenter}}
	f := ctx.LayoutArray(cells, columns)
	if f.Size.Width <= cells[0][0].Size.Width {
		t.Errorf("two columns should be wider than one cell: %v vs %v", f.Size.Width, cells[0][0].Size.Width)
	}
	if f.Size.Height <= cells[0][0].Size.Height {
		t.Errorf("two rows should be taller than one cell: %v vs %v", f.Size.Height, cells[0][0].Size.Height)
	}
}

func TestLayoutArrayEmptyReturnsZeroFrame(t *testing.T) {
	ctx := testContext(t)
	f := ctx.LayoutArray(nil, nil)
	if !f.Size.IsZero() {
		t.Errorf("empty array should produce a zero-size frame, got %#v", f.Size)
	}
}

func TestLayoutArrayRuleWidensFrame(t *testing.T) {
	ctx := testContext(t)
	cells := [][]*layout.Frame{{ctx.RuneFrame('1'), ctx.RuneFrame('2')}}
	plain := []parse.ColumnSpec{{Align: parse.ColumnCenter}, {Align: parse.ColumnCenter}}
	ruled := []parse.ColumnSpec{{Align: parse.ColumnCenter, RuleAfter: 1}, {Align: parse.ColumnCenter}}
	withoutRule := ctx.LayoutArray(cells, plain)
	withRule := ctx.LayoutArray(cells, ruled)
	if withRule.Size.Width <= withoutRule.Size.Width {
		t.Errorf("a rule column should widen the array: %v vs %v", withRule.Size.Width, withoutRule.Size.Width)
	}
}
