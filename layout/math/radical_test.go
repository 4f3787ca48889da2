package math

import (
	"testing"

	"github.com/texmath/texmath/parse"
)

func TestLayoutRadicalCoversRadicand(t *testing.T) {
	ctx := testContext(t)
	radicand := ctx.RuneFrame('x')
	f := ctx.LayoutRadical(radicand, nil, parse.RadicalSquare)
	if f.Size.Width <= radicand.Size.Width {
		t.Errorf("radical frame should be wider than its radicand: %v vs %v", f.Size.Width, radicand.Size.Width)
	}
	if f.Size.Height <= radicand.Size.Height {
		t.Errorf("radical frame should be taller than its radicand: %v vs %v", f.Size.Height, radicand.Size.Height)
	}
}

func TestLayoutRadicalWithIndexIsWider(t *testing.T) {
	ctx := testContext(t)
	radicand := ctx.RuneFrame('x')
	plain := ctx.LayoutRadical(radicand, nil, parse.RadicalSquare)
	index := ctx.RuneFrame('3')
	withIndex := ctx.LayoutRadical(radicand, index, parse.RadicalSquare)
	if withIndex.Size.Width <= plain.Size.Width {
		t.Errorf("an index should widen the radical: %v vs %v", withIndex.Size.Width, plain.Size.Width)
	}
}

func TestLayoutRadicalDisplayStyleIsTaller(t *testing.T) {
	ctx := testContext(t)
	radicand := ctx.RuneFrame('x')
	text := ctx.Derive(Style{Level: Text}).LayoutRadical(radicand, nil, parse.RadicalSquare)
	display := ctx.Derive(Style{Level: Display}).LayoutRadical(radicand, nil, parse.RadicalSquare)
	if display.Size.Height < text.Size.Height {
		t.Errorf("display style should use at least as large a vertical gap: %v vs %v", display.Size.Height, text.Size.Height)
	}
}

func TestLayoutRadicalEveryShapeHasWidth(t *testing.T) {
	ctx := testContext(t)
	radicand := ctx.RuneFrame('x')
	square := ctx.LayoutRadical(radicand, nil, parse.RadicalSquare)
	cube := ctx.LayoutRadical(radicand, nil, parse.RadicalCube)
	fourth := ctx.LayoutRadical(radicand, nil, parse.RadicalFourth)
	if square.Size.Width == 0 || cube.Size.Width == 0 || fourth.Size.Width == 0 {
		t.Fatal("radical frames should never be zero-width")
	}
}
