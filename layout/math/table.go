package math

import (
	"github.com/texmath/texmath/layout"
	"github.com/texmath/texmath/parse"
)

// LayoutArray lays out a grid of already-built cell frames into a single
// frame, honoring each column's alignment and vertical rules from its
// column specification. Row and column gaps come from the font's
// (non-standard, MATH-table-adjacent) ArrayRowSep/ArrayColumnSep
// constants. The whole array is centered on the font's math axis, per
// TeX's convention for array/matrix-like material in running text.
func (ctx *Context) LayoutArray(cells [][]*layout.Frame, columns []parse.ColumnSpec) *layout.Frame {
	nrows := len(cells)
	if nrows == 0 || len(columns) == 0 {
		return layout.NewFrame(layout.Size{})
	}
	ncols := len(columns)
	c := ctx.Constants()
	size := ctx.Size()
	colSep := c.ArrayColumnSep.At(size)
	rowSep := c.ArrayRowSep.At(size)
	rule := c.FractionRuleThickness.At(size)

	colWidth := make([]Abs, ncols)
	rowAscent := make([]Abs, nrows)
	rowDescent := make([]Abs, nrows)
	for i, row := range cells {
		for j, cell := range row {
			if j >= ncols {
				continue
			}
			if w := width(cell); w > colWidth[j] {
				colWidth[j] = w
			}
			if a := ascent(cell); a > rowAscent[i] {
				rowAscent[i] = a
			}
			if d := descent(cell); d > rowDescent[i] {
				rowDescent[i] = d
			}
		}
	}

	totalHeight := Abs(0)
	for i := range cells {
		if i > 0 {
			totalHeight += rowSep
		}
		totalHeight += rowAscent[i] + rowDescent[i]
	}

	colX := make([]Abs, ncols)
	x := Abs(0)
	for j, col := range columns {
		if col.RuleBefore > 0 {
			x += Abs(col.RuleBefore) * rule
		}
		colX[j] = x
		x += colWidth[j]
		if col.RuleAfter > 0 {
			x += Abs(col.RuleAfter) * rule
		}
		if j < ncols-1 {
			x += colSep
		}
	}
	totalWidth := x

	frame := layout.NewFrame(layout.Size{Width: totalWidth, Height: totalHeight})
	y := Abs(0)
	for i, row := range cells {
		for j, cell := range row {
			if cell == nil || j >= ncols {
				continue
			}
			var cx Abs
			switch columns[j].Align {
			case parse.ColumnLeft:
				cx = colX[j]
			case parse.ColumnRight:
				cx = colX[j] + colWidth[j] - width(cell)
			default:
				cx = colX[j] + centered(width(cell), colWidth[j])
			}
			cy := y + rowAscent[i] - ascent(cell)
			frame.PushFrame(layout.Point{X: cx, Y: cy}, cell)
		}
		y += rowAscent[i] + rowDescent[i] + rowSep
	}

	for j, col := range columns {
		if col.RuleBefore > 0 {
			rx := colX[j] - colSep/2 - rule
			frame.PushFrame(layout.Point{X: rx, Y: 0}, verticalRule(totalHeight, rule))
		}
		if col.RuleAfter > 0 {
			rx := colX[j] + colWidth[j] + colSep/2
			frame.PushFrame(layout.Point{X: rx, Y: 0}, verticalRule(totalHeight, rule))
		}
	}

	axis := c.AxisHeight.At(size)
	frame.Baseline = frame.Size.Height/2.0 + axis
	return frame
}

func verticalRule(height, thickness Abs) *layout.Frame {
	f := layout.NewFrame(layout.Size{Width: thickness, Height: height})
	f.Push(layout.Point{}, &layout.ShapeItem{
		Shape: &layout.RectShape{Size: layout.Size{Width: thickness, Height: height}},
		Fill:  &layout.Color{R: 0, G: 0, B: 0, A: 255},
	})
	return f
}
