package math

import "github.com/texmath/texmath/layout"

// GlyphFrame builds a one-glyph frame at the context's active size, with
// its origin at the glyph origin and baseline set from the font's glyph
// extents. A glyph absent from the font's cmap degrades to .notdef (gid
// 0) rather than failing the whole layout.
func (ctx *Context) GlyphFrame(gid uint16) *layout.Frame {
	size := ctx.Size()
	ascent, descent := ctx.Font.Extents(gid, size)
	adv := ctx.Font.Advance(gid, size)

	frame := layout.NewFrame(layout.Size{Width: adv, Height: ascent + descent})
	frame.Baseline = ascent
	frame.Push(layout.Point{}, &layout.GlyphItem{GID: gid, FontSize: size, Font: ctx.Font})
	return frame
}

// RuneFrame resolves r through the context's font and lays out its glyph;
// an unmapped rune degrades to an empty zero-width frame rather than
// aborting layout, since a missing glyph is a font problem, not a formula
// problem.
func (ctx *Context) RuneFrame(r rune) *layout.Frame {
	gid, ok := ctx.Glyph(r)
	if !ok {
		return layout.NewFrame(layout.Size{})
	}
	return ctx.GlyphFrame(gid)
}

// HConcat lays frames out left to right on a shared baseline, inserting
// the given inter-frame gaps (len(gaps) == len(frames)-1).
func HConcat(frames []*layout.Frame, gaps []Abs) *layout.Frame {
	var ascent, descent Abs
	for _, f := range frames {
		if f.Baseline > ascent {
			ascent = f.Baseline
		}
		if below := f.Size.Height - f.Baseline; below > descent {
			descent = below
		}
	}

	out := layout.NewFrame(layout.Size{Height: ascent + descent})
	out.Baseline = ascent

	var x Abs
	for i, f := range frames {
		if i > 0 && i-1 < len(gaps) {
			x += gaps[i-1]
		}
		y := ascent - f.Baseline
		out.PushFrame(layout.Point{X: x, Y: y}, f)
		x += f.Size.Width
	}
	out.Size.Width = x
	return out
}

// VStack places frames at explicit positions and computes the resulting
// frame's bounding size; it does not itself interpret baseline semantics
// (callers supply the baseline explicitly since stacking rules differ
// between fractions, radicals and scripts).
func VStack(width Abs, entries []struct {
	Frame *layout.Frame
	Pos   layout.Point
}, baseline Abs) *layout.Frame {
	var height Abs
	for _, e := range entries {
		if bottom := e.Pos.Y + e.Frame.Size.Height; bottom > height {
			height = bottom
		}
	}
	out := layout.NewFrame(layout.Size{Width: width, Height: height})
	out.Baseline = baseline
	for _, e := range entries {
		out.PushFrame(e.Pos, e.Frame)
	}
	return out
}

// centered returns the x-offset that centers a frame of the given width
// inside an area of width total.
func centered(width, total Abs) Abs {
	return (total - width) / 2
}

// ruleFrame builds a filled horizontal rule frame (used for fraction
// bars, overlines/underlines and radical vincula).
func ruleFrame(width, thickness Abs) *layout.Frame {
	frame := layout.NewFrame(layout.Size{Width: width, Height: thickness})
	frame.Push(layout.Point{}, &layout.ShapeItem{
		Shape: &layout.RectShape{Size: layout.Size{Width: width, Height: thickness}},
		Fill:  &layout.Color{R: 0, G: 0, B: 0, A: 255},
	})
	return frame
}
