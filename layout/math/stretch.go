package math

import (
	gofont "github.com/texmath/texmath/font"
	"github.com/texmath/texmath/layout"
)

// StretchGlyph builds a frame for gid grown to at least target along the
// given axis, using the font's MathVariants data: first by picking the
// smallest pre-built variant that already reaches target, then by
// assembling extender parts if no variant is big enough. If the font
// supplies neither, the plain glyph is returned unstretched.
func (ctx *Context) StretchGlyph(gid uint16, target Abs, vertical bool) *layout.Frame {
	size := ctx.Size()

	variants := ctx.Table.Variants(gid, vertical)
	for _, v := range variants {
		if v.Advance.At(size) >= target {
			return ctx.variantFrame(v.GlyphID, vertical)
		}
	}
	if parts := ctx.Table.Assembly(gid, vertical); len(parts) > 0 {
		return ctx.assembleParts(parts, target, vertical)
	}
	if len(variants) > 0 {
		return ctx.variantFrame(variants[len(variants)-1].GlyphID, vertical)
	}
	return ctx.GlyphFrame(gid)
}

func (ctx *Context) variantFrame(gid uint16, vertical bool) *layout.Frame {
	f := ctx.GlyphFrame(gid)
	if vertical {
		f.Baseline = f.Size.Height / 2
	}
	return f
}

// assembleParts stacks a glyph-assembly recipe (top/extender*/middle?/
// extender*/bottom, per OpenType MATH) to reach at least target along the
// stretch axis. Parts are placed end to end; their connector lengths are
// not used, so adjacent parts do not overlap.
func (ctx *Context) assembleParts(parts []gofont.GlyphPart, target Abs, vertical bool) *layout.Frame {
	size := ctx.Size()

	var fixed Abs
	var extenderUnit Abs
	extenders := 0
	for _, p := range parts {
		if p.Extender {
			extenderUnit = p.FullAdvance.At(size)
			extenders++
			continue
		}
		fixed += p.FullAdvance.At(size)
	}
	if extenders == 0 || extenderUnit <= 0 {
		return ctx.framesFromParts(parts, 0, vertical)
	}
	need := target - fixed
	reps := 0
	if need > 0 {
		reps = int(need/extenderUnit) + 1
	}
	return ctx.framesFromParts(parts, reps, vertical)
}

func (ctx *Context) framesFromParts(parts []gofont.GlyphPart, extenderReps int, vertical bool) *layout.Frame {
	size := ctx.Size()
	var frames []*layout.Frame
	var total Abs
	for _, p := range parts {
		reps := 1
		if p.Extender {
			reps = extenderReps
		}
		for i := 0; i < reps; i++ {
			f := ctx.GlyphFrame(p.GlyphID)
			frames = append(frames, f)
			adv := p.FullAdvance.At(size)
			total += adv
		}
	}
	if len(frames) == 0 {
		return layout.NewFrame(layout.Size{})
	}
	if !vertical {
		gaps := make([]Abs, len(frames)-1)
		return HConcat(frames, gaps)
	}

	maxWidth := Abs(0)
	for _, f := range frames {
		if f.Size.Width > maxWidth {
			maxWidth = f.Size.Width
		}
	}
	out := layout.NewFrame(layout.Size{Width: maxWidth, Height: total})
	var y Abs
	for _, f := range frames {
		out.PushFrame(layout.Point{X: (maxWidth - f.Size.Width) / 2, Y: y}, f)
		y += f.Size.Height
	}
	out.Baseline = out.Size.Height / 2
	return out
}
