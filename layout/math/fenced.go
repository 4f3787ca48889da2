package math

import "github.com/texmath/texmath/layout"

// LayoutDelimited concatenates a stretched opening delimiter, the body
// segments (already laid out, one per \middle boundary), stretched
// \middle delimiters between them, and a stretched closing delimiter.
// Each delimiter glyph is grown to cover the tallest extent of the whole
// body measured from the math axis, per TeX's \left/\right convention:
// delimiters balance around the axis rather than simply matching height.
func (ctx *Context) LayoutDelimited(openGID uint16, hasOpen bool, segments []*layout.Frame, middleGIDs []uint16, closeGID uint16, hasClose bool) *layout.Frame {
	axis := ctx.Constants().AxisHeight.At(ctx.Size())

	var target Abs
	for _, seg := range segments {
		if e := (ascent(seg) - axis).Max(descent(seg) + axis); e > target {
			target = e
		}
	}
	target *= 2.0

	var frames []*layout.Frame
	if hasOpen {
		frames = append(frames, ctx.axisFrame(ctx.StretchGlyph(openGID, target, true), axis))
	}
	for i, seg := range segments {
		frames = append(frames, seg)
		if i < len(middleGIDs) {
			frames = append(frames, ctx.axisFrame(ctx.StretchGlyph(middleGIDs[i], target, true), axis))
		}
	}
	if hasClose {
		frames = append(frames, ctx.axisFrame(ctx.StretchGlyph(closeGID, target, true), axis))
	}

	var gaps []Abs
	if len(frames) > 1 {
		gaps = make([]Abs, len(frames)-1)
	}
	return HConcat(frames, gaps)
}

// axisFrame re-baselines a stretched delimiter so it is centered on the
// math axis rather than on its own vertical midpoint.
func (ctx *Context) axisFrame(f *layout.Frame, axis Abs) *layout.Frame {
	f.Baseline = f.Size.Height/2.0 + axis
	return f
}
