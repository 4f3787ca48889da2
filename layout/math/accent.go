package math

import "github.com/texmath/texmath/layout"

// topAccentAttach returns the x-offset within f where an accent should
// center itself, per the font's top accent attachment table when f is a
// single known glyph, falling back to the optical center of the frame.
func (ctx *Context) topAccentAttach(f *layout.Frame, gid uint16, known bool) Abs {
	if known {
		if v, ok := ctx.Table.TopAccentAttachment(gid); ok {
			return v.At(ctx.Size())
		}
	}
	return width(f) / 2.0
}

// LayoutAccent places accent (already resolved to a glyph frame) above or
// below base, aligning attachment points per the OpenType MATH table when
// the base is a single known glyph. Stretchy accents (\widehat, \widetilde)
// are grown to the base's width before this is called; LayoutAccent itself
// only positions the two frames.
func (ctx *Context) LayoutAccent(base *layout.Frame, baseGID uint16, baseKnown bool, accent *layout.Frame, accentGID uint16, accentKnown bool, above bool) *layout.Frame {
	c := ctx.Constants()
	size := ctx.Size()

	var accentX Abs
	if above {
		baseAttach := ctx.topAccentAttach(base, baseGID, baseKnown)
		accentAttach := ctx.topAccentAttach(accent, accentGID, accentKnown)
		accentX = baseAttach - accentAttach
	} else {
		accentX = (width(base) - width(accent)) / 2.0
	}

	frameWidth := width(base)
	baseX := Abs(0)
	if accentX < 0 {
		frameWidth -= accentX
		baseX = -accentX
		accentX = 0
	} else if right := accentX + width(accent); right > frameWidth {
		frameWidth = right
	}

	var gap, baseline Abs
	var accentPos, basePos layout.Point

	if above {
		accentBaseHeight := c.AccentBaseHeight.At(size)
		gap = -descent(accent) - ascent(base).Min(accentBaseHeight)
		accentPos = layout.Point{X: accentX}
		basePos = layout.Point{X: baseX, Y: height(accent) + gap}
		baseline = basePos.Y + ascent(base)
	} else {
		gap = -ascent(accent)
		accentPos = layout.Point{X: accentX, Y: height(base) + gap}
		basePos = layout.Point{X: baseX}
		baseline = ascent(base)
	}

	frame := layout.NewFrame(layout.Size{Width: frameWidth, Height: height(accent) + gap + height(base)})
	frame.Baseline = baseline
	frame.PushFrame(accentPos, accent)
	frame.PushFrame(basePos, base)
	return frame
}

func height(f *layout.Frame) Abs {
	if f == nil {
		return 0
	}
	return f.Size.Height
}
