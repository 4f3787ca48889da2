package math

import "github.com/texmath/texmath/layout"

// LayoutOverline draws a rule above content, used for \overline/\bar-style
// constructs that span an entire group rather than a single base glyph.
func (ctx *Context) LayoutOverline(content *layout.Frame) *layout.Frame {
	c := ctx.Constants()
	size := ctx.Size()

	sep := c.OverbarExtraAscender.At(size)
	thickness := c.OverbarRuleThickness.At(size)
	gap := c.OverbarVerticalGap.At(size)
	extra := sep + thickness + gap

	frame := layout.NewFrame(layout.Size{Width: width(content), Height: height(content) + extra})
	frame.Baseline = ascent(content) + extra
	frame.PushFrame(layout.Point{Y: extra}, content)
	frame.PushFrame(layout.Point{Y: sep}, ruleFrame(width(content), thickness))
	return frame
}

// LayoutUnderline draws a rule below content, used for \underline.
func (ctx *Context) LayoutUnderline(content *layout.Frame) *layout.Frame {
	c := ctx.Constants()
	size := ctx.Size()

	sep := c.UnderbarExtraDescender.At(size)
	thickness := c.UnderbarRuleThickness.At(size)
	gap := c.UnderbarVerticalGap.At(size)
	extra := sep + thickness + gap

	frame := layout.NewFrame(layout.Size{Width: width(content), Height: height(content) + extra})
	frame.Baseline = ascent(content)
	frame.PushFrame(layout.Point{}, content)
	frame.PushFrame(layout.Point{Y: height(content) + gap}, ruleFrame(width(content), thickness))
	return frame
}
