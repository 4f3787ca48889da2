package math

import "github.com/texmath/texmath/layout"

// LayoutFraction lays out a ruled fraction (\frac, \tfrac, \dfrac, \cfrac),
// following the OpenType MATH table's fraction algorithm: numerator and
// denominator are shifted off the math axis by at least their respective
// gap-min distances from the rule, using the display-style constants when
// the active style is Display.
func (ctx *Context) LayoutFraction(num, denom *layout.Frame, padding Abs) *layout.Frame {
	c := ctx.Constants()
	size := ctx.Size()
	axis := c.AxisHeight.At(size)
	thickness := c.FractionRuleThickness.At(size)

	var shiftUp, shiftDown, numMin, denomMin Abs
	if ctx.Style.IsDisplay() {
		shiftUp = c.FractionNumeratorDisplayStyleShiftUp.At(size)
		shiftDown = c.FractionDenominatorDisplayStyleShiftDown.At(size)
		numMin = c.FractionNumDisplayStyleGapMin.At(size)
		denomMin = c.FractionDenomDisplayStyleGapMin.At(size)
	} else {
		shiftUp = c.FractionNumeratorShiftUp.At(size)
		shiftDown = c.FractionDenominatorShiftDown.At(size)
		numMin = c.FractionNumeratorGapMin.At(size)
		denomMin = c.FractionDenominatorGapMin.At(size)
	}

	numGap := (shiftUp - (axis + thickness/2.0) - descent(num)).Max(numMin)
	denomGap := (shiftDown + (axis - thickness/2.0) - ascent(denom)).Max(denomMin)

	lineWidth := width(num).Max(width(denom))
	w := lineWidth + 2.0*padding
	h := height(num) + numGap + thickness + denomGap + height(denom)

	frame := layout.NewFrame(layout.Size{Width: w, Height: h})
	numPos := layout.Point{X: centered(width(num), w)}
	linePos := layout.Point{X: centered(lineWidth, w), Y: height(num) + numGap}
	denomPos := layout.Point{X: centered(width(denom), w), Y: h - height(denom)}
	frame.Baseline = linePos.Y + thickness/2.0 + axis

	frame.PushFrame(numPos, num)
	frame.PushFrame(denomPos, denom)
	frame.PushFrame(layout.Point{X: linePos.X, Y: linePos.Y}, ruleFrame(lineWidth, thickness))
	return frame
}

// LayoutStack lays out an unruled fraction (\binom and its variants): two
// frames stacked with no bar, using the stack constants' wider default
// gap since there's no rule to visually separate the pieces.
func (ctx *Context) LayoutStack(top, bottom *layout.Frame, padding Abs) *layout.Frame {
	c := ctx.Constants()
	size := ctx.Size()

	var shiftUp, shiftDown, gapMin Abs
	if ctx.Style.IsDisplay() {
		shiftUp = c.StackTopDisplayStyleShiftUp.At(size)
		shiftDown = c.StackBottomDisplayStyleShiftDown.At(size)
		gapMin = c.StackDisplayStyleGapMin.At(size)
	} else {
		shiftUp = c.StackTopShiftUp.At(size)
		shiftDown = c.StackBottomShiftDown.At(size)
		gapMin = c.StackGapMin.At(size)
	}

	gap := (shiftUp - descent(top)) + (shiftDown - ascent(bottom))
	actualGap := gap.Max(gapMin)

	w := width(top).Max(width(bottom)) + 2.0*padding
	h := height(top) + actualGap + height(bottom)

	frame := layout.NewFrame(layout.Size{Width: w, Height: h})
	topPos := layout.Point{X: centered(width(top), w)}
	bottomPos := layout.Point{X: centered(width(bottom), w), Y: h - height(bottom)}

	baseline := ascent(top) + shiftUp
	if gapMin > gap {
		baseline += (gapMin - gap) / 2.0
	}
	frame.Baseline = baseline

	frame.PushFrame(topPos, top)
	frame.PushFrame(bottomPos, bottom)
	return frame
}
