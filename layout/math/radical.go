package math

import (
	"github.com/texmath/texmath/layout"
	"github.com/texmath/texmath/parse"
)

// sqrtRune is the radical sign glyph looked up in the active font; \sqrt
// resolves to it, with or without an optional index.
const sqrtRune = '√'

// cubeRootRune and fourthRootRune are the dedicated Unicode radical glyphs
// \cuberoot and \fourthroot resolve to, rather than a plain radical with a
// synthesized degree index.
const (
	cubeRootRune   = '∛'
	fourthRootRune = '∜'
)

func radicalRune(shape parse.RadicalShape) rune {
	switch shape {
	case parse.RadicalCube:
		return cubeRootRune
	case parse.RadicalFourth:
		return fourthRootRune
	default:
		return sqrtRune
	}
}

// LayoutRadical lays out a square/nth root: a stretched radical glyph tall
// enough to cover radicand, a vinculum rule along its top, and an optional
// root index tucked into the radical's notch. Follows the OpenType MATH
// table's radical algorithm (TeXbook Appendix G rule 11, restated in terms
// of MATH constants): the radical glyph is stretched once to cover the
// radicand plus rule and gap, and any height it has beyond that is split
// into the gap above the radicand (p.443 item 11).
func (ctx *Context) LayoutRadical(radicand *layout.Frame, index *layout.Frame, shape parse.RadicalShape) *layout.Frame {
	c := ctx.Constants()
	size := ctx.Size()

	thickness := c.RadicalRuleThickness.At(size)
	gap := c.RadicalVerticalGap.At(size)
	if ctx.Style.IsDisplay() {
		gap = c.RadicalDisplayStyleVerticalGap.At(size)
	}

	radicandHeight := ascent(radicand) + descent(radicand)
	target := radicandHeight + thickness + gap

	gid, _ := ctx.Glyph(radicalRune(shape))
	sqrt := ctx.StretchGlyph(gid, target, true)

	if freeSpace := sqrt.Size.Height - thickness - radicandHeight; freeSpace > gap {
		gap = (gap + freeSpace) / 2.0
	}

	sqrtAscent := ascent(radicand) + gap + thickness
	sqrtDescent := sqrt.Size.Height - sqrtAscent
	extraAscender := c.RadicalExtraAscender.At(size)
	innerAscent := sqrtAscent + extraAscender

	var sqrtOffset, shiftUp Abs
	total := innerAscent
	kernBefore := c.RadicalKernBeforeDegree.At(size)
	kernAfter := c.RadicalKernAfterDegree.At(size)

	if index != nil {
		sqrtOffset = (kernBefore + width(index) + kernAfter).Max(0)
		shiftUp = Abs(c.RadicalDegreeBottomRaisePercent*float64(innerAscent-sqrtDescent)) + descent(index)
		if v := shiftUp + ascent(index); v > total {
			total = v
		}
	}

	radicandX := sqrtOffset + sqrt.Size.Width
	radicandY := total - ascent(radicand)
	frame := layout.NewFrame(layout.Size{Width: radicandX + width(radicand), Height: total + sqrtDescent})
	frame.Baseline = total

	if index != nil {
		indexX := (-sqrtOffset).Max(0) + kernBefore
		frame.PushFrame(layout.Point{X: indexX, Y: total - ascent(index) - shiftUp}, index)
	}

	frame.PushFrame(layout.Point{X: sqrtOffset, Y: radicandY - gap - thickness}, sqrt)

	linePos := layout.Point{X: radicandX, Y: radicandY - gap - thickness}
	frame.PushFrame(linePos, ruleFrame(width(radicand), thickness))

	frame.PushFrame(layout.Point{X: radicandX, Y: radicandY}, radicand)
	return frame
}
