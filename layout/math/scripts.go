package math

import (
	"github.com/texmath/texmath/font"
	"github.com/texmath/texmath/layout"
	"github.com/texmath/texmath/symbols"
)

func ascent(f *layout.Frame) Abs {
	if f == nil {
		return 0
	}
	return f.Baseline
}

func descent(f *layout.Frame) Abs {
	if f == nil {
		return 0
	}
	return f.Size.Height - f.Baseline
}

func width(f *layout.Frame) Abs {
	if f == nil {
		return 0
	}
	return f.Size.Width
}

// Attachments holds the up to six scripts/limits that can surround a base:
// pre/post sub- and superscript (for multi-index notations like tensors)
// and the over/under limits an operator takes in display style.
type Attachments struct {
	TopLeft, Top, TopRight       *layout.Frame
	BottomLeft, Bottom, BottomRight *layout.Frame
}

// LayoutAttachments positions base plus any of its attachments, following
// the OpenType MATH table's superscript/subscript shift algorithm
// (TeXbook appendix G rules 18a-18f, expressed in terms of MATH constants
// rather than fixed TeX parameters). baseItalic is the base glyph's
// italics correction (0 for composite bases). A base of class Op is not
// treated as text-like and gets extra shift; cramped selects the cramped
// superscript shift.
func (ctx *Context) LayoutAttachments(base *layout.Frame, baseClass symbols.Class, baseItalic Abs, a Attachments, cramped bool) *layout.Frame {
	tl, t, tr, bl, b, br := a.TopLeft, a.Top, a.TopRight, a.BottomLeft, a.Bottom, a.BottomRight
	fontSize := ctx.Size()
	c := ctx.Constants()
	textLike := baseClass != symbols.ClassOp

	var txShift, bxShift Abs
	if tl != nil || tr != nil || bl != nil || br != nil {
		txShift, bxShift = ctx.computeScriptShifts(c, fontSize, cramped, base, textLike, tl, tr, bl, br)
	}
	tShift, bShift := ctx.computeLimitShifts(c, fontSize, base, t, b)

	topmost := ascent(base)
	for _, e := range []Abs{txShift + ascent(tr), txShift + ascent(tl), tShift + ascent(t)} {
		if e > topmost {
			topmost = e
		}
	}
	bottommost := descent(base)
	for _, e := range []Abs{bxShift + descent(br), bxShift + descent(bl), bShift + descent(b)} {
		if e > bottommost {
			bottommost = e
		}
	}
	height := topmost + bottommost
	baseY := topmost - ascent(base)

	spaceAfterScript := c.SpaceAfterScript.At(fontSize)
	tPreW, tPostW := limitWidth(base, t, baseItalic)
	bPreW, bPostW := limitWidth(base, b, baseItalic)

	var tlPreW, blPreW Abs
	if tl != nil {
		tlPreW = spaceAfterScript + width(tl) + ctx.mathKern(base, tl, txShift, font.CornerTopLeft)
	}
	if bl != nil {
		blPreW = spaceAfterScript + width(bl) + ctx.mathKern(base, bl, bxShift, font.CornerBottomLeft)
	}
	var trKern, brKern Abs
	var trPostW, brPostW Abs
	if tr != nil {
		trKern = ctx.mathKern(base, tr, txShift, font.CornerTopRight)
		trPostW = spaceAfterScript + width(tr) + trKern
	}
	if br != nil {
		brKern = ctx.mathKern(base, br, bxShift, font.CornerBottomRight) - baseItalic
		brPostW = spaceAfterScript + width(br) + brKern
	}

	preWidth := maxAbs(tPreW, bPreW, tlPreW, blPreW)
	postWidth := maxAbs(tPostW, bPostW, trPostW, brPostW)
	total := preWidth + width(base) + postWidth

	out := layout.NewFrame(layout.Size{Width: total, Height: height})
	out.Baseline = topmost
	out.PushFrame(layout.Point{X: preWidth, Y: baseY}, base)

	if tl != nil {
		out.PushFrame(layout.Point{X: preWidth - tlPreW + spaceAfterScript, Y: topmost - txShift - ascent(tl)}, tl)
	}
	if bl != nil {
		out.PushFrame(layout.Point{X: preWidth - blPreW + spaceAfterScript, Y: topmost + bxShift - ascent(bl)}, bl)
	}
	if tr != nil {
		out.PushFrame(layout.Point{X: preWidth + width(base) + trKern, Y: topmost - txShift - ascent(tr)}, tr)
	}
	if br != nil {
		out.PushFrame(layout.Point{X: preWidth + width(base) + brKern, Y: topmost + bxShift - ascent(br)}, br)
	}
	if t != nil {
		out.PushFrame(layout.Point{X: preWidth - tPreW, Y: topmost - tShift - ascent(t)}, t)
	}
	if b != nil {
		out.PushFrame(layout.Point{X: preWidth - bPreW, Y: topmost + bShift - ascent(b)}, b)
	}
	return out
}

func maxAbs(vs ...Abs) Abs {
	m := Abs(0)
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}

func (ctx *Context) computeScriptShifts(c *font.MathConstants, fontSize Abs, cramped bool, base *layout.Frame, textLike bool, tl, tr, bl, br *layout.Frame) (txShift, bxShift Abs) {
	supShiftUp := c.SuperscriptShiftUp
	if cramped {
		supShiftUp = c.SuperscriptShiftUpCramped
	}
	supBottomMin := c.SuperscriptBottomMin.At(fontSize)
	supBottomMaxWithSub := c.SuperscriptBottomMaxWithSubscript.At(fontSize)
	supDropMax := c.SuperscriptBaselineDropMax.At(fontSize)
	gapMin := c.SubSuperscriptGapMin.At(fontSize)
	subShiftDown := c.SubscriptShiftDown.At(fontSize)
	subTopMax := c.SubscriptTopMax.At(fontSize)
	subDropMin := c.SubscriptBaselineDropMin.At(fontSize)

	if tl != nil || tr != nil {
		txShift = supShiftUp.At(fontSize)
		if !textLike {
			if v := ascent(base) - supDropMax; v > txShift {
				txShift = v
			}
		}
		if tl != nil {
			if v := supBottomMin + descent(tl); v > txShift {
				txShift = v
			}
		}
		if tr != nil {
			if v := supBottomMin + descent(tr); v > txShift {
				txShift = v
			}
		}
	}

	if bl != nil || br != nil {
		bxShift = subShiftDown
		if !textLike {
			if v := descent(base) + subDropMin; v > bxShift {
				bxShift = v
			}
		}
		if bl != nil {
			if v := ascent(bl) - subTopMax; v > bxShift {
				bxShift = v
			}
		}
		if br != nil {
			if v := ascent(br) - subTopMax; v > bxShift {
				bxShift = v
			}
		}
	}

	for _, pair := range [][2]*layout.Frame{{tl, bl}, {tr, br}} {
		sup, sub := pair[0], pair[1]
		if sup == nil || sub == nil {
			continue
		}
		supBottom := txShift - descent(sup)
		subTop := ascent(sub) - bxShift
		gap := supBottom - subTop
		if gap < gapMin {
			increase := gapMin - gap
			supOnly := (supBottomMaxWithSub - supBottom).Clamp(0, increase)
			rest := (increase - supOnly) / 2.0
			txShift += supOnly + rest
			bxShift += rest
		}
	}
	return txShift, bxShift
}

func (ctx *Context) computeLimitShifts(c *font.MathConstants, fontSize Abs, base, t, b *layout.Frame) (tShift, bShift Abs) {
	if t != nil {
		gapMin := c.UpperLimitGapMin.At(fontSize)
		riseMin := c.UpperLimitBaselineRiseMin.At(fontSize)
		tShift = ascent(base) + riseMin.Max(gapMin+descent(t))
	}
	if b != nil {
		gapMin := c.LowerLimitGapMin.At(fontSize)
		dropMin := c.LowerLimitBaselineDropMin.At(fontSize)
		bShift = descent(base) + dropMin.Max(gapMin+ascent(b))
	}
	return tShift, bShift
}

// limitWidth returns how far a centered over/under limit extends beyond
// base's width on each side, biased by half the base's italics correction
// (the limit centers over the base's optical center, not its box center).
func limitWidth(base, limit *layout.Frame, baseItalic Abs) (pre, post Abs) {
	if limit == nil {
		return 0, 0
	}
	delta := baseItalic / 2.0
	half := (width(limit) - width(base)) / 2.0
	return half - delta, half + delta
}

// mathKern computes the math-kern correction a script needs against base,
// per OpenType MathKernInfo: the larger (least negative) of the kern
// evaluated at the script's top and bottom correction heights.
func (ctx *Context) mathKern(base, script *layout.Frame, shift Abs, corner font.Corner) Abs {
	baseGID, baseOK := lastGlyph(base)
	scriptGID, scriptOK := firstGlyph(script)
	if !baseOK || !scriptOK {
		return 0
	}

	var corrTop, corrBot Abs
	switch corner {
	case font.CornerTopLeft, font.CornerTopRight:
		corrTop = ascent(base) - shift
		corrBot = shift - descent(script)
	default:
		corrTop = ascent(script) - shift
		corrBot = shift - descent(base)
	}

	table := ctx.Table
	size := ctx.Size()
	summed := func(h Abs) Abs {
		return table.KernAtHeight(baseGID, corner, Em(h/size)).At(size) +
			table.KernAtHeight(scriptGID, corner.Inv(), Em(h/size)).At(size)
	}
	k1, k2 := summed(corrTop), summed(corrBot)
	if k1 > k2 {
		return k1
	}
	return k2
}

// lastGlyph / firstGlyph dig the sole GlyphItem out of a single-glyph
// atom frame, for math-kern lookups. Composite frames (groups, scripts
// within scripts) report no glyph and so simply receive no kern.
func lastGlyph(f *layout.Frame) (uint16, bool) {
	if f == nil || len(f.Items) == 0 {
		return 0, false
	}
	return glyphOf(f.Items[len(f.Items)-1])
}

func firstGlyph(f *layout.Frame) (uint16, bool) {
	if f == nil || len(f.Items) == 0 {
		return 0, false
	}
	return glyphOf(f.Items[0])
}

func glyphOf(item layout.FrameItem) (uint16, bool) {
	pos, ok := item.(*layout.PositionedItem)
	if !ok {
		return 0, false
	}
	g, ok := pos.Item.(*layout.GlyphItem)
	if !ok {
		return 0, false
	}
	return g.GID, true
}
