package math

import (
	"github.com/texmath/texmath/layout"
	"github.com/texmath/texmath/parse"
	"github.com/texmath/texmath/symbols"
)

func (ctx *Context) layoutScripts(n *parse.Scripts) (*layout.Frame, symbols.Class, Abs, bool, error) {
	baseFrame, baseClass, baseItalic, baseLimits, err := layoutNode(ctx, n.Base)
	if err != nil {
		return nil, 0, 0, false, err
	}

	var supFrame, subFrame *layout.Frame
	if n.Sup != nil {
		supFrame, err = layoutNode2(ctx.Derive(ctx.Style.Sup()), n.Sup)
		if err != nil {
			return nil, 0, 0, false, err
		}
	}
	if n.Sub != nil {
		subFrame, err = layoutNode2(ctx.Derive(ctx.Style.Sub()), n.Sub)
		if err != nil {
			return nil, 0, 0, false, err
		}
	}

	useLimits := n.Limits == parse.LimitsOn ||
		(n.Limits == parse.LimitsAuto && baseLimits && ctx.Style.IsDisplay())

	var a Attachments
	if useLimits {
		a.Top, a.Bottom = supFrame, subFrame
	} else {
		a.TopRight, a.BottomRight = supFrame, subFrame
	}

	f := ctx.LayoutAttachments(baseFrame, baseClass, baseItalic, a, ctx.Style.Cramped)
	return f, baseClass, 0, false, nil
}

func (ctx *Context) layoutGenFraction(n *parse.GenFraction) (*layout.Frame, symbols.Class, Abs, bool, error) {
	forced := ctx.Style
	switch n.Style {
	case parse.FractionDisplay:
		forced = Style{Level: Display, Cramped: ctx.Style.Cramped}
	case parse.FractionText:
		forced = Style{Level: Text, Cramped: ctx.Style.Cramped}
	}
	outer := ctx.Derive(forced)

	numFrame, err := layoutNode2(outer.Derive(forced.Numerator()), n.Numerator)
	if err != nil {
		return nil, 0, 0, false, err
	}
	denomFrame, err := layoutNode2(outer.Derive(forced.Denominator()), n.Denominator)
	if err != nil {
		return nil, 0, 0, false, err
	}

	var inner *layout.Frame
	if n.HasRule {
		inner = outer.LayoutFraction(numFrame, denomFrame, 0)
	} else {
		inner = outer.LayoutStack(numFrame, denomFrame, 0)
	}

	if n.Left == 0 && n.Right == 0 {
		return inner, symbols.ClassInner, 0, false, nil
	}

	openGID, openOK := delimGlyph(outer, n.Left)
	closeGID, closeOK := delimGlyph(outer, n.Right)
	f := outer.LayoutDelimited(openGID, openOK, []*layout.Frame{inner}, nil, closeGID, closeOK)
	return f, symbols.ClassInner, 0, false, nil
}

func delimGlyph(ctx *Context, r rune) (uint16, bool) {
	if r == 0 {
		return 0, false
	}
	return ctx.Glyph(r)
}

func (ctx *Context) layoutRadicalNode(n *parse.Radical) (*layout.Frame, symbols.Class, Abs, bool, error) {
	radicandFrame, err := layoutNode2(ctx.Derive(ctx.Style.Cramp()), n.Radicand)
	if err != nil {
		return nil, 0, 0, false, err
	}
	var indexFrame *layout.Frame
	if n.Index != nil {
		indexFrame, err = layoutNode2(ctx.Derive(Style{Level: ScriptScript, Cramped: true}), n.Index)
		if err != nil {
			return nil, 0, 0, false, err
		}
	}
	f := ctx.LayoutRadical(radicandFrame, indexFrame, n.Shape)
	return f, symbols.ClassOrd, 0, false, nil
}

func (ctx *Context) layoutAccentNode(n *parse.Accent) (*layout.Frame, symbols.Class, Abs, bool, error) {
	baseCtx := ctx.Derive(ctx.Style.Cramp())
	baseFrame, baseClass, baseItalic, _, err := layoutNode(baseCtx, n.Base)
	if err != nil {
		return nil, 0, 0, false, err
	}

	accentGID, accentKnown := ctx.Glyph(n.Accent)
	var accentFrame *layout.Frame
	if n.Stretchy {
		accentFrame = ctx.StretchGlyph(accentGID, width(baseFrame), false)
	} else {
		accentFrame = ctx.GlyphFrame(accentGID)
	}

	baseGID, baseKnown := singleGlyph(ctx, n.Base)
	f := ctx.LayoutAccent(baseFrame, baseGID, baseKnown, accentFrame, accentGID, accentKnown, n.Above)
	return f, baseClass, baseItalic, false, nil
}

func (ctx *Context) layoutDelimitedNode(n *parse.Delimited) (*layout.Frame, symbols.Class, Abs, bool, error) {
	segments := make([]*layout.Frame, len(n.Segments))
	for i, seg := range n.Segments {
		f, err := layoutNode2(ctx, seg)
		if err != nil {
			return nil, 0, 0, false, err
		}
		segments[i] = f
	}
	middleGIDs := make([]uint16, len(n.Middle))
	for i, m := range n.Middle {
		middleGIDs[i], _ = ctx.Glyph(m)
	}
	openGID, openOK := delimGlyph(ctx, n.Open)
	closeGID, closeOK := delimGlyph(ctx, n.Close)
	f := ctx.LayoutDelimited(openGID, openOK, segments, middleGIDs, closeGID, closeOK)
	return f, symbols.ClassInner, 0, false, nil
}

func (ctx *Context) layoutArrayNode(n *parse.Array) (*layout.Frame, error) {
	cells := make([][]*layout.Frame, len(n.Rows))
	for i, row := range n.Rows {
		cells[i] = make([]*layout.Frame, len(row))
		for j, cell := range row {
			f, err := layoutNode2(ctx, cell)
			if err != nil {
				return nil, err
			}
			cells[i][j] = f
		}
	}
	return ctx.LayoutArray(cells, n.Columns), nil
}
