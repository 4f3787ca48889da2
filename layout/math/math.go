package math

import (
	"fmt"

	"github.com/texmath/texmath/layout"
	"github.com/texmath/texmath/parse"
	"github.com/texmath/texmath/symbols"
)

// Layout lays out a top-level sequence of nodes (as returned by
// parse.Parse) at the given context's style, producing one frame with
// inter-atom spacing already applied.
func Layout(nodes []parse.Node, ctx *Context) (*layout.Frame, error) {
	return layoutSequence(ctx, nodes)
}

func layoutSequence(ctx *Context, nodes []parse.Node) (*layout.Frame, error) {
	frames := make([]*layout.Frame, len(nodes))
	classes := make([]symbols.Class, len(nodes))
	for i, n := range nodes {
		f, class, _, _, err := layoutNode(ctx, n)
		if err != nil {
			return nil, err
		}
		frames[i] = f
		classes[i] = class
	}
	retractBins(classes)

	gaps := make([]Abs, 0, len(frames)-1)
	for i := 1; i < len(frames); i++ {
		gaps = append(gaps, spacingBetween(classes[i-1], classes[i], ctx.Style, ctx.Size()))
	}
	return HConcat(frames, gaps), nil
}

// layoutNode lays out a single node, returning its frame, the atom class
// it contributes to inter-atom spacing, its italics correction (nonzero
// only for single glyphs), and whether it is an operator that takes
// display-style limits by default.
func layoutNode(ctx *Context, node parse.Node) (frame *layout.Frame, class symbols.Class, italic Abs, limits bool, err error) {
	switch n := node.(type) {
	case *parse.Symbol:
		return ctx.layoutSymbol(n.Rune, n.Class, n.Scale, n.Limits)

	case *parse.Extend:
		f, c, it, _, e := ctx.layoutSymbol(n.Rune, n.Class, 0, false)
		return f, c, it, false, e

	case *parse.PlainText:
		return ctx.LayoutText(n.Text), symbols.ClassOrd, 0, false, nil

	case *parse.Group:
		f, e := layoutSequence(ctx, n.Children)
		return f, symbols.ClassOrd, 0, false, e

	case *parse.Scripts:
		return ctx.layoutScripts(n)

	case *parse.GenFraction:
		return ctx.layoutGenFraction(n)

	case *parse.Radical:
		return ctx.layoutRadicalNode(n)

	case *parse.Accent:
		return ctx.layoutAccentNode(n)

	case *parse.OverUnder:
		base, _, _, _, e := layoutNode(ctx, n.Base)
		if e != nil {
			return nil, 0, 0, false, e
		}
		if n.Above {
			return ctx.LayoutOverline(base), symbols.ClassOrd, 0, false, nil
		}
		return ctx.LayoutUnderline(base), symbols.ClassOrd, 0, false, nil

	case *parse.Delimited:
		return ctx.layoutDelimitedNode(n)

	case *parse.Array:
		f, e := ctx.layoutArrayNode(n)
		return f, symbols.ClassOrd, 0, false, e

	case *parse.Style:
		style := levelToStyle(n.Level, ctx.Style.Cramped)
		f, e := layoutNode2(ctx.Derive(style), n.Body)
		return f, symbols.ClassOrd, 0, false, e

	case *parse.AtomChange:
		f, _, it, _, e := layoutNode(ctx, n.Body)
		return f, n.Class, it, false, e

	case *parse.Color:
		f, class, it, lim, e := layoutNode(ctx, n.Body)
		if e != nil {
			return nil, 0, 0, false, e
		}
		col, e := resolveColor(n.Name)
		if e != nil {
			return nil, 0, 0, false, e
		}
		wrapped := layout.NewFrame(f.Size)
		wrapped.Baseline = f.Baseline
		wrapped.Push(layout.Point{}, &layout.ColorItem{Color: col, Frame: f})
		return wrapped, class, it, lim, nil

	case *parse.Rule:
		size := ctx.Size()
		w := Em(n.Width).At(size)
		h := Em(n.Height + n.Depth).At(size)
		f := ruleFrame(w, h)
		f.Baseline = Em(n.Height).At(size)
		return f, symbols.ClassOrd, 0, false, nil

	case *parse.Kerning:
		size := ctx.Size()
		w := Em(n.Amount).At(size)
		f := layout.NewFrame(layout.Size{Width: w})
		return f, symbols.ClassOrd, 0, false, nil

	default:
		return nil, 0, 0, false, fmt.Errorf("math: unhandled node type %T", node)
	}
}

// layoutNode2 is layoutNode trimmed to (frame, error), for call sites
// that don't need every return split out inline.
func layoutNode2(ctx *Context, node parse.Node) (*layout.Frame, error) {
	f, _, _, _, err := layoutNode(ctx, node)
	return f, err
}

func levelToStyle(level parse.MathLevel, cramped bool) Style {
	switch level {
	case parse.LevelDisplay:
		return Style{Level: Display, Cramped: cramped}
	case parse.LevelText:
		return Style{Level: Text, Cramped: cramped}
	case parse.LevelScript:
		return Style{Level: Script, Cramped: cramped}
	default:
		return Style{Level: ScriptScript, Cramped: cramped}
	}
}

var bigSizes = [5]Em{0, 1.2, 1.8, 2.4, 3.0}

func (ctx *Context) layoutSymbol(r rune, class symbols.Class, scale int, limitsDefault bool) (*layout.Frame, symbols.Class, Abs, bool, error) {
	gid, ok := ctx.Glyph(r)
	if !ok {
		return nil, 0, 0, false, &GlyphNotFoundError{Rune: r}
	}

	if scale > 0 && scale < len(bigSizes) {
		target := bigSizes[scale].At(ctx.FontSize)
		axis := ctx.Constants().AxisHeight.At(ctx.Size())
		f := ctx.axisFrame(ctx.StretchGlyph(gid, target, true), axis)
		return f, class, 0, false, nil
	}

	f := ctx.GlyphFrame(gid)
	italic := ctx.Table.ItalicsCorrection(gid).At(ctx.Size())
	return f, class, italic, limitsDefault, nil
}

// singleGlyph resolves node to a glyph ID when it is (or degenerately
// wraps) a single symbol, for accent/kerning lookups that need a real
// glyph rather than a composite frame.
func singleGlyph(ctx *Context, node parse.Node) (uint16, bool) {
	switch n := node.(type) {
	case *parse.Symbol:
		return ctx.Glyph(n.Rune)
	case *parse.Extend:
		return ctx.Glyph(n.Rune)
	case *parse.Group:
		if len(n.Children) == 1 {
			return singleGlyph(ctx, n.Children[0])
		}
	}
	return 0, false
}
