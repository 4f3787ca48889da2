package math

import (
	"testing"

	"github.com/texmath/texmath/font"
	"github.com/texmath/texmath/layout"
	"github.com/texmath/texmath/parse"
	"github.com/texmath/texmath/symbols"
)

func testContext(t *testing.T) *Context {
	t.Helper()
	f, err := font.Default()
	if err != nil {
		t.Fatalf("font.Default(): %v", err)
	}
	ctx, err := NewContext(f, Abs(10))
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return ctx
}

func mustLayout(t *testing.T, src string) *layout.Frame {
	t.Helper()
	nodes, err := parse.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	f, err := Layout(nodes, testContext(t))
	if err != nil {
		t.Fatalf("Layout(%q): %v", src, err)
	}
	return f
}

func TestLayoutSimpleExpression(t *testing.T) {
	f := mustLayout(t, "1+2")
	if f.Size.Width <= 0 || f.Size.Height <= 0 {
		t.Fatalf("expected nonzero frame, got %#v", f.Size)
	}
}

func TestLayoutGroupWidthIsSumOfChildren(t *testing.T) {
	single := mustLayout(t, "x")
	pair := mustLayout(t, "xx")
	if pair.Size.Width <= single.Size.Width {
		t.Fatalf("two glyphs should be wider than one: %v vs %v", pair.Size.Width, single.Size.Width)
	}
}

func TestLayoutRuleNode(t *testing.T) {
	ctx := testContext(t)
	f, _, _, _, err := layoutNode(ctx, &parse.Rule{Width: 1, Height: 2})
	if err != nil {
		t.Fatalf("layoutNode(Rule): %v", err)
	}
	size := ctx.Size()
	if f.Size.Width != Em(1).At(size) {
		t.Errorf("rule width = %v, want %v", f.Size.Width, Em(1).At(size))
	}
}

func TestLayoutKerningNode(t *testing.T) {
	withKern := mustLayout(t, `x\quad x`)
	withoutKern := mustLayout(t, "xx")
	if withKern.Size.Width <= withoutKern.Size.Width {
		t.Fatalf("\\quad should widen the frame: %v vs %v", withKern.Size.Width, withoutKern.Size.Width)
	}
}

func TestLayoutSymbolMissingGlyphErrors(t *testing.T) {
	ctx := testContext(t)
	// U+10FFFD is outside any real cmap's range.
	_, _, _, _, err := layoutNode(ctx, &parse.Symbol{Rune: 0x10FFFD, Class: symbols.ClassOrd})
	if err == nil {
		t.Fatal("expected GlyphNotFoundError for an unmapped codepoint")
	}
	if _, ok := err.(*GlyphNotFoundError); !ok {
		t.Errorf("expected *GlyphNotFoundError, got %#v", err)
	}
}

func TestLayoutColorWrapsWithoutResizing(t *testing.T) {
	ctx := testContext(t)
	plain, _, _, _, err := layoutNode(ctx, &parse.Symbol{Rune: 'x', Class: symbols.ClassOrd})
	if err != nil {
		t.Fatalf("layoutNode(Symbol): %v", err)
	}
	colored, _, _, _, err := layoutNode(ctx, &parse.Color{Name: "red", Body: &parse.Symbol{Rune: 'x', Class: symbols.ClassOrd}})
	if err != nil {
		t.Fatalf("layoutNode(Color): %v", err)
	}
	if colored.Size != plain.Size || colored.Baseline != plain.Baseline {
		t.Errorf("color scope should not change size/baseline: got %#v/%v, want %#v/%v", colored.Size, colored.Baseline, plain.Size, plain.Baseline)
	}
	item, ok := colored.Items[0].(*layout.PositionedItem).Item.(*layout.ColorItem)
	if !ok {
		t.Fatalf("expected a *layout.ColorItem, got %#v", colored.Items[0])
	}
	if item.Color.R != 255 || item.Color.G != 0 || item.Color.B != 0 {
		t.Errorf("expected red, got %#v", item.Color)
	}
}

func TestLayoutColorUnknownNameErrors(t *testing.T) {
	ctx := testContext(t)
	_, _, _, _, err := layoutNode(ctx, &parse.Color{Name: "notacolor", Body: &parse.Symbol{Rune: 'x'}})
	if err == nil {
		t.Fatal("expected an error for an unresolvable color name")
	}
}

func TestSingleGlyphResolvesThroughGroup(t *testing.T) {
	ctx := testContext(t)
	direct, ok := singleGlyph(ctx, &parse.Symbol{Rune: 'x'})
	if !ok {
		t.Fatal("expected direct symbol to resolve")
	}
	wrapped, ok := singleGlyph(ctx, &parse.Group{Children: []parse.Node{&parse.Symbol{Rune: 'x'}}})
	if !ok || wrapped != direct {
		t.Fatalf("expected single-child group to resolve to the same glyph, got %v, %v", wrapped, ok)
	}
	if _, ok := singleGlyph(ctx, &parse.Group{Children: []parse.Node{&parse.Symbol{Rune: 'x'}, &parse.Symbol{Rune: 'y'}}}); ok {
		t.Fatal("expected multi-child group not to resolve to a single glyph")
	}
}
