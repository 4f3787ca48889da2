package math

import "testing"

func TestStretchGlyphGrowsToTarget(t *testing.T) {
	ctx := testContext(t)
	gid, ok := ctx.Glyph('(')
	if !ok {
		t.Fatal("font has no '(' glyph")
	}
	small := ctx.StretchGlyph(gid, 0, true)
	big := ctx.StretchGlyph(gid, 100, true)
	if big.Size.Height <= small.Size.Height {
		t.Fatalf("stretching to a large target should grow the glyph: %v vs %v", big.Size.Height, small.Size.Height)
	}
	if big.Size.Height < 100 {
		t.Errorf("stretched height %v should reach the requested target 100", big.Size.Height)
	}
}

func TestStretchGlyphFallsBackWithoutVariants(t *testing.T) {
	ctx := testContext(t)
	gid, ok := ctx.Glyph('x')
	if !ok {
		t.Fatal("font has no 'x' glyph")
	}
	f := ctx.StretchGlyph(gid, 1000, true)
	if f == nil {
		t.Fatal("expected a frame even when no variant reaches the target")
	}
}
