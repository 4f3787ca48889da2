package math

import "testing"

func TestLayoutAccentAboveIsTallerThanBase(t *testing.T) {
	ctx := testContext(t)
	base := ctx.RuneFrame('x')
	baseGID, _ := ctx.Glyph('x')
	accent := ctx.RuneFrame('^')
	accentGID, _ := ctx.Glyph('^')

	f := ctx.LayoutAccent(base, baseGID, true, accent, accentGID, true, true)
	if f.Size.Height <= base.Size.Height {
		t.Errorf("accented frame should be taller than the bare base: %v vs %v", f.Size.Height, base.Size.Height)
	}
}

func TestLayoutAccentUnknownBaseCoversBaseWidth(t *testing.T) {
	ctx := testContext(t)
	base := ctx.RuneFrame('x')
	accent := ctx.RuneFrame('^')
	accentGID, _ := ctx.Glyph('^')

	f := ctx.LayoutAccent(base, 0, false, accent, accentGID, true, true)
	if f.Size.Width < base.Size.Width {
		t.Errorf("frame should be at least as wide as the base: %v vs %v", f.Size.Width, base.Size.Width)
	}
}

func TestLayoutAccentBelowPlacesAccentUnderneath(t *testing.T) {
	ctx := testContext(t)
	base := ctx.RuneFrame('x')
	baseGID, _ := ctx.Glyph('x')
	accent := ctx.RuneFrame('.')
	accentGID, _ := ctx.Glyph('.')

	f := ctx.LayoutAccent(base, baseGID, true, accent, accentGID, true, false)
	if f.Baseline != base.Baseline {
		t.Errorf("baseline = %v, want base's own ascent %v", f.Baseline, base.Baseline)
	}
}
