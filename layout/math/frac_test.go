package math

import "testing"

func TestLayoutFractionStacksAboveRule(t *testing.T) {
	ctx := testContext(t)
	num := ctx.RuneFrame('1')
	denom := ctx.RuneFrame('2')
	f := ctx.LayoutFraction(num, denom, 0)
	if f.Size.Height <= num.Size.Height+denom.Size.Height {
		t.Errorf("fraction should add room for the rule and gaps: %v", f.Size.Height)
	}
	if f.Size.Width < num.Size.Width || f.Size.Width < denom.Size.Width {
		t.Errorf("fraction width %v should cover both num and denom", f.Size.Width)
	}
}

func TestLayoutFractionDisplayStyleIsTaller(t *testing.T) {
	ctx := testContext(t)
	num := ctx.RuneFrame('1')
	denom := ctx.RuneFrame('2')
	text := ctx.Derive(Style{Level: Text}).LayoutFraction(num, denom, 0)
	display := ctx.Derive(Style{Level: Display}).LayoutFraction(num, denom, 0)
	if display.Size.Height < text.Size.Height {
		t.Errorf("display style fraction should be at least as tall: %v vs %v", display.Size.Height, text.Size.Height)
	}
}

func TestLayoutStackHasNoRuleGap(t *testing.T) {
	ctx := testContext(t)
	top := ctx.RuneFrame('1')
	bottom := ctx.RuneFrame('2')
	f := ctx.LayoutStack(top, bottom, 0)
	if f.Size.Height <= top.Size.Height+bottom.Size.Height {
		t.Errorf("stack should still separate top and bottom: %v", f.Size.Height)
	}
}
