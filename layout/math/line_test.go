package math

import "testing"

func TestLayoutOverlineGrowsHeightKeepsWidth(t *testing.T) {
	ctx := testContext(t)
	content := ctx.RuneFrame('x')
	f := ctx.LayoutOverline(content)
	if f.Size.Width != content.Size.Width {
		t.Errorf("overline should not change width: got %v, want %v", f.Size.Width, content.Size.Width)
	}
	if f.Size.Height <= content.Size.Height {
		t.Errorf("overline should add height for the rule: %v vs %v", f.Size.Height, content.Size.Height)
	}
}

func TestLayoutUnderlineBaselineMatchesContent(t *testing.T) {
	ctx := testContext(t)
	content := ctx.RuneFrame('x')
	f := ctx.LayoutUnderline(content)
	if f.Baseline != content.Baseline {
		t.Errorf("underline should not shift the baseline: got %v, want %v", f.Baseline, content.Baseline)
	}
	if f.Size.Height <= content.Size.Height {
		t.Errorf("underline should add height for the rule: %v vs %v", f.Size.Height, content.Size.Height)
	}
}
