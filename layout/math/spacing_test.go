package math

import (
	"testing"

	"github.com/texmath/texmath/layout"
	"github.com/texmath/texmath/symbols"
)

func TestRetractBinsRuleFiveLeadingBin(t *testing.T) {
	classes := []symbols.Class{symbols.ClassBin, symbols.ClassOrd}
	retractBins(classes)
	if classes[0] != symbols.ClassOrd {
		t.Errorf("a leading Bin should retract to Ord, got %v", classes[0])
	}
}

func TestRetractBinsRuleFiveAfterRetractingClass(t *testing.T) {
	for _, prev := range []symbols.Class{symbols.ClassBin, symbols.ClassOp, symbols.ClassRel, symbols.ClassOpen, symbols.ClassPunct} {
		classes := []symbols.Class{symbols.ClassOrd, prev, symbols.ClassBin, symbols.ClassOrd}
		retractBins(classes)
		if classes[2] != symbols.ClassOrd {
			t.Errorf("Bin following %v should retract to Ord, got %v", prev, classes[2])
		}
	}
}

func TestRetractBinsRuleFiveTrailingBin(t *testing.T) {
	classes := []symbols.Class{symbols.ClassOrd, symbols.ClassBin}
	retractBins(classes)
	if classes[1] != symbols.ClassOrd {
		t.Errorf("a trailing Bin should retract to Ord, got %v", classes[1])
	}
}

func TestRetractBinsRuleSixFollowedByRelCloseOrPunct(t *testing.T) {
	for _, next := range []symbols.Class{symbols.ClassRel, symbols.ClassClose, symbols.ClassPunct} {
		classes := []symbols.Class{symbols.ClassOrd, symbols.ClassBin, next}
		retractBins(classes)
		if classes[1] != symbols.ClassOrd {
			t.Errorf("Bin followed by %v should retract to Ord, got %v", next, classes[1])
		}
	}
}

func TestRetractBinsRuleSixLeavesBinBeforeOrd(t *testing.T) {
	classes := []symbols.Class{symbols.ClassOrd, symbols.ClassBin, symbols.ClassOrd}
	retractBins(classes)
	if classes[1] != symbols.ClassBin {
		t.Errorf("a Bin between two Ords should stay Bin, got %v", classes[1])
	}
}

// frameGaps returns the horizontal gap math layout inserted between each
// pair of adjacent top-level frame items, mirroring how layoutSequence
// builds its HConcat gaps slice.
func frameGaps(t *testing.T, f *layout.Frame) []Abs {
	t.Helper()
	var gaps []Abs
	var prevRight Abs
	for i, raw := range f.Items {
		pi, ok := raw.(*layout.PositionedItem)
		if !ok {
			t.Fatalf("frame item %d is not positioned: %#v", i, raw)
		}
		sub, ok := pi.Item.(*layout.Frame)
		if !ok {
			t.Fatalf("frame item %d is not a subframe: %#v", i, pi.Item)
		}
		if i > 0 {
			gaps = append(gaps, pi.Pos.X-prevRight)
		}
		prevRight = pi.Pos.X + sub.Size.Width
	}
	return gaps
}

// TestSpacingScenarioLeadingPlus covers spec scenario 1: a leading "+"
// retracts to Ord, so there is no space (let alone a medium Bin space)
// before the following digit.
func TestSpacingScenarioLeadingPlus(t *testing.T) {
	f := mustLayout(t, "+2")
	gaps := frameGaps(t, f)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if gaps[0] != 0 {
		t.Errorf("leading + should retract to Ord with zero space before 2, got gap %v", gaps[0])
	}
}

// TestSpacingScenarioRelThenBin covers spec scenario 2: "1<+2" - the "+"
// is retracted to Ord by rule 5 (it follows a Rel), so both the Rel and
// the following Ord get the Ord<->Rel spacing, and the final Ord-Ord gap
// is zero.
func TestSpacingScenarioRelThenBin(t *testing.T) {
	f := mustLayout(t, "1<+2")
	gaps := frameGaps(t, f)
	if len(gaps) != 3 {
		t.Fatalf("expected 3 gaps, got %d", len(gaps))
	}
	ctx := testContext(t)
	ordRel := spacingBetween(symbols.ClassOrd, symbols.ClassRel, ctx.Style, ctx.Size())
	relOrd := spacingBetween(symbols.ClassRel, symbols.ClassOrd, ctx.Style, ctx.Size())
	if gaps[0] != ordRel {
		t.Errorf("gap before < = %v, want Ord-Rel spacing %v", gaps[0], ordRel)
	}
	if gaps[1] != relOrd {
		t.Errorf("gap after < (before retracted +) = %v, want Rel-Ord spacing %v", gaps[1], relOrd)
	}
	if gaps[2] != 0 {
		t.Errorf("gap before trailing 2 should be zero (Ord-Ord), got %v", gaps[2])
	}
}

// TestSpacingScenarioBinThenRel covers spec scenario 3: "1+<2" - the "+"
// is demoted to Ord by rule 6 because a Rel immediately follows it, so
// the first gap (Ord-Ord) is zero and the remaining two gaps match the
// symmetric Ord<->Rel spacing.
func TestSpacingScenarioBinThenRel(t *testing.T) {
	f := mustLayout(t, "1+<2")
	gaps := frameGaps(t, f)
	if len(gaps) != 3 {
		t.Fatalf("expected 3 gaps, got %d", len(gaps))
	}
	if gaps[0] != 0 {
		t.Errorf("gap before demoted + should be zero (Ord-Ord), got %v", gaps[0])
	}
	ctx := testContext(t)
	ordRel := spacingBetween(symbols.ClassOrd, symbols.ClassRel, ctx.Style, ctx.Size())
	relOrd := spacingBetween(symbols.ClassRel, symbols.ClassOrd, ctx.Style, ctx.Size())
	if gaps[1] != ordRel {
		t.Errorf("gap before < = %v, want Ord-Rel spacing %v", gaps[1], ordRel)
	}
	if gaps[2] != relOrd {
		t.Errorf("gap before trailing 2 = %v, want Rel-Ord spacing %v", gaps[2], relOrd)
	}
}

// TestSpacingScenarioColorTransparentToClassification covers spec
// scenario 7: \color{red}{a}+b spaces as Ord->Bin (medium), proving a
// Color wrapper is transparent to inter-atom spacing.
func TestSpacingScenarioColorTransparentToClassification(t *testing.T) {
	f := mustLayout(t, `\color{red}{a}+b`)
	gaps := frameGaps(t, f)
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d", len(gaps))
	}
	ctx := testContext(t)
	ordBin := spacingBetween(symbols.ClassOrd, symbols.ClassBin, ctx.Style, ctx.Size())
	if ordBin != spaceMedium.Amount().At(ctx.Size()) {
		t.Fatalf("test assumption broken: Ord-Bin should be medium spacing")
	}
	if gaps[0] != ordBin {
		t.Errorf("gap between colored a and + = %v, want Ord-Bin spacing %v", gaps[0], ordBin)
	}
}
