package math

import "github.com/texmath/texmath/symbols"

// space names one of TeX's four inter-atom space widths (TeXbook ch.18).
type space int

const (
	spaceNone space = iota
	spaceThin
	spaceMedium
	spaceThick
)

// Amount returns the space as a fraction of an em; 1em = 18mu in TeX, so
// thin/medium/thick are 3/4/5 mu respectively.
func (s space) Amount() Em {
	switch s {
	case spaceThin:
		return Em(3.0 / 18.0)
	case spaceMedium:
		return Em(4.0 / 18.0)
	case spaceThick:
		return Em(5.0 / 18.0)
	default:
		return 0
	}
}

// spacingClass collapses this module's extended atom classes down to the
// eight TeX uses for inter-atom spacing; Alpha (plain letters/digits) and
// Fence (bare | or similar) behave as Ord for this purpose, and Accent/
// Over/Under never appear as standalone atoms in a flattened sequence (an
// accented base is one atom, not two).
func spacingClass(c symbols.Class) symbols.Class {
	switch c {
	case symbols.ClassAlpha, symbols.ClassFence, symbols.ClassAccent, symbols.ClassOver, symbols.ClassUnder:
		return symbols.ClassOrd
	default:
		return c
	}
}

// spacingTable is indexed [left][right] over the eight TeX math classes in
// declaration order (Ord, Op, Bin, Rel, Open, Close, Punct, Inner).
var spacingTable = [8][8]space{
	/*      Ord    Op     Bin    Rel    Open   Close  Punct  Inner */
	/*Ord*/ {spaceNone, spaceThin, spaceMedium, spaceThick, spaceNone, spaceNone, spaceNone, spaceThin},
	/*Op */ {spaceThin, spaceThin, spaceNone, spaceThick, spaceNone, spaceNone, spaceNone, spaceThin},
	/*Bin*/ {spaceMedium, spaceMedium, spaceNone, spaceNone, spaceMedium, spaceNone, spaceNone, spaceMedium},
	/*Rel*/ {spaceThick, spaceThick, spaceNone, spaceNone, spaceThick, spaceNone, spaceNone, spaceThick},
	/*Opn*/ {spaceNone, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone},
	/*Cls*/ {spaceNone, spaceThin, spaceMedium, spaceThick, spaceNone, spaceNone, spaceNone, spaceThin},
	/*Pct*/ {spaceThin, spaceThin, spaceNone, spaceThin, spaceThin, spaceThin, spaceThin, spaceThin},
	/*Inr*/ {spaceThin, spaceThin, spaceMedium, spaceThick, spaceThin, spaceNone, spaceThin, spaceThin},
}

func classIndex(c symbols.Class) int {
	switch spacingClass(c) {
	case symbols.ClassOrd:
		return 0
	case symbols.ClassOp:
		return 1
	case symbols.ClassBin:
		return 2
	case symbols.ClassRel:
		return 3
	case symbols.ClassOpen:
		return 4
	case symbols.ClassClose:
		return 5
	case symbols.ClassPunct:
		return 6
	case symbols.ClassInner:
		return 7
	default:
		return 0
	}
}

// spacingBetween returns the absolute gap TeX inserts between two adjacent
// atoms of the given classes in the given style; script and scriptscript
// styles drop one step (medium -> thin, thick -> none) per TeXbook p.170.
func spacingBetween(left, right symbols.Class, style Style, fontSize Abs) Abs {
	s := spacingTable[classIndex(left)][classIndex(right)]
	if style.IsScriptOrSmaller() {
		switch s {
		case spaceMedium:
			s = spaceThin
		case spaceThick:
			s = spaceNone
		}
	}
	return s.Amount().At(fontSize)
}

// retractBins implements TeX's Bin-to-Ord rules: a Bin atom with no
// preceding Ord-like atom to attach to (at the start of a formula, or
// following another Bin, Op, Rel, Open or Punct atom) is retracted to Ord
// (rule 5), and the same applies to a Bin atom at the very end of the
// sequence. A Bin atom immediately followed by a Rel, Close or Punct atom
// is also retracted to Ord (rule 6), since it has nothing to its right to
// attach to either.
func retractBins(classes []symbols.Class) {
	prevRetracting := true
	for i, c := range classes {
		if spacingClass(c) == symbols.ClassBin && prevRetracting {
			classes[i] = symbols.ClassOrd
		}
		switch spacingClass(classes[i]) {
		case symbols.ClassBin, symbols.ClassOp, symbols.ClassRel, symbols.ClassOpen, symbols.ClassPunct:
			prevRetracting = true
		default:
			prevRetracting = false
		}
	}
	if n := len(classes); n > 0 && spacingClass(classes[n-1]) == symbols.ClassBin {
		classes[n-1] = symbols.ClassOrd
	}

	for i := 0; i < len(classes)-1; i++ {
		if spacingClass(classes[i]) != symbols.ClassBin {
			continue
		}
		switch spacingClass(classes[i+1]) {
		case symbols.ClassRel, symbols.ClassClose, symbols.ClassPunct:
			classes[i] = symbols.ClassOrd
		}
	}
}
