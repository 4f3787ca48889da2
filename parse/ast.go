// Package parse turns a LaTeX-style formula string into a parse tree of
// Nodes. It performs no layout: it only recognizes commands, groups and
// environments and validates their shape (argument counts, matching
// delimiters, known environment names).
package parse

import "github.com/texmath/texmath/symbols"

// Node is a parsed formula element. Its concrete type is one of the
// variants below; layout dispatches on the concrete type with a type
// switch, the same pattern used throughout this module's sum types.
type Node interface {
	isNode()
}

// Symbol is a single named or literal symbol (e.g. \alpha, or a bare "+").
// Scale is nonzero only for the \big/\Big/\bigg/\Bigg delimiter family: it
// names a fixed size step (1-4) instead of leaving the glyph's size to be
// derived from its surroundings the way \left/\right delimiters are.
type Symbol struct {
	Rune   rune
	Class  symbols.Class
	Limits bool
	Scale  int
	Pos    int
}

func (*Symbol) isNode() {}

// PlainText is a run of ordinary text set with \text{...} or \mbox{...};
// it degrades to naive glyph-by-glyph advance rather than full shaping.
type PlainText struct {
	Text string
	Pos  int
}

func (*PlainText) isNode() {}

// Group is an explicit {...} or implicit single-token group. Implicit
// groups (Braced=false) exist only to carry a single child through parsing
// uniformly; they add no visual grouping of their own.
type Group struct {
	Children []Node
	Braced   bool
	Pos      int
}

func (*Group) isNode() {}

// Scripts attaches a superscript and/or subscript to a base, as produced
// by base_^sup or base_sub. Limits forces display-style stacking (as for
// \sum, or an explicit \limits) instead of corner attachment.
type Scripts struct {
	Base   Node
	Sup    Node
	Sub    Node
	Limits LimitsMode
	Pos    int
}

func (*Scripts) isNode() {}

// LimitsMode controls whether scripts on an operator stack above/below
// (as \sum does in display style) or attach to the corners.
type LimitsMode int

const (
	LimitsAuto LimitsMode = iota
	LimitsOn
	LimitsOff
)

// GenFraction is \frac, \tfrac, \dfrac, \binom and their variants: a
// generalized fraction with optional delimiters and an optional rule.
type GenFraction struct {
	Numerator   Node
	Denominator Node
	HasRule     bool
	Left, Right rune // delimiter runes, 0 for none
	Style       FractionStyle
	Pos         int
}

// FractionStyle selects which math style the fraction content is forced
// into, independent of its surrounding style (\tfrac forces Text, \dfrac
// forces Display; plain \frac inherits the ambient style).
type FractionStyle int

const (
	FractionInherit FractionStyle = iota
	FractionDisplay
	FractionText
)

func (*GenFraction) isNode() {}

// infixFraction is the marker \over, \atop and \choose leave behind in a
// parseSequence node list; parseSequence rewrites it (and everything
// collected so far and after) into a GenFraction once the enclosing group
// finishes parsing. It is never returned to a caller outside this package.
type infixFraction struct {
	style       FractionStyle
	hasRule     bool
	left, right rune
	pos         int
}

func (*infixFraction) isNode() {}

// Radical is \sqrt or \sqrt[n]{...}, or one of the fixed-degree shortcuts
// \cuberoot and \fourthroot (Shape set, Index left nil).
type Radical struct {
	Radicand Node
	Index    Node // nil for a plain square root
	Shape    RadicalShape
	Pos      int
}

func (*Radical) isNode() {}

// RadicalShape selects which radical glyph a Radical renders with,
// independent of any explicit Index (\sqrt[n]{...} always uses
// RadicalSquare with its degree drawn in the notch).
type RadicalShape int

const (
	RadicalSquare RadicalShape = iota
	RadicalCube
	RadicalFourth
)

// Accent places a combining accent mark (or a stretchy bar/tilde/hat) over
// or under a base, including character-escape forms like \`{o}.
type Accent struct {
	Base     Node
	Accent   rune
	Above    bool
	Stretchy bool
	Pos      int
}

func (*Accent) isNode() {}

// OverUnder is \overline or \underline: a rule spanning the full width of
// Base, as opposed to Accent's single combining-mark glyph.
type OverUnder struct {
	Base  Node
	Above bool
	Pos   int
}

func (*OverUnder) isNode() {}

// Delimited is \left ... \right, optionally with one or more \middle
// delimiters splitting the body into segments. Open/Close are 0 for "."
// (an invisible delimiter). len(Segments) == len(Middle)+1.
type Delimited struct {
	Open     rune
	Segments []Node
	Middle   []rune
	Close    rune
	Pos      int
}

func (*Delimited) isNode() {}

// Array is a matrix/array/aligned-style environment: a grid of cells with
// a column specification and optional augmentation rules.
type Array struct {
	Environment string
	Columns     []ColumnSpec
	Rows        [][]Node
	Pos         int
}

func (*Array) isNode() {}

// ColumnSpec is one column of an array's column specification (l/c/r,
// optionally followed by vertical rules and @{...} literal separators).
type ColumnSpec struct {
	Align      ColumnAlign
	RuleBefore int // number of vertical rules immediately before this column
	RuleAfter  int // number of vertical rules immediately after this column
	Literal    Node
}

type ColumnAlign int

const (
	ColumnLeft ColumnAlign = iota
	ColumnCenter
	ColumnRight
)

// Style switches the ambient math style (\displaystyle, \textstyle,
// \scriptstyle, \scriptscriptstyle) for its Body.
type Style struct {
	Level MathLevel
	Body  Node
	Pos   int
}

func (*Style) isNode() {}

// MathLevel names one of the four TeX style levels, independent of
// cramping (cramping is derived structurally during layout, not parsed).
type MathLevel int

const (
	LevelDisplay MathLevel = iota
	LevelText
	LevelScript
	LevelScriptScript
)

// AtomChange overrides the atom class the layout engine would otherwise
// infer for Body (\mathbin, \mathrel, \mathord, \mathopen, \mathclose,
// \mathpunct, \mathinner).
type AtomChange struct {
	Class symbols.Class
	Body  Node
	Pos   int
}

func (*AtomChange) isNode() {}

// Rule is an explicit rectangle with Height above the baseline and Depth
// below it. No command produces it; layout handles it when a tree is built
// directly. Fraction bars are drawn as their own rule frames, not as Rule.
type Rule struct {
	Width, Height, Depth float64 // in em
	Pos                  int
}

func (*Rule) isNode() {}

// Kerning is an explicit fixed space (\, \: \; \quad \qquad \!).
type Kerning struct {
	Amount float64 // in em, negative for \!
	Pos    int
}

func (*Kerning) isNode() {}

// Color wraps Body in a color change for rendering; it is transparent to
// inter-atom spacing (the spacing pass looks through it to Body's class).
type Color struct {
	Name string
	Body Node
	Pos  int
}

func (*Color) isNode() {}

// Extend is a reference to a symbol from a caller-supplied substitution
// table (WithUserSymbols), as opposed to Symbol's built-in table lookup.
// This is the one macro-like facility this package supports; anything
// beyond a name-to-codepoint alias is out of scope.
type Extend struct {
	Name  string
	Rune  rune
	Class symbols.Class
	Pos   int
}

func (*Extend) isNode() {}
