package parse

import (
	"testing"

	"github.com/texmath/texmath/symbols"
)

func mustParse(t *testing.T, src string) []Node {
	t.Helper()
	nodes, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return nodes
}

func TestParseLiteralDigitsAndOperators(t *testing.T) {
	nodes := mustParse(t, "1+2")
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(nodes))
	}
	sym, ok := nodes[1].(*Symbol)
	if !ok || sym.Class != symbols.ClassBin {
		t.Errorf("'+' should parse as ClassBin, got %#v", nodes[1])
	}
}

func TestParseLeadingBinaryStaysBin(t *testing.T) {
	// Bin-to-Ord retraction is a layout concern, not a parse concern: the
	// parser always reports the literal class of '+'.
	nodes := mustParse(t, "+2")
	sym, ok := nodes[0].(*Symbol)
	if !ok || sym.Class != symbols.ClassBin {
		t.Errorf("leading '+' should still parse as ClassBin, got %#v", nodes[0])
	}
}

func TestParseFrac(t *testing.T) {
	nodes := mustParse(t, `\frac12`)
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
	frac, ok := nodes[0].(*GenFraction)
	if !ok {
		t.Fatalf("expected *GenFraction, got %#v", nodes[0])
	}
	num, ok := frac.Numerator.(*Symbol)
	if !ok || num.Rune != '1' {
		t.Errorf("numerator = %#v, want digit 1", frac.Numerator)
	}
	den, ok := frac.Denominator.(*Symbol)
	if !ok || den.Rune != '2' {
		t.Errorf("denominator = %#v, want digit 2", frac.Denominator)
	}
}

func TestParseNestedScripts(t *testing.T) {
	nodes := mustParse(t, "x_a^b")
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
	scripts, ok := nodes[0].(*Scripts)
	if !ok {
		t.Fatalf("expected *Scripts, got %#v", nodes[0])
	}
	if scripts.Sub == nil || scripts.Sup == nil {
		t.Fatalf("expected both sub and sup set, got %#v", scripts)
	}
}

func TestParseDoubleSubscriptErrors(t *testing.T) {
	_, err := Parse("x_a_b")
	if err == nil {
		t.Fatal("expected error for double subscript")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != UnexpectedToken {
		t.Errorf("got %v, want UnexpectedToken", err)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse(`\notacommand`)
	if err == nil {
		t.Fatal("expected error")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != UnknownCommand {
		t.Errorf("got %v, want UnknownCommand", err)
	}
}

func TestParseColorWraps(t *testing.T) {
	nodes := mustParse(t, `\color{red}{a}+b`)
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(nodes))
	}
	col, ok := nodes[0].(*Color)
	if !ok || col.Name != "red" {
		t.Fatalf("expected *Color named red, got %#v", nodes[0])
	}
}

func TestParseLeftRight(t *testing.T) {
	nodes := mustParse(t, `\left(x\right)`)
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
	d, ok := nodes[0].(*Delimited)
	if !ok {
		t.Fatalf("expected *Delimited, got %#v", nodes[0])
	}
	if d.Open != '(' || d.Close != ')' {
		t.Errorf("delimiters = %q %q, want ( )", d.Open, d.Close)
	}
}

func TestParseUnmatchedLeft(t *testing.T) {
	_, err := Parse(`\left(x`)
	if err == nil {
		t.Fatal("expected error")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != UnmatchedDelimiter {
		t.Errorf("got %v, want UnmatchedDelimiter", err)
	}
}

func TestParseMatrixEnvironment(t *testing.T) {
	nodes := mustParse(t, `\begin{pmatrix}1&2\\3&4\end{pmatrix}`)
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
	delim, ok := nodes[0].(*Delimited)
	if !ok {
		t.Fatalf("expected *Delimited wrapping pmatrix, got %#v", nodes[0])
	}
	if len(delim.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(delim.Segments))
	}
	arr, ok := delim.Segments[0].(*Array)
	if !ok {
		t.Fatalf("expected *Array body, got %#v", delim.Segments[0])
	}
	if len(arr.Rows) != 2 || len(arr.Rows[0]) != 2 {
		t.Fatalf("got %d rows, want 2x2: %#v", len(arr.Rows), arr.Rows)
	}
}

func TestParseSubstack(t *testing.T) {
	nodes := mustParse(t, `\begin{substack}i<n\\j<m\end{substack}`)
	arr, ok := nodes[0].(*Array)
	if !ok {
		t.Fatalf("expected *Array, got %#v", nodes[0])
	}
	if len(arr.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(arr.Rows))
	}
}

func TestParseEnvironmentMismatch(t *testing.T) {
	_, err := Parse(`\begin{matrix}1&2\end{pmatrix}`)
	if err == nil {
		t.Fatal("expected error")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != NoSuchEnvironment {
		t.Errorf("got %v, want NoSuchEnvironment", err)
	}
}

func TestParseArrayColumnCountMismatch(t *testing.T) {
	_, err := Parse(`\begin{array}{cc}1&2&3\end{array}`)
	if err == nil {
		t.Fatal("expected error")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != WrongColumnCount {
		t.Errorf("got %v, want WrongColumnCount", err)
	}
}

func TestParseTextRun(t *testing.T) {
	nodes := mustParse(t, `\text{hello world}`)
	pt, ok := nodes[0].(*PlainText)
	if !ok || pt.Text != "hello world" {
		t.Fatalf("got %#v, want PlainText(\"hello world\")", nodes[0])
	}
}

func TestParseMathbfAppliesSubstitution(t *testing.T) {
	nodes := mustParse(t, `\mathbf{A}`)
	grp, ok := nodes[0].(*Group)
	if !ok || len(grp.Children) != 1 {
		t.Fatalf("expected single-child group, got %#v", nodes[0])
	}
	sym, ok := grp.Children[0].(*Symbol)
	if !ok || sym.Rune != 0x1D400 {
		t.Fatalf("expected bold A (U+1D400), got %#v", grp.Children[0])
	}
}

func TestParseLimitsOverride(t *testing.T) {
	nodes := mustParse(t, `\sum\limits_0^n`)
	scripts, ok := nodes[0].(*Scripts)
	if !ok {
		t.Fatalf("expected *Scripts, got %#v", nodes[0])
	}
	if scripts.Limits != LimitsOn {
		t.Errorf("Limits = %v, want LimitsOn", scripts.Limits)
	}
}

func TestParsePrimes(t *testing.T) {
	nodes := mustParse(t, "f''")
	scripts, ok := nodes[0].(*Scripts)
	if !ok {
		t.Fatalf("expected *Scripts, got %#v", nodes[0])
	}
	grp, ok := scripts.Sup.(*Group)
	if !ok || len(grp.Children) != 2 {
		t.Fatalf("expected two primes grouped, got %#v", scripts.Sup)
	}
}

func TestParseOverlineUnderline(t *testing.T) {
	nodes := mustParse(t, `\overline{x}\underline{y}`)
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	over, ok := nodes[0].(*OverUnder)
	if !ok || !over.Above {
		t.Fatalf("expected above OverUnder, got %#v", nodes[0])
	}
	under, ok := nodes[1].(*OverUnder)
	if !ok || under.Above {
		t.Fatalf("expected below OverUnder, got %#v", nodes[1])
	}
}

func TestParseUserSymbols(t *testing.T) {
	syms := map[string]symbols.Symbol{
		"myalpha": {Name: "myalpha", Rune: 'α', Class: symbols.ClassAlpha},
	}
	nodes, err := Parse(`\myalpha+1`, WithUserSymbols(syms))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ext, ok := nodes[0].(*Extend)
	if !ok || ext.Rune != 'α' || ext.Name != "myalpha" {
		t.Fatalf("expected *Extend(myalpha), got %#v", nodes[0])
	}
}
