package math

import (
	"github.com/texmath/texmath/font"
	"github.com/texmath/texmath/layout"
)

// Abs is an alias for layout.Abs for convenience within this package.
type Abs = layout.Abs

// Em is an alias for layout.Em for convenience within this package.
type Em = layout.Em

// Level names one of TeX's four math styles, independent of cramping.
type Level int

const (
	Display Level = iota
	Text
	Script
	ScriptScript
)

// Style is a TeX math style: one of the four levels, plus whether it is
// cramped (superscripts are raised less in a cramped style, as inside a
// square root or beneath a fraction bar).
type Style struct {
	Level   Level
	Cramped bool
}

// Sup returns the style an attached superscript lays out in.
func (s Style) Sup() Style {
	switch s.Level {
	case Display, Text:
		return Style{Level: Script, Cramped: s.Cramped}
	default:
		return Style{Level: ScriptScript, Cramped: s.Cramped}
	}
}

// Sub returns the style an attached subscript lays out in; subscripts are
// always cramped regardless of the base style's cramping.
func (s Style) Sub() Style {
	st := s.Sup()
	st.Cramped = true
	return st
}

// Numerator returns the style a fraction's numerator lays out in.
func (s Style) Numerator() Style {
	switch s.Level {
	case Display:
		return Style{Level: Text, Cramped: s.Cramped}
	case Text:
		return Style{Level: Script, Cramped: s.Cramped}
	default:
		return Style{Level: ScriptScript, Cramped: s.Cramped}
	}
}

// Denominator returns the style a fraction's denominator lays out in; it
// is always cramped, per the TeXbook's fraction rule.
func (s Style) Denominator() Style {
	st := s.Numerator()
	st.Cramped = true
	return st
}

// Cramp returns the cramped variant of s (used under radicals and
// accents, where the base is laid out cramped).
func (s Style) Cramp() Style {
	return Style{Level: s.Level, Cramped: true}
}

// IsDisplay reports whether s is (cramped or uncramped) display style.
func (s Style) IsDisplay() bool {
	return s.Level == Display
}

// IsScriptOrSmaller reports whether s is script or scriptscript (used by
// spacingBetween, which keeps only thin spaces in those styles).
func (s Style) IsScriptOrSmaller() bool {
	return s.Level == Script || s.Level == ScriptScript
}

// FontScale returns the fraction of the text font size this style renders
// at, matching the MATH table's ScriptPercentScaleDown /
// ScriptScriptPercentScaleDown when available.
func (s Style) FontScale(c *font.MathConstants) float64 {
	switch s.Level {
	case Display, Text:
		return 1.0
	case Script:
		if c.ScriptPercentScaleDown > 0 {
			return c.ScriptPercentScaleDown
		}
		return 0.7
	default:
		if c.ScriptScriptPercentScaleDown > 0 {
			return c.ScriptScriptPercentScaleDown
		}
		return 0.5
	}
}

// Context carries the font, text size and current style through a layout
// pass. It is immutable from a caller's perspective: Derive returns a
// fresh copy with Style replaced, so a parent never sees a child's style
// change leak back into it.
type Context struct {
	Font     *font.Font
	Table    *font.Table
	FontSize Abs // the document's base text size; the style determines the active size
	Style    Style
}

// NewContext builds a root Context at display style, uncramped.
func NewContext(f *font.Font, fontSize Abs) (*Context, error) {
	table, err := f.Math()
	if err != nil {
		return nil, err
	}
	return &Context{Font: f, Table: table, FontSize: fontSize, Style: Style{Level: Display}}, nil
}

// Size returns the concrete font size this context's style renders at.
func (c *Context) Size() Abs {
	return Abs(float64(c.FontSize) * c.Style.FontScale(&c.Table.Constants))
}

// Derive returns a copy of c with Style replaced.
func (c *Context) Derive(style Style) *Context {
	cp := *c
	cp.Style = style
	return &cp
}

// Glyph resolves r to a glyph ID via the context's font, reporting
// whether the font carries a mapping for it.
func (c *Context) Glyph(r rune) (uint16, bool) {
	return c.Font.GlyphIndex(r)
}

// Constants returns the active font's MATH constants.
func (c *Context) Constants() *font.MathConstants {
	return &c.Table.Constants
}
