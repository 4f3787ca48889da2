// Package font implements the Font Context: a thin, read-only adapter
// around a parsed OpenType font that the layout engine queries for glyph
// metrics and MATH table constants. It loads font files via
// go-text/typesetting and exposes only what math layout needs; family
// discovery, subsetting and embedding belong to a document compiler, not
// to formula layout, and are not implemented here.
package font

import (
	"fmt"

	"github.com/go-text/typesetting/font"

	"github.com/texmath/texmath/layout"
)

// Font represents a loaded font with metadata.
type Font struct {
	// face is the underlying font face for text shaping.
	face *font.Face

	// Info contains font metadata (family, style, weight, etc.).
	Info FontInfo

	// Path is the filesystem path where the font was loaded from.
	// Empty for embedded fonts.
	Path string

	// Index is the face index within a font collection (TTC).
	// Zero for single-face fonts (TTF/OTF).
	Index int

	// RawData stores the original font file bytes for subsetting.
	// The faces of a TTC collection share one copy of the data.
	RawData []byte

	mathTable *Table
	mathErr   error
}

// GlyphIndex resolves a Unicode codepoint to this font's glyph index,
// per the font's cmap. Returns ok=false if the font has no glyph for r.
func (f *Font) GlyphIndex(r rune) (uint16, bool) {
	if f.face == nil {
		return 0, false
	}
	gid, ok := f.face.NominalGlyph(r)
	return uint16(gid), ok
}

// UnitsPerEm returns the font's design grid resolution (the "head" table's
// unitsPerEm field).
func (f *Font) UnitsPerEm() int {
	if f.face == nil {
		return 1000
	}
	return int(f.face.Upem())
}

// Advance returns a glyph's horizontal advance at the given font size.
func (f *Font) Advance(gid uint16, fontSize layout.Abs) layout.Abs {
	if f.face == nil {
		return 0
	}
	upm := float64(f.UnitsPerEm())
	adv := f.face.HorizontalAdvance(font.GID(gid))
	return layout.Abs(float64(adv) / upm * float64(fontSize))
}

// Extents returns a glyph's ascent (above baseline) and descent (below
// baseline, positive downward) at the given font size, read from the
// glyph's bounding box.
func (f *Font) Extents(gid uint16, fontSize layout.Abs) (ascent, descent layout.Abs) {
	if f.face == nil {
		return 0, 0
	}
	ext, ok := f.face.GlyphExtents(font.GID(gid))
	if !ok {
		return 0, 0
	}
	upm := float64(f.UnitsPerEm())
	ascent = layout.Abs(float64(ext.YBearing) / upm * float64(fontSize))
	descent = layout.Abs(float64(-ext.YBearing-ext.Height) / upm * float64(fontSize))
	return ascent, descent
}

// Family returns the font family name.
func (f *Font) Family() string {
	return f.Info.Family
}

// Style returns the font style as an integer (0=normal, 1=italic, 2=oblique).
func (f *Font) Style() Style {
	return f.Info.Style
}

// Weight returns the font weight (100-900).
func (f *Font) Weight() int {
	return int(f.Info.Weight)
}

// Face returns the underlying font face for text shaping.
func (f *Font) Face() *font.Face {
	return f.face
}

// FontInfo contains metadata about a font.
type FontInfo struct {
	// Family is the font family name (e.g., "Arial", "Times New Roman").
	Family string

	// FullName is the full font name including style.
	FullName string

	// Style is the font style (normal, italic, oblique).
	Style Style

	// Weight is the font weight (100-900).
	Weight Weight

	// Stretch is the font stretch/width.
	Stretch Stretch
}

// String describes the font for error messages: family plus the
// style/weight/stretch triple a caller would need to pick a different
// font file (e.g. after a MissingMathConstantError).
func (fi FontInfo) String() string {
	name := fi.Family
	if name == "" {
		name = "unknown font"
	}
	return fmt.Sprintf("%s (%s, %s, %s)", name, fi.Style, fi.Weight, fi.Stretch)
}

// Style represents font style.
type Style uint8

const (
	StyleNormal  Style = iota // Upright
	StyleItalic               // Italic
	StyleOblique              // Oblique (slanted)
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleItalic:
		return "italic"
	case StyleOblique:
		return "oblique"
	default:
		return "unknown"
	}
}

// Weight represents font weight on a scale of 100-900.
type Weight int

const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

func (w Weight) String() string {
	switch {
	case w <= 100:
		return "thin"
	case w <= 200:
		return "extra-light"
	case w <= 300:
		return "light"
	case w <= 400:
		return "normal"
	case w <= 500:
		return "medium"
	case w <= 600:
		return "semi-bold"
	case w <= 700:
		return "bold"
	case w <= 800:
		return "extra-bold"
	default:
		return "black"
	}
}

// Stretch represents font width/stretch.
type Stretch float32

const (
	StretchUltraCondensed Stretch = 0.5
	StretchExtraCondensed Stretch = 0.625
	StretchCondensed      Stretch = 0.75
	StretchSemiCondensed  Stretch = 0.875
	StretchNormal         Stretch = 1.0
	StretchSemiExpanded   Stretch = 1.125
	StretchExpanded       Stretch = 1.25
	StretchExtraExpanded  Stretch = 1.5
	StretchUltraExpanded  Stretch = 2.0
)

func (s Stretch) String() string {
	switch {
	case s <= 0.5:
		return "ultra-condensed"
	case s <= 0.625:
		return "extra-condensed"
	case s <= 0.75:
		return "condensed"
	case s <= 0.875:
		return "semi-condensed"
	case s <= 1.0:
		return "normal"
	case s <= 1.125:
		return "semi-expanded"
	case s <= 1.25:
		return "expanded"
	case s <= 1.5:
		return "extra-expanded"
	default:
		return "ultra-expanded"
	}
}


