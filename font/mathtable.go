package font

import (
	"encoding/binary"
	"fmt"

	"github.com/go-text/typesetting/font/opentype"

	"github.com/texmath/texmath/layout"
)

// mathTag is the four-byte OpenType table tag "MATH".
var mathTag = opentype.MustNewTag("MATH")

// MissingMathConstantError reports that a font carries no (usable) MATH
// table, so none of its math layout constants can be resolved. Per the
// layout engine's error contract this is always a hard failure: there is
// no silent fallback to zero.
type MissingMathConstantError struct {
	Font string
}

func (e *MissingMathConstantError) Error() string {
	if e.Font == "" {
		return "font carries no MATH table"
	}
	return fmt.Sprintf("font %q carries no MATH table", e.Font)
}

// MathConstants holds the OpenType MATH table's MathConstants subtable,
// resolved into em-relative values. Field names match the subtable's
// field names in the OpenType specification.
type MathConstants struct {
	ScriptPercentScaleDown             float64
	ScriptScriptPercentScaleDown       float64
	DelimitedSubFormulaMinHeight       layout.Em
	DisplayOperatorMinHeight           layout.Em
	MathLeading                        layout.Em
	AxisHeight                         layout.Em
	AccentBaseHeight                   layout.Em
	FlattenedAccentBaseHeight          layout.Em
	SubscriptShiftDown                 layout.Em
	SubscriptTopMax                    layout.Em
	SubscriptBaselineDropMin           layout.Em
	SuperscriptShiftUp                 layout.Em
	SuperscriptShiftUpCramped          layout.Em
	SuperscriptBottomMin               layout.Em
	SuperscriptBaselineDropMax         layout.Em
	SubSuperscriptGapMin               layout.Em
	SuperscriptBottomMaxWithSubscript  layout.Em
	SpaceAfterScript                   layout.Em
	UpperLimitGapMin                   layout.Em
	UpperLimitBaselineRiseMin          layout.Em
	LowerLimitGapMin                   layout.Em
	LowerLimitBaselineDropMin          layout.Em
	StackTopShiftUp                    layout.Em
	StackTopDisplayStyleShiftUp        layout.Em
	StackBottomShiftDown               layout.Em
	StackBottomDisplayStyleShiftDown   layout.Em
	StackGapMin                        layout.Em
	StackDisplayStyleGapMin            layout.Em
	StretchStackTopShiftUp             layout.Em
	StretchStackBottomShiftDown        layout.Em
	StretchStackGapAboveMin            layout.Em
	StretchStackGapBelowMin            layout.Em
	FractionNumeratorShiftUp           layout.Em
	FractionNumeratorDisplayStyleShiftUp layout.Em
	FractionDenominatorShiftDown       layout.Em
	FractionDenominatorDisplayStyleShiftDown layout.Em
	FractionNumeratorGapMin            layout.Em
	FractionNumDisplayStyleGapMin      layout.Em
	FractionRuleThickness              layout.Em
	FractionDenominatorGapMin          layout.Em
	FractionDenomDisplayStyleGapMin    layout.Em
	SkewedFractionHorizontalGap        layout.Em
	SkewedFractionVerticalGap          layout.Em
	OverbarVerticalGap                 layout.Em
	OverbarRuleThickness               layout.Em
	OverbarExtraAscender               layout.Em
	UnderbarVerticalGap                layout.Em
	UnderbarRuleThickness              layout.Em
	UnderbarExtraDescender             layout.Em
	RadicalVerticalGap                 layout.Em
	RadicalDisplayStyleVerticalGap     layout.Em
	RadicalRuleThickness               layout.Em
	RadicalExtraAscender               layout.Em
	RadicalKernBeforeDegree            layout.Em
	RadicalKernAfterDegree             layout.Em
	RadicalDegreeBottomRaisePercent    float64

	// ArrayColumnSep and ArrayRowSep have no OpenType MATH equivalent;
	// they are fixed em values in the absence of a standardized source,
	// matching common LaTeX defaults (5pt / 12pt at 10pt text size).
	ArrayColumnSep layout.Em
	ArrayRowSep    layout.Em
}

// Corner identifies which corner of a glyph's bounding box a math kern
// value applies to.
type Corner int

const (
	CornerTopRight Corner = iota
	CornerTopLeft
	CornerBottomRight
	CornerBottomLeft
)

// Inv returns the corner on the opposite side horizontally, which is what
// an attaching script looks up on itself (a superscript's top-left kern
// profile meets the base's top-right profile).
func (c Corner) Inv() Corner {
	switch c {
	case CornerTopRight:
		return CornerTopLeft
	case CornerTopLeft:
		return CornerTopRight
	case CornerBottomRight:
		return CornerBottomLeft
	default:
		return CornerBottomRight
	}
}

// GlyphVariant is one entry in a glyph's stretchy-variant chain.
type GlyphVariant struct {
	GlyphID uint16
	Advance layout.Em
}

// GlyphPart is one piece of an extensible glyph assembly (a stack of
// top/extender/middle/bottom pieces used to build arbitrarily tall/wide
// delimiters, radicals and stretchy accents).
type GlyphPart struct {
	GlyphID        uint16
	StartConnector layout.Em
	EndConnector   layout.Em
	FullAdvance    layout.Em
	Extender       bool
}

type mathValueRecord struct {
	Value  int16
	Offset uint16
}

func (v mathValueRecord) em(unitsPerEm int) layout.Em {
	if unitsPerEm == 0 {
		return 0
	}
	return layout.Em(float64(v.Value) / float64(unitsPerEm))
}

// mathTableReader parses the subset of the OpenType MATH table this
// module needs: MathConstants in full, plus coverage-indexed italics
// correction, top accent attachment, kerning and stretchy variant/
// assembly data from MathGlyphInfo and MathVariants.
type mathTableReader struct {
	data []byte
}

func newMathTableReader(data []byte) *mathTableReader {
	return &mathTableReader{data: data}
}

func (r *mathTableReader) u16(off int) uint16 {
	if off+2 > len(r.data) {
		return 0
	}
	return binary.BigEndian.Uint16(r.data[off:])
}

func (r *mathTableReader) i16(off int) int16 {
	return int16(r.u16(off))
}

func (r *mathTableReader) mvr(off int) mathValueRecord {
	return mathValueRecord{Value: r.i16(off), Offset: r.u16(off + 2)}
}

// parseConstants reads the MathConstants subtable. Its layout is fixed by
// the OpenType specification: two int16 percentages, two UFWORDs, then 51
// MathValueRecords, then a trailing int16 percentage.
func (r *mathTableReader) parseConstants(base int, unitsPerEm int) MathConstants {
	em := func(off int) layout.Em { return r.mvr(base + off).em(unitsPerEm) }

	var c MathConstants
	c.ScriptPercentScaleDown = float64(r.i16(base+0)) / 100
	c.ScriptScriptPercentScaleDown = float64(r.i16(base+2)) / 100
	c.DelimitedSubFormulaMinHeight = layout.Em(float64(r.i16(base+4)) / float64(unitsPerEm))
	c.DisplayOperatorMinHeight = layout.Em(float64(r.i16(base+6)) / float64(unitsPerEm))

	off := base + 8
	next := func() layout.Em {
		v := r.mvr(off).em(unitsPerEm)
		off += 4
		return v
	}
	c.MathLeading = next()
	c.AxisHeight = next()
	c.AccentBaseHeight = next()
	c.FlattenedAccentBaseHeight = next()
	c.SubscriptShiftDown = next()
	c.SubscriptTopMax = next()
	c.SubscriptBaselineDropMin = next()
	c.SuperscriptShiftUp = next()
	c.SuperscriptShiftUpCramped = next()
	c.SuperscriptBottomMin = next()
	c.SuperscriptBaselineDropMax = next()
	c.SubSuperscriptGapMin = next()
	c.SuperscriptBottomMaxWithSubscript = next()
	c.SpaceAfterScript = next()
	c.UpperLimitGapMin = next()
	c.UpperLimitBaselineRiseMin = next()
	c.LowerLimitGapMin = next()
	c.LowerLimitBaselineDropMin = next()
	c.StackTopShiftUp = next()
	c.StackTopDisplayStyleShiftUp = next()
	c.StackBottomShiftDown = next()
	c.StackBottomDisplayStyleShiftDown = next()
	c.StackGapMin = next()
	c.StackDisplayStyleGapMin = next()
	c.StretchStackTopShiftUp = next()
	c.StretchStackBottomShiftDown = next()
	c.StretchStackGapAboveMin = next()
	c.StretchStackGapBelowMin = next()
	c.FractionNumeratorShiftUp = next()
	c.FractionNumeratorDisplayStyleShiftUp = next()
	c.FractionDenominatorShiftDown = next()
	c.FractionDenominatorDisplayStyleShiftDown = next()
	c.FractionNumeratorGapMin = next()
	c.FractionNumDisplayStyleGapMin = next()
	c.FractionRuleThickness = next()
	c.FractionDenominatorGapMin = next()
	c.FractionDenomDisplayStyleGapMin = next()
	c.SkewedFractionHorizontalGap = next()
	c.SkewedFractionVerticalGap = next()
	c.OverbarVerticalGap = next()
	c.OverbarRuleThickness = next()
	c.OverbarExtraAscender = next()
	c.UnderbarVerticalGap = next()
	c.UnderbarRuleThickness = next()
	c.UnderbarExtraDescender = next()
	c.RadicalVerticalGap = next()
	c.RadicalDisplayStyleVerticalGap = next()
	c.RadicalRuleThickness = next()
	c.RadicalExtraAscender = next()
	c.RadicalKernBeforeDegree = next()
	c.RadicalKernAfterDegree = next()
	c.RadicalDegreeBottomRaisePercent = float64(r.i16(off)) / 100

	c.ArrayColumnSep = layout.Em(0.5)
	c.ArrayRowSep = layout.Em(1.2)
	_ = em
	return c
}

// coverage parses an OpenType coverage table (format 1 glyph list or
// format 2 range list) into glyph ID -> coverage index.
func (r *mathTableReader) coverage(off int) map[uint16]int {
	out := map[uint16]int{}
	if off <= 0 {
		return out
	}
	format := r.u16(off)
	switch format {
	case 1:
		count := int(r.u16(off + 2))
		for i := 0; i < count; i++ {
			gid := r.u16(off + 4 + i*2)
			out[gid] = i
		}
	case 2:
		count := int(r.u16(off + 2))
		for i := 0; i < count; i++ {
			rec := off + 4 + i*6
			start := r.u16(rec)
			end := r.u16(rec + 2)
			startIdx := int(r.u16(rec + 4))
			for g := start; g <= end; g++ {
				out[g] = startIdx + int(g-start)
				if g == 0xFFFF {
					break
				}
			}
		}
	}
	return out
}

// Table is the parsed, glyph-indexed view of a font's MATH table used by
// the layout engine at render time.
type Table struct {
	unitsPerEm int
	Constants  MathConstants

	italics       map[uint16]layout.Em
	topAccent     map[uint16]layout.Em
	vertVariants  map[uint16][]GlyphVariant
	horizVariants map[uint16][]GlyphVariant
	vertAssembly  map[uint16][]GlyphPart
	horizAssembly map[uint16][]GlyphPart
	kerns         map[uint16][4][]kernPair
}

type kernPair struct {
	height layout.Em
	kern   layout.Em
}

// ItalicsCorrection returns the glyph's italic correction, used to shift
// following scripts and to adjust fraction/limit widths.
func (t *Table) ItalicsCorrection(gid uint16) layout.Em {
	return t.italics[gid]
}

// TopAccentAttachment returns the horizontal position (from the glyph's
// left edge) where an accent glyph should be centered over this glyph.
// The bool reports whether the font specifies one explicitly.
func (t *Table) TopAccentAttachment(gid uint16) (layout.Em, bool) {
	v, ok := t.topAccent[gid]
	return v, ok
}

// Variants returns the stretchy-variant chain for a glyph along the given
// axis, smallest first, as published by the font's MathVariants subtable.
func (t *Table) Variants(gid uint16, vertical bool) []GlyphVariant {
	if vertical {
		return t.vertVariants[gid]
	}
	return t.horizVariants[gid]
}

// Assembly returns the glyph-assembly recipe (a stack of parts) for
// building an arbitrarily sized version of gid along the given axis.
func (t *Table) Assembly(gid uint16, vertical bool) []GlyphPart {
	if vertical {
		return t.vertAssembly[gid]
	}
	return t.horizAssembly[gid]
}

// KernAtHeight returns the math kern correction for gid at the given
// corner and correction height from the MathKernInfo table, as a step
// function: the kern of the first entry whose height is at or above the
// given height, else the last entry's kern. Values are not interpolated.
func (t *Table) KernAtHeight(gid uint16, corner Corner, height layout.Em) layout.Em {
	pairs := t.kerns[gid][corner]
	if len(pairs) == 0 {
		return 0
	}
	for _, p := range pairs {
		if height <= p.height {
			return p.kern
		}
	}
	return pairs[len(pairs)-1].kern
}

func (t *Table) glyphVariants(r *mathTableReader, off int, unitsPerEm int) []GlyphVariant {
	if off <= 0 {
		return nil
	}
	count := int(r.u16(off))
	out := make([]GlyphVariant, 0, count)
	for i := 0; i < count; i++ {
		rec := off + 2 + i*4
		gid := r.u16(rec)
		adv := r.u16(rec + 2)
		out = append(out, GlyphVariant{GlyphID: gid, Advance: layout.Em(float64(adv) / float64(unitsPerEm))})
	}
	return out
}

func (t *Table) glyphAssembly(r *mathTableReader, constructionOff int, unitsPerEm int) []GlyphPart {
	if constructionOff <= 0 {
		return nil
	}
	assemblyOff := int(r.u16(constructionOff))
	if assemblyOff <= 0 {
		return nil
	}
	assemblyOff += constructionOff
	partCount := int(r.u16(assemblyOff + 4))
	parts := make([]GlyphPart, 0, partCount)
	for i := 0; i < partCount; i++ {
		rec := assemblyOff + 6 + i*10
		gid := r.u16(rec)
		startConn := r.u16(rec + 2)
		endConn := r.u16(rec + 4)
		fullAdv := r.u16(rec + 6)
		flags := r.u16(rec + 8)
		parts = append(parts, GlyphPart{
			GlyphID:        gid,
			StartConnector: layout.Em(float64(startConn) / float64(unitsPerEm)),
			EndConnector:   layout.Em(float64(endConn) / float64(unitsPerEm)),
			FullAdvance:    layout.Em(float64(fullAdv) / float64(unitsPerEm)),
			Extender:       flags&0x1 != 0,
		})
	}
	return parts
}

// ParseMATH parses the raw bytes of a font's "MATH" table. unitsPerEm must
// be the font's head.unitsPerEm.
func ParseMATH(data []byte, unitsPerEm int) (*Table, error) {
	if len(data) < 6 {
		return nil, &MissingMathConstantError{}
	}
	r := newMathTableReader(data)
	constOff := int(r.u16(4))
	glyphInfoOff := int(r.u16(6))
	variantsOff := int(r.u16(8))
	if constOff <= 0 {
		return nil, &MissingMathConstantError{}
	}

	t := &Table{
		unitsPerEm:    unitsPerEm,
		Constants:     r.parseConstants(constOff, unitsPerEm),
		italics:       map[uint16]layout.Em{},
		topAccent:     map[uint16]layout.Em{},
		vertVariants:  map[uint16][]GlyphVariant{},
		horizVariants: map[uint16][]GlyphVariant{},
		vertAssembly:  map[uint16][]GlyphPart{},
		horizAssembly: map[uint16][]GlyphPart{},
		kerns:         map[uint16][4][]kernPair{},
	}

	if glyphInfoOff > 0 {
		t.parseGlyphInfo(r, glyphInfoOff, unitsPerEm)
	}
	if variantsOff > 0 {
		t.parseVariants(r, variantsOff, unitsPerEm)
	}
	return t, nil
}

func (t *Table) parseGlyphInfo(r *mathTableReader, off int, unitsPerEm int) {
	italicsOff := int(r.u16(off))
	topAccentOff := int(r.u16(off + 2))
	// ExtendedShapeCoverage at off+4 is informational only, not consumed.
	kernInfoOff := int(r.u16(off + 6))

	if italicsOff > 0 {
		base := off + italicsOff
		cov := r.coverage(base + int(r.u16(base)))
		count := int(r.u16(base + 2))
		for gid, idx := range cov {
			if idx < count {
				t.italics[gid] = r.mvr(base + 4 + idx*4).em(unitsPerEm)
			}
		}
	}
	if topAccentOff > 0 {
		base := off + topAccentOff
		cov := r.coverage(base + int(r.u16(base)))
		count := int(r.u16(base + 2))
		for gid, idx := range cov {
			if idx < count {
				t.topAccent[gid] = r.mvr(base + 4 + idx*4).em(unitsPerEm)
			}
		}
	}
	if kernInfoOff > 0 {
		base := off + kernInfoOff
		cov := r.coverage(base + int(r.u16(base)))
		count := int(r.u16(base + 2))
		for gid, idx := range cov {
			if idx >= count {
				continue
			}
			recOff := base + 4 + idx*8
			var entry [4][]kernPair
			for c := 0; c < 4; c++ {
				kernTableOff := int(r.u16(recOff + c*2))
				if kernTableOff <= 0 {
					continue
				}
				kt := base + kernTableOff
				heightCount := int(r.u16(kt))
				heightsOff := kt + 2
				kernsOff := heightsOff + heightCount*4
				pairs := make([]kernPair, 0, heightCount+1)
				for i := 0; i < heightCount; i++ {
					h := r.mvr(heightsOff + i*4).em(unitsPerEm)
					k := r.mvr(kernsOff + i*4).em(unitsPerEm)
					pairs = append(pairs, kernPair{height: h, kern: k})
				}
				pairs = append(pairs, kernPair{height: 1 << 30, kern: r.mvr(kernsOff + heightCount*4).em(unitsPerEm)})
				entry[c] = pairs
			}
			t.kerns[gid] = entry
		}
	}
}

func (t *Table) parseVariants(r *mathTableReader, off int, unitsPerEm int) {
	vertCovOff := int(r.u16(off + 2))
	horizCovOff := int(r.u16(off + 4))
	vertCount := int(r.u16(off + 6))
	horizCount := int(r.u16(off + 8))
	recordsOff := off + 10

	vertCov := r.coverage(off + vertCovOff)
	horizCov := r.coverage(off + horizCovOff)

	for gid, idx := range vertCov {
		if idx >= vertCount {
			continue
		}
		constructionOff := int(r.u16(recordsOff + idx*2))
		if constructionOff <= 0 {
			continue
		}
		base := off + constructionOff
		glyphAssemblyOff := int(r.u16(base))
		variantCount := int(r.u16(base + 2))
		t.vertVariants[gid] = t.glyphVariants(r, base+2, unitsPerEm)
		if glyphAssemblyOff > 0 {
			t.vertAssembly[gid] = t.glyphAssembly(r, base, unitsPerEm)
		}
		_ = variantCount
	}
	for gid, idx := range horizCov {
		if idx >= horizCount {
			continue
		}
		constructionOff := int(r.u16(recordsOff + (vertCount+idx)*2))
		if constructionOff <= 0 {
			continue
		}
		base := off + constructionOff
		glyphAssemblyOff := int(r.u16(base))
		t.horizVariants[gid] = t.glyphVariants(r, base+2, unitsPerEm)
		if glyphAssemblyOff > 0 {
			t.horizAssembly[gid] = t.glyphAssembly(r, base, unitsPerEm)
		}
	}
}

// Math lazily parses and caches this font's MATH table, returning
// MissingMathConstantError if the font carries none.
func (f *Font) Math() (*Table, error) {
	if f.mathTable != nil {
		return f.mathTable, nil
	}
	if f.mathErr != nil {
		return nil, f.mathErr
	}
	if f.face == nil || f.face.Font == nil {
		f.mathErr = &MissingMathConstantError{Font: f.Info.String()}
		return nil, f.mathErr
	}
	data, ok := f.face.Font.RawTable(mathTag)
	if !ok || len(data) == 0 {
		f.mathErr = &MissingMathConstantError{Font: f.Info.String()}
		return nil, f.mathErr
	}
	upm := int(f.face.Upem())
	table, err := ParseMATH(data, upm)
	if err != nil {
		f.mathErr = err
		return nil, err
	}
	f.mathTable = table
	return table, nil
}
