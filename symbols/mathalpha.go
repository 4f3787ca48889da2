package symbols

// AlphaStyle selects one of the styled alphabets used by the \mathXXX
// family of commands (\mathbf, \mathit, \mathbb, \mathcal, \mathfrak,
// \mathsf, \mathtt), substituting each ASCII letter or digit for its
// Mathematical Alphanumeric Symbols codepoint.
type AlphaStyle int

const (
	AlphaNormal AlphaStyle = iota
	AlphaBold
	AlphaItalic
	AlphaBoldItalic
	AlphaScript
	AlphaBoldScript
	AlphaFraktur
	AlphaBoldFraktur
	AlphaDoubleStruck
	AlphaSansSerif
	AlphaSansSerifBold
	AlphaSansSerifItalic
	AlphaSansSerifBoldItalic
	AlphaMonospace
)

type alphaBase struct {
	upperA, lowerA, digit0 rune
	hasDigits              bool
}

var alphaBases = map[AlphaStyle]alphaBase{
	AlphaBold:                {0x1D400, 0x1D41A, 0x1D7CE, true},
	AlphaItalic:              {0x1D434, 0x1D44E, 0, false},
	AlphaBoldItalic:          {0x1D468, 0x1D482, 0, false},
	AlphaScript:              {0x1D49C, 0x1D4B6, 0, false},
	AlphaBoldScript:          {0x1D4D0, 0x1D4EA, 0, false},
	AlphaFraktur:             {0x1D504, 0x1D51E, 0, false},
	AlphaDoubleStruck:        {0x1D538, 0x1D552, 0x1D7D8, true},
	AlphaBoldFraktur:         {0x1D56C, 0x1D586, 0, false},
	AlphaSansSerif:           {0x1D5A0, 0x1D5BA, 0x1D7E2, true},
	AlphaSansSerifBold:       {0x1D5D4, 0x1D5EE, 0x1D7EC, true},
	AlphaSansSerifItalic:     {0x1D608, 0x1D622, 0, false},
	AlphaSansSerifBoldItalic: {0x1D63C, 0x1D656, 0, false},
	AlphaMonospace:           {0x1D670, 0x1D68A, 0x1D7F6, true},
}

// exceptions holds codepoints the Unicode standard assigns outside the
// dense 1D400 block, reusing older Letterlike Symbols block positions for
// glyphs that already existed (e.g. the script capital B, ℬ, predates the
// Mathematical Alphanumeric Symbols block and was not duplicated into it).
var exceptions = map[AlphaStyle]map[rune]rune{
	AlphaItalic: {'h': 0x210E},
	AlphaScript: {
		'B': 0x212C, 'E': 0x2130, 'F': 0x2131, 'H': 0x210B, 'I': 0x2110,
		'L': 0x2112, 'M': 0x2133, 'R': 0x211B,
		'e': 0x212F, 'g': 0x210A, 'o': 0x2134,
	},
	AlphaFraktur: {
		'C': 0x212D, 'H': 0x210C, 'I': 0x2111, 'R': 0x211C, 'Z': 0x2128,
	},
	AlphaDoubleStruck: {
		'C': 0x2102, 'H': 0x210D, 'N': 0x2115, 'P': 0x2119, 'Q': 0x211A,
		'R': 0x211D, 'Z': 0x2124,
	},
}

// Substitute maps a base ASCII letter or digit to its styled counterpart.
// It returns ok=false (and the rune unchanged) for runes outside A-Z/a-z/0-9
// or for AlphaNormal, since plain Ord letters/digits need no substitution.
func Substitute(style AlphaStyle, r rune) (rune, bool) {
	if style == AlphaNormal {
		return r, false
	}
	if ex, ok := exceptions[style][r]; ok {
		return ex, true
	}
	base, ok := alphaBases[style]
	if !ok {
		return r, false
	}
	switch {
	case r >= 'A' && r <= 'Z':
		return base.upperA + (r - 'A'), true
	case r >= 'a' && r <= 'z':
		return base.lowerA + (r - 'a'), true
	case r >= '0' && r <= '9' && base.hasDigits:
		return base.digit0 + (r - '0'), true
	default:
		return r, false
	}
}
