package math

import "fmt"

// GlyphNotFoundError reports that the active font's cmap carries no glyph
// for a symbol's codepoint. Per this package's error policy there is no
// substitution fallback (e.g. to .notdef): a missing glyph aborts layout.
type GlyphNotFoundError struct {
	Rune rune
}

func (e *GlyphNotFoundError) Error() string {
	return fmt.Sprintf("math: no glyph for %q (U+%04X)", e.Rune, e.Rune)
}
