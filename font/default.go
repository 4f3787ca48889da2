package font

import (
	"bytes"
	"sync"

	"github.com/go-fonts/latin-modern/lmmath"
)

var (
	defaultOnce sync.Once
	defaultFont *Font
	defaultErr  error
)

// Default returns the module's built-in fallback font: Latin Modern Math,
// the classic LaTeX math font, which carries a full OpenType MATH table.
// It is parsed once and shared read-only across callers and goroutines,
// matching the font context's read-only, cache-free contract.
func Default() (*Font, error) {
	defaultOnce.Do(func() {
		fonts, err := LoadFromBytes(bytes.Clone(lmmath.TTF), "")
		if err != nil {
			defaultErr = err
			return
		}
		if len(fonts) == 0 {
			defaultErr = &MissingMathConstantError{Font: "latin-modern-math"}
			return
		}
		fonts[0].Info.Family = "Latin Modern Math"
		defaultFont = fonts[0]
	})
	return defaultFont, defaultErr
}
