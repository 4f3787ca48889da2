package math

import (
	"fmt"

	"github.com/texmath/texmath/layout"
)

// namedColors is the standard web-color subset \color{name} resolves
// against; anything outside this table must spell a #RRGGBB literal.
var namedColors = map[string]layout.Color{
	"black":   {R: 0, G: 0, B: 0, A: 255},
	"gray":    {R: 128, G: 128, B: 128, A: 255},
	"silver":  {R: 192, G: 192, B: 192, A: 255},
	"white":   {R: 255, G: 255, B: 255, A: 255},
	"red":     {R: 255, G: 0, B: 0, A: 255},
	"green":   {R: 0, G: 128, B: 0, A: 255},
	"blue":    {R: 0, G: 0, B: 255, A: 255},
	"yellow":  {R: 255, G: 255, B: 0, A: 255},
	"cyan":    {R: 0, G: 255, B: 255, A: 255},
	"magenta": {R: 255, G: 0, B: 255, A: 255},
	"maroon":  {R: 128, G: 0, B: 0, A: 255},
	"olive":   {R: 128, G: 128, B: 0, A: 255},
	"lime":    {R: 0, G: 255, B: 0, A: 255},
	"aqua":    {R: 0, G: 255, B: 255, A: 255},
	"teal":    {R: 0, G: 128, B: 128, A: 255},
	"navy":    {R: 0, G: 0, B: 128, A: 255},
	"fuchsia": {R: 255, G: 0, B: 255, A: 255},
	"purple":  {R: 128, G: 0, B: 128, A: 255},
	"orange":  {R: 255, G: 165, B: 0, A: 255},
}

// resolveColor resolves a \color{...} argument: a name from namedColors, or
// a CSS-style #RRGGBB / #RGB literal.
func resolveColor(name string) (layout.Color, error) {
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	if len(name) > 0 && name[0] == '#' {
		return parseHexColor(name[1:])
	}
	return layout.Color{}, fmt.Errorf("math: unknown color %q", name)
}

func parseHexColor(hex string) (layout.Color, error) {
	var r, g, b uint8
	switch len(hex) {
	case 3:
		if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); err != nil {
			return layout.Color{}, fmt.Errorf("math: invalid hex color %q", hex)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return layout.Color{}, fmt.Errorf("math: invalid hex color %q", hex)
		}
	default:
		return layout.Color{}, fmt.Errorf("math: invalid hex color length %q", hex)
	}
	return layout.Color{R: r, G: g, B: b, A: 255}, nil
}
