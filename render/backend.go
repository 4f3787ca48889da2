package render

import "github.com/texmath/texmath/layout"

// Backend receives drawing primitives from Render, in the order a
// formula lays out left to right. A Backend owns its own drawing
// surface; Render holds no backend state across calls, and an error
// returned from any method aborts the walk and is passed back to
// Render's caller unchanged.
type Backend interface {
	// Symbol draws glyph gid from the active font at the given size,
	// with (x, y) its baseline origin.
	Symbol(x, y layout.Abs, gid uint16, size layout.Abs) error

	// Rule fills a width x height rectangle with (x, y) its top-left
	// corner.
	Rule(x, y, width, height layout.Abs) error

	// BeginColor opens a nested colour scope; every primitive drawn
	// before the matching EndColor is tinted by c. Scopes nest.
	BeginColor(c layout.Color) error
	EndColor() error

	// BeginTransform opens a scale-and-translate scope for an
	// extensible-glyph piece drawn by scaling a smaller variant rather
	// than from a native assembly part. EndTransform closes it.
	BeginTransform(scale float64, tx, ty layout.Abs) error
	EndTransform() error
}
