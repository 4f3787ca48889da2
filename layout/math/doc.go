// Package math lays out a parsed formula tree into positioned glyphs and
// rules. It takes the Node tree produced by the parse package and an
// OpenType MATH-bearing font, and produces a layout.Frame ready to hand
// to a rendering backend.
//
// The layout process:
//  1. Walks the parse tree, dispatching on node kind.
//  2. Resolves each atom's glyph via the font's cmap and shifts it
//     according to the current math style (display/text/script/
//     scriptscript, cramped or not) and the font's MATH table constants.
//  3. Concatenates sibling atoms left to right, inserting TeX's
//     class-pair spacing and retracting leading/trailing Bin atoms to Ord.
//  4. Produces a single Frame with size and baseline set, ready for a
//     rendering backend to walk.
package math
