// Package render walks a laid-out formula frame and emits drawing
// primitives to a caller-supplied backend in drawing order.
//
// The walk is the only logic here: positions are accumulated top-left
// as the traversal descends into nested frames, colour scopes are
// pushed and popped around layout.ColorItem, and each glyph or rule
// is handed to the backend at its absolute position. The package
// holds no state across calls and performs no allocation beyond the
// frame it is given.
package render
