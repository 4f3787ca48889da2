// Package layout holds the geometric primitives shared by the layout
// engine and its renderer: positions, sizes, transforms and the Frame
// tree that a render pass walks. It has no knowledge of formula syntax
// or math typesetting rules; layout/math builds the Frame trees this
// package defines.
package layout
