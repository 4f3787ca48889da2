// Package symbols is the Symbol Table: a static, process-wide mapping from
// LaTeX-style command names (without the leading backslash) to Unicode
// codepoints and their TeX atom class, plus the mathematical-alphanumerics
// substitution used by \mathbb, \mathcal, \mathfrak and friends.
//
// Every table in this package is built once in init() and never mutated
// afterwards, so lookups are safe to call concurrently from multiple
// renders without locking.
package symbols
