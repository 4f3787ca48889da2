package symbols

import (
	"golang.org/x/text/unicode/norm"
)

// Class is a TeX atom class, used both to pick default spacing between
// atoms and to choose how a symbol participates in script/limit placement.
type Class int

const (
	ClassOrd Class = iota
	ClassOp
	ClassBin
	ClassRel
	ClassOpen
	ClassClose
	ClassPunct
	ClassInner
	ClassAccent
	ClassOver
	ClassUnder
	ClassAlpha
	ClassFence
)

func (c Class) String() string {
	switch c {
	case ClassOrd:
		return "Ord"
	case ClassOp:
		return "Op"
	case ClassBin:
		return "Bin"
	case ClassRel:
		return "Rel"
	case ClassOpen:
		return "Open"
	case ClassClose:
		return "Close"
	case ClassPunct:
		return "Punct"
	case ClassInner:
		return "Inner"
	case ClassAccent:
		return "Accent"
	case ClassOver:
		return "Over"
	case ClassUnder:
		return "Under"
	case ClassAlpha:
		return "Alpha"
	case ClassFence:
		return "Fence"
	default:
		return "Unknown"
	}
}

// Symbol is one entry in the symbol table: the Unicode codepoint a command
// name stands for, the atom class it starts life as (the layout engine may
// reclassify Bin to Ord per the spacing rules), and whether it is a "large
// operator" that takes limits above/below itself in display style by
// default (e.g. \sum, \prod, \lim).
type Symbol struct {
	Name   string
	Rune   rune
	Class  Class
	Limits bool
}

var table = map[string]Symbol{}

func define(name string, r rune, class Class, limits bool) {
	table[name] = Symbol{Name: name, Rune: r, Class: class, Limits: limits}
}

// Lookup resolves a command name (without its leading backslash) to its
// symbol table entry. Input is first run through NFC normalization so
// that accent shorthands built from combining marks match canonically
// equivalent precomposed entries.
func Lookup(name string) (Symbol, bool) {
	if s, ok := table[name]; ok {
		return s, true
	}
	normalized := norm.NFC.String(name)
	if normalized == name {
		return Symbol{}, false
	}
	s, ok := table[normalized]
	return s, ok
}

// LookupRune resolves a single literal rune appearing directly in formula
// source (e.g. a bare "+" or a Unicode letter) to its default class. A rune
// that some table entry uses gets that entry; any other rune, ASCII letters
// and digits included, gets a plain Ord symbol.
func LookupRune(r rune) Symbol {
	if s, ok := runeIndex[r]; ok {
		return s
	}
	return Symbol{Rune: r, Class: ClassOrd}
}
