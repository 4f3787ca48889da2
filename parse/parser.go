package parse

import (
	"strings"

	"github.com/texmath/texmath/symbols"
)

// Option configures a Parse call.
type Option func(*parser)

// WithUserSymbols registers caller-supplied name-to-symbol aliases
// (looked up after the built-in command table and symbol table both
// miss), producing an Extend node rather than a Symbol so callers can
// tell a custom alias apart from a built-in one.
func WithUserSymbols(syms map[string]symbols.Symbol) Option {
	return func(p *parser) { p.userSymbols = syms }
}

// Parse turns a LaTeX-style formula string into a sequence of Nodes. The
// returned slice is the top-level implicit group's children.
func Parse(src string, opts ...Option) ([]Node, error) {
	p := &parser{s: newScanner(src), src: src}
	for _, opt := range opts {
		opt(p)
	}
	nodes, err := p.parseSequence(p.atTopLevel)
	if err != nil {
		return nil, err
	}
	if !p.s.done() {
		return nil, errf(UnexpectedToken, p.s.cursor, "unexpected %q", p.rest())
	}
	return nodes, nil
}

type parser struct {
	s           *scanner
	src         string
	userSymbols map[string]symbols.Symbol
}

func (p *parser) rest() string {
	if len(p.src)-p.s.cursor > 16 {
		return p.src[p.s.cursor:p.s.cursor+16] + "..."
	}
	return p.src[p.s.cursor:]
}

// stopFn reports whether the sequence parser should stop without
// consuming the upcoming token (used for group/environment terminators).
type stopFn func() bool

func (p *parser) atTopLevel() bool { return p.s.done() }

func (p *parser) atBrace() bool {
	r, ok := p.s.peek()
	return ok && r == '}'
}

// parseSequence parses atoms (with postfix scripts) until stop() reports
// true, returning them as a flat node list; the caller wraps it in a
// Group if grouping semantics are needed.
func (p *parser) parseSequence(stop stopFn) ([]Node, error) {
	var nodes []Node
	for {
		p.s.skipSpace()
		if stop() {
			return nodes, nil
		}
		if p.s.done() {
			return nodes, nil
		}
		node, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		if node == nil {
			continue
		}
		forced := p.consumeLimitsOverride()
		node, err = p.parsePostfix(node, forced)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)

		if marker, ok := node.(*infixFraction); ok {
			numerator := nodes[:len(nodes)-1]
			denominator, err := p.parseSequence(stop)
			if err != nil {
				return nil, err
			}
			frac := &GenFraction{
				Numerator:   &Group{Children: numerator},
				Denominator: &Group{Children: denominator},
				HasRule:     marker.hasRule,
				Left:        marker.left,
				Right:       marker.right,
				Style:       marker.style,
				Pos:         marker.pos,
			}
			return append(numerator[:len(numerator):len(numerator)], frac), nil
		}
	}
}

// consumeLimitsOverride peeks for an immediately following \limits or
// \nolimits command and consumes it, reporting the forced LimitsMode
// (LimitsAuto if neither is present).
func (p *parser) consumeLimitsOverride() LimitsMode {
	save := p.s.cursor
	p.s.skipSpace()
	if !p.s.eat('\\') {
		p.s.jump(save)
		return LimitsAuto
	}
	name, _ := p.parseCommandName2()
	switch name {
	case "limits":
		return LimitsOn
	case "nolimits":
		return LimitsOff
	default:
		p.s.jump(save)
		return LimitsAuto
	}
}

// parsePostfix attaches any run of _ ^ and prime marks to base.
func (p *parser) parsePostfix(base Node, forced LimitsMode) (Node, error) {
	var sup, sub Node
	limits := forced
	primeCount := 0

	for {
		p.s.skipSpace()
		r, ok := p.s.peek()
		if !ok {
			break
		}
		switch r {
		case '\'':
			p.s.advance()
			primeCount++
			continue
		case '_':
			p.s.advance()
			if sub != nil {
				return nil, errf(UnexpectedToken, p.s.cursor, "double subscript")
			}
			n, err := p.parseArgument()
			if err != nil {
				return nil, err
			}
			sub = n
			continue
		case '^':
			p.s.advance()
			if sup != nil {
				return nil, errf(UnexpectedToken, p.s.cursor, "double superscript")
			}
			n, err := p.parseArgument()
			if err != nil {
				return nil, err
			}
			sup = n
			continue
		}
		break
	}

	if primeCount > 0 {
		prime := &Symbol{Rune: '′', Class: symbols.ClassOrd}
		var primeNode Node = prime
		if primeCount > 1 {
			children := make([]Node, primeCount)
			for i := range children {
				children[i] = &Symbol{Rune: '′', Class: symbols.ClassOrd}
			}
			primeNode = &Group{Children: children}
		}
		if sup == nil {
			sup = primeNode
		} else {
			sup = &Group{Children: []Node{primeNode, sup}}
		}
	}

	if sup == nil && sub == nil {
		return base, nil
	}
	return &Scripts{Base: base, Sup: sup, Sub: sub, Limits: limits}, nil
}

// parseArgument parses a single required argument: either a braced group
// or exactly one atom (no postfix scripts of its own attach here - those
// belong to the outer parsePostfix call once the argument is a base).
func (p *parser) parseArgument() (Node, error) {
	p.s.skipSpace()
	if p.s.eat('{') {
		children, err := p.parseSequence(p.atBrace)
		if err != nil {
			return nil, err
		}
		if !p.s.eat('}') {
			return nil, errf(UnmatchedGroup, p.s.cursor, "missing closing brace")
		}
		return &Group{Children: children, Braced: true}, nil
	}
	if p.s.done() {
		return nil, errf(MissingArgument, p.s.cursor, "expected an argument")
	}
	return p.parsePrimary()
}

// parseOptionalBracket parses an optional [...] argument immediately
// following a command, returning nil if none is present. It peeks ahead
// and only commits to consuming the bracket if one is actually open.
func (p *parser) parseOptionalBracket() (Node, bool, error) {
	save := p.s.cursor
	p.s.skipSpace()
	if !p.s.eat('[') {
		p.s.jump(save)
		return nil, false, nil
	}
	children, err := p.parseSequence(func() bool {
		r, ok := p.s.peek()
		return ok && r == ']'
	})
	if err != nil {
		return nil, false, err
	}
	if !p.s.eat(']') {
		return nil, false, errf(UnmatchedGroup, p.s.cursor, "missing closing ]")
	}
	return &Group{Children: children}, true, nil
}

// parsePrimary parses one atom: a literal character, a command, or a
// braced group. It does not look at trailing _ ^ ' (parsePostfix does).
func (p *parser) parsePrimary() (Node, error) {
	pos := p.s.cursor
	r, ok := p.s.peek()
	if !ok {
		return nil, errf(UnexpectedToken, pos, "unexpected end of formula")
	}

	switch r {
	case '}':
		return nil, errf(UnexpectedToken, pos, "unexpected %q", r)
	case '{':
		p.s.advance()
		children, err := p.parseSequence(p.atBrace)
		if err != nil {
			return nil, err
		}
		if !p.s.eat('}') {
			return nil, errf(UnmatchedGroup, pos, "missing closing brace")
		}
		return &Group{Children: children, Braced: true, Pos: pos}, nil
	case '\\':
		return p.parseCommand()
	case '&':
		return nil, errf(UnexpectedToken, pos, "column separator outside array")
	default:
		p.s.advance()
		class := defaultCharClass(r)
		if r >= '0' && r <= '9' {
			class = symbols.ClassOrd
		} else if isLetter(r) {
			class = symbols.ClassAlpha
		}
		return &Symbol{Rune: r, Class: class, Pos: pos}, nil
	}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func defaultCharClass(r rune) symbols.Class {
	switch r {
	case '+', '-', '*':
		return symbols.ClassBin
	case '=', '<', '>':
		return symbols.ClassRel
	case '(', '[':
		return symbols.ClassOpen
	case ')', ']':
		return symbols.ClassClose
	case ',', ';':
		return symbols.ClassPunct
	case '|':
		return symbols.ClassOrd
	default:
		return symbols.ClassOrd
	}
}

// parseCommandName reads a backslash command name: a run of letters, or
// else exactly one non-letter control symbol (matching TeX's catcode
// rules for control sequences).
func (p *parser) parseCommandName() (string, int) {
	pos := p.s.cursor
	p.s.advance() // consume backslash
	r, ok := p.s.peek()
	if !ok {
		return "", pos
	}
	if !isLetter(r) {
		p.s.advance()
		return string(r), pos
	}
	var b strings.Builder
	for {
		r, ok := p.s.peek()
		if !ok || !isLetter(r) {
			break
		}
		b.WriteRune(r)
		p.s.advance()
	}
	return b.String(), pos
}

func (p *parser) parseCommand() (Node, error) {
	name, pos := p.parseCommandName()
	if name == "" {
		return nil, errf(LexError, pos, "stray backslash at end of input")
	}
	if handler, ok := commands[name]; ok {
		return handler(p, pos)
	}
	if sym, ok := symbols.Lookup(name); ok {
		return &Symbol{Rune: sym.Rune, Class: sym.Class, Limits: sym.Limits, Pos: pos}, nil
	}
	if sym, ok := p.userSymbols[name]; ok {
		return &Extend{Name: name, Rune: sym.Rune, Class: sym.Class, Pos: pos}, nil
	}
	return nil, errf(UnknownCommand, pos, "unknown command \\%s", name)
}
