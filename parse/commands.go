package parse

import (
	"strings"

	"github.com/texmath/texmath/symbols"
)

// commandFn implements one backslash command once its name has already
// been consumed from the scanner; pos is the byte offset of the leading
// backslash, for error reporting.
type commandFn func(p *parser, pos int) (Node, error)

var commands map[string]commandFn

func init() {
	commands = map[string]commandFn{
		"displaystyle":      styleCommand(LevelDisplay),
		"textstyle":         styleCommand(LevelText),
		"scriptstyle":       styleCommand(LevelScript),
		"scriptscriptstyle": styleCommand(LevelScriptScript),

		"mathbf":     alphaStyleCommand(symbols.AlphaBold),
		"mathit":     alphaStyleCommand(symbols.AlphaItalic),
		"mathbb":     alphaStyleCommand(symbols.AlphaDoubleStruck),
		"mathcal":    alphaStyleCommand(symbols.AlphaScript),
		"mathfrak":   alphaStyleCommand(symbols.AlphaFraktur),
		"mathsf":     alphaStyleCommand(symbols.AlphaSansSerif),
		"mathtt":     alphaStyleCommand(symbols.AlphaMonospace),
		"mathrm":     alphaStyleCommand(symbols.AlphaNormal),
		"boldsymbol": alphaStyleCommand(symbols.AlphaBold),
		"bm":         alphaStyleCommand(symbols.AlphaBold),

		"mathbin":   atomClassCommand(symbols.ClassBin),
		"mathop":    atomClassCommand(symbols.ClassOp),
		"mathrel":   atomClassCommand(symbols.ClassRel),
		"mathord":   atomClassCommand(symbols.ClassOrd),
		"mathopen":  atomClassCommand(symbols.ClassOpen),
		"mathclose": atomClassCommand(symbols.ClassClose),
		"mathpunct": atomClassCommand(symbols.ClassPunct),
		"mathinner": atomClassCommand(symbols.ClassInner),

		"limits":   limitsCommand(LimitsOn),
		"nolimits": limitsCommand(LimitsOff),

		"frac":  fracCommand(FractionInherit),
		"tfrac": fracCommand(FractionText),
		"dfrac": fracCommand(FractionDisplay),

		"binom":  binomCommand(FractionInherit),
		"tbinom": binomCommand(FractionText),
		"dbinom": binomCommand(FractionDisplay),

		"cfrac": cfracCommand,

		"over":   infixFractionCommand(FractionInherit, true, 0, 0),
		"atop":   infixFractionCommand(FractionInherit, false, 0, 0),
		"choose": infixFractionCommand(FractionInherit, false, '(', ')'),

		"sqrt":      sqrtCommand,
		"cuberoot":  radicalShapeCommand(RadicalCube),
		"fourthroot": radicalShapeCommand(RadicalFourth),

		"left":   leftCommand,
		"right":  rightCommand,
		"middle": middleCommand,

		"big":   bigCommand(1, symbols.ClassOrd),
		"Big":   bigCommand(2, symbols.ClassOrd),
		"bigg":  bigCommand(3, symbols.ClassOrd),
		"Bigg":  bigCommand(4, symbols.ClassOrd),
		"bigl":  bigCommand(1, symbols.ClassOpen),
		"Bigl":  bigCommand(2, symbols.ClassOpen),
		"biggl": bigCommand(3, symbols.ClassOpen),
		"Biggl": bigCommand(4, symbols.ClassOpen),
		"bigr":  bigCommand(1, symbols.ClassClose),
		"Bigr":  bigCommand(2, symbols.ClassClose),
		"biggr": bigCommand(3, symbols.ClassClose),
		"Biggr": bigCommand(4, symbols.ClassClose),

		"hat":      accentCommand('̂', true, false),
		"check":    accentCommand('̌', true, false),
		"tilde":    accentCommand('̃', true, false),
		"acute":    accentCommand('́', true, false),
		"grave":    accentCommand('̀', true, false),
		"dot":      accentCommand('̇', true, false),
		"ddot":     accentCommand('̈', true, false),
		"breve":    accentCommand('̆', true, false),
		"bar":      accentCommand('̄', true, false),
		"vec":      accentCommand('⃗', true, false),
		"widehat":   accentCommand('̂', true, true),
		"widetilde": accentCommand('̃', true, true),

		// Character-escape accent shorthands (e.g. \`{o}, \'{e}): same
		// combining marks as the word-form commands above, just keyed by
		// the single punctuation character parseCommandName returns for a
		// non-letter control sequence.
		"`":  accentCommand('̀', true, false),
		"'":  accentCommand('́', true, false),
		"^":  accentCommand('̂', true, false),
		"\"": accentCommand('̈', true, false),
		"~":  accentCommand('̃', true, false),
		".":  accentCommand('̇', true, false),

		"overbrace":  accentCommand('⏞', true, true),
		"underbrace": accentCommand('⏟', false, true),

		"overline":  overUnderCommand(true),
		"underline": overUnderCommand(false),

		"text":        textCommand,
		"mbox":        textCommand,
		"operatorname": operatorNameCommand,

		",":     kernCommand(0.16667),
		":":     kernCommand(0.22222),
		";":     kernCommand(0.27778),
		"!":     kernCommand(-0.16667),
		" ":     kernCommand(0.33333),
		"quad":  kernCommand(1.0),
		"qquad": kernCommand(2.0),

		"color": colorCommand,

		"red":     namedColorCommand("red"),
		"blue":    namedColorCommand("blue"),
		"green":   namedColorCommand("green"),
		"yellow":  namedColorCommand("yellow"),
		"orange":  namedColorCommand("orange"),
		"purple":  namedColorCommand("purple"),
		"cyan":    namedColorCommand("cyan"),
		"magenta": namedColorCommand("magenta"),
		"black":   namedColorCommand("black"),
		"white":   namedColorCommand("white"),
		"gray":    namedColorCommand("gray"),

		"begin": beginCommand,
	}
}

func styleCommand(level MathLevel) commandFn {
	return func(p *parser, pos int) (Node, error) {
		body, err := p.parseSequence(p.atBrace)
		if err != nil {
			return nil, err
		}
		return &Style{Level: level, Body: &Group{Children: body}, Pos: pos}, nil
	}
}

func alphaStyleCommand(style symbols.AlphaStyle) commandFn {
	return func(p *parser, pos int) (Node, error) {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		return applyAlphaStyle(arg, style), nil
	}
}

// applyAlphaStyle walks arg substituting each literal letter/digit Symbol
// through the Mathematical Alphanumeric Symbols mapping for style, leaving
// already-named symbols (e.g. \alpha under \mathbf) untouched.
func applyAlphaStyle(n Node, style symbols.AlphaStyle) Node {
	switch v := n.(type) {
	case *Symbol:
		if r, ok := symbols.Substitute(style, v.Rune); ok {
			return &Symbol{Rune: r, Class: v.Class, Limits: v.Limits, Pos: v.Pos}
		}
		return v
	case *Group:
		children := make([]Node, len(v.Children))
		for i, c := range v.Children {
			children[i] = applyAlphaStyle(c, style)
		}
		return &Group{Children: children, Braced: v.Braced, Pos: v.Pos}
	default:
		return n
	}
}

func atomClassCommand(class symbols.Class) commandFn {
	return func(p *parser, pos int) (Node, error) {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		return &AtomChange{Class: class, Body: arg, Pos: pos}, nil
	}
}

func limitsCommand(mode LimitsMode) commandFn {
	return func(p *parser, pos int) (Node, error) {
		return nil, errf(UnexpectedToken, pos, "\\limits must follow an operator")
	}
}

func fracCommand(style FractionStyle) commandFn {
	return func(p *parser, pos int) (Node, error) {
		num, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		den, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		return &GenFraction{Numerator: num, Denominator: den, HasRule: true, Style: style, Pos: pos}, nil
	}
}

func cfracCommand(p *parser, pos int) (Node, error) {
	num, err := p.parseArgument()
	if err != nil {
		return nil, err
	}
	den, err := p.parseArgument()
	if err != nil {
		return nil, err
	}
	return &GenFraction{Numerator: num, Denominator: den, HasRule: true, Style: FractionDisplay, Pos: pos}, nil
}

func binomCommand(style FractionStyle) commandFn {
	return func(p *parser, pos int) (Node, error) {
		num, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		den, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		return &GenFraction{
			Numerator: num, Denominator: den,
			HasRule: false, Left: '(', Right: ')',
			Style: style, Pos: pos,
		}, nil
	}
}

// infixFractionCommand builds \over/\atop/\choose: unlike \frac, neither
// operand is a bracketed argument following the command - both are
// recovered from the enclosing sequence once it is fully parsed (see
// parseSequence's infixFraction handling).
func infixFractionCommand(style FractionStyle, hasRule bool, left, right rune) commandFn {
	return func(p *parser, pos int) (Node, error) {
		return &infixFraction{style: style, hasRule: hasRule, left: left, right: right, pos: pos}, nil
	}
}

func sqrtCommand(p *parser, pos int) (Node, error) {
	index, hasIndex, err := p.parseOptionalBracket()
	if err != nil {
		return nil, err
	}
	radicand, err := p.parseArgument()
	if err != nil {
		return nil, err
	}
	rad := &Radical{Radicand: radicand, Pos: pos}
	if hasIndex {
		rad.Index = index
	}
	return rad, nil
}

// radicalShapeCommand builds \cuberoot/\fourthroot: fixed-degree radicals
// that pick a dedicated Unicode radical glyph instead of carrying an
// explicit Index like \sqrt[n]{...} does.
func radicalShapeCommand(shape RadicalShape) commandFn {
	return func(p *parser, pos int) (Node, error) {
		radicand, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		return &Radical{Radicand: radicand, Shape: shape, Pos: pos}, nil
	}
}

// delimiterRune maps a \left/\right/\middle/\big-family delimiter token
// (a command name or bare character) to its rune, or 0 for "." (none).
func (p *parser) delimiterRune() (rune, error) {
	p.s.skipSpace()
	r, ok := p.s.peek()
	if !ok {
		return 0, errf(MissingArgument, p.s.cursor, "expected a delimiter")
	}
	if r == '.' {
		p.s.advance()
		return 0, nil
	}
	if r == '\\' {
		name, _ := p.parseCommandName()
		if sym, ok := symbols.Lookup(name); ok {
			return sym.Rune, nil
		}
		return 0, errf(UnknownCommand, p.s.cursor, "unknown delimiter \\%s", name)
	}
	p.s.advance()
	return r, nil
}

func leftCommand(p *parser, pos int) (Node, error) {
	open, err := p.delimiterRune()
	if err != nil {
		return nil, err
	}
	stop := func() bool {
		save := p.s.cursor
		defer p.s.jump(save)
		if !p.s.eat('\\') {
			return false
		}
		n, _ := p.parseCommandName2()
		return n == "right" || n == "middle"
	}

	var middles []rune
	var segments []Node
	for {
		children, err := p.parseSequence(stop)
		if err != nil {
			return nil, err
		}
		segments = append(segments, &Group{Children: children})

		if !p.s.eat('\\') {
			return nil, errf(UnmatchedDelimiter, pos, "\\left without matching \\right")
		}
		npos := p.s.cursor
		name, _ := p.parseCommandName2()
		switch name {
		case "middle":
			r, err := p.delimiterRune()
			if err != nil {
				return nil, err
			}
			middles = append(middles, r)
			continue
		case "right":
			close, err := p.delimiterRune()
			if err != nil {
				return nil, err
			}
			return &Delimited{Open: open, Segments: segments, Middle: middles, Close: close, Pos: pos}, nil
		default:
			return nil, errf(UnmatchedDelimiter, npos, "expected \\right or \\middle")
		}
	}
}

// parseCommandName2 peeks a command name without consuming the leading
// backslash (already consumed by the caller for lookahead purposes).
func (p *parser) parseCommandName2() (string, int) {
	pos := p.s.cursor
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

func rightCommand(p *parser, pos int) (Node, error) {
	return nil, errf(UnmatchedDelimiter, pos, "\\right without matching \\left")
}

func middleCommand(p *parser, pos int) (Node, error) {
	return nil, errf(UnmatchedDelimiter, pos, "\\middle outside \\left...\\right")
}

func bigCommand(size int, class symbols.Class) commandFn {
	return func(p *parser, pos int) (Node, error) {
		r, err := p.delimiterRune()
		if err != nil {
			return nil, err
		}
		return &Symbol{Rune: r, Class: class, Scale: size, Pos: pos}, nil
	}
}

func accentCommand(mark rune, above bool, stretchy bool) commandFn {
	return func(p *parser, pos int) (Node, error) {
		base, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		return &Accent{Base: base, Accent: mark, Above: above, Stretchy: stretchy, Pos: pos}, nil
	}
}

func overUnderCommand(above bool) commandFn {
	return func(p *parser, pos int) (Node, error) {
		base, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		return &OverUnder{Base: base, Above: above, Pos: pos}, nil
	}
}

func textCommand(p *parser, pos int) (Node, error) {
	p.s.skipSpace()
	if !p.s.eat('{') {
		return nil, errf(MissingArgument, pos, "\\text requires a {...} argument")
	}
	start := p.s.cursor
	depth := 1
	for {
		r, ok := p.s.advance()
		if !ok {
			return nil, errf(UnmatchedGroup, pos, "unterminated \\text")
		}
		if r == '{' {
			depth++
		} else if r == '}' {
			depth--
			if depth == 0 {
				break
			}
		}
	}
	text := p.src[start : p.s.cursor-1]
	return &PlainText{Text: text, Pos: pos}, nil
}

func operatorNameCommand(p *parser, pos int) (Node, error) {
	node, err := textCommand(p, pos)
	if err != nil {
		return nil, err
	}
	pt := node.(*PlainText)
	return &AtomChange{Class: symbols.ClassOp, Body: pt, Pos: pos}, nil
}

func kernCommand(amount float64) commandFn {
	return func(p *parser, pos int) (Node, error) {
		return &Kerning{Amount: amount, Pos: pos}, nil
	}
}

func colorCommand(p *parser, pos int) (Node, error) {
	p.s.skipSpace()
	if !p.s.eat('{') {
		return nil, errf(MissingArgument, pos, "\\color requires a {name} argument")
	}
	start := p.s.cursor
	for {
		r, ok := p.s.peek()
		if !ok {
			return nil, errf(UnmatchedGroup, pos, "unterminated \\color name")
		}
		if r == '}' {
			break
		}
		p.s.advance()
	}
	name := p.src[start:p.s.cursor]
	p.s.advance() // closing brace
	body, err := p.parseArgument()
	if err != nil {
		return nil, err
	}
	return &Color{Name: name, Body: body, Pos: pos}, nil
}

// namedColorCommand builds a fixed-name colour shorthand (\red{...} etc.):
// the same Color node \color{name}{...} produces, just without the
// leading {name} argument.
func namedColorCommand(name string) commandFn {
	return func(p *parser, pos int) (Node, error) {
		body, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		return &Color{Name: name, Body: body, Pos: pos}, nil
	}
}
