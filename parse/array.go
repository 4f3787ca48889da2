package parse

// matrixDelimiters maps the built-in matrix-style environment names to the
// delimiter pair they implicitly wrap the array in (0 for none).
var matrixDelimiters = map[string][2]rune{
	"matrix":  {0, 0},
	"pmatrix": {'(', ')'},
	"bmatrix": {'[', ']'},
	"Bmatrix": {'{', '}'},
	"vmatrix": {'|', '|'},
	"Vmatrix": {'‖', '‖'},
}

// defaultColumns builds a column spec of the given width with one alignment
// for every column, used
// by environments (matrix variants, aligned, substack) that don't carry an
// explicit column specification of their own.
func defaultColumns(n int, align ColumnAlign) []ColumnSpec {
	cols := make([]ColumnSpec, n)
	for i := range cols {
		cols[i] = ColumnSpec{Align: align}
	}
	return cols
}

func beginCommand(p *parser, pos int) (Node, error) {
	p.s.skipSpace()
	if !p.s.eat('{') {
		return nil, errf(MissingArgument, pos, "\\begin requires an environment name")
	}
	name, err := p.readBraceWord()
	if err != nil {
		return nil, err
	}

	switch name {
	case "matrix", "pmatrix", "bmatrix", "Bmatrix", "vmatrix", "Vmatrix":
		rows, err := p.parseRows(name)
		if err != nil {
			return nil, err
		}
		cols := 0
		for _, row := range rows {
			if len(row) > cols {
				cols = len(row)
			}
		}
		arr := &Array{Environment: name, Columns: defaultColumns(cols, ColumnCenter), Rows: rows, Pos: pos}
		delims := matrixDelimiters[name]
		if delims[0] == 0 && delims[1] == 0 {
			return arr, nil
		}
		return &Delimited{Open: delims[0], Segments: []Node{arr}, Close: delims[1], Pos: pos}, nil

	case "aligned":
		rows, err := p.parseRows(name)
		if err != nil {
			return nil, err
		}
		cols := 0
		for _, row := range rows {
			if len(row) > cols {
				cols = len(row)
			}
		}
		spec := make([]ColumnSpec, cols)
		for i := range spec {
			if i%2 == 0 {
				spec[i] = ColumnSpec{Align: ColumnRight}
			} else {
				spec[i] = ColumnSpec{Align: ColumnLeft}
			}
		}
		return &Array{Environment: name, Columns: spec, Rows: rows, Pos: pos}, nil

	case "substack":
		rows, err := p.parseRows(name)
		if err != nil {
			return nil, err
		}
		return &Array{Environment: name, Columns: defaultColumns(1, ColumnCenter), Rows: rows, Pos: pos}, nil

	case "array":
		cols, err := p.parseColumnSpec()
		if err != nil {
			return nil, err
		}
		rows, err := p.parseRows(name)
		if err != nil {
			return nil, err
		}
		if len(cols) > 0 {
			for _, row := range rows {
				if len(row) != len(cols) {
					return nil, errf(WrongColumnCount, pos, "row has %d cells, column spec has %d", len(row), len(cols))
				}
			}
		}
		return &Array{Environment: name, Columns: cols, Rows: rows, Pos: pos}, nil

	default:
		return nil, errf(NoSuchEnvironment, pos, "unknown environment %q", name)
	}
}

// readBraceWord reads up to the next '}' as a bare environment name (no
// nested groups expected inside \begin{...}).
func (p *parser) readBraceWord() (string, error) {
	start := p.s.cursor
	for {
		r, ok := p.s.peek()
		if !ok {
			return "", errf(UnmatchedGroup, start, "unterminated environment name")
		}
		if r == '}' {
			break
		}
		p.s.advance()
	}
	word := p.src[start:p.s.cursor]
	p.s.advance() // closing brace
	return word, nil
}

// parseColumnSpec parses an array environment's {lcr|@{...}} column spec.
func (p *parser) parseColumnSpec() ([]ColumnSpec, error) {
	p.s.skipSpace()
	if !p.s.eat('{') {
		return nil, errf(MissingArgument, p.s.cursor, "array requires a column specification")
	}
	var cols []ColumnSpec
	pendingRules := 0
	for {
		r, ok := p.s.advance()
		if !ok {
			return nil, errf(UnmatchedGroup, p.s.cursor, "unterminated column specification")
		}
		switch r {
		case '}':
			return cols, nil
		case 'l':
			cols = append(cols, ColumnSpec{Align: ColumnLeft, RuleBefore: pendingRules})
			pendingRules = 0
		case 'c':
			cols = append(cols, ColumnSpec{Align: ColumnCenter, RuleBefore: pendingRules})
			pendingRules = 0
		case 'r':
			cols = append(cols, ColumnSpec{Align: ColumnRight, RuleBefore: pendingRules})
			pendingRules = 0
		case '|':
			if len(cols) == 0 {
				pendingRules++
			} else {
				cols[len(cols)-1].RuleAfter++
			}
		case '@':
			if !p.s.eat('{') {
				return nil, errf(UnexpectedToken, p.s.cursor, "expected { after @")
			}
			nodes, err := p.parseSequence(func() bool {
				r, ok := p.s.peek()
				return ok && r == '}'
			})
			if err != nil {
				return nil, err
			}
			p.s.advance()
			cols = append(cols, ColumnSpec{Literal: &Group{Children: nodes}})
		default:
			return nil, errf(UnexpectedToken, p.s.cursor, "unexpected %q in column specification", r)
		}
	}
}

// parseRows parses the body of an environment up to its matching \end,
// splitting on & (columns) and \\ (rows).
func (p *parser) parseRows(envName string) ([][]Node, error) {
	var rows [][]Node
	var row []Node
	var cell []Node

	flushCell := func() {
		row = append(row, &Group{Children: cell})
		cell = nil
	}
	flushRow := func() {
		flushCell()
		rows = append(rows, row)
		row = nil
	}

	for {
		p.s.skipSpace()
		if p.s.done() {
			return nil, errf(UnmatchedGroup, p.s.cursor, "\\begin{%s} without matching \\end", envName)
		}
		r, _ := p.s.peek()
		if r == '&' {
			p.s.advance()
			flushCell()
			continue
		}
		if r == '\\' {
			save := p.s.cursor
			p.s.advance()
			name, npos := p.parseCommandName2()
			if name == "end" {
				end, err := p.readEnd()
				if err != nil {
					return nil, err
				}
				if end != envName {
					return nil, errf(NoSuchEnvironment, npos, "\\end{%s} does not match \\begin{%s}", end, envName)
				}
				flushRow()
				return rows, nil
			}
			if name == "\\" || name == "cr" {
				flushRow()
				continue
			}
			p.s.jump(save)
		}
		node, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		forced := p.consumeLimitsOverride()
		node, err = p.parsePostfix(node, forced)
		if err != nil {
			return nil, err
		}
		cell = append(cell, node)
	}
}

func (p *parser) readEnd() (string, error) {
	p.s.skipSpace()
	if !p.s.eat('{') {
		return "", errf(MissingArgument, p.s.cursor, "\\end requires an environment name")
	}
	return p.readBraceWord()
}
