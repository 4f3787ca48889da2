package symbols

var runeIndex = map[rune]Symbol{}

func init() {
	defineGreek()
	defineOperators()
	defineRelations()
	defineArrows()
	defineDelimiters()
	defineMisc()
	defineAccents()

	for _, s := range table {
		if _, exists := runeIndex[s.Rune]; !exists {
			runeIndex[s.Rune] = s
		}
	}
}

func defineGreek() {
	lower := []struct {
		name string
		r    rune
	}{
		{"alpha", 'α'}, {"beta", 'β'}, {"gamma", 'γ'}, {"delta", 'δ'},
		{"epsilon", 'ε'}, {"varepsilon", 'ɛ'}, {"zeta", 'ζ'}, {"eta", 'η'},
		{"theta", 'θ'}, {"vartheta", 'ϑ'}, {"iota", 'ι'}, {"kappa", 'κ'},
		{"lambda", 'λ'}, {"mu", 'μ'}, {"nu", 'ν'}, {"xi", 'ξ'},
		{"pi", 'π'}, {"varpi", 'ϖ'}, {"rho", 'ρ'}, {"varrho", 'ϱ'},
		{"sigma", 'σ'}, {"varsigma", 'ς'}, {"tau", 'τ'}, {"upsilon", 'υ'},
		{"phi", 'ϕ'}, {"varphi", 'φ'}, {"chi", 'χ'}, {"psi", 'ψ'},
		{"omega", 'ω'},
	}
	for _, g := range lower {
		define(g.name, g.r, ClassAlpha, false)
	}

	upper := []struct {
		name string
		r    rune
	}{
		{"Gamma", 'Γ'}, {"Delta", 'Δ'}, {"Theta", 'Θ'}, {"Lambda", 'Λ'},
		{"Xi", 'Ξ'}, {"Pi", 'Π'}, {"Sigma", 'Σ'}, {"Upsilon", 'Υ'},
		{"Phi", 'Φ'}, {"Psi", 'Ψ'}, {"Omega", 'Ω'},
	}
	for _, g := range upper {
		define(g.name, g.r, ClassAlpha, false)
	}
}

func defineOperators() {
	// Binary operators.
	bin := []struct {
		name string
		r    rune
	}{
		{"pm", '±'}, {"mp", '∓'}, {"times", '×'}, {"div", '÷'},
		{"cdot", '⋅'}, {"ast", '∗'}, {"star", '⋆'}, {"circ", '∘'},
		{"bullet", '•'}, {"cap", '∩'}, {"cup", '∪'}, {"uplus", '⊎'},
		{"sqcap", '⊓'}, {"sqcup", '⊔'}, {"vee", '∨'}, {"lor", '∨'},
		{"wedge", '∧'}, {"land", '∧'}, {"setminus", '∖'}, {"wr", '≀'},
		{"diamond", '⋄'}, {"triangleleft", '◁'}, {"triangleright", '▷'},
		{"oplus", '⊕'}, {"ominus", '⊖'}, {"otimes", '⊗'}, {"oslash", '⊘'},
		{"odot", '⊙'}, {"amalg", '⨿'}, {"dagger", '†'}, {"ddagger", '‡'},
	}
	for _, b := range bin {
		define(b.name, b.r, ClassBin, false)
	}

	// Large operators, which take limits above/below in display style.
	large := []struct {
		name   string
		r      rune
		limits bool
	}{
		{"sum", '∑', true}, {"prod", '∏', true}, {"coprod", '∐', true},
		{"int", '∫', false}, {"iint", '∬', false}, {"iiint", '∭', false},
		{"oint", '∮', false}, {"bigcap", '⋂', true}, {"bigcup", '⋃', true},
		{"bigsqcup", '⨆', true}, {"bigvee", '⋁', true}, {"bigwedge", '⋀', true},
		{"bigoplus", '⨁', true}, {"bigotimes", '⨂', true}, {"bigodot", '⨀', true},
		{"biguplus", '⨄', true},
	}
	for _, l := range large {
		define(l.name, l.r, ClassOp, l.limits)
	}

	// Operator names that render upright and take limits (like \lim).
	ops := []string{"lim", "liminf", "limsup", "max", "min", "sup", "inf",
		"arg", "det", "dim", "gcd", "hom", "ker", "deg", "exp", "log", "ln",
		"sin", "cos", "tan", "cot", "sec", "csc", "arcsin", "arccos", "arctan",
		"sinh", "cosh", "tanh", "coth", "Pr"}
	for _, name := range ops {
		// Operator-name glyphs are rendered by the text-run degrade path
		// (spec's naive glyph-by-glyph advance), not via a single symbol
		// codepoint, so only the class/limits metadata is registered here;
		// \operatorname produces the same class for user-declared names.
		limits := name == "lim" || name == "liminf" || name == "limsup" ||
			name == "max" || name == "min" || name == "sup" || name == "inf" ||
			name == "gcd" || name == "Pr"
		define(name, 0, ClassOp, limits)
	}
}

func defineRelations() {
	rel := []struct {
		name string
		r    rune
	}{
		{"leq", '≤'}, {"le", '≤'}, {"geq", '≥'}, {"ge", '≥'},
		{"neq", '≠'}, {"ne", '≠'}, {"equiv", '≡'}, {"sim", '∼'},
		{"simeq", '≃'}, {"approx", '≈'}, {"cong", '≅'}, {"propto", '∝'},
		{"ll", '≪'}, {"gg", '≫'}, {"prec", '≺'}, {"succ", '≻'},
		{"preceq", '⪯'}, {"succeq", '⪰'}, {"subset", '⊂'}, {"supset", '⊃'},
		{"subseteq", '⊆'}, {"supseteq", '⊇'}, {"in", '∈'}, {"ni", '∋'},
		{"notin", '∉'}, {"vdash", '⊢'}, {"dashv", '⊣'}, {"models", '⊨'},
		{"perp", '⊥'}, {"parallel", '∥'}, {"mid", '∣'}, {"asymp", '≍'},
		{"doteq", '≐'}, {"bowtie", '⋈'},
	}
	for _, r := range rel {
		define(r.name, r.r, ClassRel, false)
	}
}

func defineArrows() {
	arrows := []struct {
		name string
		r    rune
	}{
		{"leftarrow", '←'}, {"gets", '←'}, {"rightarrow", '→'}, {"to", '→'},
		{"leftrightarrow", '↔'}, {"Leftarrow", '⇐'}, {"Rightarrow", '⇒'},
		{"Leftrightarrow", '⇔'}, {"longleftarrow", '⟵'}, {"longrightarrow", '⟶'},
		{"longleftrightarrow", '⟷'}, {"Longleftarrow", '⟸'}, {"Longrightarrow", '⟹'},
		{"Longleftrightarrow", '⟺'}, {"mapsto", '↦'}, {"longmapsto", '⟼'},
		{"hookleftarrow", '↩'}, {"hookrightarrow", '↪'}, {"uparrow", '↑'},
		{"downarrow", '↓'}, {"updownarrow", '↕'}, {"nearrow", '↗'},
		{"searrow", '↘'}, {"swarrow", '↙'}, {"nwarrow", '↖'},
		{"rightharpoonup", '⇀'}, {"rightharpoondown", '⇁'},
		{"leftharpoonup", '↼'}, {"leftharpoondown", '↽'},
	}
	for _, a := range arrows {
		define(a.name, a.r, ClassRel, false)
	}
}

func defineDelimiters() {
	open := []struct {
		name string
		r    rune
	}{
		{"lparen", '('}, {"lbrack", '['}, {"lbrace", '{'}, {"langle", '⟨'},
		{"lceil", '⌈'}, {"lfloor", '⌊'}, {"lvert", '|'}, {"lVert", '‖'},
	}
	for _, d := range open {
		define(d.name, d.r, ClassOpen, false)
	}
	close := []struct {
		name string
		r    rune
	}{
		{"rparen", ')'}, {"rbrack", ']'}, {"rbrace", '}'}, {"rangle", '⟩'},
		{"rceil", '⌉'}, {"rfloor", '⌋'}, {"rvert", '|'}, {"rVert", '‖'},
	}
	for _, d := range close {
		define(d.name, d.r, ClassClose, false)
	}
	// These ASCII delimiters double as literal input characters in
	// formula source (e.g. "(" typed directly), so they are indexed both
	// under their command name and, via LookupRune's fallback, directly.
	define("vert", '|', ClassOrd, false)
	define("Vert", '‖', ClassOrd, false)
	define("backslash", '\\', ClassOrd, false)
}

func defineMisc() {
	misc := []struct {
		name  string
		r     rune
		class Class
	}{
		{"infty", '∞', ClassOrd},
		{"partial", '∂', ClassOrd},
		{"nabla", '∇', ClassOrd},
		{"forall", '∀', ClassOrd},
		{"exists", '∃', ClassOrd},
		{"nexists", '∄', ClassOrd},
		{"emptyset", '∅', ClassOrd},
		{"varnothing", '∅', ClassOrd},
		{"aleph", 'ℵ', ClassOrd},
		{"hbar", 'ℏ', ClassOrd},
		{"ell", 'ℓ', ClassOrd},
		{"Re", 'ℜ', ClassOrd},
		{"Im", 'ℑ', ClassOrd},
		{"wp", '℘', ClassOrd},
		{"top", '⊤', ClassOrd},
		{"bot", '⊥', ClassOrd},
		{"angle", '∠', ClassOrd},
		{"triangle", '△', ClassOrd},
		{"imath", 'ı', ClassOrd},
		{"jmath", 'ȷ', ClassOrd},
		{"prime", '′', ClassOrd},
		{"ldots", '…', ClassInner},
		{"cdots", '⋯', ClassInner},
		{"vdots", '⋮', ClassInner},
		{"ddots", '⋱', ClassInner},
		{"dots", '…', ClassInner},
		{"comma", ',', ClassPunct},
		{"colon", ':', ClassPunct},
		{"semicolon", ';', ClassPunct},
	}
	for _, m := range misc {
		define(m.name, m.r, m.class, false)
	}
}

func defineAccents() {
	// Combining accent marks used by accent commands (\hat{x}, \bar{x},
	// \tilde{x}, ...). The layout engine centers the accent glyph above
	// (or below) the base using the MATH table's top accent attachment.
	accents := []struct {
		name string
		r    rune
	}{
		{"hat", '̂'}, {"check", '̌'}, {"tilde", '̃'},
		{"acute", '́'}, {"grave", '̀'}, {"dot", '̇'},
		{"ddot", '̈'}, {"breve", '̆'}, {"bar", '̄'},
		{"vec", '⃗'}, {"widehat", '̂'}, {"widetilde", '̃'},
	}
	for _, a := range accents {
		define(a.name, a.r, ClassAccent, false)
	}
}
