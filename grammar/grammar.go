// Package grammar defines the grammar model built by the gramdef parser:
// symbols, rules, attributes, precedence, embedded code, and the finalize
// phases run after parsing (token id assignment, nullable computation,
// semantic validation).
package grammar

import "encoding/json"

// Assoc is operator associativity for one precedence level.
type Assoc int

const (
	NonAssoc Assoc = iota
	LeftAssoc
	RightAssoc
)

var assocNames = [...]string{"nonassoc", "left", "right"}

func (a Assoc) String () string {
	return assocNames[a]
}

// Symbol is a terminal or nonterminal. Symbols are interned: one instance
// per name, shared by every rule and precedence entry referencing it.
type Symbol struct {
	Index    int    // position in Grammar.Symbols
	Name     string // identifier or quoted char literal ('+')
	Alias    string // %token alias string or empty
	Tag      string // value-union member tag or empty
	TokenID  int    // terminal token id, NoTokenID until declared or assigned
	Terminal bool
	Prec     int // precedence number or NoPrec
	Assoc    Assoc
	Nullable bool
	Line     int
}

// NoTokenID marks a terminal with no explicit token id (assigned by Prepare).
// NoPrec marks a symbol outside every precedence level.
const (
	NoTokenID = -1
	NoPrec    = -1
)

// Attr is a rule/LHS attribute identity declared with %attr.
type Attr struct {
	Index int
	Name  string
	Line  int
}

// AttrKey is a resolved attribute-map key: either *Attr or *Symbol.
type AttrKey interface {
	attrKeyName() string
}

func (a *Attr) attrKeyName () string { return a.Name }

func (s *Symbol) attrKeyName () string { return s.Name }

// AttrValue is either a boolean flag or a numeric literal.
// Number is empty for boolean entries.
type AttrValue struct {
	Flag   bool
	Number string
}

// AttrMap maps resolved attribute or symbol identities to values.
// A nil AttrMap means "no parenthesized list present"; a non-nil empty map
// means the list was present but empty.
type AttrMap map[AttrKey]AttrValue

// MarshalJSON renders the map keyed by attribute/symbol name.
func (m AttrMap) MarshalJSON () ([]byte, error) {
	names := make(map[string]AttrValue, len(m))
	for k, v := range m {
		names[k.attrKeyName()] = v
	}
	return json.Marshal(names)
}

// RuleItem is one right-hand-side element: a symbol reference or an
// embedded action. Exactly one field is non-nil.
type RuleItem struct {
	Sym  *Symbol
	Code *Code
}

// Rule is one alternative of a grammar rule.
type Rule struct {
	Index   int
	LHS     *Symbol
	Items   []RuleItem
	Attrs   []AttrMap // parallel to Items; nil slots for code items and %prec symbols
	LHSAttr AttrMap   // nil when the alternative has no @lhs clause
	Line    int
}

// PrecEntry records one symbol of a %left/%right/%nonassoc statement.
type PrecEntry struct {
	Sym   *Symbol
	Prec  int
	Assoc Assoc
}

// Printer is a %printer declaration: a code block applied to the named
// symbols or tags.
type Printer struct {
	Code    *Code
	Targets []string
	Line    int
}

// Grammar is the complete model of one grammar file. It is mutated in place
// by the gramdef parsers and finalized by Prepare, ComputeNullable, Validate.
type Grammar struct {
	Symbols     []*Symbol
	Rules       []*Rule
	Attrs       []*Attr
	Precedences []PrecEntry
	Printers    []*Printer

	Union         *Code
	InitialAction *Code
	LexParam      string
	ParseParam    string
	Expect        int

	Prologue     string
	PrologueLine int
	Epilogue     string
	EpilogueLine int

	Start *Symbol

	symIndex  map[string]int
	attrIndex map[string]int
}

func New () *Grammar {
	return &Grammar{
		symIndex:  make(map[string]int),
		attrIndex: make(map[string]int),
	}
}

func (g *Grammar) lookup (name string) *Symbol {
	i, has := g.symIndex[name]
	if !has {
		return nil
	}
	return g.Symbols[i]
}

func (g *Grammar) insert (name string, line int) *Symbol {
	sym := &Symbol{
		Index:   len(g.Symbols),
		Name:    name,
		TokenID: NoTokenID,
		Prec:    NoPrec,
		Line:    line,
	}
	g.symIndex[name] = sym.Index
	g.Symbols = append(g.Symbols, sym)
	return sym
}

// Intern returns the symbol named name, creating it if needed. New symbols
// start as nonterminals; declarations promote them to terminals.
func (g *Grammar) Intern (name string, line int) *Symbol {
	sym := g.lookup(name)
	if sym == nil {
		sym = g.insert(name, line)
	}
	return sym
}

// AddTerm registers a terminal. With replace set (a %token declaration) the
// alias, token id, and tag overwrite any earlier declaration; without it
// (%left and friends, %printer targets) an existing symbol is kept as is.
func (g *Grammar) AddTerm (name, alias string, tokenID int, tag string, replace bool) *Symbol {
	sym := g.lookup(name)
	if sym == nil {
		sym = g.insert(name, 0)
	} else if !replace && sym.Terminal {
		return sym
	}

	sym.Terminal = true
	if replace || sym.Alias == "" {
		sym.Alias = alias
	}
	if replace || sym.TokenID == NoTokenID {
		sym.TokenID = tokenID
	}
	if replace || sym.Tag == "" {
		if tag != "" || replace {
			sym.Tag = tag
		}
	}
	return sym
}

// AddType registers the value-union tag of a nonterminal.
func (g *Grammar) AddType (name, tag string) *Symbol {
	sym := g.Intern(name, 0)
	sym.Tag = tag
	return sym
}

// AddAttr registers a new rule/LHS attribute identity.
func (g *Grammar) AddAttr (name string, line int) *Attr {
	a := &Attr{Index: len(g.Attrs), Name: name, Line: line}
	g.attrIndex[name] = a.Index
	g.Attrs = append(g.Attrs, a)
	return a
}

func (g *Grammar) addPrec (sym *Symbol, prec int, assoc Assoc) {
	sym.Prec = prec
	sym.Assoc = assoc
	g.Precedences = append(g.Precedences, PrecEntry{sym, prec, assoc})
}

func (g *Grammar) AddNonassoc (sym *Symbol, prec int) {
	g.addPrec(sym, prec, NonAssoc)
}

func (g *Grammar) AddLeft (sym *Symbol, prec int) {
	g.addPrec(sym, prec, LeftAssoc)
}

func (g *Grammar) AddRight (sym *Symbol, prec int) {
	g.addPrec(sym, prec, RightAssoc)
}

// AddRule registers one rule alternative. attrs must be parallel to items.
func (g *Grammar) AddRule (lhs *Symbol, items []RuleItem, attrs []AttrMap, lhsAttr AttrMap, line int) *Rule {
	r := &Rule{
		Index:   len(g.Rules),
		LHS:     lhs,
		Items:   items,
		Attrs:   attrs,
		LHSAttr: lhsAttr,
		Line:    line,
	}
	g.Rules = append(g.Rules, r)
	return r
}

// AddPrinter registers a %printer declaration for the named symbols or tags.
func (g *Grammar) AddPrinter (targets []string, code *Code, line int) {
	g.Printers = append(g.Printers, &Printer{code, targets, line})
}

func (g *Grammar) SetUnion (code *Code, line int) {
	code.Line = line
	g.Union = code
}

func (g *Grammar) SetInitialAction (code *Code) {
	g.InitialAction = code
}

func (g *Grammar) SetLexParam (text string) {
	g.LexParam = text
}

func (g *Grammar) SetParseParam (text string) {
	g.ParseParam = text
}

func (g *Grammar) SetExpect (n int) {
	g.Expect = n
}

func (g *Grammar) SetPrologue (text string, firstLine int) {
	g.Prologue = text
	g.PrologueLine = firstLine
}

func (g *Grammar) SetEpilogue (text string, firstLine int) {
	g.Epilogue = text
	g.EpilogueLine = firstLine
}

// FindSymbolByID resolves an identifier to an already-registered symbol.
func (g *Grammar) FindSymbolByID (name string) (*Symbol, error) {
	sym := g.lookup(name)
	if sym == nil {
		return nil, unknownSymbolError(name)
	}
	return sym, nil
}

// FindSymbolBySValue resolves a textual value to a symbol: a name, a quoted
// char literal, or a %token alias string.
func (g *Grammar) FindSymbolBySValue (text string) (*Symbol, error) {
	sym := g.lookup(text)
	if sym != nil {
		return sym, nil
	}
	for _, s := range g.Symbols {
		if s.Alias != "" && s.Alias == text {
			return s, nil
		}
	}
	return nil, unknownSymbolError(text)
}

// FindAttrByID resolves an attribute name declared with %attr.
func (g *Grammar) FindAttrByID (name string) (*Attr, error) {
	i, has := g.attrIndex[name]
	if !has {
		return nil, unknownAttrError(name)
	}
	return g.Attrs[i], nil
}
