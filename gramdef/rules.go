package gramdef

import (
	"github.com/ygen-io/ygen/grammar"
	"github.com/ygen-io/ygen/lexer"
)

// rulesParser translates the rules segment. Symbol and attribute names are
// resolved against the declarations already committed to the model, so
// declarations parsing must have finished before this parser runs.
type rulesParser struct {
	s *scanner
	g *grammar.Grammar
}

func parseRules (tokens []*lexer.Token, g *grammar.Grammar) error {
	p := &rulesParser{newScanner(tokens), g}
	for !p.s.atEnd() {
		e := p.parseGroup()
		if e != nil {
			return e
		}
	}
	return nil
}

// parseGroup parses one left-hand side with all its alternatives. The
// terminating semicolon is optional when a new LHS or the end of the
// segment follows.
func (p *rulesParser) parseGroup () error {
	lhsTok, e := p.s.consumeRequired(lexer.IdentColon)
	if e != nil {
		return e
	}
	lhs := p.g.Intern(lhsTok.Text(), lhsTok.Line())

	alt, e := p.parseAlternative()
	if e != nil {
		return e
	}
	p.addRule(lhs, alt, lhsTok.Line())

	for {
		t := p.s.consumeIf(lexer.Bar, lexer.Semicolon)
		if t == nil {
			// a new LHS or end of input ends the group without a semicolon
			return nil
		}
		if t.Kind() == lexer.Semicolon {
			return nil
		}

		alt, e = p.parseAlternative()
		if e != nil {
			return e
		}
		p.addRule(lhs, alt, t.Line())
	}
}

// addRule registers one alternative. The rule line is the first RHS
// element's line when the body is non-empty, otherwise the line of the
// token that opened the alternative (the LHS or the bar).
func (p *rulesParser) addRule (lhs *grammar.Symbol, alt alternative, openLine int) {
	line := alt.firstLine
	if line == 0 {
		line = openLine
	}
	p.g.AddRule(lhs, alt.items, alt.attrs, alt.lhsAttr, line)
}

type alternative struct {
	items     []grammar.RuleItem
	attrs     []grammar.AttrMap
	lhsAttr   grammar.AttrMap
	firstLine int
}

func (p *rulesParser) parseAlternative () (alternative, error) {
	var alt alternative
	seenPrec := false
	codeAfterPrec := false

	for {
		t := p.s.current()
		if t == nil {
			return alt, nil
		}

		switch t.Kind() {
		case lexer.Ident, lexer.Char:
			if seenPrec {
				return alt, symbolAfterPrecError(t)
			}
			p.s.advance()
			// char literals are terminals implicitly, identifiers stay
			// nonterminals until a declaration says otherwise
			var sym *grammar.Symbol
			if t.Kind() == lexer.Char {
				sym = p.g.AddTerm(t.Text(), "", grammar.NoTokenID, "", false)
			} else {
				sym = p.g.Intern(t.Text(), t.Line())
			}
			am, e := parseAttrs(p.s, p.g)
			if e != nil {
				return alt, e
			}
			alt.append(grammar.RuleItem{Sym: sym}, am, t.Line())

		case lexer.KwPrec:
			p.s.advance()
			seenPrec = true
			nameTok, e := p.s.consumeRequired(lexer.Ident, lexer.Str, lexer.Char)
			if e != nil {
				return alt, e
			}
			sym, e := p.g.FindSymbolBySValue(nameTok.Text())
			if e != nil {
				return alt, e
			}
			alt.append(grammar.RuleItem{Sym: sym}, nil, t.Line())

		case lexer.Code:
			if seenPrec {
				if codeAfterPrec {
					return alt, codeAfterPrecError(t)
				}
				codeAfterPrec = true
			}
			p.s.advance()
			code := p.g.BuildCode(grammar.ActionCode, t)
			p.g.BuildReferences(code)
			alt.append(grammar.RuleItem{Code: code}, nil, t.Line())

		case lexer.AtLhs:
			p.s.advance()
			am, e := parseAttrs(p.s, p.g)
			if e != nil {
				return alt, e
			}
			alt.lhsAttr = am

		case lexer.Bar, lexer.Semicolon, lexer.IdentColon:
			// terminators stay in the stream for parseGroup to inspect
			return alt, nil

		default:
			return alt, unexpectedTokenError(t)
		}
	}
}

func (a *alternative) append (item grammar.RuleItem, am grammar.AttrMap, line int) {
	a.items = append(a.items, item)
	a.attrs = append(a.attrs, am)
	if a.firstLine == 0 {
		a.firstLine = line
	}
}
