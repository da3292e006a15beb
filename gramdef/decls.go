package gramdef

import (
	"github.com/ygen-io/ygen/grammar"
	"github.com/ygen-io/ygen/lexer"
)

// declsParser translates the declarations segment into grammar model
// registrations. Its only private state besides the scanner cursor is the
// precedence counter, which advances once per %left/%right/%nonassoc
// statement: all symbols listed in one statement share a level.
type declsParser struct {
	s    *scanner
	g    *grammar.Grammar
	prec int
}

func parseDecls (tokens []*lexer.Token, g *grammar.Grammar) error {
	p := &declsParser{s: newScanner(tokens), g: g}
	return p.parse()
}

func (p *declsParser) parse () error {
	for !p.s.atEnd() {
		t := p.s.advance()
		var e error

		switch t.Kind() {
		case lexer.KwExpect:
			e = p.parseExpect()
		case lexer.KwDefine:
			e = p.parseDefine()
		case lexer.KwPrinter:
			e = p.parsePrinter(t)
		case lexer.KwLexParam:
			e = p.parseLexParam()
		case lexer.KwParseParam:
			e = p.parseParseParam()
		case lexer.KwInitialAction:
			e = p.parseInitialAction()
		case lexer.KwUnion:
			e = p.parseUnion(t)
		case lexer.KwAttr:
			e = p.parseAttr()
		case lexer.KwToken:
			e = p.parseToken()
		case lexer.KwType:
			e = p.parseType()
		case lexer.KwNonassoc:
			e = p.parsePrecStatement(grammar.NonAssoc)
		case lexer.KwLeft:
			e = p.parsePrecStatement(grammar.LeftAssoc)
		case lexer.KwRight:
			e = p.parsePrecStatement(grammar.RightAssoc)
		default:
			return unexpectedTokenError(t)
		}

		if e != nil {
			return e
		}
	}
	return nil
}

func (p *declsParser) parseExpect () error {
	t, e := p.s.consumeRequired(lexer.Number)
	if e != nil {
		return e
	}
	p.g.SetExpect(t.Number())
	return nil
}

// %define settings affect code generation only, the model ignores them.
func (p *declsParser) parseDefine () error {
	_, e := p.s.consumeOneOrMore(lexer.Ident)
	return e
}

func (p *declsParser) parsePrinter (kw *lexer.Token) error {
	codeTok, e := p.s.consumeRequired(lexer.Code)
	if e != nil {
		return e
	}
	targetToks, e := p.s.consumeOneOrMore(lexer.Ident, lexer.Tag)
	if e != nil {
		return e
	}

	code := p.g.BuildCode(grammar.PrinterCode, codeTok)
	targets := make([]string, len(targetToks))
	for i, t := range targetToks {
		if t.Kind() == lexer.Tag {
			targets[i] = "<" + t.Text() + ">"
		} else {
			targets[i] = t.Text()
		}
	}
	p.g.AddPrinter(targets, code, kw.Line())
	return nil
}

func (p *declsParser) parseLexParam () error {
	t, e := p.s.consumeRequired(lexer.Code)
	if e != nil {
		return e
	}
	p.g.SetLexParam(p.g.BuildCode(grammar.LexParamCode, t).Text)
	return nil
}

func (p *declsParser) parseParseParam () error {
	t, e := p.s.consumeRequired(lexer.Code)
	if e != nil {
		return e
	}
	p.g.SetParseParam(p.g.BuildCode(grammar.ParseParamCode, t).Text)
	return nil
}

func (p *declsParser) parseInitialAction () error {
	t, e := p.s.consumeRequired(lexer.Code)
	if e != nil {
		return e
	}
	p.g.SetInitialAction(p.g.BuildCode(grammar.InitialActionCode, t))
	p.s.consumeIf(lexer.Semicolon)
	return nil
}

func (p *declsParser) parseUnion (kw *lexer.Token) error {
	t, e := p.s.consumeRequired(lexer.Code)
	if e != nil {
		return e
	}
	p.g.SetUnion(p.g.BuildCode(grammar.UnionCode, t), kw.Line())
	p.s.consumeIf(lexer.Semicolon)
	return nil
}

func (p *declsParser) parseAttr () error {
	t, e := p.s.consumeRequired(lexer.Ident)
	if e != nil {
		return e
	}
	p.g.AddAttr(t.Text(), t.Line())
	return nil
}

// parseToken handles %token tag? (ident|char number? string?)+ with replace
// semantics: a terminal declared twice keeps the second declaration.
func (p *declsParser) parseToken () error {
	tag := ""
	if t := p.s.consumeIf(lexer.Tag); t != nil {
		tag = t.Text()
	}

	t, e := p.s.consumeRequired(lexer.Ident, lexer.Char)
	for ; t != nil; t = p.s.consumeIf(lexer.Ident, lexer.Char) {
		tokenID := grammar.NoTokenID
		if num := p.s.consumeIf(lexer.Number); num != nil {
			tokenID = num.Number()
		}
		alias := ""
		if str := p.s.consumeIf(lexer.Str); str != nil {
			alias = str.Text()
		}
		p.g.AddTerm(t.Text(), alias, tokenID, tag, true)
	}
	return e
}

func (p *declsParser) parseType () error {
	tag := ""
	if t := p.s.consumeIf(lexer.Tag); t != nil {
		tag = t.Text()
	}

	items, e := p.s.consumeOneOrMore(lexer.Ident, lexer.Char, lexer.Str)
	if e != nil {
		return e
	}
	for _, t := range items {
		switch t.Kind() {
		case lexer.Str:
			sym, e := p.g.FindSymbolBySValue(t.Text())
			if e != nil {
				return e
			}
			sym.Tag = tag
		case lexer.Char:
			p.g.AddTerm(t.Text(), "", grammar.NoTokenID, tag, false)
		default:
			p.g.AddType(t.Text(), tag)
		}
	}
	return nil
}

// parsePrecStatement handles one %nonassoc/%left/%right statement. Every
// listed symbol becomes a terminal at the current precedence level; the
// counter advances by one after the whole statement.
func (p *declsParser) parsePrecStatement (assoc grammar.Assoc) error {
	items, e := p.s.consumeOneOrMore(lexer.Ident, lexer.Char, lexer.Str)
	if e != nil {
		return e
	}

	for _, t := range items {
		var sym *grammar.Symbol
		if t.Kind() == lexer.Str {
			sym, e = p.g.FindSymbolBySValue(t.Text())
			if e != nil {
				sym = p.g.AddTerm(t.Text(), "", grammar.NoTokenID, "", false)
			}
		} else {
			sym = p.g.AddTerm(t.Text(), "", grammar.NoTokenID, "", false)
		}

		switch assoc {
		case grammar.NonAssoc:
			p.g.AddNonassoc(sym, p.prec)
		case grammar.LeftAssoc:
			p.g.AddLeft(sym, p.prec)
		case grammar.RightAssoc:
			p.g.AddRight(sym, p.prec)
		}
	}

	p.prec++
	return nil
}
