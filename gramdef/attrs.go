package gramdef

import (
	"github.com/ygen-io/ygen/grammar"
	"github.com/ygen-io/ygen/lexer"
)

// parseAttrs parses an optional parenthesized attribute list shared by rule
// elements and rule left-hand sides. A nil map means no list was present,
// a non-nil empty map means "()". Entries:
//
//	NAME    — attribute set to true
//	!NAME   — attribute set to false
//	sym: N  — numeric annotation keyed by an already-declared symbol
//
// Attribute and symbol names resolve against the grammar model, so every
// declaration must be committed before the first rule is parsed.
func parseAttrs (s *scanner, g *grammar.Grammar) (grammar.AttrMap, error) {
	if s.consumeIf(lexer.LParen) == nil {
		return nil, nil
	}

	attrs := make(grammar.AttrMap)
loop:
	for {
		t := s.current()
		if t == nil {
			break
		}

		switch t.Kind() {
		case lexer.Bang:
			s.advance()
			id, e := s.consumeRequired(lexer.Ident)
			if e != nil {
				return nil, e
			}
			attr, e := g.FindAttrByID(id.Text())
			if e != nil {
				return nil, e
			}
			attrs[attr] = grammar.AttrValue{Flag: false}

		case lexer.Ident:
			s.advance()
			attr, e := g.FindAttrByID(t.Text())
			if e != nil {
				return nil, e
			}
			attrs[attr] = grammar.AttrValue{Flag: true}

		case lexer.IdentColon:
			s.advance()
			num, e := s.consumeRequired(lexer.Number)
			if e != nil {
				return nil, e
			}
			sym, e := g.FindSymbolBySValue(t.Text())
			if e != nil {
				return nil, e
			}
			attrs[sym] = grammar.AttrValue{Number: num.Text()}

		default:
			break loop
		}
	}

	_, e := s.consumeRequired(lexer.RParen)
	if e != nil {
		return nil, e
	}
	return attrs, nil
}
