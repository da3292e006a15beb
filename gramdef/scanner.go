package gramdef

import (
	"github.com/ygen-io/ygen/lexer"
)

// scanner is a cursor over one token segment. The token slice is borrowed
// from the lexer output; advancing the cursor is the scanner's only mutation.
type scanner struct {
	tokens []*lexer.Token
	pos    int
}

func newScanner (tokens []*lexer.Token) *scanner {
	return &scanner{tokens: tokens}
}

func (s *scanner) current () *lexer.Token {
	if s.pos >= len(s.tokens) {
		return nil
	}
	return s.tokens[s.pos]
}

func (s *scanner) atEnd () bool {
	return s.pos >= len(s.tokens)
}

func (s *scanner) advance () *lexer.Token {
	t := s.current()
	if t != nil {
		s.pos++
	}
	return t
}

// consumeIf advances past the current token and returns it if its kind is
// among kinds, otherwise leaves the cursor alone and returns nil.
func (s *scanner) consumeIf (kinds ...lexer.Kind) *lexer.Token {
	t := s.current()
	if t == nil {
		return nil
	}
	for _, k := range kinds {
		if t.Kind() == k {
			s.pos++
			return t
		}
	}
	return nil
}

// consumeRequired is consumeIf that fails with a syntax error naming the
// expected kinds and the actual token (or end of input).
func (s *scanner) consumeRequired (kinds ...lexer.Kind) (*lexer.Token, error) {
	t := s.consumeIf(kinds...)
	if t == nil {
		return nil, expectedTokenError(s.current(), kinds)
	}
	return t, nil
}

// consumeOneOrMore collects consecutive tokens matching kinds and fails with
// a syntax error if there is not at least one.
func (s *scanner) consumeOneOrMore (kinds ...lexer.Kind) ([]*lexer.Token, error) {
	var result []*lexer.Token
	for {
		t := s.consumeIf(kinds...)
		if t == nil {
			break
		}
		result = append(result, t)
	}
	if len(result) == 0 {
		return nil, expectedTokenError(s.current(), kinds)
	}
	return result, nil
}
