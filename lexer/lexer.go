// Package lexer splits a grammar file into its four segments (prologue,
// declarations, rules, epilogue) and tokenizes the declarations and rules.
// The prologue and epilogue are kept as raw text blocks with line numbers,
// declaration and rule segments become token sequences consumed by gramdef.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/ygen-io/ygen"
	"github.com/ygen-io/ygen/source"
)

// Error codes used by lexer:
const (
	// WrongCharError indicates a character that cannot start any token.
	WrongCharError = ygen.LexicalErrors + iota

	// UnknownKeywordError indicates an unrecognized %-keyword.
	UnknownKeywordError

	// UnterminatedError indicates a prologue fence, code block, literal, tag,
	// or block comment missing its closing delimiter.
	UnterminatedError

	// MisplacedPrologueError indicates a %{ fence inside the rules segment.
	MisplacedPrologueError
)

// TextBlock is a raw prologue or epilogue fragment with its first line number.
type TextBlock struct {
	Text string
	Line int
}

// Segments is the lexer output: the four segments of one grammar file.
// SawMark reports whether a %% mark separated declarations from rules;
// without it the whole file is declarations and the parser rejects it.
type Segments struct {
	Prologue []TextBlock
	Decls    []*Token
	Rules    []*Token
	Epilogue []TextBlock
	SawMark  bool
}

var keywords = map[string]Kind{
	"expect":         KwExpect,
	"define":         KwDefine,
	"printer":        KwPrinter,
	"lex-param":      KwLexParam,
	"parse-param":    KwParseParam,
	"initial-action": KwInitialAction,
	"union":          KwUnion,
	"attr":           KwAttr,
	"token":          KwToken,
	"term":           KwToken,
	"type":           KwType,
	"nonassoc":       KwNonassoc,
	"binary":         KwNonassoc,
	"left":           KwLeft,
	"right":          KwRight,
	"prec":           KwPrec,
}

type scanner struct {
	src  *source.Source
	buf  []byte
	pos  int
	line int
}

// Scan tokenizes a grammar file. Declarations run until the first %% mark,
// rules until the second one, the remainder is the epilogue. Scanning stops
// at the first lexical error.
func Scan (src *source.Source) (*Segments, error) {
	s := &scanner{src: src, buf: src.Content(), line: 1}
	return s.scan()
}

func (s *scanner) scan () (*Segments, error) {
	segs := &Segments{}
	inRules := false

	for {
		e := s.skipSpace()
		if e != nil {
			return nil, e
		}
		if s.pos >= len(s.buf) {
			return segs, nil
		}

		if s.buf[s.pos] == '%' && s.pos+1 < len(s.buf) {
			switch s.buf[s.pos+1] {
			case '%':
				s.pos += 2
				if !inRules {
					inRules = true
					segs.SawMark = true
					continue
				}
				segs.Epilogue = append(segs.Epilogue, s.restBlock())
				return segs, nil

			case '{':
				if inRules {
					return nil, s.posError(MisplacedPrologueError, "%{ section inside rules")
				}
				block, e := s.prologue()
				if e != nil {
					return nil, e
				}
				segs.Prologue = append(segs.Prologue, block)
				continue
			}
		}

		t, e := s.next()
		if e != nil {
			return nil, e
		}
		if inRules {
			segs.Rules = append(segs.Rules, t)
		} else {
			segs.Decls = append(segs.Decls, t)
		}
	}
}

func isIdentStart (c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '.'
}

func isIdentChar (c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

func (s *scanner) next () (*Token, error) {
	c := s.buf[s.pos]
	line := s.line

	switch {
	case c == ';':
		s.pos++
		return s.tok(Semicolon, ";", line), nil
	case c == '|':
		s.pos++
		return s.tok(Bar, "|", line), nil
	case c == '!':
		s.pos++
		return s.tok(Bang, "!", line), nil
	case c == '(':
		s.pos++
		return s.tok(LParen, "(", line), nil
	case c == ')':
		s.pos++
		return s.tok(RParen, ")", line), nil
	case c == '{':
		return s.code()
	case c == '<':
		return s.tag()
	case c == '\'':
		return s.charLit()
	case c == '"':
		return s.strLit()
	case c >= '0' && c <= '9':
		return s.number()
	case c == '%':
		return s.keyword()
	case c == '@':
		return s.atMarker()
	case isIdentStart(c):
		return s.ident()
	}

	return nil, s.wrongCharError()
}

func (s *scanner) tok (kind Kind, text string, line int) *Token {
	return NewToken(kind, text, 0, s.src.Name(), line)
}

func (s *scanner) posError (code int, msg string, params ...interface{}) *ygen.Error {
	line, col := s.src.LineCol(s.pos)
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return ygen.NewError(code, msg, s.src.Name(), line, col)
}

func (s *scanner) wrongCharError () *ygen.Error {
	r, _ := utf8.DecodeRune(s.buf[s.pos:])
	return s.posError(WrongCharError, "wrong char %q (u+%x)", r, r)
}

// skipSpace skips whitespace and // and /* */ comments, counting lines.
func (s *scanner) skipSpace () error {
	for s.pos < len(s.buf) {
		switch s.buf[s.pos] {
		case ' ', '\t', '\v', '\r':
			s.pos++
		case '\n':
			s.line++
			s.pos++
		case '/':
			if s.pos+1 >= len(s.buf) {
				return nil
			}
			switch s.buf[s.pos+1] {
			case '/':
				for s.pos < len(s.buf) && s.buf[s.pos] != '\n' {
					s.pos++
				}
			case '*':
				e := s.skipBlockComment()
				if e != nil {
					return e
				}
			default:
				return nil
			}
		default:
			return nil
		}
	}
	return nil
}

func (s *scanner) skipBlockComment () error {
	start := s.pos
	s.pos += 2
	for s.pos+1 < len(s.buf) {
		if s.buf[s.pos] == '*' && s.buf[s.pos+1] == '/' {
			s.pos += 2
			return nil
		}
		if s.buf[s.pos] == '\n' {
			s.line++
		}
		s.pos++
	}
	s.pos = start
	return s.posError(UnterminatedError, "unterminated comment")
}

func (s *scanner) prologue () (TextBlock, error) {
	start := s.pos
	s.pos += 2
	if s.pos < len(s.buf) && s.buf[s.pos] == '\n' {
		s.pos++
		s.line++
	}
	firstLine := s.line
	textStart := s.pos

	for s.pos+1 < len(s.buf) {
		if s.buf[s.pos] == '%' && s.buf[s.pos+1] == '}' {
			text := string(s.buf[textStart:s.pos])
			s.pos += 2
			return TextBlock{text, firstLine}, nil
		}
		if s.buf[s.pos] == '\n' {
			s.line++
		}
		s.pos++
	}
	s.pos = start
	return TextBlock{}, s.posError(UnterminatedError, "unterminated %{ section")
}

// restBlock captures everything after the second %% mark as the epilogue.
func (s *scanner) restBlock () TextBlock {
	if s.pos < len(s.buf) && s.buf[s.pos] == '\n' {
		s.pos++
		s.line++
	}
	block := TextBlock{string(s.buf[s.pos:]), s.line}
	s.pos = len(s.buf)
	return block
}

func (s *scanner) ident () (*Token, error) {
	line := s.line
	start := s.pos
	for s.pos < len(s.buf) && isIdentChar(s.buf[s.pos]) {
		s.pos++
	}
	text := string(s.buf[start:s.pos])

	// lookahead for a colon (maybe after whitespace or comments)
	savedPos, savedLine := s.pos, s.line
	e := s.skipSpace()
	if e == nil && s.pos < len(s.buf) && s.buf[s.pos] == ':' {
		s.pos++
		return s.tok(IdentColon, text, line), nil
	}
	s.pos, s.line = savedPos, savedLine
	return s.tok(Ident, text, line), nil
}

func (s *scanner) keyword () (*Token, error) {
	line := s.line
	start := s.pos
	s.pos++
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		if isIdentChar(c) || c == '-' {
			s.pos++
		} else {
			break
		}
	}
	if s.pos == start+1 {
		s.pos = start
		return nil, s.wrongCharError()
	}

	word := string(s.buf[start+1 : s.pos])
	kind, has := keywords[normalizeKeyword(word)]
	if !has {
		s.pos = start
		return nil, s.posError(UnknownKeywordError, "unknown declaration %%%s", word)
	}
	return s.tok(kind, "%"+word, line), nil
}

// normalizeKeyword maps underscore spellings (%lex_param) to the canonical
// dashed ones (%lex-param), both are accepted on input.
func normalizeKeyword (word string) string {
	b := []byte(word)
	for i, c := range b {
		if c == '_' {
			b[i] = '-'
		}
	}
	return string(b)
}

func (s *scanner) atMarker () (*Token, error) {
	line := s.line
	start := s.pos
	s.pos++
	for s.pos < len(s.buf) && isIdentChar(s.buf[s.pos]) {
		s.pos++
	}
	if string(s.buf[start+1:s.pos]) != "lhs" {
		s.pos = start
		return nil, s.wrongCharError()
	}
	return s.tok(AtLhs, "@lhs", line), nil
}

func (s *scanner) number () (*Token, error) {
	line := s.line
	start := s.pos
	n := 0
	for s.pos < len(s.buf) && s.buf[s.pos] >= '0' && s.buf[s.pos] <= '9' {
		n = n*10 + int(s.buf[s.pos]-'0')
		s.pos++
	}
	return NewToken(Number, string(s.buf[start:s.pos]), n, s.src.Name(), line), nil
}

func (s *scanner) tag () (*Token, error) {
	line := s.line
	start := s.pos
	s.pos++
	for s.pos < len(s.buf) && s.buf[s.pos] != '>' && s.buf[s.pos] != '\n' {
		s.pos++
	}
	if s.pos >= len(s.buf) || s.buf[s.pos] != '>' {
		s.pos = start
		return nil, s.posError(UnterminatedError, "unterminated < ... > clause")
	}
	text := string(s.buf[start+1 : s.pos])
	s.pos++
	return s.tok(Tag, text, line), nil
}

// charLit scans a char literal. Token text keeps the quotes: quoted chars
// are symbol names of their own ('+' names the terminal '+').
func (s *scanner) charLit () (*Token, error) {
	line := s.line
	start := s.pos
	s.pos++
	for s.pos < len(s.buf) && s.buf[s.pos] != '\n' {
		c := s.buf[s.pos]
		if c == '\\' {
			s.pos += 2
			continue
		}
		s.pos++
		if c == '\'' {
			return s.tok(Char, string(s.buf[start:s.pos]), line), nil
		}
	}
	s.pos = start
	return nil, s.posError(UnterminatedError, "illegal or missing closing '")
}

func (s *scanner) strLit () (*Token, error) {
	line := s.line
	start := s.pos
	s.pos++
	for s.pos < len(s.buf) && s.buf[s.pos] != '\n' {
		c := s.buf[s.pos]
		if c == '\\' {
			s.pos += 2
			continue
		}
		s.pos++
		if c == '"' {
			return s.tok(Str, string(s.buf[start+1:s.pos-1]), line), nil
		}
	}
	s.pos = start
	return nil, s.posError(UnterminatedError, "illegal or missing closing \"")
}

// code scans an embedded code block with balanced braces, skipping braces
// inside string/char literals and comments. Token text excludes the outer
// braces, token line is the line of the opening brace.
func (s *scanner) code () (*Token, error) {
	line := s.line
	start := s.pos
	depth := 0

	for s.pos < len(s.buf) {
		switch s.buf[s.pos] {
		case '{':
			depth++
			s.pos++
		case '}':
			depth--
			s.pos++
			if depth == 0 {
				return s.tok(Code, string(s.buf[start+1:s.pos-1]), line), nil
			}
		case '\n':
			s.line++
			s.pos++
		case '\'', '"':
			e := s.skipLiteral()
			if e != nil {
				return nil, e
			}
		case '/':
			if s.pos+1 < len(s.buf) && (s.buf[s.pos+1] == '/' || s.buf[s.pos+1] == '*') {
				e := s.skipSpace()
				if e != nil {
					return nil, e
				}
			} else {
				s.pos++
			}
		default:
			s.pos++
		}
	}
	s.pos = start
	return nil, s.posError(UnterminatedError, "unterminated code block")
}

// skipLiteral skips a string or char literal inside a code block.
// Unlike grammar-level literals these may span lines.
func (s *scanner) skipLiteral () error {
	start := s.pos
	match := s.buf[s.pos]
	s.pos++
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		if c == '\\' {
			s.pos += 2
			continue
		}
		if c == '\n' {
			s.line++
		}
		s.pos++
		if c == match {
			return nil
		}
	}
	s.pos = start
	return s.posError(UnterminatedError, "unterminated literal in code block")
}
