package gramdef

import (
	"strings"

	"github.com/ygen-io/ygen"
	"github.com/ygen-io/ygen/lexer"
)

// Syntax error codes used by gramdef:
const (
	UnexpectedTokenError = ygen.SyntaxErrors + iota
	UnexpectedEofError
	SymbolAfterPrecError
	CodeAfterPrecError
)

func expectedTokenError (actual *lexer.Token, kinds []lexer.Kind) *ygen.Error {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	expected := strings.Join(names, " or ")

	if actual == nil {
		return ygen.FormatError(UnexpectedEofError, "unexpected end of input, expecting %s", expected)
	}
	return ygen.FormatErrorPos(actual, UnexpectedTokenError, "expecting %s, got %s", expected, actual.Kind())
}

func unexpectedTokenError (t *lexer.Token) *ygen.Error {
	return ygen.FormatErrorPos(t, UnexpectedTokenError, "unexpected %s token", t.Kind())
}

func declsEofError () *ygen.Error {
	return ygen.FormatError(UnexpectedEofError, "reached end of input within declarations")
}

func symbolAfterPrecError (t *lexer.Token) *ygen.Error {
	return ygen.FormatErrorPos(t, SymbolAfterPrecError, "symbol %q after %%prec", t.Text())
}

func codeAfterPrecError (t *lexer.Token) *ygen.Error {
	return ygen.FormatErrorPos(t, CodeAfterPrecError, "multiple code blocks after %prec")
}
