package lexer

// Kind identifies a token kind. The set is closed: the gramdef parsers
// dispatch with exhaustive switches over it.
type Kind int

const (
	Ident Kind = iota
	IdentColon
	Char
	Str
	Number
	Tag
	Semicolon
	Bar
	Bang
	AtLhs
	LParen
	RParen
	Code

	// declaration and rule keywords, one kind per keyword
	KwExpect
	KwDefine
	KwPrinter
	KwLexParam
	KwParseParam
	KwInitialAction
	KwUnion
	KwAttr
	KwToken
	KwType
	KwNonassoc
	KwLeft
	KwRight
	KwPrec
)

var kindNames = [...]string{
	"identifier",
	"identifier followed by colon",
	"char literal",
	"string literal",
	"number",
	"tag",
	"\";\"",
	"\"|\"",
	"\"!\"",
	"\"@lhs\"",
	"\"(\"",
	"\")\"",
	"code block",
	"%expect",
	"%define",
	"%printer",
	"%lex-param",
	"%parse-param",
	"%initial-action",
	"%union",
	"%attr",
	"%token",
	"%type",
	"%nonassoc",
	"%left",
	"%right",
	"%prec",
}

// String returns a human-readable kind name used in error messages.
func (k Kind) String () string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Token is one lexeme of the declarations or rules segment.
// Tokens are immutable once produced by the lexer.
type Token struct {
	kind       Kind
	text       string
	number     int
	sourceName string
	line       int
}

// NewToken creates a token. text holds the identifier name, literal text,
// tag name, or code block body; number holds the value of a Number token.
func NewToken (kind Kind, text string, number int, sourceName string, line int) *Token {
	return &Token{kind, text, number, sourceName, line}
}

func (t *Token) Kind () Kind {
	return t.kind
}

func (t *Token) Text () string {
	return t.text
}

// Number returns the numeric value of a Number token, 0 for other kinds.
func (t *Token) Number () int {
	return t.number
}

func (t *Token) SourceName () string {
	return t.sourceName
}

func (t *Token) Line () int {
	return t.line
}

// Col always returns 0: tokens track lines only. Implements ygen.SourcePos.
func (t *Token) Col () int {
	return 0
}
