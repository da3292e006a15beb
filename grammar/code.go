package grammar

import (
	"github.com/ygen-io/ygen/lexer"
)

// CodeKind tags the role of an embedded code block.
type CodeKind int

const (
	PrinterCode CodeKind = iota
	LexParamCode
	ParseParamCode
	InitialActionCode
	UnionCode
	ActionCode
)

var codeKindNames = [...]string{
	"printer", "lex-param", "parse-param", "initial-action", "union", "action",
}

func (k CodeKind) String () string {
	return codeKindNames[k]
}

// RefKind distinguishes $-references (semantic values) from @-references
// (source locations) inside action code.
type RefKind int

const (
	DollarRef RefKind = iota
	AtRef
)

// Reference is one value or location reference found in action code:
// $$, $3, $expr, @2, @$, optionally with an explicit $<tag> override.
type Reference struct {
	Kind   RefKind
	Index  int    // 1-based position, 0 for $$, @$ and named references
	Name   string // named reference ($expr) or empty
	Result bool   // true for $$ and @$
	Tag    string // explicit <tag> override or empty
}

// Code is an embedded foreign-language code block.
type Code struct {
	Kind CodeKind
	Text string
	Line int

	// References lists value/location references found in Text,
	// RefsResolved is set once BuildReferences has run.
	References   []Reference
	RefsResolved bool
}

// BuildCode wraps a code-block token into a Code of the given kind.
func (g *Grammar) BuildCode (kind CodeKind, tok *lexer.Token) *Code {
	return &Code{Kind: kind, Text: tok.Text(), Line: tok.Line()}
}

// BuildReferences scans the code body for $$/$N/$name and @$/@N references
// and records them. Rewriting the references into target-language accessors
// is left to the code generator.
func (g *Grammar) BuildReferences (code *Code) {
	if code.RefsResolved {
		return
	}

	text := code.Text
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '$':
			ref, next, ok := scanDollarRef(text, i)
			if ok {
				code.References = append(code.References, ref)
				i = next - 1
			}
		case '@':
			ref, next, ok := scanAtRef(text, i)
			if ok {
				code.References = append(code.References, ref)
				i = next - 1
			}
		case '\'', '"':
			i = skipCodeLiteral(text, i)
		}
	}
	code.RefsResolved = true
}

func scanDollarRef (text string, i int) (ref Reference, next int, ok bool) {
	i++
	if i < len(text) && text[i] == '<' {
		end := i + 1
		for end < len(text) && text[end] != '>' && text[end] != '\n' {
			end++
		}
		if end >= len(text) || text[end] != '>' {
			return ref, i, false
		}
		ref.Tag = text[i+1 : end]
		i = end + 1
	}
	if i >= len(text) {
		return ref, i, false
	}

	switch {
	case text[i] == '$':
		ref.Result = true
		return ref, i + 1, true
	case isDigit(text[i]):
		n := 0
		for i < len(text) && isDigit(text[i]) {
			n = n*10 + int(text[i]-'0')
			i++
		}
		ref.Index = n
		return ref, i, true
	case isRefNameStart(text[i]):
		start := i
		for i < len(text) && isRefNameChar(text[i]) {
			i++
		}
		ref.Name = text[start:i]
		return ref, i, true
	}
	return ref, i, false
}

func scanAtRef (text string, i int) (ref Reference, next int, ok bool) {
	ref.Kind = AtRef
	i++
	if i >= len(text) {
		return ref, i, false
	}

	switch {
	case text[i] == '$':
		ref.Result = true
		return ref, i + 1, true
	case isDigit(text[i]):
		n := 0
		for i < len(text) && isDigit(text[i]) {
			n = n*10 + int(text[i]-'0')
			i++
		}
		ref.Index = n
		return ref, i, true
	}
	return ref, i, false
}

// skipCodeLiteral skips a string or char literal so that $ and @ inside
// literals are not taken for references.
func skipCodeLiteral (text string, i int) int {
	match := text[i]
	i++
	for i < len(text) {
		if text[i] == '\\' {
			i += 2
			continue
		}
		if text[i] == match || text[i] == '\n' {
			return i
		}
		i++
	}
	return i - 1
}

func isDigit (c byte) bool {
	return c >= '0' && c <= '9'
}

func isRefNameStart (c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isRefNameChar (c byte) bool {
	return isRefNameStart(c) || isDigit(c) || c == '.'
}
