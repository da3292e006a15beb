package lexer

import (
	"strings"
	"testing"

	"github.com/ygen-io/ygen"
	"github.com/ygen-io/ygen/source"
)

func scan (t *testing.T, src string) *Segments {
	segs, e := Scan(source.New("src", []byte(src)))
	if e != nil {
		t.Fatalf("source %q: unexpected error: %s", src, e.Error())
	}
	return segs
}

func checkScanError (t *testing.T, samples []string, code int) {
	for i, src := range samples {
		_, e := Scan(source.New("src", []byte(src)))
		if e == nil {
			t.Errorf("sample %d: error expected, got success", i)
			continue
		}
		ee, f := e.(*ygen.Error)
		if !f {
			t.Errorf("sample %d: expecting *ygen.Error, got: %s", i, e)
			continue
		}
		if ee.Code != code {
			t.Errorf("sample %d: expecting error code %d, got %d (%s)", i, code, ee.Code, ee.Message)
		}
	}
}

func TestEmpty (t *testing.T) {
	sources := []string{"", " ", "  \t\r\n ", "// comment\n", "/* comment */"}
	for _, src := range sources {
		segs := scan(t, src)
		if len(segs.Decls) != 0 || len(segs.Rules) != 0 || segs.SawMark {
			t.Fatalf("source %q: expecting no tokens, got %d decls, %d rules", src, len(segs.Decls), len(segs.Rules))
		}
	}
}

func TestSegments (t *testing.T) {
	src := "%{\n#include <stdio.h>\n%}\n%token FOO\n%%\ns: FOO;\n%%\nint main () {}\n"
	segs := scan(t, src)

	if len(segs.Prologue) != 1 || segs.Prologue[0].Text != "#include <stdio.h>\n" {
		t.Fatalf("wrong prologue: %#v", segs.Prologue)
	}
	if segs.Prologue[0].Line != 2 {
		t.Fatalf("expecting prologue at line 2, got %d", segs.Prologue[0].Line)
	}
	if len(segs.Decls) != 2 {
		t.Fatalf("expecting 2 declaration tokens, got %d", len(segs.Decls))
	}
	if !segs.SawMark {
		t.Fatal("%% mark not seen")
	}
	if len(segs.Rules) != 3 {
		t.Fatalf("expecting 3 rule tokens, got %d", len(segs.Rules))
	}
	if len(segs.Epilogue) != 1 || segs.Epilogue[0].Text != "int main () {}\n" {
		t.Fatalf("wrong epilogue: %#v", segs.Epilogue)
	}
	if segs.Epilogue[0].Line != 8 {
		t.Fatalf("expecting epilogue at line 8, got %d", segs.Epilogue[0].Line)
	}
}

func TestTokenKinds (t *testing.T) {
	src := "%token <val> FOO 300 \"foo\" '+' ; | ! ( ) @lhs {act();} name name2 :"
	expected := []struct {
		kind Kind
		text string
	}{
		{KwToken, "%token"},
		{Tag, "val"},
		{Ident, "FOO"},
		{Number, "300"},
		{Str, "foo"},
		{Char, "'+'"},
		{Semicolon, ";"},
		{Bar, "|"},
		{Bang, "!"},
		{LParen, "("},
		{RParen, ")"},
		{AtLhs, "@lhs"},
		{Code, "act();"},
		{Ident, "name"},
		{IdentColon, "name2"},
	}

	segs := scan(t, src)
	if len(segs.Decls) != len(expected) {
		t.Fatalf("expecting %d tokens, got %d", len(expected), len(segs.Decls))
	}
	for i, exp := range expected {
		tok := segs.Decls[i]
		if tok.Kind() != exp.kind || tok.Text() != exp.text {
			t.Errorf("token %d: expecting %s %q, got %s %q", i, exp.kind, exp.text, tok.Kind(), tok.Text())
		}
	}
}

func TestKeywordSpellings (t *testing.T) {
	samples := []struct {
		src  string
		kind Kind
	}{
		{"%token", KwToken},
		{"%term", KwToken},
		{"%nonassoc", KwNonassoc},
		{"%binary", KwNonassoc},
		{"%lex-param", KwLexParam},
		{"%lex_param", KwLexParam},
		{"%initial_action", KwInitialAction},
	}
	for i, s := range samples {
		segs := scan(t, s.src)
		if len(segs.Decls) != 1 || segs.Decls[0].Kind() != s.kind {
			t.Errorf("sample %d: expecting %s, got %v", i, s.kind, segs.Decls)
		}
	}
}

func TestNumberValue (t *testing.T) {
	segs := scan(t, "%expect 42")
	if len(segs.Decls) != 2 || segs.Decls[1].Kind() != Number || segs.Decls[1].Number() != 42 {
		t.Fatalf("expecting number 42, got %v", segs.Decls)
	}
}

func TestIdentColonLookahead (t *testing.T) {
	// the colon may be separated by whitespace and comments
	src := "%%\na\n  /* gap */ : 'x';\nb 'y'"
	segs := scan(t, src)
	if len(segs.Rules) != 5 {
		t.Fatalf("expecting 5 tokens, got %d", len(segs.Rules))
	}
	if segs.Rules[0].Kind() != IdentColon || segs.Rules[0].Text() != "a" || segs.Rules[0].Line() != 2 {
		t.Fatalf("wrong first token: %s %q at line %d", segs.Rules[0].Kind(), segs.Rules[0].Text(), segs.Rules[0].Line())
	}
	if segs.Rules[3].Kind() != Ident || segs.Rules[3].Text() != "b" {
		t.Fatalf("expecting plain identifier b, got %s %q", segs.Rules[3].Kind(), segs.Rules[3].Text())
	}
}

func TestCodeBlocks (t *testing.T) {
	samples := []struct {
		src, text string
	}{
		{"{}", ""},
		{"{ $$ = $1; }", " $$ = $1; "},
		{"{ if (a) { b(); } }", " if (a) { b(); } "},
		{"{ c = '}'; s = \"}}\"; }", " c = '}'; s = \"}}\"; "},
		{"{ // }\n}", " // }\n"},
		{"{ /* } */ }", " /* } */ "},
	}
	for i, s := range samples {
		segs := scan(t, s.src)
		if len(segs.Decls) != 1 || segs.Decls[0].Kind() != Code {
			t.Fatalf("sample %d: expecting a single code token, got %v", i, segs.Decls)
		}
		if segs.Decls[0].Text() != s.text {
			t.Errorf("sample %d: expecting %q, got %q", i, s.text, segs.Decls[0].Text())
		}
	}
}

func TestCodeLines (t *testing.T) {
	segs := scan(t, "%%\ns:\n{\nf();\n} 'x'")
	var code *Token
	for _, tok := range segs.Rules {
		if tok.Kind() == Code {
			code = tok
		}
	}
	if code == nil {
		t.Fatal("no code token found")
	}
	if code.Line() != 3 {
		t.Fatalf("expecting code block at line 3, got %d", code.Line())
	}
	last := segs.Rules[len(segs.Rules)-1]
	if last.Kind() != Char || last.Line() != 5 {
		t.Fatalf("expecting char literal at line 5, got %s at %d", last.Kind(), last.Line())
	}
}

func TestWrongChar (t *testing.T) {
	checkScanError(t, []string{"#", "^", "@foo", "%%%$"}, WrongCharError)
}

func TestUnknownKeyword (t *testing.T) {
	checkScanError(t, []string{"%foo", "%tokens"}, UnknownKeywordError)
}

func TestUnterminated (t *testing.T) {
	samples := []string{
		"%{ no close",
		"%token <tag",
		"'x",
		"\"foo",
		"{ code",
		"{ s = \"unclosed }",
		"/* comment",
	}
	checkScanError(t, samples, UnterminatedError)
}

func TestMisplacedPrologue (t *testing.T) {
	checkScanError(t, []string{"%%\n%{ late %}"}, MisplacedPrologueError)
}

func TestErrorPos (t *testing.T) {
	_, e := Scan(source.New("src", []byte("%token FOO\n  #")))
	if e == nil {
		t.Fatal("error expected, got success")
	}
	ee, f := e.(*ygen.Error)
	if !f {
		t.Fatalf("expecting *ygen.Error, got: %s", e)
	}
	if ee.Line != 2 || ee.Col != 3 {
		t.Fatalf("expecting error at line 2, col 3, got %d, %d", ee.Line, ee.Col)
	}
	if !strings.Contains(ee.Message, "in src at line 2") {
		t.Fatalf("expecting source position in message, got %q", ee.Message)
	}
}
