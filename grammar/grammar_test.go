package grammar

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestInternPromotion (t *testing.T) {
	g := New()
	sym := g.Intern("FOO", 3)
	if sym.Terminal {
		t.Fatal("interned symbol must start as a nonterminal")
	}
	if g.Intern("FOO", 7) != sym {
		t.Fatal("second Intern must return the same symbol")
	}

	promoted := g.AddTerm("FOO", "foo", 300, "val", false)
	if promoted != sym || !sym.Terminal {
		t.Fatal("AddTerm must promote the interned symbol in place")
	}
	if sym.Alias != "foo" || sym.TokenID != 300 || sym.Tag != "val" {
		t.Fatalf("wrong promoted symbol: %+v", sym)
	}
}

func TestAddTermReplace (t *testing.T) {
	g := New()
	g.AddTerm("FOO", "foo", 300, "a", true)
	sym := g.AddTerm("FOO", "", NoTokenID, "b", true)
	if sym.Alias != "" || sym.TokenID != NoTokenID || sym.Tag != "b" {
		t.Fatalf("replace must overwrite the declaration, got %+v", sym)
	}

	kept := g.AddTerm("FOO", "bar", 301, "c", false)
	if kept != sym || sym.Alias != "" || sym.TokenID != NoTokenID || sym.Tag != "b" {
		t.Fatalf("non-replacing AddTerm must keep the declaration, got %+v", sym)
	}
}

func TestCharValue (t *testing.T) {
	samples := []struct {
		name  string
		value int
	}{
		{"'a'", 'a'},
		{"'+'", '+'},
		{`'\n'`, '\n'},
		{`'\t'`, '\t'},
		{`'\0'`, 0},
		{`'\\'`, '\\'},
		{`'\''`, '\''},
		{`'\q'`, 'q'},
		{"'я'", 'я'},
	}
	for _, s := range samples {
		if got := charValue(s.name); got != s.value {
			t.Errorf("%s: expected %d, got %d", s.name, s.value, got)
		}
	}
}

func TestPrepareSkipsUsedIds (t *testing.T) {
	g := New()
	g.AddTerm("A", "", 257, "", true)
	g.AddTerm("B", "", NoTokenID, "", true)
	g.AddTerm("C", "", NoTokenID, "", true)
	lhs := g.Intern("s", 1)
	g.AddRule(lhs, []RuleItem{{Sym: g.Symbols[0]}}, []AttrMap{nil}, nil, 1)
	g.Prepare()

	b, _ := g.FindSymbolByID("B")
	c, _ := g.FindSymbolByID("C")
	if b.TokenID != 258 || c.TokenID != 259 {
		t.Fatalf("expected ids 258 and 259, got %d and %d", b.TokenID, c.TokenID)
	}
	if g.Start != lhs {
		t.Fatal("wrong start symbol")
	}
}

func TestBuildReferences (t *testing.T) {
	samples := []struct {
		text string
		refs []Reference
	}{
		{"", nil},
		{"plain code", nil},
		{"$$ = $1;", []Reference{{Result: true}, {Index: 1}}},
		{"$<int>$ = $<str>2;", []Reference{{Result: true, Tag: "int"}, {Index: 2, Tag: "str"}}},
		{"$name.field", []Reference{{Name: "name.field"}}},
		{"@$ = @12;", []Reference{{Kind: AtRef, Result: true}, {Kind: AtRef, Index: 12}}},
		{"\"$1\" '@2' $3", []Reference{{Index: 3}}},
		{"$ alone, @ alone", nil},
		{"cost$2", []Reference{{Index: 2}}},
	}

	g := New()
	for i, s := range samples {
		code := &Code{Kind: ActionCode, Text: s.text}
		g.BuildReferences(code)
		if !code.RefsResolved {
			t.Fatalf("sample %d: references not marked resolved", i)
		}
		if len(code.References) != len(s.refs) {
			t.Errorf("sample %d: expected %d references, got %v", i, len(s.refs), code.References)
			continue
		}
		for j, ref := range s.refs {
			if code.References[j] != ref {
				t.Errorf("sample %d, reference %d: expected %v, got %v", i, j, ref, code.References[j])
			}
		}
	}
}

func TestBuildReferencesOnce (t *testing.T) {
	g := New()
	code := &Code{Kind: ActionCode, Text: "$1"}
	g.BuildReferences(code)
	g.BuildReferences(code)
	if len(code.References) != 1 {
		t.Fatalf("references collected twice: %v", code.References)
	}
}

func TestAttrMapJson (t *testing.T) {
	g := New()
	attr := g.AddAttr("FOO", 1)
	sym := g.AddTerm("k", "", NoTokenID, "", true)
	m := AttrMap{attr: {Flag: true}, sym: {Number: "1"}}

	content, e := json.Marshal(m)
	if e != nil {
		t.Fatal("unexpected error: " + e.Error())
	}
	var decoded map[string]AttrValue
	e = json.Unmarshal(content, &decoded)
	if e != nil {
		t.Fatal("unexpected error: " + e.Error())
	}
	if len(decoded) != 2 || !decoded["FOO"].Flag || decoded["k"].Number != "1" {
		t.Fatalf("wrong encoding: %s", content)
	}
}

func TestReport (t *testing.T) {
	g := New()
	plus := g.AddTerm("'+'", "", NoTokenID, "", true)
	g.AddLeft(plus, 0)
	num := g.AddTerm("NUM", "number", NoTokenID, "val", true)
	e := g.Intern("expr", 1)
	g.AddRule(e, []RuleItem{{Sym: e}, {Sym: plus}, {Sym: e}}, []AttrMap{nil, nil, nil}, nil, 2)
	g.AddRule(e, []RuleItem{{Sym: num}}, []AttrMap{nil}, nil, 3)
	g.SetExpect(1)
	g.Prepare()
	g.ComputeNullable()

	var buf bytes.Buffer
	g.Report(&buf)
	out := buf.String()

	for _, part := range []string{"terminals", "nonterminals", "rules", "NUM", "%left 0", "expected conflicts: 1", "start"} {
		if !strings.Contains(out, part) {
			t.Errorf("report lacks %q:\n%s", part, out)
		}
	}
}
