// Package gramdef translates a grammar-definition file into a grammar model.
// Parsing is a single transaction: declarations first (committing every
// symbol, precedence, and attribute registration), then rules (resolving
// names against the committed declarations), then the model's finalize
// phases. The first syntax or reference error aborts the whole parse.
package gramdef

import (
	"strings"

	"github.com/ygen-io/ygen/grammar"
	"github.com/ygen-io/ygen/lexer"
	"github.com/ygen-io/ygen/source"
)

// ParseString parses a grammar file and returns the grammar model on success.
// Returns nil and *ygen.Error on error.
func ParseString (name, content string) (*grammar.Grammar, error) {
	return Parse(source.New(name, []byte(content)))
}

// ParseBytes parses a grammar file and returns the grammar model on success.
// Returns nil and *ygen.Error on error.
func ParseBytes (name string, content []byte) (*grammar.Grammar, error) {
	return Parse(source.New(name, content))
}

// Parse parses a grammar file and returns the grammar model on success.
// Returns nil and *ygen.Error on error.
func Parse (src *source.Source) (*grammar.Grammar, error) {
	segs, e := lexer.Scan(src)
	if e != nil {
		return nil, e
	}
	if !segs.SawMark {
		return nil, declsEofError()
	}

	g := grammar.New()
	setBlocks(segs.Prologue, g.SetPrologue)
	setBlocks(segs.Epilogue, g.SetEpilogue)

	e = parseDecls(segs.Decls, g)
	if e != nil {
		return nil, e
	}
	e = parseRules(segs.Rules, g)
	if e != nil {
		return nil, e
	}

	g.Prepare()
	g.ComputeNullable()
	e = g.Validate()
	if e != nil {
		return nil, e
	}
	return g, nil
}

// setBlocks concatenates prologue or epilogue fragments and stores them with
// the first fragment's line number.
func setBlocks (blocks []lexer.TextBlock, set func(text string, firstLine int)) {
	if len(blocks) == 0 {
		return
	}

	var b strings.Builder
	for _, block := range blocks {
		b.WriteString(block.Text)
	}
	set(b.String(), blocks[0].Line)
}
