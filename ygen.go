/*
Package ygen is the front end of a yacc/bison-compatible LALR parser generator.

Consists of subpackages:
  - cmd/ygen: console utility translating a grammar file to a JSON grammar dump or a plain-text report;
  - grammar: the grammar model built by the front end, with symbol/precedence/attribute
    registration, name lookup, and finalize phases (token id assignment, nullable
    computation, semantic validation);
  - gramdef: recursive-descent parser translating a tokenized grammar file into a grammar model;
  - lexer: segmenting lexer splitting a grammar file into prologue, declarations, rules, and epilogue;
  - source: source file abstraction used for error positions.

Typical usage is:

1. Write a grammar file in yacc/bison syntax: an optional %{ ... %} prologue,
declarations (%token, %type, %left/%right/%nonassoc, %union, %printer, ...),
a %% mark, rules with embedded actions, and an optional epilogue after a second %%.

2. Call gramdef.Parse (or gramdef.ParseString) to obtain a *grammar.Grammar.

3. Feed the grammar model to an automaton builder and code generator.
*/
package ygen

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	LexicalErrors   = 1   // used by lexer
	SyntaxErrors    = 101 // used by gramdef
	ReferenceErrors = 201 // used by gramdef and grammar lookups
	GrammarErrors   = 301 // used by grammar finalize phases
)

// Error is the error type used by ygen subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// lexer.Token implements this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name and line will be added to error message if provided (non-zero).
func NewError (code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 {
		msg += fmt.Sprintf(" in %s at line %d", name, line)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error () string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError (code int, msg string, params ...interface{}) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos (pos SourcePos, code int, msg string, params ...interface{}) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
