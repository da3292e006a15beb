package grammar

import (
	"strings"

	"github.com/ygen-io/ygen"
)

// Reference error codes used by name lookups:
const (
	UnknownSymbolError = ygen.ReferenceErrors + iota
	UnknownAttrError
)

// Grammar error codes used by Validate:
const (
	NoRulesError = ygen.GrammarErrors + iota
	TerminalRuleError
	UndefinedNontermError
	UnusedNontermError
)

func unknownSymbolError (name string) *ygen.Error {
	return ygen.FormatError(UnknownSymbolError, "symbol %q is not declared", name)
}

func unknownAttrError (name string) *ygen.Error {
	return ygen.FormatError(UnknownAttrError, "attribute %q is not declared", name)
}

func noRulesError () *ygen.Error {
	return ygen.FormatError(NoRulesError, "grammar contains no rules")
}

func terminalRuleError (r *Rule) *ygen.Error {
	return ygen.FormatError(TerminalRuleError, "terminal %q on left-hand side of a rule at line %d", r.LHS.Name, r.Line)
}

func undefinedNontermError (names []string) *ygen.Error {
	return ygen.FormatError(UndefinedNontermError, "undefined nonterminals: "+strings.Join(names, ", "))
}

func unusedNontermError (names []string) *ygen.Error {
	return ygen.FormatError(UnusedNontermError, "unused nonterminals: "+strings.Join(names, ", "))
}
