package grammar

import (
	"sort"
	"unicode/utf8"

	"github.com/cznic/sortutil"
)

// Prepare finishes symbol bookkeeping after both parsing phases: it picks
// the start symbol and assigns token ids to terminals that have none.
// Char literals take their rune value, the rest get sequential ids above
// the one-byte range, yacc style.
func (g *Grammar) Prepare () {
	if len(g.Rules) > 0 {
		g.Start = g.Rules[0].LHS
	}

	used := make(map[int]bool)
	for _, sym := range g.Symbols {
		if sym.Terminal && sym.TokenID != NoTokenID {
			used[sym.TokenID] = true
		}
	}

	nextID := 257
	for _, sym := range g.Symbols {
		if !sym.Terminal || sym.TokenID != NoTokenID {
			continue
		}

		if sym.Name[0] == '\'' {
			sym.TokenID = charValue(sym.Name)
			used[sym.TokenID] = true
			continue
		}

		for used[nextID] {
			nextID++
		}
		sym.TokenID = nextID
		used[nextID] = true
	}
}

var charEscapes = map[byte]int{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'b':  '\b',
	'f':  '\f',
	'v':  '\v',
	'0':  0,
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

// charValue returns the rune value of a quoted char literal like 'a' or '\n'.
func charValue (name string) int {
	inner := name[1 : len(name)-1]
	if inner == "" {
		return 0
	}
	if inner[0] == '\\' && len(inner) > 1 {
		v, has := charEscapes[inner[1]]
		if has {
			return v
		}
		return int(inner[1])
	}
	r, _ := utf8.DecodeRuneInString(inner)
	return int(r)
}

// ComputeNullable marks every nonterminal that can derive the empty string.
// Embedded actions derive nothing and are skipped; terminals are never
// nullable.
func (g *Grammar) ComputeNullable () {
	changed := true
	for changed {
		changed = false
		for _, r := range g.Rules {
			if r.LHS.Nullable {
				continue
			}

			nullable := true
			for _, item := range r.Items {
				if item.Sym != nil && !item.Sym.Nullable {
					nullable = false
					break
				}
			}
			if nullable {
				r.LHS.Nullable = true
				changed = true
			}
		}
	}
}

// Validate checks the finished model: at least one rule, no terminal on a
// left-hand side, every referenced nonterminal defined, every defined
// nonterminal reachable from the start symbol. Returns the first error found.
func (g *Grammar) Validate () error {
	if len(g.Rules) == 0 {
		return noRulesError()
	}

	defined := make(map[*Symbol]bool)
	for _, r := range g.Rules {
		if r.LHS.Terminal {
			return terminalRuleError(r)
		}
		defined[r.LHS] = true
	}

	var undefined []string
	for _, r := range g.Rules {
		for _, item := range r.Items {
			if item.Sym != nil && !item.Sym.Terminal && !defined[item.Sym] {
				undefined = append(undefined, item.Sym.Name)
			}
		}
	}
	if len(undefined) > 0 {
		sort.Strings(undefined)
		undefined = undefined[:sortutil.Dedupe(sort.StringSlice(undefined))]
		return undefinedNontermError(undefined)
	}

	unused := g.unreachable(defined)
	if len(unused) > 0 {
		return unusedNontermError(unused)
	}

	return nil
}

func (g *Grammar) unreachable (defined map[*Symbol]bool) []string {
	reached := map[*Symbol]bool{g.Start: true}
	queue := []*Symbol{g.Start}
	for len(queue) > 0 {
		lhs := queue[0]
		queue = queue[1:]
		for _, r := range g.Rules {
			if r.LHS != lhs {
				continue
			}
			for _, item := range r.Items {
				if item.Sym != nil && defined[item.Sym] && !reached[item.Sym] {
					reached[item.Sym] = true
					queue = append(queue, item.Sym)
				}
			}
		}
	}

	var names []string
	for sym := range defined {
		if !reached[sym] {
			names = append(names, sym.Name)
		}
	}
	sort.Strings(names)
	return names
}
