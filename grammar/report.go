package grammar

import (
	"io"

	"github.com/cznic/mathutil"
	"github.com/cznic/strutil"
)

// Report writes a human-readable summary of the grammar model: terminals
// with token ids and precedence, nonterminals with nullability, and rules.
// Meant for tool output and debugging, the format is not stable.
func (g *Grammar) Report (w io.Writer) {
	f := strutil.IndentFormatter(w, "  ")

	width := 0
	for _, sym := range g.Symbols {
		width = mathutil.Max(width, len(sym.Name))
	}

	f.Format("terminals%i\n")
	for _, sym := range g.Symbols {
		if !sym.Terminal {
			continue
		}
		f.Format("%-*s id %d", width, sym.Name, sym.TokenID)
		if sym.Alias != "" {
			f.Format(" %q", sym.Alias)
		}
		if sym.Tag != "" {
			f.Format(" <%s>", sym.Tag)
		}
		if sym.Prec != NoPrec {
			f.Format(" %%%s %d", sym.Assoc, sym.Prec)
		}
		f.Format("\n")
	}
	f.Format("%u\nnonterminals%i\n")
	for _, sym := range g.Symbols {
		if sym.Terminal {
			continue
		}
		f.Format("%-*s", width, sym.Name)
		if sym.Tag != "" {
			f.Format(" <%s>", sym.Tag)
		}
		if sym.Nullable {
			f.Format(" nullable")
		}
		if sym == g.Start {
			f.Format(" start")
		}
		f.Format("\n")
	}
	f.Format("%u\nrules%i\n")
	for _, r := range g.Rules {
		f.Format("%d: %s:", r.Index, r.LHS.Name)
		for i, item := range r.Items {
			if item.Sym != nil {
				f.Format(" %s", item.Sym.Name)
			} else {
				f.Format(" {action}")
			}
			if r.Attrs[i] != nil {
				f.Format("(%d attrs)", len(r.Attrs[i]))
			}
		}
		if r.LHSAttr != nil {
			f.Format(" @lhs(%d attrs)", len(r.LHSAttr))
		}
		f.Format(" // line %d\n", r.Line)
	}
	f.Format("%u")

	if g.Expect > 0 {
		f.Format("\nexpected conflicts: %d\n", g.Expect)
	}
}
