package ygen_test

import (
	"fmt"

	"github.com/ygen-io/ygen/gramdef"
)

func Example () {
	input := `
%token <val> NUM "number"
%left '+' '-'
%left '*' '/'

%%

expr:
  expr '+' expr { $$ = $1 + $3; }
| expr '*' expr { $$ = $1 * $3; }
| NUM
;
`
	g, e := gramdef.ParseString("expr.y", input)
	if e != nil {
		fmt.Println(e)
		return
	}

	fmt.Printf("start: %s, rules: %d\n", g.Start.Name, len(g.Rules))
	num, _ := g.FindSymbolBySValue("number")
	fmt.Printf("NUM: id %d, tag %s\n", num.TokenID, num.Tag)
	times, _ := g.FindSymbolBySValue("'*'")
	fmt.Printf("'*': %%%s %d, id %d\n", times.Assoc, times.Prec, times.TokenID)
	// Output:
	// start: expr, rules: 3
	// NUM: id 257, tag val
	// '*': %left 1, id 42
}
