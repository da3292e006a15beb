/*
ygen is a console utility parsing a yacc-style grammar definition file and
dumping the resulting grammar model.

Usage is

	ygen [-r] [-o <name>] <file>

-r flag instructs ygen to print a plain-text grammar report instead of JSON;

-o <name> defines output file name, default is standard output;

<file> defines grammar definition file parsable by gramdef.Parse().
*/
package main

import (
	"encoding/json"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/ygen-io/ygen/gramdef"
	"github.com/ygen-io/ygen/grammar"
)

var (
	printReport = kingpin.Flag("report", "print a plain-text grammar report instead of JSON").Short('r').Bool()
	outFileName = kingpin.Flag("output", "output file name, default is standard output").Short('o').PlaceHolder("<name>").String()
	inFileName  = kingpin.Arg("file", "grammar definition file name").Required().ExistingFile()
)

func main () {
	kingpin.Parse()

	src, e := os.ReadFile(*inFileName)
	kingpin.FatalIfError(e, "cannot read %s", *inFileName)
	g, e := gramdef.ParseBytes(*inFileName, src)
	kingpin.FatalIfError(e, "")

	out := os.Stdout
	if *outFileName != "" {
		out, e = os.Create(*outFileName)
		kingpin.FatalIfError(e, "cannot create %s", *outFileName)
		defer out.Close()
	}

	if *printReport {
		g.Report(out)
		return
	}

	e = dumpJson(g, out)
	kingpin.FatalIfError(e, "")
}

func dumpJson (g *grammar.Grammar, out *os.File) error {
	content, e := json.MarshalIndent(g, "", "  ")
	if e != nil {
		return e
	}
	content = append(content, '\n')
	_, e = out.Write(content)
	return e
}
