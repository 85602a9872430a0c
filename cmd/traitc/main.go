// Command traitc runs trait composition over a serialized compilation
// unit and reports the members it synthesizes. It is the standalone shim
// around the composition phase: the full compiler drives the same
// pipeline internally.
//
// Usage:
//
//	traitc [-registry companions.db] unit.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/weftlang/weft/internal/ast"
	"github.com/weftlang/weft/internal/diagnostics"
	"github.com/weftlang/weft/internal/pipeline"
	"github.com/weftlang/weft/internal/registry"
	"github.com/weftlang/weft/internal/traits"
)

const (
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

func main() {
	registryPath := flag.String("registry", "", "path to a companion registry database")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: traitc [-registry companions.db] unit.yaml\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fatal(err)
	}
	unit, err := ast.DecodeUnit(data)
	if err != nil {
		fatal(err)
	}
	if unit.File == "" {
		unit.File = flag.Arg(0)
	}

	ctx := pipeline.NewPipelineContext(unit)
	if *registryPath != "" {
		store, err := registry.Open(*registryPath)
		if err != nil {
			fatal(err)
		}
		defer store.Close()
		ctx.Lookup = store
	}

	before := snapshot(unit)
	pipeline.New(&traits.ComposerProcessor{}).Run(ctx)
	report(unit, before)

	diags := ctx.Diags.All()
	for _, d := range diags {
		printDiagnostic(d)
	}
	if len(diags) > 0 {
		os.Exit(1)
	}
}

// snapshot records per-class member counts so the report can show only
// what composition appended.
func snapshot(unit *ast.Unit) map[*ast.ClassDecl][3]int {
	counts := make(map[*ast.ClassDecl][3]int)
	for _, c := range unit.Classes {
		counts[c] = [3]int{len(c.Methods), len(c.Fields), len(c.ConstructionSteps)}
	}
	return counts
}

func report(unit *ast.Unit, before map[*ast.ClassDecl][3]int) {
	for _, c := range unit.Classes {
		b := before[c]
		methods := c.Methods[b[0]:]
		fields := c.Fields[b[1]:]
		steps := c.ConstructionSteps[b[2]:]
		if len(methods) == 0 && len(fields) == 0 && len(steps) == 0 {
			continue
		}
		fmt.Printf("%s:\n", c.QualifiedName())
		for _, m := range methods {
			fmt.Printf("  method %s%s\n", m.Name, ast.Signature(m.ParamTypes()))
		}
		for _, f := range fields {
			fmt.Printf("  field %s %s\n", f.Name, f.Type.Name)
		}
		if len(steps) > 0 {
			fmt.Printf("  construction steps +%d\n", len(steps))
		}
	}
}

func printDiagnostic(d *diagnostics.DiagnosticError) {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", colorRed, d.Error(), colorReset)
		return
	}
	fmt.Fprintln(os.Stderr, d.Error())
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "traitc: %v\n", err)
	os.Exit(1)
}
