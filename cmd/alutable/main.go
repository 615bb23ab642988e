// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/nibalu/alu"
	"github.com/ezrec/nibalu/table"
	"github.com/ezrec/nibalu/translate"
	"github.com/ezrec/nibalu/verify"
)

// properties collects repeated -p flags.
type properties []string

func (p *properties) String() string {
	return strings.Join(*p, "; ")
}

func (p *properties) Set(value string) error {
	*p = append(*p, value)
	return nil
}

func main() {
	var name string
	var output string
	var check string
	var subset string
	var props properties
	var verbose bool

	names := make([]string, len(table.Configs))
	for n, cfg := range table.Configs {
		names[n] = cfg.Name
	}

	flag.StringVar(&name, "t", table.ConfigArithmetic.Name, "Table: "+strings.Join(names, ", "))
	flag.StringVar(&output, "o", "", "Output file, '-' for stdout (default: the table's filename)")
	flag.StringVar(&check, "c", "", "Table file to verify instead of generating")
	flag.StringVar(&subset, "s", "", "Override the opcode subset, e.g. 'add,sub'")
	flag.Var(&props, "p", "Starlark property every row must satisfy (repeatable)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg, err := table.Lookup(name)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	if len(subset) != 0 {
		override, err := alu.ParseSubset(subset)
		if err != nil {
			log.Fatalf("%v: %v", subset, err)
		}
		cfg = cfg.WithSubset(override)
	}

	err = cfg.Validate()
	if err != nil {
		log.Fatalf("%v: %v", cfg.Name, err)
	}

	var checks []*verify.Property
	for _, expr := range props {
		prop, err := verify.NewProperty(expr)
		if err != nil {
			log.Fatalf("%v: %v", expr, err)
		}
		checks = append(checks, prop)
	}

	var rows []table.Row
	if len(check) != 0 {
		rows = verifyFile(check, cfg)
	} else {
		rows = generate(output, cfg, verbose)
	}

	err = verify.Properties(rows, checks...)
	if err != nil {
		log.Fatalf("%v: %v", cfg.Name, err)
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		translate.Fprintf(os.Stderr, "%v: %d rows (16 x 16 x %d opcodes: %v), %d properties hold\n",
			cfg.Name, len(rows), cfg.Subset.Len(), cfg.Subset, len(checks))
	}
}

// generate writes the table and returns its rows.
func generate(output string, cfg table.Config, verbose bool) (rows []table.Row) {
	gen := &table.Generator{Config: cfg, Verbose: verbose}

	var err error
	if output == "-" {
		_, err = gen.Write(os.Stdout)
	} else {
		if len(output) == 0 {
			output = cfg.Filename
		}
		_, err = gen.Generate(output)
	}
	if err != nil {
		log.Fatal(err)
	}

	for row := range cfg.Rows() {
		rows = append(rows, row)
	}
	return
}

// verifyFile reads a table back and checks it against the evaluator.
func verifyFile(path string, cfg table.Config) (rows []table.Row) {
	inf, err := os.Open(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	defer inf.Close()

	sc, rows, err := table.Read(inf)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	if sc != cfg.Schema {
		log.Fatalf("%v: schema %v, table %v expects %v", path, sc, cfg.Name, cfg.Schema)
	}

	err = verify.Table(cfg, rows)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	return
}
