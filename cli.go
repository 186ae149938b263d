package main

import (
	"flag"
	"fmt"
	"os"
)

func showUsage() {
	fmt.Fprintf(os.Stderr, `drift - a small float-only expression language

Usage:
    drift <command> [arguments]

Commands:
    check <file>    Parse and type-check a .drift file
    ast <file>      Parse a .drift file and print its AST
    help            Show this help message

Examples:
    drift check examples/mandel.drift
    drift ast examples/mandel.drift

Use "drift <command> -h" for more information about a command.
`)
}

func checkCommand(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Show verbose checking details")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: drift check [-v] <file>\n")
		fmt.Fprintf(os.Stderr, "Parse and type-check a .drift file\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one file argument\n")
		fs.Usage()
		os.Exit(1)
	}

	filename := fs.Arg(0)

	if *verbose {
		fmt.Printf("Checking %s...\n", filename)
	}

	decls, err := parseFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if _, err := ValidateProgram(decls); err != nil {
		fmt.Printf("Type checking error in %s:\n%v\n", filename, err)
		os.Exit(1)
	}

	fmt.Printf("%s: no errors found\n", filename)

	if *verbose {
		for _, decl := range decls {
			fmt.Printf("AST: %s\n", DeclToSExpr(decl))
		}
	}
}

func astCommand(args []string) {
	fs := flag.NewFlagSet("ast", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: drift ast <file>\n")
		fmt.Fprintf(os.Stderr, "Parse a .drift file and print its AST as s-expressions\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one file argument\n")
		fs.Usage()
		os.Exit(1)
	}

	filename := fs.Arg(0)

	decls, err := parseFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	for _, decl := range decls {
		fmt.Println(DeclToSExpr(decl))
	}
}

// parseFile reads and parses a source file, reporting accumulated lex and
// parse errors as a single error.
func parseFile(filename string) ([]*Declaration, error) {
	sourceBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %v", filename, err)
	}

	l := NewLexer(sourceBytes)
	l.NextToken()
	decls := ParseProgram(l)

	if l.Errors.HasErrors() {
		return nil, fmt.Errorf("parsing errors in %s:\n%s", filename, l.Errors.String())
	}
	return decls, nil
}

func main() {
	if len(os.Args) < 2 {
		showUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "check":
		checkCommand(args)
	case "ast":
		astCommand(args)
	case "help", "-h", "--help":
		showUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		showUsage()
		os.Exit(1)
	}
}
