/*
Differentiator starts an interactive or batch symbolic differentiation
session.

With no path argument, it repeatedly reads an expression from stdin,
differentiates it with respect to the configured variable, simplifies the
result, and prints it. With a path argument, it reads the file's entire
contents as one expression and overwrites the file with the differentiated,
simplified result.

Usage:

	differentiator [flags] [path]

The flags are:

	-v, --version
		Print the current version and exit.

	-x, --var NAME
		The variable to differentiate with respect to. Defaults to "x".

	-d, --direct
		Force reading directly from the console instead of using GNU
		readline based routines for reading expression input.

	--describe
		Print the operator/function catalogue as a table and exit.

	--dot EXPR
		Parse EXPR, print its AST as Graphviz "dot" source, and exit.

Errors are written to the console and appended to differentiator.log.
*/
package main

import (
	"fmt"
	"os"

	symdiff "github.com/dekarrin/symdiff"
	"github.com/dekarrin/symdiff/internal/expr"
	"github.com/dekarrin/symdiff/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitSessionError indicates an unsuccessful program execution due to a
	// problem reading or differentiating input.
	ExitSessionError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the engine.
	ExitInitError
)

var (
	returnCode   = ExitSuccess
	flagVersion  = pflag.BoolP("version", "v", false, "Give the current version and exit")
	diffVar      = pflag.StringP("var", "x", "x", "The variable to differentiate with respect to")
	forceDirect  = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
	flagDescribe = pflag.Bool("describe", false, "Print the operator/function catalogue as a table and exit")
	flagDot      = pflag.String("dot", "", "Parse the given expression, print its AST as Graphviz dot source, and exit")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if *flagDescribe {
		fmt.Println(expr.DescribeCatalogue(80))
		return
	}

	if *flagDot != "" {
		tree, err := expr.Parse(*flagDot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitSessionError
			return
		}
		fmt.Println(expr.DotGraph(tree.Root))
		return
	}

	eng, err := symdiff.New(symdiff.Differentiator, os.Stdin, os.Stdout, *forceDirect, *diffVar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer eng.Close()

	if pflag.NArg() > 0 {
		err = eng.RunBatch(pflag.Arg(0))
	} else {
		err = eng.RunInteractive()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitSessionError
		return
	}
}
