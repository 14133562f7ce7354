// Package symdiff wires the expression engine in internal/expr to the
// interactive and batch front ends used by the calculator and
// differentiator commands.
package symdiff

import (
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/symdiff/internal/expr"
	"github.com/dekarrin/symdiff/internal/session"
)

// Mode selects which of the two front ends an Engine drives.
type Mode int

const (
	// Calculator evaluates expressions to a numeric result, prompting for
	// any free variable it encounters.
	Calculator Mode = iota

	// Differentiator symbolically differentiates expressions with respect
	// to a fixed variable and prints the simplified result.
	Differentiator
)

// Engine owns the streams and log file needed to run a calculator or
// differentiator session from an interactive shell or a batch file.
type Engine struct {
	mode        Mode
	diffVar     string
	in          session.Reader
	out         io.Writer
	logFile     *os.File
	errs        *session.ErrorReporter
	forceDirect bool
}

// New creates an Engine for the given mode. If inputStream is nil, stdin is
// used; if outputStream is nil, stdout is used. Readline-backed input is
// used only when operating on stdin/stdout and forceDirectInput is false,
// whether the Engine is later run interactively or in batch; otherwise a
// plain buffered reader is used.
// diffVar names the variable the differentiator differentiates with
// respect to; it is ignored in Calculator mode.
func New(mode Mode, inputStream io.Reader, outputStream io.Writer, forceDirectInput bool, diffVar string) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}
	if diffVar == "" {
		diffVar = "x"
	}

	logName := "calculator.log"
	if mode == Differentiator {
		logName = "differentiator.log"
	}
	logFile, err := os.OpenFile(logName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open error log %s: %w", logName, err)
	}

	eng := &Engine{
		mode:        mode,
		diffVar:     diffVar,
		out:         outputStream,
		logFile:     logFile,
		forceDirect: forceDirectInput,
	}
	eng.errs = session.NewErrorReporter(outputStream, logFile)

	useReadline := !forceDirectInput && inputStream == os.Stdin && outputStream == os.Stdout
	if useReadline {
		eng.in, err = session.NewInteractiveReader("Enter expression: ")
		if err != nil {
			logFile.Close()
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = session.NewDirectReader(inputStream, outputStream)
	}

	return eng, nil
}

// Close releases the Engine's input reader and log file.
func (eng *Engine) Close() error {
	if err := eng.in.Close(); err != nil {
		return fmt.Errorf("close input reader: %w", err)
	}
	return eng.logFile.Close()
}

// RunInteractive drives the "Enter expression: " / "Continue [Y/n]? " read
// loop described in §6 until the operator declines to continue, input
// ends, or a fatal error is returned.
func (eng *Engine) RunInteractive() error {
	return session.RunInteractive(eng.in, eng.out, eng.errs, eng.process)
}

// RunBatch reads path as a single expression, processes it, and overwrites
// path with the result.
func (eng *Engine) RunBatch(path string) error {
	return session.RunBatch(path, eng.errs, eng.process)
}

// process parses one line of input and runs the mode-specific operation
// over it, prompting for free variables as needed in Calculator mode.
func (eng *Engine) process(line string) (string, error) {
	tree, err := expr.Parse(line)
	if err != nil {
		return "", err
	}

	switch eng.mode {
	case Calculator:
		bindings := expr.NewBindings()
		prompter := session.LinePrompter{R: eng.in}
		value, err := expr.Evaluate(tree.Root, bindings, prompter)
		if err != nil {
			return "", err
		}
		return expr.FormatNumber(value), nil

	case Differentiator:
		deriv := expr.Simplify(expr.Differentiate(tree.Root, eng.diffVar).Root)
		return expr.Print(deriv), nil

	default:
		panic("symdiff: Engine has an unknown mode")
	}
}
