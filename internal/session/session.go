package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/symdiff/internal/expr"
)

// Processor transforms one line of expression source into the text that
// should be printed as the result. It returns a recoverable error (the
// read loop re-prompts) or a fatal one (the read loop stops), matching the
// recoverable/fatal split of §7's error taxonomy; callers distinguish the
// two with errors.As against the fatal *expr.TreeError and
// *expr.NullInputError types, not with anything in this package.
type Processor func(line string) (string, error)

// RunInteractive repeatedly prompts "Enter expression: ", reads a line,
// runs process over it, and prints "result: <output>" on success. Every
// error — recoverable or fatal — is sent to both sinks via errs; a fatal
// error (*expr.TreeError or *expr.NullInputError) then ends the loop and is
// returned. After every other attempt it asks "Continue [Y/n]? "; any
// answer beginning (case-folded) with 'n' ends the loop, 'y' continues, and
// anything else re-asks.
func RunInteractive(r Reader, out io.Writer, errs *ErrorReporter, process Processor) error {
	for {
		r.SetPrompt("Enter expression: ")
		line, err := r.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		result, err := process(line)
		if err != nil {
			errs.Report(err, 1)
			var te *expr.TreeError
			var ne *expr.NullInputError
			if errors.As(err, &te) || errors.As(err, &ne) {
				return err
			}
		} else {
			fmt.Fprintf(out, "result: %s\n", result)
		}

		if !promptContinue(r) {
			return nil
		}
	}
}

// promptContinue asks "Continue [Y/n]? " until it gets an answer whose
// first byte (case-folded) is 'y' or 'n'.
func promptContinue(r Reader) bool {
	for {
		r.SetPrompt("Continue [Y/n]? ")
		answer, err := r.ReadLine()
		if err == io.EOF {
			return false
		}
		if err != nil {
			return false
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			continue
		}
		switch answer[0] {
		case 'y', 'Y':
			return true
		case 'n', 'N':
			return false
		}
	}
}

// RunBatch reads the entirety of path as one expression, runs process over
// it, and overwrites path with the result. On any error, the file is left
// untouched and the error is sent to both sinks.
func RunBatch(path string, errs *ErrorReporter, process Processor) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		wrapped := fmt.Errorf("read %s: %w", path, err)
		errs.Report(wrapped, 0)
		return wrapped
	}

	result, err := process(string(contents))
	if err != nil {
		errs.Report(err, 0)
		return err
	}

	if err := os.WriteFile(path, []byte(result), 0644); err != nil {
		wrapped := fmt.Errorf("write %s: %w", path, err)
		errs.Report(wrapped, 0)
		return wrapped
	}

	return nil
}

// LinePrompter implements expr.Prompter by asking "Enter value of
// variable <name>: " and parsing the answer as a decimal number, per the
// calculator-only variant of §6's variable-prompt contract.
type LinePrompter struct {
	R Reader
}

// PromptVariable reads one line from p.R and parses it as a real number.
func (p LinePrompter) PromptVariable(name string) (complex128, error) {
	p.R.SetPrompt(fmt.Sprintf("Enter value of variable %s: ", name))
	line, err := p.R.ReadLine()
	if err != nil {
		return 0, err
	}

	var f float64
	if _, err := fmt.Sscanf(strings.TrimSpace(line), "%g", &f); err != nil {
		return 0, fmt.Errorf("%q is not a valid number for variable %s", line, name)
	}
	return complex(f, 0), nil
}
