package session

import (
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"

	"github.com/dekarrin/symdiff/internal/expr"
)

// excerptWidth is the console/log wrap width passed to SyntaxError.Excerpt.
const excerptWidth = 80

// ErrorReporter is the dual error sink described for both front ends: every
// error is written to the console for the operator and appended, with an
// origin triple of (file, line, function), to a log file for later
// diagnosis. No error is ever delivered to only one of the two sinks.
type ErrorReporter struct {
	console io.Writer
	logger  *log.Logger
}

// NewErrorReporter builds a reporter that echoes to console and appends
// formatted records to logWriter (typically an *os.File opened in append
// mode on "calculator.log" or "differentiator.log").
func NewErrorReporter(console io.Writer, logWriter io.Writer) *ErrorReporter {
	return &ErrorReporter{
		console: console,
		logger:  log.New(logWriter, "", log.Ldate|log.Ltime),
	}
}

// Report writes err to both sinks. skip is the number of additional stack
// frames to climb past Report itself to find the call site worth recording;
// callers reporting their own errors pass 0. If err is (or wraps) a
// *expr.SyntaxError, its two-line caret excerpt (§4.8) is appended to both
// sinks after the message.
func (er *ErrorReporter) Report(err error, skip int) {
	if err == nil {
		return
	}

	file, line, fn := origin(skip + 1)
	msg := err.Error()

	var se *expr.SyntaxError
	if errors.As(err, &se) {
		msg += "\n" + se.Excerpt(excerptWidth)
	}

	fmt.Fprintf(er.console, "error: %s\n", msg)
	er.logger.Printf("%s:%d %s: %s", file, line, fn, msg)
}

// origin resolves the (file, line, function) triple of the caller skip
// frames above its own caller, mirroring the diagnostic triple the original
// tool recorded with C preprocessor macros at each call site.
func origin(skip int) (file string, line int, function string) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "?", 0, "?"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return file, line, "?"
	}
	return file, line, fn.Name()
}
