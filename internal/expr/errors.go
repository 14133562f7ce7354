package expr

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
)

// SyntaxKind is the fixed taxonomy of parser-recoverable errors (§7).
type SyntaxKind int

const (
	KindSyntaxError SyntaxKind = iota
	KindUnclosedBracket
	KindBadNumber
	KindUnknownFunction
)

func (k SyntaxKind) String() string {
	switch k {
	case KindSyntaxError:
		return "SyntaxError"
	case KindUnclosedBracket:
		return "UnclosedBracket"
	case KindBadNumber:
		return "BadNumber"
	case KindUnknownFunction:
		return "UnknownFunction"
	default:
		return "UnknownSyntaxKind"
	}
}

// SyntaxError is returned by Parse for any recoverable error: the caller
// (normally internal/session's driver) discards the partial AST and either
// re-prompts (interactive mode) or aborts (batch mode); a SyntaxError never
// poisons subsequent parses.
type SyntaxError struct {
	Kind SyntaxKind

	// Source is the normalized text that was being parsed.
	Source string

	// Position is the 0-indexed offset into Source the caret should point
	// at.
	Position int

	// Span is the number of characters the error covers; the caret line
	// is Position spaces, one '^', then Span-1 '~' characters.
	Span int

	message string
}

func (se *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", se.Kind, se.message)
}

// Excerpt renders the two-line caret excerpt of §4.8: the normalized
// source, then a caret line. Long sources are wrapped at width using rosed
// so that the excerpt stays readable on an 80-column console or log file;
// wrapping never changes Position/Span, only how the excerpt is laid out
// for display.
func (se *SyntaxError) Excerpt(width int) string {
	if width <= 0 {
		width = 80
	}

	caret := strings.Repeat(" ", se.Position) + "^"
	if se.Span > 1 {
		caret += strings.Repeat("~", se.Span-1)
	}

	block := rosed.Edit(se.Source + "\n" + caret).
		WithOptions(rosed.Options{ParagraphSeparator: "\n", NoTrailingLineSeparators: true}).
		Wrap(width).
		String()

	return block
}

func syntaxErrorf(kind SyntaxKind, source string, pos, span int, format string, a ...interface{}) *SyntaxError {
	return &SyntaxError{
		Kind:     kind,
		Source:   source,
		Position: pos,
		Span:     span,
		message:  fmt.Sprintf(format, a...),
	}
}

// TreeKind is the fixed taxonomy of unrecoverable structural errors (§7):
// a Validate failure indicates a defect in the transformer that produced
// the tree, not a problem with user input.
type TreeKind int

const (
	TreeFunctionArgCount TreeKind = iota
	TreeOperatorArgCount
	TreeLeafNonNull
)

func (k TreeKind) String() string {
	switch k {
	case TreeFunctionArgCount:
		return "TreeFunctionArgCount"
	case TreeOperatorArgCount:
		return "TreeOperatorArgCount"
	case TreeLeafNonNull:
		return "TreeLeafNonNull"
	default:
		return "UnknownTreeKind"
	}
}

// TreeError is returned by Validate; Print and Evaluate never return it.
// It is fatal: callers should not retry, only report and abort.
type TreeError struct {
	Kind TreeKind
	Node *Node
}

func (te *TreeError) Error() string {
	if te.Node == nil {
		return fmt.Sprintf("%s: nil node", te.Kind)
	}
	return fmt.Sprintf("%s: %s node with code %v", te.Kind, te.Node.Kind, te.Node.Code)
}

// NullInputError reports an interface contract violation; Evaluate returns
// it when given a nil node. Nothing in this module returns it for a nil
// path or for a resource torn down twice. Like TreeError, this is fatal.
type NullInputError struct {
	What string
}

func (e *NullInputError) Error() string {
	return fmt.Sprintf("NullInput: %s", e.What)
}
