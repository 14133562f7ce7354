// Package session contains the external-interface boundary shared by the
// calculator and differentiator front ends: reading expression source from a
// console, reporting errors to both the console and a log file, and driving
// the read-eval-print loop described for each tool.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Reader reads one expression at a time from an input source.
//
// Reader should not be implemented outside this package; use
// [NewDirectReader] or [NewInteractiveReader] instead.
type Reader interface {
	// ReadLine blocks until a single non-blank line is available. At end of
	// input, it returns "" and io.EOF.
	ReadLine() (string, error)

	// Close releases any resources the Reader holds open.
	Close() error

	// SetPrompt updates the prompt shown before the next read, if the
	// underlying source shows one.
	SetPrompt(prompt string)
}

// DirectReader reads lines from any io.Reader without echoing escape
// sequences or maintaining history. It is used for piped/batch input and
// whenever readline-backed input is unavailable or disabled.
type DirectReader struct {
	r      *bufio.Reader
	w      io.Writer
	prompt string
}

// NewDirectReader creates a DirectReader that reads from r and, if w is
// non-nil, writes its prompt to w before each read.
func NewDirectReader(r io.Reader, w io.Writer) *DirectReader {
	return &DirectReader{r: bufio.NewReader(r), w: w}
}

// ReadLine implements Reader.
func (dr *DirectReader) ReadLine() (string, error) {
	if dr.prompt != "" && dr.w != nil {
		fmt.Fprint(dr.w, dr.prompt)
	}

	var line string
	var err error
	for line == "" {
		line, err = dr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" && err == io.EOF {
			return "", io.EOF
		}
	}
	return line, nil
}

// Close implements Reader. DirectReader owns no closable resources.
func (dr *DirectReader) Close() error { return nil }

// SetPrompt implements Reader.
func (dr *DirectReader) SetPrompt(prompt string) { dr.prompt = prompt }

// InteractiveReader reads from stdin via GNU-readline-style editing and
// history, for use when both stdin and stdout are an attached terminal.
type InteractiveReader struct {
	rl *readline.Instance
}

// NewInteractiveReader creates an InteractiveReader with the given initial
// prompt. The returned reader must have Close called on it when done.
func NewInteractiveReader(prompt string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &InteractiveReader{rl: rl}, nil
}

// ReadLine implements Reader.
func (ir *InteractiveReader) ReadLine() (string, error) {
	var line string
	var err error
	for line == "" {
		line, err = ir.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" && err == io.EOF {
			return "", io.EOF
		}
	}
	return line, nil
}

// Close implements Reader.
func (ir *InteractiveReader) Close() error { return ir.rl.Close() }

// SetPrompt implements Reader.
func (ir *InteractiveReader) SetPrompt(prompt string) { ir.rl.SetPrompt(prompt) }
