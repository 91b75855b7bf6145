// Package prompt implements line-based interactive questions on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions on an output and reads the answers line by line
// from an input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a pointer to a new [Prompter].
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints the question and returns the trimmed answer. An input that ends
// without an answer is an empty answer.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", fmt.Errorf("(prompt) %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("(prompt) %w", err)
	}

	return strings.TrimSpace(line), nil
}
