// Package prompt reads line-based answers from an interactive console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNotANumber is returned by ReadInt when the line is not an integer.
var ErrNotANumber = errors.New("not a number")

// Prompter writes prompts to out and reads answers from in, one line each.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine prints prompt and returns the next line without its line ending.
// A final line without a newline is returned as-is; io.EOF is returned
// only when no input is left.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// ReadInt prints prompt and parses the answer as an integer.
func (p *Prompter) ReadInt(prompt string) (int, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, strings.TrimSpace(line))
	}
	return n, nil
}

// ReadPositiveInt prints prompt and keeps asking with retry until the
// answer is an integer greater than zero. Only input errors are returned.
func (p *Prompter) ReadPositiveInt(prompt, retry string) (int, error) {
	n, err := p.ReadInt(prompt)
	for {
		if err == nil && n > 0 {
			return n, nil
		}
		if err != nil && !errors.Is(err, ErrNotANumber) {
			return 0, err
		}
		n, err = p.ReadInt(retry)
	}
}
