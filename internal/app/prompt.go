package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter drives blocking line-read prompts through injectable streams so
// interactive flows run under test without a terminal.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// ReadLine prints prompt and returns the next input line without its
// trailing newline. io.EOF is returned once input is exhausted.
func (p *prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

// Confirm asks a y/N question. Only an explicit yes answers true; an empty
// line or anything else is a refusal.
func (p *prompter) Confirm(prompt string) (bool, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
