package cleanup

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// IsAffirmative reports whether answer means yes
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// AlwaysConfirm answers yes without asking
type AlwaysConfirm struct{}

func (AlwaysConfirm) Confirm(string) (bool, error) { return true, nil }

// LineConfirmer reads the answer as one line from a plain reader.
// End of input counts as no.
type LineConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineConfirmer prompts on out and reads answers from in
func NewLineConfirmer(in io.Reader, out io.Writer) *LineConfirmer {
	return &LineConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *LineConfirmer) Confirm(question string) (bool, error) {
	fmt.Fprintf(c.out, "%s [y/N]: ", question)
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("cleanup: failed to read answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(c.out)
	}
	return IsAffirmative(line), nil
}

// ReadlineConfirmer prompts on an interactive terminal. Ctrl-C and Ctrl-D
// count as no.
type ReadlineConfirmer struct {
	rl *readline.Instance
}

// NewReadlineConfirmer opens the terminal for prompting; Close releases it
func NewReadlineConfirmer(out io.Writer) (*ReadlineConfirmer, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdout:          out,
		Stderr:          out,
		InterruptPrompt: "^C",
		EOFPrompt:       "no",
	})
	if err != nil {
		return nil, fmt.Errorf("cleanup: failed to open terminal prompt: %w", err)
	}
	return &ReadlineConfirmer{rl: rl}, nil
}

func (c *ReadlineConfirmer) Confirm(question string) (bool, error) {
	c.rl.SetPrompt(question + " [y/N]: ")
	line, err := c.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("cleanup: failed to read answer: %w", err)
	}
	return IsAffirmative(line), nil
}

// Close restores the terminal
func (c *ReadlineConfirmer) Close() error {
	return c.rl.Close()
}
