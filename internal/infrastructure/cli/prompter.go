package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/hwittich/rvx/internal/ports"
)

// Prompter implements confirmation and credential prompts over stdio.
// Credentials are read without echo when stdin is a terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	fd := -1
	if in == nil {
		in = os.Stdin
		fd = int(os.Stdin.Fd())
	}
	if out == nil {
		out = os.Stderr
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
	}
}

// Enabled indicates the prompter is interactive.
func (p *Prompter) Enabled() bool {
	return true
}

// Confirm asks a yes/no question, defaulting to no.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes", nil
}

// ReadCredential reads the elevation secret through a private channel. An
// empty submission or a closed stdin counts as a dismissal: ok is false and
// nothing is spawned downstream.
func (p *Prompter) ReadCredential(prompt string) (string, bool, error) {
	fmt.Fprint(p.out, prompt)
	defer fmt.Fprintln(p.out)

	if p.fd >= 0 && term.IsTerminal(p.fd) {
		raw, err := term.ReadPassword(p.fd)
		if err != nil {
			return "", false, err
		}
		secret := string(raw)
		return secret, secret != "", nil
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	secret := strings.TrimRight(line, "\r\n")
	return secret, secret != "", nil
}

var _ ports.ConfirmationPrompter = (*Prompter)(nil)
var _ ports.CredentialPrompter = (*Prompter)(nil)
