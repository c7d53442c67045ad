// Package statusline renders the current-version indicator.
package statusline

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/hwittich/rvx/internal/domain"
	"github.com/hwittich/rvx/internal/ports"
)

// Publisher writes the indicator line to out. Purely observational: it
// never touches backend state.
type Publisher struct {
	out io.Writer
}

// NewPublisher builds a publisher; out defaults to stdout.
func NewPublisher(out io.Writer) *Publisher {
	if out == nil {
		out = os.Stdout
	}
	return &Publisher{out: out}
}

// Publish implements ports.StatusSink. A nil version renders "not set".
func (p *Publisher) Publish(version *domain.InstalledVersion) {
	if version == nil {
		fmt.Fprintf(p.out, "%s runtime: %s\n",
			color.YellowString("●"),
			color.New(color.Faint).Sprint("not set"))
		return
	}
	fmt.Fprintf(p.out, "%s runtime: %s (%s)\n",
		color.GreenString("●"),
		color.New(color.Bold).Sprint(version.Version),
		version.Path)
}

// Hide implements ports.StatusSink. The indicator disappears entirely when
// visibility is disabled or the backend is unreachable.
func (p *Publisher) Hide() {}

var _ ports.StatusSink = (*Publisher)(nil)
