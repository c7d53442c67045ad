package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// ProgressPrinter renders the latest backend progress line in place during
// long operations, then clears it when the operation finishes.
type ProgressPrinter struct {
	out     io.Writer
	mu      sync.Mutex
	active  bool
	maxLine int
}

// NewProgressPrinter builds a printer writing to out.
func NewProgressPrinter(out io.Writer) *ProgressPrinter {
	return &ProgressPrinter{out: out, maxLine: 120}
}

// Print replaces the current progress line.
func (p *ProgressPrinter) Print(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if len(line) > p.maxLine {
		line = line[:p.maxLine]
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = true
	fmt.Fprintf(p.out, "\r\033[K  %s", line)
}

// Done clears the progress line if one was shown.
func (p *ProgressPrinter) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return
	}
	p.active = false
	fmt.Fprintf(p.out, "\r\033[K")
}
