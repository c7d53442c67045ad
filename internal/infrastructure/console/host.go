package console

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/hwittich/rvx/internal/domain"
	"github.com/hwittich/rvx/internal/ports"
)

// ExecHost runs console sessions as interactive child processes with
// inherited stdio.
type ExecHost struct {
	mu       sync.Mutex
	nextID   int64
	sessions map[int64]*hostedSession
}

type hostedSession struct {
	session domain.ConsoleSession
	cmd     *exec.Cmd
}

// NewExecHost builds an empty host.
func NewExecHost() *ExecHost {
	return &ExecHost{sessions: map[int64]*hostedSession{}}
}

// Sessions implements ports.ConsoleHost.
func (h *ExecHost) Sessions(name string) []domain.ConsoleSession {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []domain.ConsoleSession
	for _, hosted := range h.sessions {
		if hosted.session.Name == name {
			out = append(out, hosted.session)
		}
	}
	return out
}

// Create implements ports.ConsoleHost. The child gets the caller's stdio so
// the console is interactive.
func (h *ExecHost) Create(ctx context.Context, name, binary string) (domain.ConsoleSession, error) {
	cmd := exec.CommandContext(ctx, binary)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return domain.ConsoleSession{}, fmt.Errorf("start %s: %w", binary, err)
	}

	h.mu.Lock()
	h.nextID++
	session := domain.ConsoleSession{
		ID:     h.nextID,
		Name:   name,
		Binary: binary,
		PID:    cmd.Process.Pid,
	}
	h.sessions[session.ID] = &hostedSession{session: session, cmd: cmd}
	h.mu.Unlock()

	return session, nil
}

// Dispose implements ports.ConsoleHost.
func (h *ExecHost) Dispose(session domain.ConsoleSession) error {
	h.mu.Lock()
	hosted, ok := h.sessions[session.ID]
	delete(h.sessions, session.ID)
	h.mu.Unlock()
	if !ok {
		return nil
	}
	if hosted.cmd.Process != nil {
		_ = hosted.cmd.Process.Kill()
	}
	_ = hosted.cmd.Wait()
	return nil
}

// Wait implements ports.ConsoleHost, blocking until the session exits and
// then unregistering it.
func (h *ExecHost) Wait(session domain.ConsoleSession) error {
	h.mu.Lock()
	hosted, ok := h.sessions[session.ID]
	h.mu.Unlock()
	if !ok {
		return nil
	}
	err := hosted.cmd.Wait()
	h.mu.Lock()
	delete(h.sessions, session.ID)
	h.mu.Unlock()
	return err
}

var _ ports.ConsoleHost = (*ExecHost)(nil)
