// Package console owns the single logical interactive console bound to the
// active runtime version.
package console

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hwittich/rvx/internal/domain"
	"github.com/hwittich/rvx/internal/ports"
)

// Manager enforces at-most-one live console for the managed logical
// identity. When a richer external provider is configured, console creation
// is delegated to it entirely and no direct process management happens.
type Manager struct {
	backend  ports.BackendClient
	host     ports.ConsoleHost
	provider ports.ConsoleProvider
	logger   ports.Logger
	mu       sync.Mutex
}

// NewManager builds a console manager. provider may be nil.
func NewManager(backend ports.BackendClient, host ports.ConsoleHost, provider ports.ConsoleProvider, logger ports.Logger) *Manager {
	return &Manager{backend: backend, host: host, provider: provider, logger: logger}
}

// Ensure implements ports.ConsoleManager. With forceNew set, every session
// matching the logical name is disposed before a fresh one is created,
// guarding against provider-created duplicates.
func (m *Manager) Ensure(ctx context.Context, forceNew bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	binary, err := m.activeBinary(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrBackendUnavailable) {
			// degrade gracefully: no backend, no console launch
			if m.logger != nil {
				m.logger.Warn("skipping console launch", map[string]interface{}{"error": err.Error()})
			}
			return nil
		}
		return err
	}
	if binary == "" {
		return nil
	}

	if m.provider != nil {
		return m.provider.Launch(ctx, binary, forceNew)
	}

	live := m.host.Sessions(domain.ConsoleName)
	if len(live) > 0 && !forceNew {
		return nil
	}
	for _, session := range live {
		if err := m.host.Dispose(session); err != nil {
			return fmt.Errorf("dispose console %d: %w", session.ID, err)
		}
	}

	if _, err := m.host.Create(ctx, domain.ConsoleName, binary); err != nil {
		return fmt.Errorf("create console: %w", err)
	}
	return nil
}

// Attach blocks until the live managed console exits, creating one first if
// needed.
func (m *Manager) Attach(ctx context.Context) error {
	if err := m.Ensure(ctx, false); err != nil {
		return err
	}
	if m.provider != nil || m.host == nil {
		return nil
	}
	live := m.host.Sessions(domain.ConsoleName)
	if len(live) == 0 {
		return nil
	}
	return m.host.Wait(live[0])
}

// activeBinary resolves the default version's executable path. An empty
// string means the backend has no default set.
func (m *Manager) activeBinary(ctx context.Context) (string, error) {
	versions, err := m.backend.ListInstalled(ctx)
	if err != nil {
		return "", err
	}
	active := domain.DefaultVersion(versions)
	if active == nil {
		return "", nil
	}
	return active.Binary, nil
}

var _ ports.ConsoleManager = (*Manager)(nil)
