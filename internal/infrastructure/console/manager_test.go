package console

import (
	"context"
	"testing"

	"github.com/hwittich/rvx/internal/domain"
)

type fakeBackend struct {
	versions []domain.InstalledVersion
	err      error
}

func (f *fakeBackend) ListInstalled(context.Context) ([]domain.InstalledVersion, error) {
	return f.versions, f.err
}

func (f *fakeBackend) ListAvailable(context.Context) ([]domain.AvailableVersion, error) {
	return nil, f.err
}

type fakeHost struct {
	nextID   int64
	sessions []domain.ConsoleSession
	created  int
	disposed int
}

func (f *fakeHost) Sessions(name string) []domain.ConsoleSession {
	var out []domain.ConsoleSession
	for _, s := range f.sessions {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}

func (f *fakeHost) Create(_ context.Context, name, binary string) (domain.ConsoleSession, error) {
	f.nextID++
	f.created++
	session := domain.ConsoleSession{ID: f.nextID, Name: name, Binary: binary}
	f.sessions = append(f.sessions, session)
	return session, nil
}

func (f *fakeHost) Dispose(session domain.ConsoleSession) error {
	f.disposed++
	kept := f.sessions[:0]
	for _, s := range f.sessions {
		if s.ID != session.ID {
			kept = append(kept, s)
		}
	}
	f.sessions = kept
	return nil
}

func (f *fakeHost) Wait(domain.ConsoleSession) error { return nil }

func activeBackend() *fakeBackend {
	return &fakeBackend{versions: []domain.InstalledVersion{
		{Name: "4.3.1", Version: "4.3.1", Binary: "/opt/runtimes/4.3.1/bin/runtime", Default: true},
	}}
}

func TestEnsureIsIdempotentWithoutForce(t *testing.T) {
	host := &fakeHost{}
	manager := NewManager(activeBackend(), host, nil, nil)

	for i := 0; i < 2; i++ {
		if err := manager.Ensure(context.Background(), false); err != nil {
			t.Fatalf("Ensure #%d err: %v", i+1, err)
		}
	}

	if host.created != 1 {
		t.Fatalf("expected one console, got %d creations", host.created)
	}
}

func TestEnsureForceNewRecreates(t *testing.T) {
	host := &fakeHost{}
	manager := NewManager(activeBackend(), host, nil, nil)

	if err := manager.Ensure(context.Background(), false); err != nil {
		t.Fatalf("Ensure err: %v", err)
	}
	if err := manager.Ensure(context.Background(), true); err != nil {
		t.Fatalf("forced Ensure err: %v", err)
	}

	if host.disposed != 1 || host.created != 2 {
		t.Fatalf("expected dispose+recreate, got disposed=%d created=%d", host.disposed, host.created)
	}
	if live := host.Sessions(domain.ConsoleName); len(live) != 1 {
		t.Fatalf("expected exactly one live console, got %d", len(live))
	}
}

func TestEnsureForceNewCollapsesDuplicates(t *testing.T) {
	host := &fakeHost{}
	// duplicates as a misbehaving provider could leave behind
	for i := 0; i < 3; i++ {
		if _, err := host.Create(context.Background(), domain.ConsoleName, "/opt/runtimes/4.3.1/bin/runtime"); err != nil {
			t.Fatalf("seed create err: %v", err)
		}
	}

	manager := NewManager(activeBackend(), host, nil, nil)
	if err := manager.Ensure(context.Background(), true); err != nil {
		t.Fatalf("forced Ensure err: %v", err)
	}

	if live := host.Sessions(domain.ConsoleName); len(live) != 1 {
		t.Fatalf("expected exactly one live console afterwards, got %d", len(live))
	}
	if host.disposed != 3 {
		t.Fatalf("expected all duplicates disposed, got %d", host.disposed)
	}
}

func TestEnsureSkipsWhenBackendUnavailable(t *testing.T) {
	host := &fakeHost{}
	backend := &fakeBackend{err: domain.ErrBackendUnavailable}
	manager := NewManager(backend, host, nil, nil)

	if err := manager.Ensure(context.Background(), true); err != nil {
		t.Fatalf("expected graceful skip, got %v", err)
	}
	if host.created != 0 {
		t.Fatal("no console may be created while the backend is unreachable")
	}
}

func TestEnsureSkipsWhenNoDefault(t *testing.T) {
	host := &fakeHost{}
	backend := &fakeBackend{versions: []domain.InstalledVersion{{Name: "4.2.0", Version: "4.2.0"}}}
	manager := NewManager(backend, host, nil, nil)

	if err := manager.Ensure(context.Background(), false); err != nil {
		t.Fatalf("Ensure err: %v", err)
	}
	if host.created != 0 {
		t.Fatal("no console without an active default version")
	}
}

type fakeProvider struct {
	launches int
	binary   string
	forced   bool
}

func (f *fakeProvider) Launch(_ context.Context, binary string, forceNew bool) error {
	f.launches++
	f.binary = binary
	f.forced = forceNew
	return nil
}

func TestEnsureDelegatesToRicherProvider(t *testing.T) {
	host := &fakeHost{}
	provider := &fakeProvider{}
	manager := NewManager(activeBackend(), host, provider, nil)

	if err := manager.Ensure(context.Background(), true); err != nil {
		t.Fatalf("Ensure err: %v", err)
	}

	if provider.launches != 1 || !provider.forced {
		t.Fatalf("expected delegated forced launch, got %#v", provider)
	}
	if provider.binary != "/opt/runtimes/4.3.1/bin/runtime" {
		t.Fatalf("provider got wrong binary: %q", provider.binary)
	}
	if host.created != 0 {
		t.Fatal("manager must not manage processes when a provider is present")
	}
}
