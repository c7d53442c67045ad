// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). Following the Ports and Adapters
// (Hexagonal) pattern, these interfaces allow the application to remain
// independent of specific implementations like the backend process adapter,
// the elevation executor, or the CLI framework.
package ports

import (
	"context"

	"github.com/hwittich/rvx/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Callers load at the start of each operation; toggles are never cached.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// BackendClient queries the external version-manager tool. Listings are
// snapshots: callers must re-fetch after any mutating operation and never
// cache across a mutation boundary.
type BackendClient interface {
	ListInstalled(context.Context) ([]domain.InstalledVersion, error)
	ListAvailable(context.Context) ([]domain.AvailableVersion, error)
}

// ProgressFunc receives the latest non-empty progress line from a running
// operation.
type ProgressFunc func(line string)

// PrivilegedRunner executes mutating backend operations, escalating
// privileges per the platform strategy when required.
type PrivilegedRunner interface {
	Run(ctx context.Context, op domain.Operation, target string, progress ProgressFunc) domain.OperationResult
}

// CredentialPrompter obtains an elevation credential from the user through
// a private channel. ok is false when the prompt was dismissed without
// input, which callers treat as cancellation before any process is spawned.
type CredentialPrompter interface {
	ReadCredential(prompt string) (secret string, ok bool, err error)
}

// ConfirmationPrompter asks the user a yes/no question, used by manifest
// reconciliation before driving a switch or install.
type ConfirmationPrompter interface {
	Confirm(question string) (bool, error)
	Enabled() bool
}

// ConsoleManager keeps the single logical interactive console consistent
// with the active version.
type ConsoleManager interface {
	Ensure(ctx context.Context, forceNew bool) error
}

// ConsoleHost owns live console sessions for the default (non-delegated)
// console implementation.
type ConsoleHost interface {
	Sessions(name string) []domain.ConsoleSession
	Create(ctx context.Context, name, binary string) (domain.ConsoleSession, error)
	Dispose(session domain.ConsoleSession) error
	Wait(session domain.ConsoleSession) error
}

// ConsoleProvider is an optional richer console integration supplied by the
// host environment. When present it takes over console creation entirely.
type ConsoleProvider interface {
	Launch(ctx context.Context, binary string, forceNew bool) error
}

// StatusSink renders the current default version to the external indicator.
// Purely observational; no side effects on backend state.
type StatusSink interface {
	Publish(version *domain.InstalledVersion)
	Hide()
}

// VersionCoordinator drives switch and install workflows on behalf of the
// manifest reconciler.
type VersionCoordinator interface {
	SwitchTo(ctx context.Context, name string) error
	Install(ctx context.Context, version string) error
}

// HistoryRepository persists mutating operation records.
type HistoryRepository interface {
	Save(record domain.OperationRecord) error
	Records(limit int, search string) ([]domain.OperationRecord, error)
	Clear() error
	ExportJSON(dest string) error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
