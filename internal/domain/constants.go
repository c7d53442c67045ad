package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Backend defaults
const (
	// DefaultBackendCommand is the version-manager tool invoked when the
	// config does not name one.
	DefaultBackendCommand = "vmgr"
	// DefaultManifestPath is the manifest file looked up relative to the
	// project root.
	DefaultManifestPath = "runtime.lock"
)

// Timeout and duration constants
const (
	// DefaultOperationTimeout bounds a single mutating backend operation.
	// A hung external process is killed once it elapses.
	DefaultOperationTimeout = 10 * time.Minute
	// DefaultReadTimeout bounds a single backend listing call.
	DefaultReadTimeout = 30 * time.Second
)

// History constants
const (
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
	// DefaultHistorySearchLimit is the default number of search results to return
	DefaultHistorySearchLimit = 50
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
