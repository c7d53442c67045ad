package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for the coordination engine. Every failure is recovered at
// the command boundary and surfaced as a short user-visible message; the
// diagnostic detail (raw payloads, exit codes, stderr) goes to the logger.
var (
	// ErrBackendUnavailable marks a read that failed because the backend
	// tool is missing or exited non-zero.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrMalformedOutput marks backend output that could not be decoded.
	ErrMalformedOutput = errors.New("malformed backend output")

	// ErrAuthFailed marks a rejected credential during an elevated operation.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrOperationFailed marks a non-zero, non-auth exit of a mutating
	// operation.
	ErrOperationFailed = errors.New("operation failed")

	// ErrCancelled marks a user- or context-initiated abort.
	ErrCancelled = errors.New("operation cancelled")

	// ErrManifestDecode marks a manifest that exists but cannot be parsed.
	ErrManifestDecode = errors.New("manifest decode error")

	// ErrNoCandidateVersion marks a reconciliation that found no exact or
	// compatible installed match.
	ErrNoCandidateVersion = errors.New("no candidate version installed")

	// ErrOperationInFlight rejects a mutating request while another
	// mutation is still running.
	ErrOperationInFlight = errors.New("another operation is already in flight")
)

func wrapMessage(sentinel error, message string) error {
	if message == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, message)
}
