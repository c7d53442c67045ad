package domain

import "time"

// OperationRecord captures one mutating backend operation for the history
// store.
type OperationRecord struct {
	Timestamp  time.Time       `json:"timestamp"`
	Operation  Operation       `json:"operation"`
	Target     string          `json:"target"`
	Status     OperationStatus `json:"status"`
	ExitCode   int             `json:"exit_code"`
	Message    string          `json:"message"`
	Elevated   bool            `json:"elevated"`
	DurationMS int64           `json:"duration_ms"`
}
