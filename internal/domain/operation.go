package domain

// Operation enumerates the mutating backend operations that may require
// elevated privileges.
type Operation string

const (
	OperationInstall Operation = "install"
	OperationRemove  Operation = "remove"
	OperationDefault Operation = "default"
)

// BackendArgs maps an operation and its target to the backend subcommand
// invocation.
func (o Operation) BackendArgs(target string) []string {
	switch o {
	case OperationInstall:
		return []string{"add", target}
	case OperationRemove:
		return []string{"rm", target}
	case OperationDefault:
		return []string{"default", target}
	default:
		return nil
	}
}

// OperationStatus classifies how a privileged operation ended.
type OperationStatus string

const (
	StatusOK              OperationStatus = "ok"
	StatusAuthFailed      OperationStatus = "auth_failed"
	StatusOperationFailed OperationStatus = "failed"
	StatusCancelled       OperationStatus = "cancelled"
)

// OperationResult is the terminal outcome of one privileged operation.
// Results are not retried automatically.
type OperationResult struct {
	Status   OperationStatus
	Message  string
	ExitCode int
}

// Succeeded reports whether the operation completed successfully.
func (r OperationResult) Succeeded() bool {
	return r.Status == StatusOK
}

// Err converts a failed result into the matching sentinel error, wrapped
// with the result's message. A successful result yields nil.
func (r OperationResult) Err() error {
	switch r.Status {
	case StatusOK:
		return nil
	case StatusAuthFailed:
		return wrapMessage(ErrAuthFailed, r.Message)
	case StatusCancelled:
		return wrapMessage(ErrCancelled, r.Message)
	default:
		return wrapMessage(ErrOperationFailed, r.Message)
	}
}
