package elevate

import (
	"context"
	"strings"

	"github.com/hwittich/rvx/internal/domain"
	"github.com/hwittich/rvx/internal/ports"
)

// strategy is the platform-conditional elevation behavior, selected once at
// executor construction rather than by scattered conditionals.
type strategy interface {
	run(ctx context.Context, e *Executor, args []string, progress ports.ProgressFunc) domain.OperationResult
}

func strategyForPlatform(goos string) strategy {
	switch goos {
	case "windows":
		return directStrategy{}
	case "darwin":
		return optimisticStrategy{}
	default:
		return alwaysElevateStrategy{}
	}
}

var accessDeniedMarkers = []string{
	"access is denied",
	"permission denied",
	"operation not permitted",
}

// directStrategy spawns the backend without elevation; the backend handles
// privileges itself on this platform. Failures that look like access
// problems get an elevation hint appended.
type directStrategy struct{}

func (directStrategy) run(ctx context.Context, e *Executor, args []string, progress ports.ProgressFunc) domain.OperationResult {
	result := e.exec(ctx, false, "", args, progress)
	if result.Status == domain.StatusOperationFailed && looksAccessDenied(result.Message) {
		result.Message += " (try again from an elevated shell)"
	}
	return result
}

// optimisticStrategy first attempts the call without elevation and only
// prompts for a credential after a failure.
type optimisticStrategy struct{}

func (optimisticStrategy) run(ctx context.Context, e *Executor, args []string, progress ports.ProgressFunc) domain.OperationResult {
	result := e.exec(ctx, false, "", args, progress)
	if result.Succeeded() || result.Status == domain.StatusCancelled {
		return result
	}

	secret, cancelled := e.promptCredential()
	if cancelled != nil {
		return *cancelled
	}
	return e.exec(ctx, true, secret, args, progress)
}

// alwaysElevateStrategy prompts for a credential up front; every mutating
// call goes through the elevation wrapper.
type alwaysElevateStrategy struct{}

func (alwaysElevateStrategy) run(ctx context.Context, e *Executor, args []string, progress ports.ProgressFunc) domain.OperationResult {
	secret, cancelled := e.promptCredential()
	if cancelled != nil {
		return *cancelled
	}
	return e.exec(ctx, true, secret, args, progress)
}

func looksAccessDenied(message string) bool {
	lower := strings.ToLower(message)
	for _, marker := range accessDeniedMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
