// Package coordinator orchestrates version switches, installs, and removals
// end-to-end: backend mutation, indicator refresh, console recreation, and
// operation history.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/hwittich/rvx/internal/domain"
	"github.com/hwittich/rvx/internal/ports"
)

// Service owns the mutating workflows. A weighted semaphore of one makes
// mutations single-flight: a second switch/install/remove while one is in
// flight is rejected with domain.ErrOperationInFlight, never interleaved.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Backend        ports.BackendClient
	Runner         ports.PrivilegedRunner
	Console        ports.ConsoleManager
	Status         ports.StatusSink
	History        ports.HistoryRepository
	Logger         ports.Logger
	Progress       ports.ProgressFunc

	guard *semaphore.Weighted
}

// NewService builds a coordinator with its single-flight guard armed.
func NewService() *Service {
	return &Service{guard: semaphore.NewWeighted(1)}
}

// SwitchTo makes the named version the backend default, then propagates the
// change to the indicator and the console. Failure at any stage aborts
// without side effects; the prior default remains authoritative.
func (s *Service) SwitchTo(ctx context.Context, name string) error {
	return s.mutate(ctx, domain.OperationDefault, name, func(ctx context.Context, cfg domain.Config) error {
		// pre-check: the target must already be installed
		versions, err := s.Backend.ListInstalled(ctx)
		if err != nil {
			return err
		}
		target := domain.FindVersion(versions, name)
		if target == nil {
			return fmt.Errorf("%w: %q is not installed", domain.ErrNoCandidateVersion, name)
		}

		result := s.run(ctx, domain.OperationDefault, target.Name)
		if err := result.Err(); err != nil {
			return err
		}

		s.refresh(ctx, cfg, true)
		return nil
	})
}

// Install asks the backend to install the given version.
func (s *Service) Install(ctx context.Context, version string) error {
	return s.mutate(ctx, domain.OperationInstall, version, func(ctx context.Context, cfg domain.Config) error {
		result := s.run(ctx, domain.OperationInstall, version)
		if err := result.Err(); err != nil {
			return err
		}
		s.refresh(ctx, cfg, false)
		return nil
	})
}

// Remove uninstalls the given version. The current default is refused while
// it remains default.
func (s *Service) Remove(ctx context.Context, version string) error {
	return s.mutate(ctx, domain.OperationRemove, version, func(ctx context.Context, cfg domain.Config) error {
		versions, err := s.Backend.ListInstalled(ctx)
		if err != nil {
			return err
		}
		target := domain.FindVersion(versions, version)
		if target == nil {
			return fmt.Errorf("%w: %q is not installed", domain.ErrNoCandidateVersion, version)
		}
		if target.Default {
			return fmt.Errorf("version %q is the current default; switch away before removing it", version)
		}

		result := s.run(ctx, domain.OperationRemove, target.Name)
		if err := result.Err(); err != nil {
			return err
		}
		s.refresh(ctx, cfg, false)
		return nil
	})
}

// RefreshStatus re-reads backend state and re-renders the indicator. Reads
// take no mutation guard.
func (s *Service) RefreshStatus(ctx context.Context) error {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	s.publish(ctx, cfg)
	return nil
}

// mutate wraps a mutating workflow in the single-flight guard and records
// its outcome in the history store.
func (s *Service) mutate(ctx context.Context, op domain.Operation, target string, fn func(context.Context, domain.Config) error) error {
	if !s.guard.TryAcquire(1) {
		return domain.ErrOperationInFlight
	}
	defer s.guard.Release(1)

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	start := time.Now()
	err = fn(ctx, cfg)
	s.record(op, target, err, time.Since(start))
	return err
}

func (s *Service) run(ctx context.Context, op domain.Operation, target string) domain.OperationResult {
	progress := s.Progress
	if progress == nil {
		progress = func(string) {}
	}
	result := s.Runner.Run(ctx, op, target, progress)
	if s.Logger != nil && !result.Succeeded() {
		s.Logger.Warn("mutation did not complete", map[string]interface{}{
			"operation": string(op),
			"target":    target,
			"status":    string(result.Status),
			"message":   result.Message,
		})
	}
	return result
}

// refresh propagates a successful mutation: re-fetch the listing (never
// reuse a pre-mutation snapshot), publish the indicator, and recreate the
// console when requested.
func (s *Service) refresh(ctx context.Context, cfg domain.Config, recreateConsole bool) {
	s.publish(ctx, cfg)

	if recreateConsole && cfg.Console.AutoLaunch && s.Console != nil {
		if err := s.Console.Ensure(ctx, true); err != nil && s.Logger != nil {
			s.Logger.Warn("console refresh failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (s *Service) publish(ctx context.Context, cfg domain.Config) {
	if s.Status == nil {
		return
	}
	if !cfg.Status.Visible {
		s.Status.Hide()
		return
	}
	versions, err := s.Backend.ListInstalled(ctx)
	if err != nil {
		// unreachable backend hides the indicator entirely
		if s.Logger != nil {
			s.Logger.Warn("hiding indicator", map[string]interface{}{"error": err.Error()})
		}
		s.Status.Hide()
		return
	}
	s.Status.Publish(domain.DefaultVersion(versions))
}

func (s *Service) record(op domain.Operation, target string, err error, took time.Duration) {
	if s.History == nil {
		return
	}
	rec := domain.OperationRecord{
		Timestamp:  time.Now(),
		Operation:  op,
		Target:     target,
		Status:     statusOf(err),
		DurationMS: took.Milliseconds(),
	}
	if err != nil {
		rec.Message = err.Error()
	}
	if saveErr := s.History.Save(rec); saveErr != nil && s.Logger != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": saveErr.Error()})
	}
}

func statusOf(err error) domain.OperationStatus {
	switch {
	case err == nil:
		return domain.StatusOK
	case errors.Is(err, domain.ErrCancelled):
		return domain.StatusCancelled
	case errors.Is(err, domain.ErrAuthFailed):
		return domain.StatusAuthFailed
	default:
		return domain.StatusOperationFailed
	}
}

var _ ports.VersionCoordinator = (*Service)(nil)
