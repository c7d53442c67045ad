// Package reconcile compares the project manifest's declared runtime
// requirement against installed versions and drives switch or install
// workflows through the coordinator.
package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hwittich/rvx/internal/domain"
	"github.com/hwittich/rvx/internal/ports"
)

// Service runs one reconciliation pass per call. Quiet by default: only a
// forced check reports the uninteresting outcomes (absent manifest, no
// requirement, already satisfied).
type Service struct {
	ConfigProvider ports.ConfigProvider
	Backend        ports.BackendClient
	Prompter       ports.ConfirmationPrompter
	Coordinator    ports.VersionCoordinator
	Logger         ports.Logger

	// WorkDir is the project root the manifest path is resolved against.
	// Empty means the current directory.
	WorkDir string
	// Out receives user-facing reconciliation messages.
	Out io.Writer
}

// Reconcile implements the manifest check. The returned outcome reports
// what was decided; the error carries failures distinct from quiet no-ops.
func (s *Service) Reconcile(ctx context.Context, forceCheck bool) (domain.ReconcileOutcome, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.ReconcileOutcome{}, fmt.Errorf("load config: %w", err)
	}
	if !forceCheck && !cfg.Manifest.AutoCheck {
		return domain.ReconcileOutcome{}, nil
	}

	manifest, found, err := s.readManifest(cfg)
	if err != nil {
		s.report(true, "manifest could not be decoded")
		return domain.ReconcileOutcome{State: domain.ReconcileDecodeError}, err
	}
	if !found {
		s.report(forceCheck, "no project manifest found")
		return domain.ReconcileOutcome{State: domain.ReconcileManifestAbsent}, nil
	}

	requirement := manifest.Requirement()
	if requirement == "" {
		s.report(forceCheck, "manifest declares no runtime requirement")
		return domain.ReconcileOutcome{State: domain.ReconcileNoRequirement}, nil
	}

	versions, err := s.Backend.ListInstalled(ctx)
	if err != nil {
		// unreachable backend: reconciliation silently stops
		if s.Logger != nil {
			s.Logger.Warn("reconciliation stopped", map[string]interface{}{"error": err.Error()})
		}
		return domain.ReconcileOutcome{Requirement: requirement}, nil
	}

	if active := domain.DefaultVersion(versions); active != nil && active.Version == requirement {
		s.report(forceCheck, fmt.Sprintf("requirement %s already satisfied", requirement))
		return domain.ReconcileOutcome{State: domain.ReconcileSatisfied, Requirement: requirement}, nil
	}

	candidate, exact := domain.MatchRequirement(requirement, versions)
	if candidate == nil {
		return s.proposeInstall(ctx, requirement)
	}
	return s.proposeSwitch(ctx, requirement, candidate, exact)
}

func (s *Service) proposeSwitch(ctx context.Context, requirement string, candidate *domain.InstalledVersion, exact bool) (domain.ReconcileOutcome, error) {
	outcome := domain.ReconcileOutcome{
		State:       domain.ReconcileSwitchProposed,
		Requirement: requirement,
		Candidate:   candidate,
		Exact:       exact,
	}

	question := fmt.Sprintf("Project requires runtime %s. Switch to it?", requirement)
	if !exact {
		question = fmt.Sprintf("Project requires runtime %s, which is not installed. Switch to compatible %s instead?",
			requirement, candidate.Version)
	}

	accepted, err := s.confirm(question)
	if err != nil {
		return outcome, err
	}
	if !accepted {
		return outcome, nil
	}

	outcome.Accepted = true
	if err := s.Coordinator.SwitchTo(ctx, candidate.Name); err != nil {
		return outcome, err
	}
	return outcome, nil
}

func (s *Service) proposeInstall(ctx context.Context, requirement string) (domain.ReconcileOutcome, error) {
	outcome := domain.ReconcileOutcome{
		State:       domain.ReconcileInstallProposed,
		Requirement: requirement,
	}

	accepted, err := s.confirm(fmt.Sprintf("Project requires runtime %s, which is not installed. Install it?", requirement))
	if err != nil {
		return outcome, err
	}
	if !accepted {
		return outcome, nil
	}

	outcome.Accepted = true
	if err := s.Coordinator.Install(ctx, requirement); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// readManifest loads and decodes the manifest. Absence is not an error;
// a present-but-invalid manifest is, and reconciliation must not guess.
func (s *Service) readManifest(cfg domain.Config) (domain.Manifest, bool, error) {
	path := cfg.Manifest.Path
	if path == "" {
		path = domain.DefaultManifestPath
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.workDir(), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Manifest{}, false, nil
		}
		return domain.Manifest{}, true, fmt.Errorf("%w: %v", domain.ErrManifestDecode, err)
	}

	var manifest domain.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		if s.Logger != nil {
			s.Logger.Error("manifest decode failed", err, map[string]interface{}{
				"path": path,
				"raw":  string(data),
			})
		}
		return domain.Manifest{}, true, fmt.Errorf("%w: %v", domain.ErrManifestDecode, err)
	}
	return manifest, true, nil
}

func (s *Service) confirm(question string) (bool, error) {
	if s.Prompter == nil || !s.Prompter.Enabled() {
		return false, nil
	}
	return s.Prompter.Confirm(question)
}

func (s *Service) report(when bool, msg string) {
	if !when || s.Out == nil {
		return
	}
	fmt.Fprintln(s.Out, msg)
}

func (s *Service) workDir() string {
	if s.WorkDir != "" {
		return s.WorkDir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
