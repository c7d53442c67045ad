package doctor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	configapp "github.com/hwittich/rvx/internal/application/config"
	"github.com/hwittich/rvx/internal/domain"
	"github.com/hwittich/rvx/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Backend        ports.BackendClient
	History        ports.HistoryRepository

	// WorkDir is the project root the manifest path is resolved against.
	// Empty means the current directory.
	WorkDir string
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := configapp.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("loaded, format %s", cfg.ConfigFormatVersion)))
	}

	checks = append(checks, s.backendCheck(ctx, cfg))
	checks = append(checks, s.manifestCheck(cfg))
	checks = append(checks, s.historyCheck())

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) backendCheck(ctx context.Context, cfg domain.Config) domain.HealthCheck {
	if s.Backend == nil {
		return warn("Backend tool", "backend client not initialized")
	}
	versions, err := s.Backend.ListInstalled(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrBackendUnavailable) {
			return fail("Backend tool", fmt.Sprintf("%s not reachable on PATH", cfg.Backend.Command))
		}
		return fail("Backend tool", err.Error())
	}
	if active := domain.DefaultVersion(versions); active != nil {
		return ok("Backend tool", fmt.Sprintf("%d installed, default %s", len(versions), active.Version))
	}
	return warn("Backend tool", fmt.Sprintf("%d installed, no default set", len(versions)))
}

func (s *Service) manifestCheck(cfg domain.Config) domain.HealthCheck {
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
			return ok("Project manifest", "none in current project")
		}
		return warn("Project manifest", err.Error())
	}

	var manifest domain.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return fail("Project manifest", fmt.Sprintf("%s is not valid JSON", filepath.Base(path)))
	}
	if requirement := manifest.Requirement(); requirement != "" {
		return ok("Project manifest", fmt.Sprintf("requires runtime %s", requirement))
	}
	return ok("Project manifest", "present, no runtime requirement")
}

func (s *Service) historyCheck() domain.HealthCheck {
	if s.History == nil {
		return warn("History store", "not initialized")
	}
	if _, err := s.History.Records(1, ""); err != nil {
		return warn("History store", err.Error())
	}
	return ok("History store", s.History.Path())
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

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
