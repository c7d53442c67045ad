package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hwittich/rvx/internal/domain"
)

type fakeConfig struct {
	cfg domain.Config
	err error
}

func (f *fakeConfig) Load(context.Context) (domain.Config, error) { return f.cfg, f.err }

type fakeBackend struct {
	versions []domain.InstalledVersion
	err      error
}

func (f *fakeBackend) ListInstalled(context.Context) ([]domain.InstalledVersion, error) {
	return f.versions, f.err
}

func (f *fakeBackend) ListAvailable(context.Context) ([]domain.AvailableVersion, error) {
	return nil, nil
}

type fakeHistory struct {
	err  error
	path string
}

func (f *fakeHistory) Save(domain.OperationRecord) error { return nil }
func (f *fakeHistory) Records(int, string) ([]domain.OperationRecord, error) {
	return nil, f.err
}
func (f *fakeHistory) Clear() error { return nil }
func (f *fakeHistory) ExportJSON(string) error { return nil }
func (f *fakeHistory) Path() string { return f.path }

func validConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Backend:             domain.BackendSettings{Command: "vmgr"},
		Manifest:            domain.ManifestSettings{Path: "runtime.lock"},
	}
}

func findCheck(t *testing.T, report domain.HealthReport, name string) domain.HealthCheck {
	t.Helper()
	for _, check := range report.Checks {
		if check.Name == name {
			return check
		}
	}
	t.Fatalf("check %q missing from report", name)
	return domain.HealthCheck{}
}

func TestRunHealthyEnvironment(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "runtime.lock")
	if err := os.WriteFile(manifest, []byte(`{"runtime":{"version":"4.3.1"}}`), 0o600); err != nil {
		t.Fatal(err)
	}

	svc := &Service{
		ConfigProvider: &fakeConfig{cfg: validConfig()},
		Backend: &fakeBackend{versions: []domain.InstalledVersion{
			{Name: "4.3.1", Version: "4.3.1", Default: true},
			{Name: "4.2.0", Version: "4.2.0"},
		}},
		History: &fakeHistory{path: filepath.Join(dir, "history.db")},
		WorkDir: dir,
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for _, name := range []string{"Config file", "Backend tool", "Project manifest", "History store"} {
		if check := findCheck(t, report, name); check.Status != domain.HealthOK {
			t.Errorf("%s = %s (%s), want ok", name, check.Status, check.Details)
		}
	}
}

func TestRunBackendUnreachable(t *testing.T) {
	svc := &Service{
		ConfigProvider: &fakeConfig{cfg: validConfig()},
		Backend:        &fakeBackend{err: domain.ErrBackendUnavailable},
		History:        &fakeHistory{},
		WorkDir:        t.TempDir(),
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	check := findCheck(t, report, "Backend tool")
	if check.Status != domain.HealthError {
		t.Errorf("Backend tool = %s, want error", check.Status)
	}
}

func TestRunMalformedManifest(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "runtime.lock"), []byte("{oops"), 0o600); err != nil {
		t.Fatal(err)
	}

	svc := &Service{
		ConfigProvider: &fakeConfig{cfg: validConfig()},
		Backend:        &fakeBackend{},
		History:        &fakeHistory{},
		WorkDir:        dir,
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if check := findCheck(t, report, "Project manifest"); check.Status != domain.HealthError {
		t.Errorf("Project manifest = %s, want error", check.Status)
	}
}

func TestRunNoDefaultWarns(t *testing.T) {
	svc := &Service{
		ConfigProvider: &fakeConfig{cfg: validConfig()},
		Backend:        &fakeBackend{versions: []domain.InstalledVersion{{Name: "4.2.0", Version: "4.2.0"}}},
		History:        &fakeHistory{},
		WorkDir:        t.TempDir(),
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if check := findCheck(t, report, "Backend tool"); check.Status != domain.HealthWarn {
		t.Errorf("Backend tool = %s, want warn", check.Status)
	}
}
