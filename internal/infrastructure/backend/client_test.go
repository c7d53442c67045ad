package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hwittich/rvx/internal/domain"
)

func stubRunner(output []byte, err error) runnerFunc {
	return func(context.Context, string, ...string) ([]byte, error) {
		return output, err
	}
}

func TestListInstalledDecodesListing(t *testing.T) {
	client := NewClient("vmgr", nil)
	client.runner = stubRunner([]byte(`[
		{"name": "4.3.1", "version": "4.3.1", "path": "/opt/runtimes/4.3.1", "binary": "/opt/runtimes/4.3.1/bin/runtime", "default": true},
		{"name": "4.2.0", "version": "4.2.0", "path": "/opt/runtimes/4.2.0", "binary": "/opt/runtimes/4.2.0/bin/runtime", "default": false, "aliases": ["oldrel"]}
	]`), nil)

	got, err := client.ListInstalled(context.Background())
	if err != nil {
		t.Fatalf("ListInstalled err: %v", err)
	}

	want := []domain.InstalledVersion{
		{Name: "4.3.1", Version: "4.3.1", Path: "/opt/runtimes/4.3.1", Binary: "/opt/runtimes/4.3.1/bin/runtime", Default: true},
		{Name: "4.2.0", Version: "4.2.0", Path: "/opt/runtimes/4.2.0", Binary: "/opt/runtimes/4.2.0/bin/runtime", Aliases: []string{"oldrel"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestListInstalledBackendUnavailable(t *testing.T) {
	client := NewClient("vmgr", nil)
	client.runner = stubRunner(nil, errors.New("exec: \"vmgr\": executable file not found in $PATH"))

	_, err := client.ListInstalled(context.Background())
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestListInstalledMalformedOutput(t *testing.T) {
	client := NewClient("vmgr", nil)
	client.runner = stubRunner([]byte(`{"not": "a list"`), nil)

	_, err := client.ListInstalled(context.Background())
	if !errors.Is(err, domain.ErrMalformedOutput) {
		t.Fatalf("expected ErrMalformedOutput, got %v", err)
	}
}

func TestListInstalledSanitizesWindowsPaths(t *testing.T) {
	client := NewClient("vmgr", nil)
	client.goos = "windows"
	client.runner = stubRunner([]byte(`[
		{"name": "4.3.1", "version": "4.3.1", "path": "C:\Program Files\Runtime\4.3.1", "binary": "C:\Program Files\Runtime\4.3.1\bin\runtime.exe", "default": true}
	]`), nil)

	got, err := client.ListInstalled(context.Background())
	if err != nil {
		t.Fatalf("ListInstalled err: %v", err)
	}
	if got[0].Path != `C:\Program Files\Runtime\4.3.1` {
		t.Fatalf("unexpected sanitized path: %q", got[0].Path)
	}
}

func TestListAvailableDecodesCatalog(t *testing.T) {
	client := NewClient("vmgr", nil)
	client.runner = stubRunner([]byte(`[
		{"name": "4.4.0", "type": "release", "date": "2026-04-24"},
		{"name": "4.5.0", "type": "devel", "date": ""}
	]`), nil)

	got, err := client.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("ListAvailable err: %v", err)
	}
	if len(got) != 2 || got[0].Type != domain.ReleaseTypeStable || got[1].Type != domain.ReleaseTypeDevel {
		t.Fatalf("unexpected catalog: %#v", got)
	}
}
