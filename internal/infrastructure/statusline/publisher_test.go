package statusline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hwittich/rvx/internal/domain"
)

func TestPublishRendersVersion(t *testing.T) {
	var buf bytes.Buffer
	p := NewPublisher(&buf)

	p.Publish(&domain.InstalledVersion{Version: "4.3.1", Path: "/opt/runtimes/4.3.1", Default: true})

	out := buf.String()
	if !strings.Contains(out, "4.3.1") || !strings.Contains(out, "/opt/runtimes/4.3.1") {
		t.Fatalf("unexpected indicator output: %q", out)
	}
}

func TestPublishNilRendersNotSet(t *testing.T) {
	var buf bytes.Buffer
	p := NewPublisher(&buf)

	p.Publish(nil)

	if !strings.Contains(buf.String(), "not set") {
		t.Fatalf("expected 'not set', got %q", buf.String())
	}
}

func TestHideWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPublisher(&buf)

	p.Hide()

	if buf.Len() != 0 {
		t.Fatalf("hidden indicator must not render, got %q", buf.String())
	}
}
