package backend

import (
	"encoding/json"
	"testing"
)

func TestSanitizePathsEscapesDrivePaths(t *testing.T) {
	raw := []byte(`{"path": "C:\Program Files\Runtime", "name": "4.3.1"}`)

	got := sanitizePaths(raw)

	var decoded struct {
		Path string `json:"path"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("sanitized payload still undecodable: %v\n%s", err, got)
	}
	if decoded.Path != `C:\Program Files\Runtime` {
		t.Fatalf("unexpected path after sanitation: %q", decoded.Path)
	}
	if decoded.Name != "4.3.1" {
		t.Fatalf("non-path field corrupted: %q", decoded.Name)
	}
}

func TestSanitizePathsKeepsEscapedSequences(t *testing.T) {
	raw := []byte(`{"path": "D:\\runtimes\\4.3.1"}`)

	got := sanitizePaths(raw)
	if string(got) != string(raw) {
		t.Fatalf("already-escaped payload modified:\n%s", got)
	}
}

func TestSanitizePathsHandlesMixedEscaping(t *testing.T) {
	raw := []byte(`{"binary": "C:\\runtimes\4.3.1\bin\runtime.exe"}`)

	got := sanitizePaths(raw)

	var decoded struct {
		Binary string `json:"binary"`
	}
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("mixed payload still undecodable: %v\n%s", err, got)
	}
	if decoded.Binary != `C:\runtimes\4.3.1\bin\runtime.exe` {
		t.Fatalf("unexpected binary path: %q", decoded.Binary)
	}
}

func TestSanitizePathsLeavesNonPathStringsAlone(t *testing.T) {
	raw := []byte(`{"note": "ratio 1:2 stays", "date": "2026-08-30"}`)

	if got := sanitizePaths(raw); string(got) != string(raw) {
		t.Fatalf("non-path payload modified:\n%s", got)
	}
}
