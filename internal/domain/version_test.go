package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMajorMinor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"4.3.1", "4.3"},
		{"4.3", "4.3"},
		{"4", "4"},
		{"5.0.0", "5.0"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := MajorMinor(tc.in); got != tc.want {
			t.Errorf("MajorMinor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMatchRequirementExact(t *testing.T) {
	installed := []InstalledVersion{
		{Name: "4.2.0", Version: "4.2.0"},
		{Name: "4.3.1", Version: "4.3.1"},
	}

	got, exact := MatchRequirement("4.3.1", installed)
	if got == nil || got.Version != "4.3.1" {
		t.Fatalf("expected exact match for 4.3.1, got %#v", got)
	}
	if !exact {
		t.Fatal("expected match to be flagged exact")
	}
}

func TestMatchRequirementCompatibleFallback(t *testing.T) {
	installed := []InstalledVersion{
		{Name: "4.3.2", Version: "4.3.2"},
	}

	got, exact := MatchRequirement("4.3.1", installed)
	if got == nil || got.Version != "4.3.2" {
		t.Fatalf("expected fallback match 4.3.2, got %#v", got)
	}
	if exact {
		t.Fatal("fallback match must not be flagged exact")
	}
}

func TestMatchRequirementFirstCompatibleWins(t *testing.T) {
	installed := []InstalledVersion{
		{Name: "4.3.3", Version: "4.3.3"},
		{Name: "4.3.2", Version: "4.3.2"},
	}

	got, _ := MatchRequirement("4.3.1", installed)
	if got == nil || got.Version != "4.3.3" {
		t.Fatalf("expected install-list order to win, got %#v", got)
	}
}

func TestMatchRequirementNoCandidate(t *testing.T) {
	installed := []InstalledVersion{
		{Name: "4.3.2", Version: "4.3.2"},
	}

	if got, _ := MatchRequirement("5.0.0", installed); got != nil {
		t.Fatalf("expected no candidate, got %#v", got)
	}
}

func TestDefaultVersion(t *testing.T) {
	versions := []InstalledVersion{
		{Name: "4.2.0", Version: "4.2.0"},
		{Name: "4.3.1", Version: "4.3.1", Default: true},
	}

	got := DefaultVersion(versions)
	if got == nil {
		t.Fatal("expected a default version")
	}
	if diff := cmp.Diff(versions[1], *got); diff != "" {
		t.Fatalf("default version mismatch (-want +got):\n%s", diff)
	}

	if DefaultVersion(versions[:1]) != nil {
		t.Fatal("expected nil when no entry carries the default flag")
	}
}

func TestFindVersionByAlias(t *testing.T) {
	versions := []InstalledVersion{
		{Name: "4.3.1", Version: "4.3.1", Aliases: []string{"release"}},
	}

	if got := FindVersion(versions, "release"); got == nil || got.Name != "4.3.1" {
		t.Fatalf("expected alias lookup to resolve, got %#v", got)
	}
	if got := FindVersion(versions, "4.4.0"); got != nil {
		t.Fatalf("expected nil for unknown name, got %#v", got)
	}
}
