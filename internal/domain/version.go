// Package domain defines core business entities and value objects for rvx.
//
// This file contains the version snapshot types mirrored from the external
// version-manager backend. The domain layer is independent of infrastructure
// concerns and represents pure business logic and data structures.
package domain

import "strings"

// InstalledVersion is an immutable snapshot of one runtime installation
// reported by the backend. A fresh listing supersedes the previous one
// entirely; snapshots are never patched in place.
type InstalledVersion struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Path    string   `json:"path"`
	Binary  string   `json:"binary"`
	Default bool     `json:"default"`
	Aliases []string `json:"aliases,omitempty"`
}

// AvailableVersion describes one entry from the backend's remote catalog.
type AvailableVersion struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Date string `json:"date"`
}

// Release classifications used by the backend catalog.
const (
	ReleaseTypeStable = "release"
	ReleaseTypeDevel  = "devel"
)

// DefaultVersion returns the entry the backend designates as default,
// or nil if no entry carries the flag.
func DefaultVersion(versions []InstalledVersion) *InstalledVersion {
	for i := range versions {
		if versions[i].Default {
			return &versions[i]
		}
	}
	return nil
}

// FindVersion locates an installed version by name or alias.
func FindVersion(versions []InstalledVersion, name string) *InstalledVersion {
	for i := range versions {
		if versions[i].Name == name || versions[i].Version == name {
			return &versions[i]
		}
		for _, alias := range versions[i].Aliases {
			if alias == name {
				return &versions[i]
			}
		}
	}
	return nil
}

// MajorMinor reduces a version string to its major.minor prefix.
// "4.3.1" becomes "4.3"; strings with fewer than two components are
// returned unchanged.
func MajorMinor(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1]
}

// MatchRequirement resolves a manifest requirement against installed
// versions. An exact version-string match wins; otherwise the first
// installed entry sharing the requirement's major.minor components is
// returned as a compatible fallback. List order is the only tie-break.
// The boolean reports whether the match was exact.
func MatchRequirement(requirement string, installed []InstalledVersion) (*InstalledVersion, bool) {
	for i := range installed {
		if installed[i].Version == requirement {
			return &installed[i], true
		}
	}
	want := MajorMinor(requirement)
	for i := range installed {
		if MajorMinor(installed[i].Version) == want {
			return &installed[i], false
		}
	}
	return nil, false
}
