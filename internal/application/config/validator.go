package config

import (
	"fmt"
	"strings"

	"github.com/hwittich/rvx/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	switch cfg.ConfigFormatVersion {
	case "", "1":
	default:
		return fmt.Errorf("config_format_version %q not supported", cfg.ConfigFormatVersion)
	}
	if strings.TrimSpace(cfg.Backend.Command) == "" {
		return fmt.Errorf("backend.command must be set")
	}
	if cfg.Manifest.Path == "" {
		return fmt.Errorf("manifest.path must be set")
	}
	if cfg.Operations.TimeoutSeconds < 0 {
		return fmt.Errorf("operations.timeout_seconds must be >= 0")
	}
	return nil
}
