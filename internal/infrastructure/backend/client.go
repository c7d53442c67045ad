// Package backend normalizes calls to the external version-manager tool
// into typed results, isolating platform-specific output quirks from the
// rest of the application.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/hwittich/rvx/internal/domain"
	"github.com/hwittich/rvx/internal/ports"
)

// runnerFunc executes the backend tool and returns its stdout. Injected so
// tests can stub process I/O.
type runnerFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Client queries the external version-manager tool.
type Client struct {
	command string
	goos    string
	runner  runnerFunc
	logger  ports.Logger
}

// NewClient builds a backend client for the given tool command.
func NewClient(command string, logger ports.Logger) *Client {
	if command == "" {
		command = domain.DefaultBackendCommand
	}
	return &Client{
		command: command,
		goos:    runtime.GOOS,
		runner:  runCommand,
		logger:  logger,
	}
}

// ListInstalled implements ports.BackendClient.
func (c *Client) ListInstalled(ctx context.Context) ([]domain.InstalledVersion, error) {
	raw, err := c.runner(ctx, c.command, "list", "--json")
	if err != nil {
		return nil, fmt.Errorf("%w: %s list: %v", domain.ErrBackendUnavailable, c.command, err)
	}

	var versions []domain.InstalledVersion
	if err := c.decode(raw, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// ListAvailable implements ports.BackendClient.
func (c *Client) ListAvailable(ctx context.Context) ([]domain.AvailableVersion, error) {
	raw, err := c.runner(ctx, c.command, "available", "--json")
	if err != nil {
		return nil, fmt.Errorf("%w: %s available: %v", domain.ErrBackendUnavailable, c.command, err)
	}

	var versions []domain.AvailableVersion
	if err := c.decode(raw, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// decode unmarshals backend output, applying the Windows path sanitation
// ahead of decoding. The raw payload is retained in the log on failure.
func (c *Client) decode(raw []byte, target interface{}) error {
	payload := raw
	if c.goos == "windows" {
		payload = sanitizePaths(raw)
	}

	if err := json.Unmarshal(bytes.TrimSpace(payload), target); err != nil {
		if c.logger != nil {
			c.logger.Error("backend output decode failed", err, map[string]interface{}{
				"command": c.command,
				"raw":     string(raw),
			})
		}
		return fmt.Errorf("%w: %v", domain.ErrMalformedOutput, err)
	}
	return nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%v: %s", err, bytes.TrimSpace(stderr.Bytes()))
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

var _ ports.BackendClient = (*Client)(nil)
