// Package elevate runs mutating backend operations that may require
// elevated privileges, selecting one of three OS strategies at
// construction time.
package elevate

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/hwittich/rvx/internal/domain"
	"github.com/hwittich/rvx/internal/ports"
)

// Elevation wrapper invocation. The credential travels over the wrapper's
// stdin followed by a newline, never via argv or environment.
const wrapperCommand = "sudo"

var wrapperArgs = []string{"-S", "-k", "-p", ""}

type spawnResult struct {
	exitCode int
	stderr   string
	err      error
}

// spawnFunc starts a child process, optionally feeding a secret to stdin,
// and streams stdout lines to progress. Injected so tests can stub it.
type spawnFunc func(ctx context.Context, secret string, progress ports.ProgressFunc, name string, args ...string) spawnResult

// Executor implements ports.PrivilegedRunner.
type Executor struct {
	command  string
	prompter ports.CredentialPrompter
	logger   ports.Logger
	timeout  time.Duration
	strategy strategy
	spawn    spawnFunc
}

// NewExecutor builds an executor for the current platform.
func NewExecutor(command string, prompter ports.CredentialPrompter, logger ports.Logger, timeout time.Duration) *Executor {
	return newExecutorFor(runtime.GOOS, command, prompter, logger, timeout)
}

func newExecutorFor(goos, command string, prompter ports.CredentialPrompter, logger ports.Logger, timeout time.Duration) *Executor {
	if command == "" {
		command = domain.DefaultBackendCommand
	}
	return &Executor{
		command:  command,
		prompter: prompter,
		logger:   logger,
		timeout:  timeout,
		strategy: strategyForPlatform(goos),
		spawn:    spawnProcess,
	}
}

// Run implements ports.PrivilegedRunner.
func (e *Executor) Run(ctx context.Context, op domain.Operation, target string, progress ports.ProgressFunc) domain.OperationResult {
	args := op.BackendArgs(target)
	if args == nil {
		return domain.OperationResult{
			Status:  domain.StatusOperationFailed,
			Message: fmt.Sprintf("unknown operation %q", op),
		}
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	result := e.strategy.run(ctx, e, args, progress)
	if e.logger != nil {
		e.logger.Info("operation finished", map[string]interface{}{
			"operation": string(op),
			"target":    target,
			"status":    string(result.Status),
			"exit_code": result.ExitCode,
		})
	}
	return result
}

// exec spawns the backend tool, through the elevation wrapper when elevated
// is set, and classifies the outcome.
func (e *Executor) exec(ctx context.Context, elevated bool, secret string, args []string, progress ports.ProgressFunc) domain.OperationResult {
	name := e.command
	fullArgs := args
	if elevated {
		name = wrapperCommand
		fullArgs = append(append(append([]string{}, wrapperArgs...), e.command), args...)
	}

	res := e.spawn(ctx, secret, progress, name, fullArgs...)

	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		return domain.OperationResult{Status: domain.StatusCancelled, Message: "operation cancelled", ExitCode: res.exitCode}
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return domain.OperationResult{
			Status:   domain.StatusOperationFailed,
			Message:  fmt.Sprintf("operation timed out after %s", e.timeout),
			ExitCode: res.exitCode,
		}
	case res.err != nil && res.exitCode < 0:
		return domain.OperationResult{Status: domain.StatusOperationFailed, Message: res.err.Error(), ExitCode: res.exitCode}
	case res.exitCode == 0:
		return domain.OperationResult{Status: domain.StatusOK, Message: "done"}
	case elevated && res.exitCode == 1:
		return domain.OperationResult{
			Status:   domain.StatusAuthFailed,
			Message:  "credential rejected by the elevation wrapper",
			ExitCode: res.exitCode,
		}
	default:
		msg := fmt.Sprintf("backend exited with code %d", res.exitCode)
		if detail := strings.TrimSpace(res.stderr); detail != "" {
			if e.logger != nil {
				e.logger.Error("backend operation failed", res.err, map[string]interface{}{
					"exit_code": res.exitCode,
					"stderr":    detail,
				})
			}
			msg = fmt.Sprintf("%s: %s", msg, firstLine(detail))
		}
		return domain.OperationResult{Status: domain.StatusOperationFailed, Message: msg, ExitCode: res.exitCode}
	}
}

// promptCredential asks the user for the elevation secret. A dismissed
// prompt cancels before any process is spawned.
func (e *Executor) promptCredential() (string, *domain.OperationResult) {
	if e.prompter == nil {
		return "", &domain.OperationResult{
			Status:  domain.StatusCancelled,
			Message: "no credential prompter available",
		}
	}
	secret, ok, err := e.prompter.ReadCredential("Password for elevated operation: ")
	if err != nil {
		return "", &domain.OperationResult{Status: domain.StatusOperationFailed, Message: err.Error()}
	}
	if !ok {
		return "", &domain.OperationResult{Status: domain.StatusCancelled, Message: "credential prompt dismissed"}
	}
	return secret, nil
}

func spawnProcess(ctx context.Context, secret string, progress ports.ProgressFunc, name string, args ...string) spawnResult {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.WaitDelay = 3 * time.Second

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return spawnResult{exitCode: -1, err: err}
	}

	var stdin interface {
		Write(p []byte) (int, error)
		Close() error
	}
	if secret != "" {
		stdin, err = cmd.StdinPipe()
		if err != nil {
			return spawnResult{exitCode: -1, err: err}
		}
	}

	if err := cmd.Start(); err != nil {
		return spawnResult{exitCode: -1, err: err}
	}

	if stdin != nil {
		// write once, close the channel immediately
		_, _ = stdin.Write([]byte(secret + "\n"))
		_ = stdin.Close()
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && progress != nil {
			progress(line)
		}
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return spawnResult{exitCode: exitErr.ExitCode(), stderr: stderr.String(), err: err}
		}
		return spawnResult{exitCode: -1, stderr: stderr.String(), err: err}
	}
	return spawnResult{exitCode: 0, stderr: stderr.String()}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

var _ ports.PrivilegedRunner = (*Executor)(nil)
