// Package executor runs jira-cli as a child process and captures its output.
//
// The executor is the only place in the server that touches os/exec. It never
// inherits the parent's stdout or stderr: both streams are captured into
// buffers, keeping the stdio channel reserved for JSON-RPC framing clean no
// matter what the child prints.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"jiramcp/internal/config"
	"jiramcp/internal/logging"
)

// Sentinel errors callers match with errors.Is.
var (
	// ErrBinaryMissing reports that the jira-cli executable could not be
	// found or started.
	ErrBinaryMissing = errors.New("jira-cli not found")
	// ErrTimeout reports that the child process exceeded the configured
	// deadline and was killed.
	ErrTimeout = errors.New("jira-cli command timed out")
)

// Result captures a completed jira-cli invocation. A non-zero ExitCode is a
// normal Result, not a Go error; interpreting it belongs to the caller.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor invokes jira-cli with a fixed path, timeout, and environment, all
// resolved once at construction so nothing here reads the process
// environment per call.
type Executor struct {
	path    string
	timeout time.Duration
	env     []string
	logger  *logging.AppLogger
}

// New builds an Executor from the startup configuration. The child
// environment is the ambient one plus the resolved credentials: jira-cli
// reads JIRA_API_TOKEN and JIRA_AUTH_TYPE, and the config may have sourced
// them from an alias variable or a .env file, so the config values are
// appended last and win over anything already present.
func New(cfg *config.Config, logger *logging.AppLogger) *Executor {
	env := append(os.Environ(),
		"JIRA_API_TOKEN="+cfg.APIToken,
		"JIRA_AUTH_TYPE="+cfg.AuthType,
	)
	return &Executor{
		path:    cfg.CLIPath,
		timeout: cfg.Timeout,
		env:     env,
		logger:  logger,
	}
}

// Run executes jira-cli with the given arguments, feeding stdin to the child
// when non-empty, and returns the captured output. The per-call timeout is
// layered onto ctx so a disconnecting client cancels the child as well.
func (e *Executor) Run(ctx context.Context, args []string, stdin string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	e.logger.Debug("Running jira command", "path", e.path, "args", strings.Join(args, " "))
	defer e.logger.LogPerformance("jira "+strings.Join(args, " "), time.Now())

	cmd := exec.CommandContext(ctx, e.path, args...)
	cmd.Env = e.env
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.Is(err, exec.ErrNotFound), errors.Is(err, os.ErrNotExist):
			return res, fmt.Errorf("%w at path %q: install jira-cli or set JIRA_CLI_PATH", ErrBinaryMissing, e.path)
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return res, fmt.Errorf("%w after %s", ErrTimeout, e.timeout)
		case ctx.Err() != nil:
			// Client disconnected or the call was cancelled upstream.
			return res, ctx.Err()
		case errors.As(err, &exitErr):
			res.ExitCode = exitErr.ExitCode()
		default:
			return res, fmt.Errorf("failed to run jira-cli: %w", err)
		}
	}

	e.logger.Debug("Jira command finished", "exit_code", res.ExitCode, "stdout_len", len(res.Stdout), "stderr_len", len(res.Stderr))
	return res, nil
}
