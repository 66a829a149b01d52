// Package shell executes configured default-value commands.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// ErrCommandFailed indicates the command exited non-zero or timed out.
// Callers treat this as "no value produced", not as a fatal error.
var ErrCommandFailed = errors.New("command produced no value")

// DefaultTimeout bounds a single default-value command.
const DefaultTimeout = 10 * time.Second

// Executor runs one shell command and returns its captured stdout.
type Executor interface {
	Run(ctx context.Context, command string) (string, error)
}

// Option configures a local executor.
type Option func(*localExecutor)

// WithTimeout overrides the per-command timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(e *localExecutor) {
		if timeout > 0 {
			e.timeout = timeout
		}
	}
}

// WithStderr directs command stderr somewhere other than the void.
func WithStderr(w io.Writer) Option {
	return func(e *localExecutor) {
		e.stderr = w
	}
}

// NewExecutor returns an executor that runs commands through `sh -c`.
func NewExecutor(opts ...Option) Executor {
	e := &localExecutor{
		timeout: DefaultTimeout,
		stderr:  io.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type localExecutor struct {
	timeout time.Duration
	stderr  io.Writer
}

func (e *localExecutor) Run(ctx context.Context, command string) (string, error) {
	if strings.TrimSpace(command) == "" {
		return "", fmt.Errorf("%w: empty command", ErrCommandFailed)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Env = os.Environ()
	cmd.Stderr = e.stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: timed out after %s", ErrCommandFailed, e.timeout)
		}
		return "", fmt.Errorf("%w: %v", ErrCommandFailed, err)
	}

	return strings.TrimSuffix(stdout.String(), "\n"), nil
}
