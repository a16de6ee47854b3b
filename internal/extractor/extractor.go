// Package extractor runs the native-API documentation extractor (doxygen)
// whose XML output breathe cross-references.
package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	ferrors "git.home.luguber.info/inful/docconf/internal/foundation/errors"
	"git.home.luguber.info/inful/docconf/internal/logfields"
)

var (
	// ErrExtractorNotFound indicates the extractor executable was not found on PATH.
	ErrExtractorNotFound = errors.New("extractor binary not found")
	// ErrExtractorStartFailed indicates the extractor process could not be started.
	ErrExtractorStartFailed = errors.New("extractor failed to start")
)

// DefaultCommand is the extractor executable.
const DefaultCommand = "doxygen"

// Extractor performs one extraction pass.
type Extractor interface {
	Run(ctx context.Context) error
}

// Result describes a finished extraction process.
type Result struct {
	ExitCode int
	Duration time.Duration
	Stdout   string
	Stderr   string
}

// CommandExtractor spawns Command with no arguments. Dir empty means the
// current working directory. A relative Command containing a path separator
// (./gen.sh) is resolved against Dir; bare names are looked up on PATH. The call blocks until the process exits; no
// timeout is applied beyond ctx.
type CommandExtractor struct {
	Command string
	Dir     string

	// OnResult, when set, receives the outcome of each started process.
	OnResult func(Result)
}

// NewCommandExtractor returns an extractor for command, defaulting to doxygen.
func NewCommandExtractor(command, dir string) *CommandExtractor {
	if command == "" {
		command = DefaultCommand
	}
	return &CommandExtractor{Command: command, Dir: dir}
}

// Run executes the extractor. Failing to locate or start the process is a
// fatal error. A process that started but exited non-zero yields a
// warning-severity error; callers decide whether to continue.
func (c *CommandExtractor) Run(ctx context.Context) error {
	path, err := exec.LookPath(c.resolve())
	if err != nil {
		return ferrors.ExtractorError("native-API extractor not available").
			WithCause(fmt.Errorf("%w: %w", ErrExtractorNotFound, err)).
			WithContext("command", c.Command).
			Build()
	}

	// #nosec G204 -- command comes from the local settings file
	cmd := exec.CommandContext(ctx, path)
	cmd.Dir = c.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Info("Running native-API extractor", logfields.Command(c.Command), slog.String("dir", c.Dir))
	start := time.Now()
	if err := cmd.Start(); err != nil {
		return ferrors.ExtractorError("native-API extractor failed to start").
			WithCause(fmt.Errorf("%w: %w", ErrExtractorStartFailed, err)).
			WithContext("command", c.Command).
			Build()
	}

	waitErr := cmd.Wait()
	res := Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Duration: time.Since(start),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	if res.Stdout != "" {
		slog.Debug("extractor stdout", "output", res.Stdout)
	}
	if res.Stderr != "" {
		slog.Debug("extractor stderr", "error_output", res.Stderr)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ferrors.ExtractorError("native-API extractor interrupted").
			WithCause(ctxErr).
			WithContext("command", c.Command).
			Build()
	}

	if c.OnResult != nil {
		c.OnResult(res)
	}
	if waitErr == nil {
		slog.Info("Native-API extractor finished", logfields.Command(c.Command), logfields.Duration(res.Duration))
		return nil
	}

	msg := "native-API extractor wait failed"
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		msg = "native-API extractor exited with non-zero status"
	}
	return ferrors.ExtractorError(msg).
		Warning().
		WithCause(waitErr).
		WithContext("command", c.Command).
		WithContext("exit_code", res.ExitCode).
		Build()
}

func (c *CommandExtractor) resolve() string {
	if c.Dir == "" || filepath.IsAbs(c.Command) || !strings.ContainsRune(c.Command, filepath.Separator) {
		return c.Command
	}
	abs, err := filepath.Abs(filepath.Join(c.Dir, c.Command))
	if err != nil {
		return filepath.Join(c.Dir, c.Command)
	}
	return abs
}

// NoopExtractor performs no extraction.
type NoopExtractor struct{}

func (NoopExtractor) Run(context.Context) error {
	slog.Debug("NoopExtractor skipping extraction")
	return nil
}

// Func adapts a function to the Extractor interface.
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error { return f(ctx) }
