// Package render hands an assembled configuration to the rendering engine,
// one engine invocation per output format.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	ferrors "git.home.luguber.info/inful/docconf/internal/foundation/errors"
	"git.home.luguber.info/inful/docconf/internal/logfields"
	"git.home.luguber.info/inful/docconf/internal/metrics"
	"git.home.luguber.info/inful/docconf/internal/sphinx"
)

var (
	// ErrRendererNotFound indicates the engine executable was not detected on PATH.
	ErrRendererNotFound = errors.New("rendering engine binary not found")
	// ErrRenderFailed indicates the engine returned a non-zero exit status.
	ErrRenderFailed = errors.New("rendering engine execution failed")
)

// Renderer produces the output of one target.
type Renderer interface {
	Render(ctx context.Context, target sphinx.RenderTarget, sourceDir, outputDir string) error
}

// BinaryRenderer invokes sphinx-build (or a compatible binary).
type BinaryRenderer struct {
	Binary string
}

// Render runs `<binary> -b <builder> <sourceDir> <outputDir>/<builder>`.
func (b *BinaryRenderer) Render(ctx context.Context, target sphinx.RenderTarget, sourceDir, outputDir string) error {
	builder := target.Kind.Builder()
	if builder == "" {
		return ferrors.ValidationError("render target has no builder").
			WithContext("target", string(target.Kind)).
			Build()
	}

	binary, err := exec.LookPath(b.Binary)
	if err != nil {
		return ferrors.RenderError("rendering engine not available").
			Fatal().
			WithCause(fmt.Errorf("%w: %w", ErrRendererNotFound, err)).
			WithContext("binary", b.Binary).
			Build()
	}

	if stat, err := os.Stat(sourceDir); err != nil || !stat.IsDir() {
		return ferrors.FileSystemError("documentation source directory missing").
			WithCause(err).
			WithContext("dir", sourceDir).
			Build()
	}

	dest := filepath.Join(outputDir, builder)
	// #nosec G204 -- binary is resolved through exec.LookPath from local settings
	cmd := exec.CommandContext(ctx, binary, "-b", builder, sourceDir, dest)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	slog.Debug("Invoking rendering engine", logfields.Target(string(target.Kind)), slog.String("builder", builder), slog.String("dest", dest))

	err = cmd.Run()

	outStr := stdout.String()
	errStr := stderr.String()
	if outStr != "" {
		slog.Debug("sphinx-build stdout", "output", outStr)
	}
	if errStr != "" {
		slog.Warn("sphinx-build stderr", "error_output", errStr)
	}

	if err != nil {
		output := errStr
		if output == "" {
			output = outStr
		}
		cause := fmt.Errorf("%w: %w", ErrRenderFailed, err)
		if output != "" {
			cause = fmt.Errorf("%w: %w: %s", ErrRenderFailed, err, output)
		}
		return ferrors.RenderError("rendering engine failed").
			WithCause(cause).
			WithContext("target", string(target.Kind)).
			Build()
	}
	return nil
}

// NoopRenderer performs no rendering; useful in tests or when only conf.py is wanted.
type NoopRenderer struct{}

func (NoopRenderer) Render(_ context.Context, target sphinx.RenderTarget, _, _ string) error {
	slog.Debug("NoopRenderer skipping render", logfields.Target(string(target.Kind)))
	return nil
}

// Report summarizes one target's render.
type Report struct {
	Target   sphinx.TargetKind
	Duration time.Duration
	Err      error
}

// RenderAll renders the requested kinds of cfg in render order, stopping at
// the first failure. An empty kinds renders every target.
func RenderAll(ctx context.Context, r Renderer, cfg *sphinx.Configuration, kinds []sphinx.TargetKind, sourceDir, outputDir string, rec metrics.Recorder) ([]Report, error) {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	if len(kinds) == 0 {
		kinds = sphinx.AllTargetKinds()
	}
	wanted := make(map[sphinx.TargetKind]bool, len(kinds))
	for _, k := range kinds {
		wanted[k] = true
	}

	var reports []Report
	for _, target := range cfg.Targets.All() {
		if !wanted[target.Kind] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		start := time.Now()
		err := r.Render(ctx, target, sourceDir, outputDir)
		d := time.Since(start)
		rec.ObserveRenderDuration(string(target.Kind), d, metrics.ResultFor(err))
		reports = append(reports, Report{Target: target.Kind, Duration: d, Err: err})
		if err != nil {
			slog.Error("Render failed", logfields.Target(string(target.Kind)), logfields.Error(err))
			return reports, err
		}
		slog.Info("Rendered target",
			logfields.Target(string(target.Kind)),
			logfields.Project(target.Meta.Project),
			logfields.Duration(d))
	}
	return reports, nil
}
