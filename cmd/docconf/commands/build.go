package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/docconf/internal/confpy"
	ferrors "git.home.luguber.info/inful/docconf/internal/foundation/errors"
	"git.home.luguber.info/inful/docconf/internal/render"
	"git.home.luguber.info/inful/docconf/internal/sphinx"
	"github.com/fatih/color"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Target   []string `short:"t" help:"Targets to render (web|typeset-manual|man-page or html|latex|man); defaults to render.targets"`
	Output   string   `short:"o" help:"Output directory (defaults to render.output_dir)"`
	SkipConf bool     `name:"skip-conf" help:"Do not rewrite conf.py before rendering"`

	// Renderer overrides the sphinx-build invocation (tests).
	Renderer render.Renderer `kong:"-"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	s, err := openSession(root)
	if err != nil {
		return err
	}
	defer s.close()

	kinds, err := b.kinds(s)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := s.assemble(ctx, g)
	if err != nil {
		return err
	}
	if !b.SkipConf {
		if err := confpy.WriteFile(confPath(s.cfg), cfg, s.source); err != nil {
			return err
		}
	}

	out := b.Output
	if out == "" {
		out = s.cfg.Render.OutputDir
	}
	r := b.Renderer
	if r == nil {
		r = &render.BinaryRenderer{Binary: s.cfg.Render.Binary}
	}

	reports, err := render.RenderAll(ctx, r, cfg, kinds, s.cfg.Render.SourceDir, out, s.recorder)
	ok, failed := color.New(color.FgGreen), color.New(color.FgRed, color.Bold)
	for _, rep := range reports {
		status := ok.Sprint("ok")
		if rep.Err != nil {
			status = failed.Sprint("failed")
		}
		_, _ = fmt.Fprintf(g.Out, "%-15s %s %s\n", rep.Target, status, rep.Duration.Round(time.Millisecond))
	}
	return err
}

func (b *BuildCmd) kinds(s *session) ([]sphinx.TargetKind, error) {
	if len(b.Target) == 0 {
		return s.cfg.TargetKinds(), nil
	}
	kinds := make([]sphinx.TargetKind, 0, len(b.Target))
	for _, t := range b.Target {
		k, ok := sphinx.ParseTargetKind(t)
		if !ok {
			return nil, ferrors.ValidationError(fmt.Sprintf("unknown render target %q", t)).
				WithContext("target", t).
				Build()
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
