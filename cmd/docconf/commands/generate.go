package commands

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/docconf/internal/confpy"
	"git.home.luguber.info/inful/docconf/internal/logfields"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output string `short:"o" help:"conf.py path ('-' for stdout; defaults to render.source_dir/render.conf_path)"`
}

func (c *GenerateCmd) Run(g *Global, root *CLI) error {
	s, err := openSession(root)
	if err != nil {
		return err
	}
	defer s.close()
	return c.generate(context.Background(), g, s)
}

func (c *GenerateCmd) generate(ctx context.Context, g *Global, s *session) error {
	cfg, err := s.assemble(ctx, g)
	if err != nil {
		return err
	}
	if c.Output == "-" {
		return confpy.Write(g.Out, cfg, s.source)
	}

	path := c.Output
	if path == "" {
		path = confPath(s.cfg)
	}
	if err := confpy.WriteFile(path, cfg, s.source); err != nil {
		return err
	}
	slog.Info("Wrote conf.py", logfields.File(path), logfields.Version(cfg.Metadata.Version))
	_, err = fmt.Fprintf(g.Out, "Wrote %s (%s %s)\n", path, cfg.Metadata.Project, cfg.Metadata.Version)
	return err
}
