package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/docconf/internal/config"
	"git.home.luguber.info/inful/docconf/internal/environment"
	"git.home.luguber.info/inful/docconf/internal/metrics"
	"git.home.luguber.info/inful/docconf/internal/orchestrator"
	"git.home.luguber.info/inful/docconf/internal/sphinx"
	"github.com/alecthomas/kong"
)

// Global carries process-wide collaborators into subcommands.
type Global struct {
	Out    io.Writer
	ErrOut io.Writer
	Env    environment.View

	// Options are appended to every orchestrator built by a command.
	Options []orchestrator.Option
}

// NewGlobal returns collaborators bound to the real process.
func NewGlobal() *Global {
	return &Global{Out: os.Stdout, ErrOut: os.Stderr, Env: environment.OS{}}
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Settings file path" default:"docconf.yaml"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	EnvFile   []string         `name:"env-file" help:"Environment files to load (defaults to .env, .env.local)" type:"path"`
	LogFormat string           `name:"log-format" help:"Log output format (text|json); overrides settings"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	VersionOf VersionOfCmd `cmd:"" name:"version-of" help:"Print the version declared for a component in configure.ac"`
	Assemble  AssembleCmd  `cmd:"" help:"Assemble the documentation configuration and print it"`
	Generate  GenerateCmd  `cmd:"" help:"Assemble the documentation configuration and write conf.py"`
	Build     BuildCmd     `cmd:"" help:"Assemble the configuration and render every output format"`
	Watch     WatchCmd     `cmd:"" help:"Regenerate conf.py whenever configure.ac or the settings change"`
	Init      InitCmd      `cmd:"" help:"Write a default settings file"`
}

// AfterApply runs after flag parsing; loads .env files and sets up logging once.
func (c *CLI) AfterApply() error {
	slog.SetDefault(c.logger(config.LoggingConfig{Format: config.NormalizeLogFormat(c.LogFormat)}))
	if _, err := environment.LoadDotEnv(c.EnvFile...); err != nil {
		return err
	}
	return nil
}

func (c *CLI) logger(l config.LoggingConfig) *slog.Logger {
	if c.LogFormat != "" {
		l.Format = config.NormalizeLogFormat(c.LogFormat)
	}
	return l.NewLogger(os.Stderr, c.Verbose)
}

// session bundles the settings and metrics sink of one command invocation.
type session struct {
	cfg      *config.Config
	source   string
	recorder metrics.Recorder
	prom     *metrics.PrometheusRecorder
}

// openSession loads settings, applies their logging section and prepares metrics.
func openSession(root *CLI) (*session, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(root.logger(cfg.Logging))

	s := &session{cfg: cfg, source: filepath.Base(root.Config), recorder: metrics.NoopRecorder{}}
	if cfg.Metrics.Textfile != "" {
		s.prom = metrics.NewPrometheusRecorder(nil)
		s.recorder = s.prom
	}
	return s, nil
}

func (s *session) assemble(ctx context.Context, g *Global) (*sphinx.Configuration, error) {
	opts := append([]orchestrator.Option{orchestrator.WithRecorder(s.recorder)}, g.Options...)
	return orchestrator.Assemble(ctx, s.cfg, g.Env, opts...)
}

// close flushes metrics, if enabled.
func (s *session) close() {
	if s.prom == nil {
		return
	}
	if err := s.prom.WriteTextfile(s.cfg.Metrics.Textfile); err != nil {
		slog.Warn("Failed to write metrics textfile", "file", s.cfg.Metrics.Textfile, "error", err)
	}
}

// confPath resolves the conf.py location inside the documentation source directory.
func confPath(cfg *config.Config) string {
	if filepath.IsAbs(cfg.Render.ConfPath) {
		return cfg.Render.ConfPath
	}
	return filepath.Join(cfg.Render.SourceDir, cfg.Render.ConfPath)
}
