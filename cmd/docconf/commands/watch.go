package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/docconf/internal/config"
	"git.home.luguber.info/inful/docconf/internal/logfields"
	"git.home.luguber.info/inful/docconf/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Output   string        `short:"o" help:"conf.py path (defaults to render.source_dir/render.conf_path)"`
	Debounce time.Duration `help:"Quiet period before regenerating" default:"500ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	s, err := openSession(root)
	if err != nil {
		return err
	}
	defer s.close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen := &GenerateCmd{Output: w.Output}
	if err := gen.generate(ctx, g, s); err != nil {
		return err
	}
	return w.watch(ctx, g, root, s, gen)
}

// watch regenerates on change until ctx is done. The watcher is rebuilt
// whenever reloaded settings move autoconf.path.
func (w *WatchCmd) watch(ctx context.Context, g *Global, root *CLI, s *session, gen *GenerateCmd) error {
	for {
		watched := s.cfg.Autoconf.Path
		round, restart := context.WithCancel(ctx)
		moved := false

		watcher, err := watch.New([]string{watched, root.Config}, func(context.Context) error {
			cfg, err := config.Load(root.Config)
			if err != nil {
				return err
			}
			s.cfg = cfg
			if cfg.Autoconf.Path != watched {
				slog.Info("autoconf path changed, re-watching",
					slog.String("from", watched),
					logfields.File(cfg.Autoconf.Path))
				moved = true
				defer restart()
			}
			return gen.generate(ctx, g, s)
		}, w.Debounce)
		if err != nil {
			restart()
			return err
		}

		slog.Info("Watching for changes", logfields.File(watched), slog.String("settings", root.Config))
		err = watcher.Run(round)
		restart()
		if err != nil || !moved || ctx.Err() != nil {
			return err
		}
	}
}
