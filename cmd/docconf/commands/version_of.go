package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docconf/internal/autoconf"
	"git.home.luguber.info/inful/docconf/internal/config"
)

// VersionOfCmd implements the 'version-of' command.
type VersionOfCmd struct {
	Component string `arg:"" optional:"" help:"Component name (defaults to the configured component)"`
	File      string `short:"f" help:"Build-configuration file (defaults to autoconf.path)" type:"path"`
}

func (v *VersionOfCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	component := v.Component
	if component == "" {
		component = cfg.ComponentName()
	}
	file := v.File
	if file == "" {
		file = cfg.Autoconf.Path
	}

	version, err := autoconf.NewResolver(cfg.Autoconf.Macro).ResolveVersion(file, component)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.Out, version)
	return err
}
