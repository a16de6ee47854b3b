package main

import (
	"log/slog"

	"git.home.luguber.info/inful/docconf/cmd/docconf/commands"
	ferrors "git.home.luguber.info/inful/docconf/internal/foundation/errors"
	"git.home.luguber.info/inful/docconf/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	var cli commands.CLI
	global := commands.NewGlobal()

	ctx := kong.Parse(&cli,
		kong.Name("docconf"),
		kong.Description("Assemble Sphinx documentation settings from configure.ac"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	if err := ctx.Run(global, &cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
