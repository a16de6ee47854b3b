package commands

import (
	"context"
	"encoding/json"

	ferrors "git.home.luguber.info/inful/docconf/internal/foundation/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// AssembleCmd implements the 'assemble' command.
type AssembleCmd struct {
	Format string `short:"F" help:"Output format (yaml|json|toml)" enum:"yaml,json,toml" default:"yaml"`
}

func (a *AssembleCmd) Run(g *Global, root *CLI) error {
	s, err := openSession(root)
	if err != nil {
		return err
	}
	defer s.close()

	cfg, err := s.assemble(context.Background(), g)
	if err != nil {
		return err
	}
	doc := cfg.Document()

	switch a.Format {
	case "toml":
		enc := toml.NewEncoder(g.Out)
		enc.SetIndentTables(true)
		err = enc.Encode(doc)
	case "json":
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	default:
		enc := yaml.NewEncoder(g.Out)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if err == nil {
			err = enc.Close()
		}
	}
	if err != nil {
		return ferrors.InternalError("failed to encode configuration").
			WithCause(err).
			WithContext("format", a.Format).
			Build()
	}
	return nil
}
