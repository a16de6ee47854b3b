package config

import (
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docconf/internal/foundation"
	"git.home.luguber.info/inful/docconf/internal/sphinx"
)

// Validate checks settings after defaults have been applied. Every failure is
// reported, not only the first.
func Validate(cfg *Config) error {
	result := foundation.NoneOf("project.name", " \t\n", "must not contain whitespace")(cfg.Project.Name).
		Combine(foundation.NoneOf("autoconf.macro", "()[] \t", "must be a bare macro name")(cfg.Autoconf.Macro)).
		Combine(commandValidator(cfg.Extractor.Command)).
		Combine(targetsValidator(cfg.Render.Targets))
	return result.ToError()
}

// commandValidator rejects arguments after the extractor command. Whitespace
// is allowed inside the directory part of an explicit path.
func commandValidator(command string) foundation.ValidationResult {
	if !strings.ContainsAny(command, " \t") {
		return foundation.Valid()
	}
	explicit := filepath.IsAbs(command) ||
		strings.HasPrefix(command, "."+string(filepath.Separator)) ||
		strings.HasPrefix(command, ".."+string(filepath.Separator))
	if explicit && !strings.ContainsAny(filepath.Base(command), " \t") && !looksLikeArgument(command) {
		return foundation.Valid()
	}
	return foundation.Fail("extractor.command", "arguments",
		"is run without arguments; only a directory in an explicit path may contain spaces", command)
}

// looksLikeArgument reports whether a word after the first is a flag or a
// second absolute path.
func looksLikeArgument(command string) bool {
	for _, word := range strings.Fields(command)[1:] {
		if strings.HasPrefix(word, "-") || filepath.IsAbs(word) {
			return true
		}
	}
	return false
}

func targetsValidator(targets []string) foundation.ValidationResult {
	result := foundation.Valid()
	seen := make(map[sphinx.TargetKind]bool)
	for _, t := range targets {
		kind, ok := sphinx.ParseTargetKind(t)
		if !ok {
			result = result.Combine(foundation.Fail("render.targets", "unknown", "unknown render target", t))
			continue
		}
		if seen[kind] {
			result = result.Combine(foundation.Fail("render.targets", "duplicate", "duplicate render target", t))
		}
		seen[kind] = true
	}
	return result
}

// TargetKinds returns the configured render targets in render order.
func (c *Config) TargetKinds() []sphinx.TargetKind {
	wanted := make(map[sphinx.TargetKind]bool, len(c.Render.Targets))
	for _, t := range c.Render.Targets {
		if k, ok := sphinx.ParseTargetKind(t); ok {
			wanted[k] = true
		}
	}
	var kinds []sphinx.TargetKind
	for _, k := range sphinx.AllTargetKinds() {
		if wanted[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
