package config

import (
	"slices"

	"git.home.luguber.info/inful/docconf/internal/autoconf"
	"git.home.luguber.info/inful/docconf/internal/environment"
	"git.home.luguber.info/inful/docconf/internal/extractor"
	"git.home.luguber.info/inful/docconf/internal/sphinx"
)

// Project defaults describe fsmlite, the library these settings were written for.
const (
	DefaultProjectName    = "fsmlite"
	DefaultAuthor         = "Thomas Kemmer"
	DefaultCopyrightYears = "2015-2020"
	DefaultMasterDoc      = "index"
	DefaultAutoconfPath   = "../configure.ac"
	DefaultExtractorOut   = "doxyxml/"
	DefaultRenderBinary   = "sphinx-build"
	DefaultSourceDir      = "."
	DefaultOutputDir      = "_build"
	DefaultConfPath       = "conf.py"
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

type projectDefaults struct{}

func (projectDefaults) Domain() string { return "project" }

func (projectDefaults) ApplyDefaults(cfg *Config) error {
	p := &cfg.Project
	if p.Name == "" {
		p.Name = DefaultProjectName
	}
	if p.Author == "" {
		p.Author = DefaultAuthor
	}
	if p.CopyrightYears == "" {
		p.CopyrightYears = DefaultCopyrightYears
	}
	if p.MasterDoc == "" {
		p.MasterDoc = DefaultMasterDoc
	}
	if len(p.Extensions) == 0 {
		p.Extensions = slices.Clone(sphinx.DefaultExtensions)
	}
	return nil
}

type autoconfDefaults struct{}

func (autoconfDefaults) Domain() string { return "autoconf" }

func (autoconfDefaults) ApplyDefaults(cfg *Config) error {
	if cfg.Autoconf.Path == "" {
		cfg.Autoconf.Path = DefaultAutoconfPath
	}
	if cfg.Autoconf.Macro == "" {
		cfg.Autoconf.Macro = autoconf.DefaultMacro
	}
	return nil
}

type hostedDefaults struct{}

func (hostedDefaults) Domain() string { return "hosted" }

func (hostedDefaults) ApplyDefaults(cfg *Config) error {
	if cfg.Hosted.Name == "" {
		cfg.Hosted.Name = environment.ReadTheDocs.Name
	}
	if cfg.Hosted.Sentinel == "" {
		cfg.Hosted.Sentinel = environment.ReadTheDocs.Sentinel
	}
	return nil
}

type extractorDefaults struct{}

func (extractorDefaults) Domain() string { return "extractor" }

func (extractorDefaults) ApplyDefaults(cfg *Config) error {
	if cfg.Extractor.Command == "" {
		cfg.Extractor.Command = extractor.DefaultCommand
	}
	if cfg.Extractor.OutputDir == "" {
		cfg.Extractor.OutputDir = DefaultExtractorOut
	}
	return nil
}

type renderDefaults struct{}

func (renderDefaults) Domain() string { return "render" }

func (renderDefaults) ApplyDefaults(cfg *Config) error {
	r := &cfg.Render
	if r.Binary == "" {
		r.Binary = DefaultRenderBinary
	}
	if r.SourceDir == "" {
		r.SourceDir = DefaultSourceDir
	}
	if r.OutputDir == "" {
		r.OutputDir = DefaultOutputDir
	}
	if r.ConfPath == "" {
		r.ConfPath = DefaultConfPath
	}
	if len(r.Targets) == 0 {
		for _, k := range sphinx.AllTargetKinds() {
			r.Targets = append(r.Targets, string(k))
		}
	}
	return nil
}

type loggingDefaults struct{}

func (loggingDefaults) Domain() string { return "logging" }

func (loggingDefaults) ApplyDefaults(cfg *Config) error {
	cfg.Logging.Level = NormalizeLogLevel(string(cfg.Logging.Level))
	cfg.Logging.Format = NormalizeLogFormat(string(cfg.Logging.Format))
	return nil
}

var defaultAppliers = []DefaultApplier{
	projectDefaults{},
	autoconfDefaults{},
	hostedDefaults{},
	extractorDefaults{},
	renderDefaults{},
	loggingDefaults{},
}

func applyDefaults(cfg *Config) error {
	for _, a := range defaultAppliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}
