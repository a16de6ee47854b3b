package orchestrator

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"time"

	"git.home.luguber.info/inful/docconf/internal/autoconf"
	"git.home.luguber.info/inful/docconf/internal/config"
	"git.home.luguber.info/inful/docconf/internal/environment"
	"git.home.luguber.info/inful/docconf/internal/extractor"
	ferrors "git.home.luguber.info/inful/docconf/internal/foundation/errors"
	"git.home.luguber.info/inful/docconf/internal/logfields"
	"git.home.luguber.info/inful/docconf/internal/metrics"
	"git.home.luguber.info/inful/docconf/internal/sphinx"
	"github.com/google/uuid"
)

// VersionResolver returns the version declared for component in the file at path.
type VersionResolver func(path, component string) (string, error)

// Orchestrator builds a sphinx.Configuration from static settings.
type Orchestrator struct {
	cfg       *config.Config
	extractor extractor.Extractor
	resolve   VersionResolver
	recorder  metrics.Recorder
	logger    *slog.Logger
	newID     func() string
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithExtractor replaces the command extractor built from the settings.
func WithExtractor(e extractor.Extractor) Option {
	return func(o *Orchestrator) {
		if e != nil {
			o.extractor = e
		}
	}
}

// WithVersionResolver replaces the autoconf resolver.
func WithVersionResolver(r VersionResolver) Option {
	return func(o *Orchestrator) {
		if r != nil {
			o.resolve = r
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *Orchestrator) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithLogger sets the logger; slog.Default() otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// New returns an Orchestrator for cfg.
func New(cfg *config.Config, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cfg:       cfg,
		extractor: extractor.NewCommandExtractor(cfg.Extractor.Command, cfg.Extractor.Dir),
		resolve:   autoconf.NewResolver(cfg.Autoconf.Macro).ResolveVersion,
		recorder:  metrics.NoopRecorder{},
		logger:    slog.Default(),
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Assemble runs the hosted-build extraction when env carries the configured
// signal and returns the fully populated configuration.
func (o *Orchestrator) Assemble(ctx context.Context, env environment.View) (*sphinx.Configuration, error) {
	start := time.Now()
	log := o.logger.With(logfields.BuildID(o.newID()), logfields.Project(o.cfg.Project.Name))

	cfg, err := o.assemble(ctx, env, log)
	o.recorder.ObserveAssemblyDuration(time.Since(start), metrics.ResultFor(err))
	if err != nil {
		log.Error("Configuration assembly failed",
			logfields.Category(string(ferrors.GetCategory(err))),
			logfields.Error(err))
		return nil, err
	}
	o.recorder.SetProjectInfo(cfg.Metadata.Project, cfg.Metadata.Version)
	log.Info("Configuration assembled",
		logfields.Version(cfg.Metadata.Version),
		logfields.Duration(time.Since(start)))
	return cfg, nil
}

func (o *Orchestrator) assemble(ctx context.Context, env environment.View, log *slog.Logger) (*sphinx.Configuration, error) {
	hosted := environment.IsHosted(env, o.cfg.Hosted)
	log.Debug("Checked hosted build signal", slog.String("env_var", o.cfg.Hosted.Name), logfields.Hosted(hosted))

	if hosted {
		err := o.extractor.Run(ctx)
		o.recorder.IncExtractorRun(metrics.ResultFor(err))
		if err != nil {
			// The exit status of a started extractor is not inspected.
			ce, ok := ferrors.AsClassified(err)
			if !ok || ce.IsFatal() {
				return nil, err
			}
			log.Warn("Native-API extractor reported a problem; continuing",
				logfields.Category(string(ce.Category())),
				logfields.Error(err))
		}
	} else {
		o.recorder.IncExtractorRun(metrics.ResultSkipped)
	}

	component := o.cfg.ComponentName()
	version, err := o.resolve(o.cfg.Autoconf.Path, component)
	if err != nil {
		return nil, err
	}
	log.Debug("Resolved project version",
		logfields.Component(component),
		logfields.File(o.cfg.Autoconf.Path),
		logfields.Version(version))

	p := o.cfg.Project
	meta := sphinx.NewProjectMetadata(p.Name, p.Author, p.CopyrightYears, version)
	out := &sphinx.Configuration{
		Metadata:      meta,
		MasterDoc:     p.MasterDoc,
		Extensions:    slices.Clone(p.Extensions),
		Bridge:        sphinx.NewExtractorBridge(meta.Project, o.cfg.Extractor.OutputDir),
		LatexElements: maps.Clone(p.LatexElements),
		Targets:       sphinx.NewRenderTargets(meta, p.MasterDoc),
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Assemble builds the configuration for cfg with default collaborators.
func Assemble(ctx context.Context, cfg *config.Config, env environment.View, opts ...Option) (*sphinx.Configuration, error) {
	return New(cfg, opts...).Assemble(ctx, env)
}
