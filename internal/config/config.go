package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docconf/internal/environment"
	ferrors "git.home.luguber.info/inful/docconf/internal/foundation/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file looked up when none is given. Files ending
// in .toml are read as TOML, everything else as YAML.
const DefaultPath = "docconf.yaml"

// Config holds the static settings for one documented project.
type Config struct {
	Project   ProjectConfig      `yaml:"project" toml:"project"`
	Autoconf  AutoconfConfig     `yaml:"autoconf" toml:"autoconf"`
	Hosted    environment.Signal `yaml:"hosted" toml:"hosted"`
	Extractor ExtractorConfig    `yaml:"extractor" toml:"extractor"`
	Render    RenderConfig       `yaml:"render" toml:"render"`
	Logging   LoggingConfig      `yaml:"logging" toml:"logging"`
	Metrics   MetricsConfig      `yaml:"metrics" toml:"metrics"`
}

// ProjectConfig carries the identity propagated into every output.
type ProjectConfig struct {
	Name           string            `yaml:"name" toml:"name"`
	Author         string            `yaml:"author" toml:"author"`
	CopyrightYears string            `yaml:"copyright_years" toml:"copyright_years"`
	Component      string            `yaml:"component,omitempty" toml:"component,omitempty"` // defaults to Name
	MasterDoc      string            `yaml:"master_doc" toml:"master_doc"`
	Extensions     []string          `yaml:"extensions" toml:"extensions"`
	LatexElements  map[string]string `yaml:"latex_elements,omitempty" toml:"latex_elements,omitempty"`
}

// AutoconfConfig locates the version declaration.
type AutoconfConfig struct {
	Path  string `yaml:"path" toml:"path"`
	Macro string `yaml:"macro,omitempty" toml:"macro,omitempty"`
}

// ExtractorConfig describes the native-API extractor run in hosted builds.
type ExtractorConfig struct {
	Command   string `yaml:"command" toml:"command"`
	OutputDir string `yaml:"output_dir" toml:"output_dir"`
	Dir       string `yaml:"dir,omitempty" toml:"dir,omitempty"`
}

// RenderConfig describes how the rendering engine is invoked.
type RenderConfig struct {
	Binary    string   `yaml:"binary" toml:"binary"`
	SourceDir string   `yaml:"source_dir" toml:"source_dir"`
	OutputDir string   `yaml:"output_dir" toml:"output_dir"`
	ConfPath  string   `yaml:"conf_path" toml:"conf_path"`
	Targets   []string `yaml:"targets,omitempty" toml:"targets,omitempty"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level" toml:"level"`
	Format LogFormat `yaml:"format" toml:"format"`
}

// MetricsConfig enables the textfile metrics sink when Textfile is set.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty" toml:"textfile,omitempty"`
}

// ComponentName is the AC_INIT component whose version is documented.
func (c *Config) ComponentName() string {
	if c.Project.Component != "" {
		return c.Project.Component
	}
	return c.Project.Name
}

// Default returns the settings with every default applied.
func Default() *Config {
	cfg := &Config{}
	if err := applyDefaults(cfg); err != nil {
		panic(err) // defaults are static
	}
	return cfg
}

// Load reads settings from configPath, expanding ${VAR} references, and applies
// defaults. A missing file is only tolerated at DefaultPath, in which case the
// defaults alone are returned.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && configPath == DefaultPath {
			return Default(), nil
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read settings file").
			Fatal().
			WithContext("file", configPath).
			Build()
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := unmarshal(configPath, []byte(expanded), &cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to parse settings file").
			Fatal().
			WithContext("file", configPath).
			Build()
	}
	if err := applyDefaults(&cfg); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// isTOML reports whether path selects the TOML settings syntax; anything else is YAML.
func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if isTOML(path) {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func marshal(path string, cfg *Config) ([]byte, error) {
	if isTOML(path) {
		return toml.Marshal(cfg)
	}
	return yaml.Marshal(cfg)
}

// Init writes the default settings to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError("settings file already exists (use --force to overwrite)").
			WithContext("file", configPath).
			Build()
	}

	data, err := marshal(configPath, Default())
	if err != nil {
		return ferrors.InternalError("failed to marshal settings").WithCause(err).Build()
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write settings file").
			Fatal().
			WithContext("file", configPath).
			Build()
	}
	return nil
}
