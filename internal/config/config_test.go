package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	ferrors "git.home.luguber.info/inful/docconf/internal/foundation/errors"
	"git.home.luguber.info/inful/docconf/internal/sphinx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docconf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "fsmlite", cfg.Project.Name)
	assert.Equal(t, "fsmlite", cfg.ComponentName())
	assert.Equal(t, "Thomas Kemmer", cfg.Project.Author)
	assert.Equal(t, "2015-2020", cfg.Project.CopyrightYears)
	assert.Equal(t, "index", cfg.Project.MasterDoc)
	assert.Equal(t, sphinx.DefaultExtensions, cfg.Project.Extensions)
	assert.Equal(t, "../configure.ac", cfg.Autoconf.Path)
	assert.Equal(t, "AC_INIT", cfg.Autoconf.Macro)
	assert.Equal(t, "READTHEDOCS", cfg.Hosted.Name)
	assert.Equal(t, "True", cfg.Hosted.Sentinel)
	assert.Equal(t, "doxygen", cfg.Extractor.Command)
	assert.Equal(t, "doxyxml/", cfg.Extractor.OutputDir)
	assert.Equal(t, "sphinx-build", cfg.Render.Binary)
	assert.Equal(t, []string{"web", "typeset-manual", "man-page"}, cfg.Render.Targets)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	require.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	t.Setenv("DOCCONF_TEST_AUTHOR", "Jane Doe")
	path := writeSettings(t, `
project:
  name: mylib
  author: ${DOCCONF_TEST_AUTHOR}
  component: mylib-core
autoconf:
  path: configure.ac
hosted:
  env_var: CI_DOCS
  sentinel: "yes"
render:
  targets: [html, man]
logging:
  level: DEBUG
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mylib", cfg.Project.Name)
	assert.Equal(t, "Jane Doe", cfg.Project.Author)
	assert.Equal(t, "mylib-core", cfg.ComponentName())
	assert.Equal(t, "2015-2020", cfg.Project.CopyrightYears)
	assert.Equal(t, "configure.ac", cfg.Autoconf.Path)
	assert.Equal(t, "CI_DOCS", cfg.Hosted.Name)
	assert.Equal(t, "yes", cfg.Hosted.Sentinel)
	assert.Equal(t, []sphinx.TargetKind{sphinx.TargetWeb, sphinx.TargetManPage}, cfg.TargetKinds())
	assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
	})

	t.Run("missing default file", func(t *testing.T) {
		chdir(t, t.TempDir())
		cfg, err := Load(DefaultPath)
		require.NoError(t, err)
		assert.Equal(t, "fsmlite", cfg.Project.Name)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeSettings(t, "project: [unterminated"))
		require.Error(t, err)
		assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := Load(writeSettings(t, "render:\n  targets: [epub]\n"))
		require.Error(t, err)
		assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	})

	t.Run("duplicate target", func(t *testing.T) {
		_, err := Load(writeSettings(t, "render:\n  targets: [html, web]\n"))
		require.Error(t, err)
		assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	})

	t.Run("extractor with arguments", func(t *testing.T) {
		_, err := Load(writeSettings(t, "extractor:\n  command: doxygen Doxyfile\n"))
		require.Error(t, err)
		assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	})
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docconf.yaml")

	require.NoError(t, Init(path, false))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	err = Init(path, false)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))

	require.NoError(t, Init(path, true))
}

func TestLogging(t *testing.T) {
	assert.Equal(t, LogLevelWarn, NormalizeLogLevel(" Warning "))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("verbose"))
	assert.Equal(t, LogFormatText, NormalizeLogFormat("logfmt"))

	var buf bytes.Buffer
	logger := LoggingConfig{Level: LogLevelError, Format: LogFormatJSON}.NewLogger(&buf, false)
	logger.Info("hidden")
	logger.Error("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	logger = LoggingConfig{Level: LogLevelError}.NewLogger(&buf, true)
	logger.Debug("debug visible")
	assert.Contains(t, buf.String(), "debug visible")
}

func TestValidateReportsEveryFailure(t *testing.T) {
	cfg := Default()
	cfg.Project.Name = "fsm lite"
	cfg.Render.Targets = []string{"epub", "html", "web"}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project.name: must not contain whitespace")
	assert.Contains(t, err.Error(), "unknown render target")
	assert.Contains(t, err.Error(), "duplicate render target")
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docconf.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[project]
name = "mylib"
author = "Jane Doe"

[autoconf]
path = "configure.ac"

[hosted]
env_var = "CI_DOCS"
sentinel = "yes"

[render]
targets = ["latex"]
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mylib", cfg.Project.Name)
	assert.Equal(t, "Jane Doe", cfg.Project.Author)
	assert.Equal(t, "configure.ac", cfg.Autoconf.Path)
	assert.Equal(t, "CI_DOCS", cfg.Hosted.Name)
	assert.Equal(t, []sphinx.TargetKind{sphinx.TargetTypesetManual}, cfg.TargetKinds())
	assert.Equal(t, "doxygen", cfg.Extractor.Command)
}

func TestInitTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docconf.toml")

	require.NoError(t, Init(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[project]")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestExtractorCommandValidation(t *testing.T) {
	tests := []struct {
		command string
		valid   bool
	}{
		{"doxygen", true},
		{"/opt/Doxygen Tools/doxygen", true},
		{"./tools/run doxygen.sh", false},
		{"../Doc Tools/doxygen", true},
		{"doxygen Doxyfile", false},
		{"/usr/bin/doxygen -g", false},
		{"/usr/bin/doxygen /etc/Doxyfile", false},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			cfg := Default()
			cfg.Extractor.Command = tt.command
			err := Validate(cfg)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
		})
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
