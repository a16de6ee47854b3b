// Package environment abstracts read access to process environment signals so
// hosted-build detection can be exercised without mutating the real environment.
package environment

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// View reads named environment signals.
type View interface {
	Lookup(key string) (string, bool)
}

// OS reads from the process environment.
type OS struct{}

func (OS) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

// Map is a fixed set of environment values.
type Map map[string]string

func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Signal names the variable and value identifying a hosted documentation build.
type Signal struct {
	Name     string `yaml:"env_var" toml:"env_var"`
	Sentinel string `yaml:"sentinel" toml:"sentinel"`
}

// ReadTheDocs is the signal exported by the Read the Docs build service.
var ReadTheDocs = Signal{Name: "READTHEDOCS", Sentinel: "True"}

// IsHosted reports whether env carries sig's sentinel value. An unset variable is never hosted.
func IsHosted(env View, sig Signal) bool {
	if env == nil || sig.Name == "" {
		return false
	}
	v, ok := env.Lookup(sig.Name)
	return ok && v == sig.Sentinel
}

// DefaultDotEnvFiles are tried in order by LoadDotEnv when no paths are given.
var DefaultDotEnvFiles = []string{".env", ".env.local"}

// LoadDotEnv loads KEY=VALUE files into the process environment without
// overriding variables that are already set. Missing files are skipped; the
// names of the files actually loaded are returned.
func LoadDotEnv(paths ...string) ([]string, error) {
	if len(paths) == 0 {
		paths = DefaultDotEnvFiles
	}
	var loaded []string
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, err
		}
		slog.Debug("Loaded environment file", "file", p)
		loaded = append(loaded, p)
	}
	return loaded, nil
}
