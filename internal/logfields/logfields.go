package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyProject    = "project"
	KeyComponent  = "component"
	KeyVersion    = "version"
	KeyFile       = "file"
	KeyCommand    = "command"
	KeyTarget     = "target"
	KeyHosted     = "hosted"
	KeyDurationMS = "duration_ms"
	KeyExitCode   = "exit_code"
	KeyError      = "error"
	KeyCategory   = "category"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr      { return slog.String(KeyBuildID, id) }
func Project(p string) slog.Attr       { return slog.String(KeyProject, p) }
func Component(c string) slog.Attr     { return slog.String(KeyComponent, c) }
func Version(v string) slog.Attr       { return slog.String(KeyVersion, v) }
func File(path string) slog.Attr       { return slog.String(KeyFile, path) }
func Command(name string) slog.Attr    { return slog.String(KeyCommand, name) }
func Target(kind string) slog.Attr     { return slog.String(KeyTarget, kind) }
func Hosted(hosted bool) slog.Attr     { return slog.Bool(KeyHosted, hosted) }
func ExitCode(code int) slog.Attr      { return slog.Int(KeyExitCode, code) }
func Category(c string) slog.Attr      { return slog.String(KeyCategory, c) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
