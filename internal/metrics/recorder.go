package metrics

import "time"

// ResultLabel enumerates outcome categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultSkipped ResultLabel = "skipped"
	ResultFailed  ResultLabel = "failed"
)

// Recorder defines observability hooks for a documentation build.
type Recorder interface {
	ObserveAssemblyDuration(d time.Duration, result ResultLabel)
	IncExtractorRun(result ResultLabel)
	ObserveRenderDuration(target string, d time.Duration, result ResultLabel)
	SetProjectInfo(project, version string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveAssemblyDuration(time.Duration, ResultLabel)       {}
func (NoopRecorder) IncExtractorRun(ResultLabel)                              {}
func (NoopRecorder) ObserveRenderDuration(string, time.Duration, ResultLabel) {}
func (NoopRecorder) SetProjectInfo(string, string)                           {}

// ResultFor maps an error to a result label.
func ResultFor(err error) ResultLabel {
	if err != nil {
		return ResultFailed
	}
	return ResultSuccess
}
