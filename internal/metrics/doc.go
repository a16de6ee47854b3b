// Package metrics records configuration-assembly and rendering metrics.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	orch := orchestrator.New(settings, orchestrator.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// docconf is a short-lived process, so the Prometheus recorder is flushed to
// a node-exporter textfile (WriteTextfile) instead of being scraped.
package metrics
