package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg              *prom.Registry
	assemblyDuration *prom.HistogramVec
	extractorRuns    *prom.CounterVec
	renderDuration   *prom.HistogramVec
	renderResults    *prom.CounterVec
	projectInfo      *prom.GaugeVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.assemblyDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "docconf",
		Name:      "assembly_duration_seconds",
		Help:      "Duration of configuration assembly including the extractor pass",
		Buckets:   prom.DefBuckets,
	}, []string{"result"})
	pr.extractorRuns = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "docconf",
		Name:      "extractor_runs_total",
		Help:      "Native-API extractor invocations by outcome",
	}, []string{"result"})
	pr.renderDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "docconf",
		Name:      "render_duration_seconds",
		Help:      "Duration of rendering engine invocations per target",
		Buckets:   prom.ExponentialBuckets(0.5, 2, 10),
	}, []string{"target"})
	pr.renderResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "docconf",
		Name:      "render_results_total",
		Help:      "Rendering engine invocations by target and outcome",
	}, []string{"target", "result"})
	pr.projectInfo = prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "docconf",
		Name:      "project_info",
		Help:      "Constant 1 labelled with the documented project and version",
	}, []string{"project", "version"})
	reg.MustRegister(pr.assemblyDuration, pr.extractorRuns, pr.renderDuration, pr.renderResults, pr.projectInfo)
	return pr
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

func (p *PrometheusRecorder) ObserveAssemblyDuration(d time.Duration, result ResultLabel) {
	if p == nil {
		return
	}
	p.assemblyDuration.WithLabelValues(string(result)).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncExtractorRun(result ResultLabel) {
	if p == nil {
		return
	}
	p.extractorRuns.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRenderDuration(target string, d time.Duration, result ResultLabel) {
	if p == nil {
		return
	}
	p.renderDuration.WithLabelValues(target).Observe(d.Seconds())
	p.renderResults.WithLabelValues(target, string(result)).Inc()
}

func (p *PrometheusRecorder) SetProjectInfo(project, version string) {
	if p == nil {
		return
	}
	p.projectInfo.Reset()
	p.projectInfo.WithLabelValues(project, version).Set(1)
}

// WriteTextfile writes all gathered metrics to path in the text exposition
// format read by the node exporter textfile collector.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
