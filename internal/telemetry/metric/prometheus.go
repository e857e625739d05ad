package metric

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// Namespace prefixes every client metric.
const Namespace = "teeline"

// Request outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport_error"
	OutcomeProtocol  = "protocol_error"
)

// Cache lookup results.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Registry holds all client metrics.
type Registry struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	CacheLookups    *prometheus.CounterVec
	LevelSyncs      *prometheus.CounterVec
}

// NewRegistry creates a registry with the client metrics and the Go
// runtime collectors registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Requests sent to the Teeline service by method and outcome.",
		}, []string{"method", "outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip time of requests to the Teeline service.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "client",
			Name:      "cache_lookups_total",
			Help:      "Response cache lookups by result.",
		}, []string{"result"}),
		LevelSyncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "store",
			Name:      "level_syncs_total",
			Help:      "Background level updates by outcome.",
		}, []string{"outcome"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.RequestsTotal,
		r.RequestDuration,
		r.CacheLookups,
		r.LevelSyncs,
	)

	return r
}

// ObserveRequest records one finished request.
func (r *Registry) ObserveRequest(method, outcome string, elapsed time.Duration) {
	r.RequestsTotal.WithLabelValues(method, outcome).Inc()
	r.RequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveCacheLookup records a cache hit or miss.
func (r *Registry) ObserveCacheLookup(hit bool) {
	if hit {
		r.CacheLookups.WithLabelValues(CacheHit).Inc()
		return
	}
	r.CacheLookups.WithLabelValues(CacheMiss).Inc()
}

// ObserveLevelSync records a background level update.
func (r *Registry) ObserveLevelSync(err error) {
	if err != nil {
		r.LevelSyncs.WithLabelValues("error").Inc()
		return
	}
	r.LevelSyncs.WithLabelValues(OutcomeOK).Inc()
}

// Handler returns an HTTP handler serving the registry in the Prometheus
// exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Sample is one time series reduced to a single value. Histograms report
// their observation count and carry the sum separately.
type Sample struct {
	Name   string  `json:"name" yaml:"name"`
	Labels string  `json:"labels" yaml:"labels"`
	Value  float64 `json:"value" yaml:"value"`
	Sum    float64 `json:"sum,omitempty" yaml:"sum,omitempty"`
}

// Snapshot gathers the client metrics, skipping runtime collectors.
// Samples are sorted by name, then labels.
func (r *Registry) Snapshot() ([]Sample, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), Namespace+"_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			s := Sample{Name: mf.GetName(), Labels: formatLabels(m.GetLabel())}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				s.Value = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				s.Value = m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				s.Value = float64(m.GetHistogram().GetSampleCount())
				s.Sum = m.GetHistogram().GetSampleSum()
			default:
				continue
			}
			samples = append(samples, s)
		}
	}

	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Name != samples[j].Name {
			return samples[i].Name < samples[j].Name
		}
		return samples[i].Labels < samples[j].Labels
	})
	return samples, nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+"="+p.GetValue())
	}
	return strings.Join(parts, ",")
}
