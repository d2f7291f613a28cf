// ABOUTME: Prometheus implementation of the pipeline metrics interface
// ABOUTME: Exposes analysis latency, keyword counts, fetch outcomes and degraded stages

package prometheus

import (
	"errors"
	"fmt"

	"textlens-api/core/domain"

	promclient "github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name
const DefaultNamespace = "textlens"

// Metrics records pipeline events as Prometheus series
type Metrics struct {
	analysisDuration *promclient.HistogramVec
	keywordCount     promclient.Histogram
	fetches          *promclient.CounterVec
	degraded         *promclient.CounterVec
}

// NewMetrics creates and registers the collectors. A nil registerer uses the
// default registry. Collectors that are already registered are reused.
func NewMetrics(namespace string, reg promclient.Registerer) (*Metrics, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if reg == nil {
		reg = promclient.DefaultRegisterer
	}

	m := &Metrics{
		analysisDuration: promclient.NewHistogramVec(promclient.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time spent running the analysis pipeline.",
			Buckets:   promclient.DefBuckets,
		}, []string{"sentiment"}),
		keywordCount: promclient.NewHistogram(promclient.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_keywords",
			Help:      "Number of keywords returned per analysis.",
			Buckets:   []float64{0, 1, 5, 10, 15, 20},
		}),
		fetches: promclient.NewCounterVec(promclient.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Web text fetches by outcome.",
		}, []string{"outcome"}),
		degraded: promclient.NewCounterVec(promclient.CounterOpts{
			Namespace: namespace,
			Name:      "degraded_total",
			Help:      "Pipeline stages that fell back to a default result.",
		}, []string{"stage"}),
	}

	var err error
	if m.analysisDuration, err = register(reg, m.analysisDuration); err != nil {
		return nil, err
	}
	if m.keywordCount, err = register(reg, m.keywordCount); err != nil {
		return nil, err
	}
	if m.fetches, err = register(reg, m.fetches); err != nil {
		return nil, err
	}
	if m.degraded, err = register(reg, m.degraded); err != nil {
		return nil, err
	}
	return m, nil
}

func register[T promclient.Collector](reg promclient.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are promclient.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register collector: %w", err)
	}
	return c, nil
}

// ObserveAnalysis implements interfaces.Metrics
func (m *Metrics) ObserveAnalysis(seconds float64, keywords int, label domain.SentimentLabel) {
	if m == nil {
		return
	}
	m.analysisDuration.WithLabelValues(string(label)).Observe(seconds)
	m.keywordCount.Observe(float64(keywords))
}

// IncFetch implements interfaces.Metrics
func (m *Metrics) IncFetch(outcome string) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(outcome).Inc()
}

// IncDegraded implements interfaces.Metrics
func (m *Metrics) IncDegraded(stage string) {
	if m == nil {
		return
	}
	m.degraded.WithLabelValues(stage).Inc()
}
