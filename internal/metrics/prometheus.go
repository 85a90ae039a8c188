package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/bucketidx/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	routedTotal            *prometheus.CounterVec
	indexSize              prometheus.Gauge
	bootstrapDuration      prometheus.Histogram
	bootstrapLoaded        prometheus.Histogram
	partitionsBootstrapped prometheus.Gauge
	checkpointCleared      prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "bucketidx" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "bucketidx"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.routedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "router",
			Name:      "records_routed_total",
			Help:      "Total records routed by decision tag (insert,update).",
		}, []string{"tag"})

		p.indexSize = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "router",
			Name:      "index_entries",
			Help:      "Current number of bucket-to-file-group mappings in the local index.",
		})

		p.bootstrapDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "bootstrap",
			Name:      "duration_seconds",
			Help:      "Latency of per-partition index bootstrap in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms .. ~10s
		})

		p.bootstrapLoaded = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "bootstrap",
			Name:      "file_groups_loaded",
			Help:      "File groups loaded per partition bootstrap.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		})

		p.partitionsBootstrapped = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "bootstrap",
			Name:      "partitions",
			Help:      "Current number of bootstrapped partitions.",
		})

		p.checkpointCleared = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "checkpoint",
			Name:      "tracker_entries_cleared",
			Help:      "Insert-tracker entries cleared per checkpoint boundary.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		})

		collectors := []prometheus.Collector{
			p.routedTotal,
			p.indexSize,
			p.bootstrapDuration,
			p.bootstrapLoaded,
			p.partitionsBootstrapped,
			p.checkpointCleared,
		}
		for _, c := range collectors {
			// AlreadyRegisteredError is tolerated so multiple routers in one
			// process can share a registry.
			if err := p.reg.Register(c); err != nil {
				if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
					panic(err)
				}
			}
		}
	})
}

// RouterMetrics implementation

// RecordRouted increments the routed-records counter for a decision tag.
func (p *PrometheusCollector) RecordRouted(tag string) {
	p.ensureRegistered()
	p.routedTotal.WithLabelValues(tag).Inc()
}

// RecordIndexSize sets the local index size gauge.
func (p *PrometheusCollector) RecordIndexSize(size int) {
	p.ensureRegistered()
	p.indexSize.Set(float64(size))
}

// BootstrapMetrics implementation

// RecordBootstrapDuration observes a per-partition bootstrap latency.
func (p *PrometheusCollector) RecordBootstrapDuration(duration float64) {
	p.ensureRegistered()
	p.bootstrapDuration.Observe(duration)
}

// RecordBootstrapLoaded observes the file groups loaded by one bootstrap.
func (p *PrometheusCollector) RecordBootstrapLoaded(count int) {
	p.ensureRegistered()
	p.bootstrapLoaded.Observe(float64(count))
}

// RecordPartitionsBootstrapped sets the bootstrapped-partitions gauge.
func (p *PrometheusCollector) RecordPartitionsBootstrapped(count int) {
	p.ensureRegistered()
	p.partitionsBootstrapped.Set(float64(count))
}

// CheckpointMetrics implementation

// RecordCheckpointCleared observes the tracker entries cleared at a boundary.
func (p *PrometheusCollector) RecordCheckpointCleared(count int) {
	p.ensureRegistered()
	p.checkpointCleared.Observe(float64(count))
}
