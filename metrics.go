package ecs

import "github.com/prometheus/client_golang/prometheus"

// metricsSet holds the Prometheus instruments a World reports against. If
// constructed with a nil registerer, the instruments are created but never
// registered anywhere a scrape could reach them.
type metricsSet struct {
	entityCount    prometheus.Gauge
	archetypeCount prometheus.Gauge
	chunkCount     prometheus.Gauge
	tickDuration   prometheus.Histogram
}

func newMetricsSet(reg prometheus.Registerer) *metricsSet {
	m := &metricsSet{
		entityCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ecs",
			Name:      "entities",
			Help:      "Number of live entities in the world.",
		}),
		archetypeCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ecs",
			Name:      "archetypes",
			Help:      "Number of distinct archetypes in use.",
		}),
		chunkCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ecs",
			Name:      "chunks",
			Help:      "Number of allocated chunks across all archetypes.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ecs",
			Name:      "tick_duration_seconds",
			Help:      "Wall-clock duration of one scheduler Exec/ExecSequential pass.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.entityCount, m.archetypeCount, m.chunkCount, m.tickDuration} {
			if err := reg.Register(c); err != nil {
				panic(errorf(ErrAllocationFailed, "register metrics: %v", err))
			}
		}
	}
	return m
}

// refreshChunkCount recomputes the chunk-count gauge from the current set
// of chunk roots. Called after every entity creation, destruction and
// archetype migration; each call is O(archetypes).
func (w *World) refreshChunkCount() {
	n := 0
	for _, r := range w.roots {
		n += r.ChunkCount()
	}
	w.metrics.chunkCount.Set(float64(n))
}
