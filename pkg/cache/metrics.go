package cache

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// counters holds the cache's aggregate statistics. All fields are updated
// atomically on the request path and read on demand by observers.
type counters struct {
	hits       atomic.Uint64
	misses     atomic.Uint64
	loads      atomic.Uint64
	loadErrors atomic.Uint64
}

// Stats is a point-in-time snapshot of the cache's aggregate counters and the
// rates derived from them.
type Stats struct {
	Hits       uint64
	Misses     uint64
	Loads      uint64
	LoadErrors uint64

	HitRate       float64 // hits / (hits + misses)
	MissRate      float64 // misses / (hits + misses)
	LoadErrorRate float64 // load errors / loads
}

// Stats returns a snapshot of the cache statistics. Purely observational; it
// takes no locks and has no effect on cache behavior.
func (c *FileCache) Stats() Stats {
	s := Stats{
		Hits:       c.stats.hits.Load(),
		Misses:     c.stats.misses.Load(),
		Loads:      c.stats.loads.Load(),
		LoadErrors: c.stats.loadErrors.Load(),
	}
	if requests := s.Hits + s.Misses; requests > 0 {
		s.HitRate = float64(s.Hits) / float64(requests)
		s.MissRate = float64(s.Misses) / float64(requests)
	}
	if s.Loads > 0 {
		s.LoadErrorRate = float64(s.LoadErrors) / float64(s.Loads)
	}
	return s
}

// RegisterMetrics registers the cache's rate gauges with a Prometheus
// registerer. The gauges are computed from the counters on each scrape.
func (c *FileCache) RegisterMetrics(reg prometheus.Registerer) error {
	gauges := []prometheus.GaugeFunc{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "genie",
			Subsystem: "filecache",
			Name:      "hit_rate",
			Help:      "Fraction of cache requests served from an existing entry.",
		}, func() float64 { return c.Stats().HitRate }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "genie",
			Subsystem: "filecache",
			Name:      "miss_rate",
			Help:      "Fraction of cache requests that required a load.",
		}, func() float64 { return c.Stats().MissRate }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "genie",
			Subsystem: "filecache",
			Name:      "load_error_rate",
			Help:      "Fraction of loads that failed.",
		}, func() float64 { return c.Stats().LoadErrorRate }),
	}

	for _, g := range gauges {
		if err := reg.Register(g); err != nil {
			return err
		}
	}
	return nil
}
