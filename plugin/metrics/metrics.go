package metrics

import (
	"sync/atomic"
)

type (
	metricsMonitor struct {
		lookups       int64
		hits          int64
		misses        int64
		refreshes     int64
		refreshErrors int64
	}
)

func NewMetricsMonitor() *metricsMonitor {
	return &metricsMonitor{}
}

func (m *metricsMonitor) IncLookups() {
	atomic.AddInt64(&m.lookups, 1)
}
func (m *metricsMonitor) IncHits() {
	atomic.AddInt64(&m.hits, 1)
}
func (m *metricsMonitor) IncMisses() {
	atomic.AddInt64(&m.misses, 1)
}
func (m *metricsMonitor) IncRefreshes() {
	atomic.AddInt64(&m.refreshes, 1)
}
func (m *metricsMonitor) IncRefreshErrors() {
	atomic.AddInt64(&m.refreshErrors, 1)
}
func (m *metricsMonitor) Metrics() map[string]int64 {
	return map[string]int64{
		"lookups":        atomic.LoadInt64(&m.lookups),
		"hits":           atomic.LoadInt64(&m.hits),
		"misses":         atomic.LoadInt64(&m.misses),
		"refreshes":      atomic.LoadInt64(&m.refreshes),
		"refresh_errors": atomic.LoadInt64(&m.refreshErrors),
	}
}
