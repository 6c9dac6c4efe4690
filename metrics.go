package webring

// MetricsMonitor counts navigation lookups and membership refreshes.
type MetricsMonitor interface {
	IncLookups()
	IncHits()
	IncMisses()
	IncRefreshes()
	IncRefreshErrors()

	Metrics() map[string]int64
}
