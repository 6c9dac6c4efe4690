package hub

import (
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/twiny/poxa"

	"github.com/twiny/webring"
)

type (
	Option func(h *Hub)
)

func WithParallel(parallel int) Option {
	return func(h *Hub) {
		if parallel > 0 {
			h.cfg.parallel = parallel
		}
	}
}
func WithRefreshInterval(interval time.Duration) Option {
	return func(h *Hub) {
		if interval > 0 {
			h.cfg.refresh = interval
		}
	}
}
func WithTimeout(timeout time.Duration) Option {
	return func(h *Hub) {
		if timeout > 0 {
			h.cfg.timeout = timeout
		}
	}
}
func WithMaxBodySize(size int64) Option {
	return func(h *Hub) {
		if size > 0 {
			h.cfg.maxBodySize = size
		}
	}
}
func WithUserAgents(userAgents []string) Option {
	return func(h *Hub) {
		h.cfg.userAgents = poxa.NewSpinner(userAgents...)
	}
}
func WithRateLimit(rates ...*webring.RateLimit) Option {
	return func(h *Hub) {
		h.limiter = newRateLimiter(rates...)
	}
}
func WithFetcher(fetcher webring.Fetcher) Option {
	return func(h *Hub) {
		h.fetcher = fetcher
	}
}
func WithStore(store webring.Store) Option {
	return func(h *Hub) {
		h.store = store
	}
}
func WithQueue(queue webring.Queue) Option {
	return func(h *Hub) {
		h.queue = queue
	}
}
func WithLogger(logger webring.Logger) Option {
	return func(h *Hub) {
		h.logger = logger
	}
}
func WithMetrics(metrics webring.MetricsMonitor) Option {
	return func(h *Hub) {
		h.metrics = metrics
	}
}
func WithLogLevel(level clog.Level) Option {
	return func(h *Hub) {
		h.termLog.SetLevel(level)
	}
}
