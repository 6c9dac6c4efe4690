package hub

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"

	"github.com/twiny/webring"
	"github.com/twiny/webring/plugin/fetcher"
	"github.com/twiny/webring/plugin/metrics"
	"github.com/twiny/webring/plugin/queue"
	"github.com/twiny/webring/plugin/store"
)

type (
	// Hub hosts a set of named webrings: it keeps their member lists
	// fresh from their sources and answers prev/next lookups from the
	// cached lists.
	Hub struct {
		wg sync.WaitGroup

		cfg *config

		fetcher webring.Fetcher
		queue   webring.Queue
		store   webring.Store
		logger  webring.Logger
		metrics webring.MetricsMonitor

		limiter *rateLimiter

		mu    sync.RWMutex
		rings map[string]*entry

		termLog *clog.Logger

		ctx    context.Context
		cancel context.CancelFunc
	}

	entry struct {
		ring     string
		source   *url.URL
		selector string
	}
)

func New(opts ...Option) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	options := clog.Options{
		TimeFormat:      "2006-01-02 15:04:05",
		Level:           clog.InfoLevel,
		Prefix:          "[webring]",
		ReportTimestamp: true,
	}

	h := &Hub{
		cfg:     newConfig(-1, nil),
		fetcher: fetcher.NewHTTPClient(),
		queue:   queue.NewInMemoryQueue(),
		store:   store.NewInMemoryStore(),
		metrics: metrics.NewMetricsMonitor(),
		limiter: newRateLimiter(),
		rings:   make(map[string]*entry),
		termLog: clog.NewWithOptions(os.Stdout, options),
		ctx:     ctx,
		cancel:  cancel,
	}

	for _, opt := range opts {
		opt(h)
	}

	h.wg.Add(h.cfg.parallel)
	for i := 0; i < h.cfg.parallel; i++ {
		go h.routine()
	}

	go h.schedule()

	return h
}

func (h *Hub) SetOption(opts ...Option) {
	for _, opt := range opts {
		opt(h)
	}
}

// Register adds a ring under name and performs its first refresh
// before returning, so lookups work right away. selector scopes HTML
// member extraction; empty means the whole page.
func (h *Hub) Register(ctx context.Context, name, src, selector string) error {
	if name == "" {
		return fmt.Errorf("register: empty ring name")
	}

	source, err := webring.ValidURL(src)
	if err != nil {
		return fmt.Errorf("register %q: %w", name, err)
	}

	e := &entry{
		ring:     name,
		source:   source,
		selector: selector,
	}

	h.mu.Lock()
	h.rings[name] = e
	h.mu.Unlock()

	if err := h.refresh(ctx, h.newRequest(e)); err != nil {
		// keep the registration when an older list is still cached
		if _, serr := h.store.Get(ctx, name); serr != nil {
			h.mu.Lock()
			delete(h.rings, name)
			h.mu.Unlock()
			return fmt.Errorf("register %q: %w", name, err)
		}
	}

	return nil
}

// Neighbors answers a navigation lookup against the cached member
// list of the named ring. current may be empty or unknown, in which
// case the hub-page neighbors (last and first member) are returned.
func (h *Hub) Neighbors(ctx context.Context, name, current string) (webring.Neighbors, error) {
	members, err := h.store.Get(ctx, name)
	if err != nil {
		return webring.Neighbors{}, fmt.Errorf("neighbors %q: %w", name, err)
	}

	h.metrics.IncLookups()

	if current != "" && webring.Index(members, current) >= 0 {
		h.metrics.IncHits()
	} else {
		h.metrics.IncMisses()
	}

	return webring.Navigate(members, current), nil
}

// Members returns the cached member list of the named ring.
func (h *Hub) Members(ctx context.Context, name string) ([]string, error) {
	members, err := h.store.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("members %q: %w", name, err)
	}

	return members, nil
}

// Rings lists the registered ring names.
func (h *Hub) Rings() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.rings))
	for name := range h.rings {
		names = append(names, name)
	}

	return names
}

// Refresh queues an out-of-band refresh of the named ring.
func (h *Hub) Refresh(name string) error {
	h.mu.RLock()
	e, found := h.rings[name]
	h.mu.RUnlock()

	if !found {
		return fmt.Errorf("refresh %q: %w", name, webring.ErrRingNotFound)
	}

	return h.queue.Push(h.ctx, h.newRequest(e))
}

func (h *Hub) Metrics() map[string]int64 {
	return h.metrics.Metrics()
}

func (h *Hub) Close() {
	h.cancel()
	h.queue.Close()

	h.wg.Wait()

	h.store.Close()
	h.fetcher.Close()
	if h.logger != nil {
		h.logger.Close()
	}
}

func (h *Hub) newRequest(e *entry) *webring.Request {
	return &webring.Request{
		Ring:   e.ring,
		Source: e.source,
		Param: &webring.Param{
			UserAgent:   h.cfg.userAgents.Next(),
			Selector:    e.selector,
			MaxBodySize: h.cfg.maxBodySize,
			Timeout:     h.cfg.timeout,
		},
	}
}

func (h *Hub) routine() {
	defer h.wg.Done()

	for {
		select {
		case <-h.ctx.Done():
			return
		default:
			req, err := h.queue.Pop(h.ctx)
			if err != nil {
				if err == queue.ErrQueueClosed {
					return
				}
				h.termLog.Errorf("pop: %s", err.Error())
				continue
			}

			if err := h.refresh(h.ctx, req); err != nil {
				h.termLog.Errorf("refresh %s: %s", req.Ring, err.Error())
			}
		}
	}
}

// schedule requeues every registered ring once per refresh interval.
func (h *Hub) schedule() {
	ticker := time.NewTicker(h.cfg.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return
		case <-ticker.C:
			h.mu.RLock()
			entries := make([]*entry, 0, len(h.rings))
			for _, e := range h.rings {
				entries = append(entries, e)
			}
			h.mu.RUnlock()

			for _, e := range entries {
				if err := h.queue.Push(h.ctx, h.newRequest(e)); err != nil {
					h.termLog.Errorf("push %s: %s", e.ring, err.Error())
					return
				}
			}
		}
	}
}

func (h *Hub) refresh(ctx context.Context, req *webring.Request) error {
	h.limiter.wait(req.Source)

	resp, err := h.fetcher.Fetch(ctx, req)
	if err != nil {
		h.metrics.IncRefreshErrors()
		if h.logger != nil {
			h.logger.Write(webring.NewLog(nil, err))
		}
		return err
	}

	if err := h.store.Put(ctx, req.Ring, resp.Members); err != nil {
		h.metrics.IncRefreshErrors()
		return err
	}

	h.metrics.IncRefreshes()
	if h.logger != nil {
		h.logger.Write(webring.NewLog(resp, nil))
	}
	h.termLog.Infof("refreshed %s: %d members", req.Ring, len(resp.Members))

	return nil
}
