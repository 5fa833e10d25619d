package query

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/ericstephens/scheduler/internal/errors"
	"github.com/ericstephens/scheduler/internal/metrics"
	"github.com/ericstephens/scheduler/internal/platform/retry"
)

const (
	defaultFreshness    = 5 * time.Minute
	defaultRetention    = 10 * time.Minute
	defaultRetries      = 1
	defaultRetryBackoff = 500 * time.Millisecond
	janitorInterval     = 1 * time.Minute
)

// Fetch loads fresh data for a cache entry.
type Fetch func(ctx context.Context) (any, error)

// Snapshot is a consumer's view of one entry at a point in time.
type Snapshot struct {
	// Data is the last successfully fetched value, or nil when nothing
	// has ever been fetched for this key.
	Data any
	// Err is the most recent fetch failure; cleared on success. Data
	// stays populated alongside Err so views keep showing prior state.
	Err       error
	FetchedAt time.Time
	Fresh     bool
}

type entry struct {
	data       any
	hasData    bool
	err        error
	fetchedAt  time.Time
	lastAccess time.Time
	stale      bool // set by Invalidate; forces a refetch on next access
}

// Options configure a Cache. Zero values fall back to the defaults
// (5m freshness, 10m retention, 1 retry, real clock).
type Options struct {
	Freshness    time.Duration
	Retention    time.Duration
	Retries      int
	RetryBackoff time.Duration
	Clock        clockwork.Clock
}

// Cache is the shared read cache. Construct one per application (or per
// test) and pass it explicitly to whatever needs it; there is no
// package-level instance.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry

	clock        clockwork.Clock
	freshness    time.Duration
	retention    time.Duration
	retries      int
	retryBackoff time.Duration

	group singleflight.Group

	stopCh    chan struct{}
	stopOnce  sync.Once
	janitorWg sync.WaitGroup
}

// New creates a Cache and starts its eviction janitor. Call Stop to
// halt the janitor (test teardown; a long-running client never does).
func New(opts Options) *Cache {
	if opts.Freshness <= 0 {
		opts.Freshness = defaultFreshness
	}
	if opts.Retention <= 0 {
		opts.Retention = defaultRetention
	}
	if opts.Retries < 0 {
		opts.Retries = defaultRetries
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = defaultRetryBackoff
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	c := &Cache{
		entries:      make(map[Key]*entry),
		clock:        opts.Clock,
		freshness:    opts.Freshness,
		retention:    opts.Retention,
		retries:      opts.Retries,
		retryBackoff: opts.RetryBackoff,
		stopCh:       make(chan struct{}),
	}

	c.startJanitor()
	return c
}

// Get returns the cached value for key when it is fresh, otherwise
// fetches, stores, and returns the result. On fetch failure the prior
// data (if any) is returned together with the error so consumers keep
// showing the last known state.
func (c *Cache) Get(ctx context.Context, key Key, fetch Fetch) (any, error) {
	c.mu.Lock()
	e := c.touch(key)
	if c.isFresh(e) {
		data := e.data
		c.mu.Unlock()
		metrics.CacheHits.WithLabelValues(key.Resource).Inc()
		return data, nil
	}
	c.mu.Unlock()

	metrics.CacheMisses.WithLabelValues(key.Resource).Inc()

	data, err, _ := c.group.Do(key.String(), func() (any, error) {
		return c.fetchWithRetry(ctx, key, fetch)
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	e = c.touch(key)
	if err != nil {
		e.err = err
		return e.data, err
	}
	e.data = data
	e.hasData = true
	e.err = nil
	e.stale = false
	e.fetchedAt = c.clock.Now()
	return data, nil
}

// Lookup reports the current state of key without triggering a fetch.
func (c *Cache) Lookup(key Key) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return Snapshot{}
	}
	e.lastAccess = c.clock.Now()
	return Snapshot{
		Data:      e.data,
		Err:       e.err,
		FetchedAt: e.fetchedAt,
		Fresh:     c.isFresh(e),
	}
}

// Invalidate marks every entry for resource stale. The data stays in
// place; the next access refetches.
func (c *Cache) Invalidate(resource string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if key.Resource == resource {
			e.stale = true
		}
	}
}

// InvalidateKey marks one entry stale.
func (c *Cache) InvalidateKey(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.stale = true
	}
}

// Len reports the number of cache entries. Test use.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stop halts the eviction janitor.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
	c.janitorWg.Wait()
}

// touch returns the entry for key, creating it if needed, and records
// the access time. Caller holds c.mu.
func (c *Cache) touch(key Key) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	e.lastAccess = c.clock.Now()
	return e
}

// isFresh reports whether e can be served without a fetch. Caller holds c.mu.
func (c *Cache) isFresh(e *entry) bool {
	return e.hasData && !e.stale && c.clock.Since(e.fetchedAt) < c.freshness
}

func (c *Cache) fetchWithRetry(ctx context.Context, key Key, fetch Fetch) (any, error) {
	policy := retry.Policy{
		MaxAttempts:    c.retries + 1,
		InitialBackoff: c.retryBackoff,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			metrics.FetchRetries.WithLabelValues(key.Resource).Inc()
			slog.Warn("Retrying failed fetch",
				"resource", key.Resource, "attempt", attempt, "error", err)
		},
	}

	data, err := retry.Do(ctx, policy, classifyFetchError, func() (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		// Unwrap the retry bookkeeping; consumers only care about the
		// underlying transport failure.
		var permanent *retry.PermanentError
		if stderrors.As(err, &permanent) {
			return nil, permanent.Err
		}
		return nil, err
	}
	return data, nil
}

// classifyFetchError retries transport failures only; a not-found or
// validation response will not change on retry.
func classifyFetchError(err error) retry.Action {
	structured := errors.AsStructuredError(err)
	if structured.Type == errors.TypeTransport && structured.StatusCode < 400 {
		return retry.Retry
	}
	if structured.StatusCode >= 500 {
		return retry.Retry
	}
	return retry.Stop
}

func (c *Cache) startJanitor() {
	c.janitorWg.Add(1)
	go func() {
		defer c.janitorWg.Done()
		ticker := c.clock.NewTicker(janitorInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.Chan():
				c.evictExpired()
			case <-c.stopCh:
				return
			}
		}
	}()
}

// evictExpired drops entries unused for the retention window. Purely a
// memory-reclamation policy; a dropped entry just refetches next time.
func (c *Cache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if c.clock.Since(e.lastAccess) >= c.retention {
			delete(c.entries, key)
			metrics.CacheEvictions.Inc()
		}
	}
}

// Cached is the typed convenience wrapper around Cache.Get.
func Cached[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	data, err := c.Get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		if data == nil {
			return zero, err
		}
		prior, ok := data.(T)
		if !ok {
			return zero, err
		}
		return prior, err
	}
	return data.(T), nil
}
