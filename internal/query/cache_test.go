package query

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericstephens/scheduler/internal/errors"
)

func newTestCache(t *testing.T, opts Options) (*Cache, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClock()
	opts.Clock = clock
	if opts.RetryBackoff == 0 {
		opts.RetryBackoff = time.Millisecond
	}

	c := New(opts)
	t.Cleanup(c.Stop)
	return c, clock
}

// countingFetch returns data and counts how often it is called.
func countingFetch(data any) (Fetch, *int) {
	calls := new(int)
	return func(ctx context.Context) (any, error) {
		*calls++
		return data, nil
	}, calls
}

func TestGet_FreshEntrySkipsFetch(t *testing.T) {
	c, clock := newTestCache(t, Options{})
	key := NewKey("instructors")
	fetch, calls := countingFetch([]string{"a"})

	_, err := c.Get(context.Background(), key, fetch)
	require.NoError(t, err)

	// Within the freshness window: no new network call.
	clock.Advance(4 * time.Minute)
	data, err := c.Get(context.Background(), key, fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, data)
	assert.Equal(t, 1, *calls)
}

func TestGet_ExpiredEntryRefetches(t *testing.T) {
	c, clock := newTestCache(t, Options{})
	key := NewKey("instructors")
	fetch, calls := countingFetch([]string{"a"})

	_, err := c.Get(context.Background(), key, fetch)
	require.NoError(t, err)

	clock.Advance(5*time.Minute + time.Second)
	_, err = c.Get(context.Background(), key, fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, *calls)
}

func TestGet_InvalidateForcesRefetchWithinWindow(t *testing.T) {
	c, _ := newTestCache(t, Options{})
	key := NewKey("courses")
	fetch, calls := countingFetch([]string{"a"})

	_, err := c.Get(context.Background(), key, fetch)
	require.NoError(t, err)

	c.Invalidate("courses")
	_, err = c.Get(context.Background(), key, fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, *calls)
}

func TestInvalidate_OnlyNamedResource(t *testing.T) {
	c, _ := newTestCache(t, Options{})
	courses := NewKey("courses")
	sessions := NewKey("course-sessions")
	courseFetch, courseCalls := countingFetch("courses")
	sessionFetch, sessionCalls := countingFetch("sessions")

	_, _ = c.Get(context.Background(), courses, courseFetch)
	_, _ = c.Get(context.Background(), sessions, sessionFetch)

	c.Invalidate("courses")

	_, _ = c.Get(context.Background(), courses, courseFetch)
	_, _ = c.Get(context.Background(), sessions, sessionFetch)
	assert.Equal(t, 2, *courseCalls)
	assert.Equal(t, 1, *sessionCalls)
}

func TestGet_FailureRetainsPriorData(t *testing.T) {
	c, clock := newTestCache(t, Options{Retries: 0})
	key := NewKey("locations")

	_, err := c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		return []string{"prior"}, nil
	})
	require.NoError(t, err)
	entriesBefore := c.Len()

	clock.Advance(6 * time.Minute)
	data, err := c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		return nil, errors.TransportError("request failed", nil)
	})

	require.Error(t, err)
	assert.Equal(t, []string{"prior"}, data, "prior data stays visible on failure")
	assert.Equal(t, entriesBefore, c.Len(), "no entry added or dropped on failure")

	snapshot := c.Lookup(key)
	assert.Error(t, snapshot.Err)
	assert.Equal(t, []string{"prior"}, snapshot.Data)
}

func TestGet_SuccessClearsError(t *testing.T) {
	c, _ := newTestCache(t, Options{Retries: 0})
	key := NewKey("locations")

	_, err := c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		return nil, errors.TransportError("request failed", nil)
	})
	require.Error(t, err)

	data, err := c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", data)
	assert.NoError(t, c.Lookup(key).Err)
}

func TestGet_RetriesOnceOnTransportFailure(t *testing.T) {
	c, _ := newTestCache(t, Options{Retries: 1})
	key := NewKey("sessions")

	calls := 0
	data, err := c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, errors.TransportError("connection reset", nil)
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", data)
	assert.Equal(t, 2, calls)
}

func TestGet_ZeroRetriesIsDeterministic(t *testing.T) {
	c, _ := newTestCache(t, Options{Retries: 0})
	key := NewKey("sessions")

	calls := 0
	_, err := c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		calls++
		return nil, errors.TransportError("connection reset", nil)
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestGet_NoRetryOnNotFound(t *testing.T) {
	c, _ := newTestCache(t, Options{Retries: 3})
	key := DetailKey("courses", 999)

	calls := 0
	_, err := c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		calls++
		return nil, errors.FromStatusCode(http.StatusNotFound, "Course not found")
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, 1, calls, "not-found responses are not retried")
}

func TestLookup_MissingKey(t *testing.T) {
	c, _ := newTestCache(t, Options{})

	snapshot := c.Lookup(NewKey("instructors"))
	assert.Nil(t, snapshot.Data)
	assert.NoError(t, snapshot.Err)
	assert.False(t, snapshot.Fresh)
}

func TestLookup_FreshnessTracksClock(t *testing.T) {
	c, clock := newTestCache(t, Options{})
	key := NewKey("instructors")
	fetch, _ := countingFetch("data")

	_, err := c.Get(context.Background(), key, fetch)
	require.NoError(t, err)
	assert.True(t, c.Lookup(key).Fresh)

	clock.Advance(5*time.Minute + time.Second)
	assert.False(t, c.Lookup(key).Fresh)
}

func TestJanitor_EvictsAfterRetentionWindow(t *testing.T) {
	c, clock := newTestCache(t, Options{})
	key := NewKey("instructors")
	fetch, _ := countingFetch("data")

	_, err := c.Get(context.Background(), key, fetch)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	// Wait for the janitor to register its ticker, then age the entry
	// past retention and let a tick run.
	clock.BlockUntil(1)
	clock.Advance(11 * time.Minute)

	require.Eventually(t, func() bool {
		return c.Len() == 0
	}, time.Second, time.Millisecond, "entry should be evicted after the retention window")
}

func TestJanitor_KeepsRecentlyAccessedEntries(t *testing.T) {
	c, clock := newTestCache(t, Options{})
	key := NewKey("instructors")
	fetch, _ := countingFetch("data")

	_, err := c.Get(context.Background(), key, fetch)
	require.NoError(t, err)

	clock.BlockUntil(1)
	clock.Advance(9 * time.Minute)
	// Touch the entry; janitor ticks at 9m must not evict, and the
	// access pushes retention out again.
	c.Lookup(key)
	clock.Advance(2 * time.Minute)

	assert.Equal(t, 1, c.Len())
}

func TestCached_TypedAccess(t *testing.T) {
	c, _ := newTestCache(t, Options{})
	key := NewKey("courses")

	courses, err := Cached(context.Background(), c, key, func(ctx context.Context) ([]string, error) {
		return []string{"IR-101"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"IR-101"}, courses)
}

func TestCached_FailureReturnsPriorTypedData(t *testing.T) {
	c, clock := newTestCache(t, Options{Retries: 0})
	key := NewKey("courses")

	_, err := Cached(context.Background(), c, key, func(ctx context.Context) ([]string, error) {
		return []string{"IR-101"}, nil
	})
	require.NoError(t, err)

	clock.Advance(6 * time.Minute)
	prior, err := Cached(context.Background(), c, key, func(ctx context.Context) ([]string, error) {
		return nil, errors.TransportError("request failed", nil)
	})
	require.Error(t, err)
	assert.Equal(t, []string{"IR-101"}, prior)
}
