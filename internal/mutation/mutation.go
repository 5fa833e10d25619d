// Package mutation orchestrates writes: run the API call, reconcile the
// cache, and notify the user. Every mutation has exactly three
// observable outcomes: success (result returned, related cache keys
// invalidated, success notification), failure (cache untouched, error
// notification carrying the server detail when present), or whatever
// interleaving concurrent mutations produce - they are deliberately not
// deduplicated, and the cache keeps whichever write lands last.
package mutation

import (
	"context"

	"github.com/ericstephens/scheduler/internal/errors"
	"github.com/ericstephens/scheduler/internal/metrics"
	"github.com/ericstephens/scheduler/internal/notify"
	"github.com/ericstephens/scheduler/internal/query"
)

// Op describes one mutation: what it is called, which cache keys it
// touches on success, and the fixed notification texts.
type Op struct {
	// Resource and Name label metrics ("courses", "create").
	Resource string
	Name     string
	// Invalidate lists the resources whose cached entries go stale on
	// success (always the mutated entity's own resource, never its
	// relatives).
	Invalidate []string
	// InvalidateKeys lists specific entry keys to mark stale on
	// success; update and status operations add the record's detail key.
	InvalidateKeys []query.Key
	// SuccessMessage is shown verbatim on success.
	SuccessMessage string
	// FailureMessage is shown on failure when the server provided no
	// detail message.
	FailureMessage string
}

// Runner executes mutations against one cache and notifier pair.
type Runner struct {
	cache    *query.Cache
	notifier notify.Notifier
}

// NewRunner creates a mutation runner.
func NewRunner(cache *query.Cache, notifier notify.Notifier) *Runner {
	return &Runner{cache: cache, notifier: notifier}
}

// Run executes call and reconciles cache and notifications per op.
// There is no optimistic update: the cache shows prior state until the
// call resolves, and a failed call leaves it bit-for-bit unchanged.
func Run[T any](ctx context.Context, r *Runner, op Op, call func(ctx context.Context) (T, error)) (T, error) {
	result, err := call(ctx)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues(op.Resource, op.Name, "failure").Inc()

		message := errors.ServerDetail(err)
		if message == "" {
			message = op.FailureMessage
		}
		r.notifier.Error(message)

		var zero T
		return zero, err
	}

	metrics.MutationsTotal.WithLabelValues(op.Resource, op.Name, "success").Inc()

	for _, resource := range op.Invalidate {
		r.cache.Invalidate(resource)
	}
	for _, key := range op.InvalidateKeys {
		r.cache.InvalidateKey(key)
	}
	r.notifier.Success(op.SuccessMessage)

	return result, nil
}
