// Package query provides the keyed read cache between the UI layer and
// the resource clients. Each cache entry is addressed by (resource,
// serialized filter parameters); identical keys share one entry. Data
// is considered fresh for a configurable window and served without a
// network call; stale or missing entries trigger a fetch with a bounded
// automatic retry. Failed fetches retain the previous data so consumers
// never flash back to empty. Entries unused for the retention window
// are evicted by a background janitor as a memory-reclamation policy.
package query
