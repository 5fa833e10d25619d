// Package api contains the per-entity resource clients for the
// scheduler REST API. Each client translates one entity's CRUD surface
// into HTTP calls with consistent parameter encoding: absent filter
// fields are omitted from the query, never sent as zero sentinels.
// "Delete" on status-bearing entities is a status patch; no endpoint
// removes those records.
package api
