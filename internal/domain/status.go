package domain

// DeactivationRequest toggles an entity's active flag. "Deleting" an
// instructor, course, or location is exactly this request with
// Active=false; no endpoint removes a record. Kept as its own type so a
// future hard-delete request cannot be confused with it.
type DeactivationRequest struct {
	Active bool `json:"active"`
}

// StatusChangeRequest moves a course session to a new lifecycle state.
type StatusChangeRequest struct {
	Status SessionStatus `json:"status"`
}

// Confirmation is the server's acknowledgement body for status patches
// and session-day deletes.
type Confirmation struct {
	Message string `json:"message"`
}
