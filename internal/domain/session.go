package domain

// SessionStatus is the lifecycle state of a course session. The server
// accepts any transition; the curated action menu lives in the schedule
// package.
type SessionStatus string

const (
	StatusScheduled  SessionStatus = "scheduled"
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	StatusCancelled  SessionStatus = "cancelled"
)

// Valid reports whether s is one of the four known states.
func (s SessionStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// SessionType distinguishes half-day from full-day session days.
type SessionType string

const (
	TypeHalfDay SessionType = "half_day"
	TypeFullDay SessionType = "full_day"
)

type CourseSession struct {
	ID          int           `json:"id"`
	CourseID    int           `json:"course_id"`
	SessionName string        `json:"session_name"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	Status      SessionStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
}

type CreateCourseSessionRequest struct {
	CourseID    int    `json:"course_id" validate:"required,min=1"`
	SessionName string `json:"session_name" validate:"required,max=200"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	Notes       string `json:"notes,omitempty"`
}

type UpdateCourseSessionRequest struct {
	SessionName *string        `json:"session_name,omitempty" validate:"omitempty,max=200"`
	StartDate   *string        `json:"start_date,omitempty"`
	EndDate     *string        `json:"end_date,omitempty"`
	Status      *SessionStatus `json:"status,omitempty"`
	Notes       *string        `json:"notes,omitempty"`
}

type SessionSearch struct {
	CourseID      int           `json:"course_id,omitempty"`
	Status        SessionStatus `json:"status,omitempty"`
	StartDateFrom string        `json:"start_date_from,omitempty"`
	StartDateTo   string        `json:"start_date_to,omitempty"`
	LocationID    int           `json:"location_id,omitempty"`
}

// SessionFilter narrows the session list endpoint. Zero values are
// treated as unset and omitted from the query string.
type SessionFilter struct {
	CourseID   int
	Status     SessionStatus
	ActiveOnly bool
	Skip       int
	Limit      int
}
