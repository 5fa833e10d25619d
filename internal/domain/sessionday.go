package domain

type CourseSessionDay struct {
	ID          int         `json:"id"`
	SessionID   int         `json:"session_id"`
	DayNumber   int         `json:"day_number"`
	Date        string      `json:"date"`
	LocationID  int         `json:"location_id"`
	StartTime   string      `json:"start_time"`
	EndTime     string      `json:"end_time"`
	SessionType SessionType `json:"session_type"`
}

type CreateCourseSessionDayRequest struct {
	DayNumber   int         `json:"day_number" validate:"min=1"`
	Date        string      `json:"date" validate:"required"`
	LocationID  int         `json:"location_id" validate:"required,min=1"`
	StartTime   string      `json:"start_time" validate:"required"`
	EndTime     string      `json:"end_time" validate:"required"`
	SessionType SessionType `json:"session_type" validate:"required,oneof=half_day full_day"`
}

type UpdateCourseSessionDayRequest struct {
	DayNumber   *int         `json:"day_number,omitempty" validate:"omitempty,min=1"`
	Date        *string      `json:"date,omitempty"`
	LocationID  *int         `json:"location_id,omitempty" validate:"omitempty,min=1"`
	StartTime   *string      `json:"start_time,omitempty"`
	EndTime     *string      `json:"end_time,omitempty"`
	SessionType *SessionType `json:"session_type,omitempty" validate:"omitempty,oneof=half_day full_day"`
}

// SessionDayFilter narrows the flat session-day list endpoint. Zero
// values are treated as unset and omitted from the query string.
type SessionDayFilter struct {
	StartDate  string
	EndDate    string
	LocationID int
	Skip       int
	Limit      int
}
