package domain

type Instructor struct {
	ID           int    `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	CallSign     string `json:"call_sign,omitempty"`
	ActiveStatus bool   `json:"active_status"`
	CreatedDate  string `json:"created_date"`
	Notes        string `json:"notes,omitempty"`
}

type CreateInstructorRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	PhoneNumber string `json:"phone_number,omitempty"`
	CallSign    string `json:"call_sign,omitempty" validate:"omitempty,max=50"`
	Notes       string `json:"notes,omitempty"`
}

type UpdateInstructorRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	CallSign    *string `json:"call_sign,omitempty" validate:"omitempty,max=50"`
	Notes       *string `json:"notes,omitempty"`
}

// InstructorStats aggregates assignment and rating counts maintained
// server-side. Read-only from this layer.
type InstructorStats struct {
	TotalAssignments   int `json:"total_assignments"`
	TotalCourseRatings int `json:"total_course_ratings"`
	ClearedCourses     int `json:"cleared_courses"`
}

type InstructorSearch struct {
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	ActiveOnly bool   `json:"active_only"`
	CourseID   int    `json:"course_id,omitempty"`
}
