package domain

type Course struct {
	ID           int    `json:"id"`
	CourseName   string `json:"course_name"`
	CourseCode   string `json:"course_code"`
	Description  string `json:"description,omitempty"`
	DurationDays int    `json:"duration_days"`
	ActiveStatus bool   `json:"active_status"`
	CreatedDate  string `json:"created_date"`
}

type CreateCourseRequest struct {
	CourseName   string `json:"course_name" validate:"required,max=200"`
	CourseCode   string `json:"course_code" validate:"required,max=50"`
	Description  string `json:"description,omitempty"`
	DurationDays int    `json:"duration_days" validate:"min=1,max=365"`
}

type UpdateCourseRequest struct {
	CourseName   *string `json:"course_name,omitempty" validate:"omitempty,max=200"`
	CourseCode   *string `json:"course_code,omitempty" validate:"omitempty,max=50"`
	Description  *string `json:"description,omitempty"`
	DurationDays *int    `json:"duration_days,omitempty" validate:"omitempty,min=1,max=365"`
}

type CourseSearch struct {
	Name       string `json:"name,omitempty"`
	Code       string `json:"code,omitempty"`
	ActiveOnly bool   `json:"active_only"`
}
