package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ericstephens/scheduler/internal/domain"
)

// Courses is the resource client for course records.
type Courses struct {
	c *Client
}

// NewCourses creates the course resource client.
func NewCourses(c *Client) *Courses {
	return &Courses{c: c}
}

// List returns courses, restricted to active ones when activeOnly is set.
func (co *Courses) List(ctx context.Context, activeOnly bool) ([]domain.Course, error) {
	query := url.Values{}
	query.Set("active_only", fmt.Sprintf("%t", activeOnly))

	var courses []domain.Course
	if err := co.c.get(ctx, domain.ResourceCourses, "/courses/", query, &courses); err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	return courses, nil
}

// Get fetches one course by ID.
func (co *Courses) Get(ctx context.Context, id int) (*domain.Course, error) {
	var course domain.Course
	if err := co.c.get(ctx, domain.ResourceCourses, fmt.Sprintf("/courses/%d", id), nil, &course); err != nil {
		return nil, fmt.Errorf("fetching course %d: %w", id, err)
	}
	return &course, nil
}

// GetByCode fetches one course by its unique course code.
func (co *Courses) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	var course domain.Course
	path := "/courses/code/" + url.PathEscape(code)
	if err := co.c.get(ctx, domain.ResourceCourses, path, nil, &course); err != nil {
		return nil, fmt.Errorf("fetching course %q: %w", code, err)
	}
	return &course, nil
}

// Create registers a new course. The server assigns the ID and creation
// timestamp.
func (co *Courses) Create(ctx context.Context, req domain.CreateCourseRequest) (*domain.Course, error) {
	var course domain.Course
	if err := co.c.post(ctx, domain.ResourceCourses, "/courses/", req, &course); err != nil {
		return nil, fmt.Errorf("creating course: %w", err)
	}
	return &course, nil
}

// Update applies a partial update; only non-nil fields are sent.
func (co *Courses) Update(ctx context.Context, id int, req domain.UpdateCourseRequest) (*domain.Course, error) {
	var course domain.Course
	if err := co.c.put(ctx, domain.ResourceCourses, fmt.Sprintf("/courses/%d", id), req, &course); err != nil {
		return nil, fmt.Errorf("updating course %d: %w", id, err)
	}
	return &course, nil
}

// SetStatus activates or deactivates a course.
func (co *Courses) SetStatus(ctx context.Context, id int, active bool) (*domain.Confirmation, error) {
	var confirmation domain.Confirmation
	req := domain.DeactivationRequest{Active: active}
	if err := co.c.patch(ctx, domain.ResourceCourses, fmt.Sprintf("/courses/%d/status", id), req, &confirmation); err != nil {
		return nil, fmt.Errorf("updating course %d status: %w", id, err)
	}
	return &confirmation, nil
}

// Delete soft-deletes a course by deactivating it.
func (co *Courses) Delete(ctx context.Context, id int) (*domain.Confirmation, error) {
	return co.SetStatus(ctx, id, false)
}

// Search runs a structured filter query.
func (co *Courses) Search(ctx context.Context, filter domain.CourseSearch) ([]domain.Course, error) {
	var courses []domain.Course
	if err := co.c.post(ctx, domain.ResourceCourses, "/courses/search", filter, &courses); err != nil {
		return nil, fmt.Errorf("searching courses: %w", err)
	}
	return courses, nil
}
