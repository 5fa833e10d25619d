package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ericstephens/scheduler/internal/domain"
)

// Instructors is the resource client for instructor records.
type Instructors struct {
	c *Client
}

// NewInstructors creates the instructor resource client.
func NewInstructors(c *Client) *Instructors {
	return &Instructors{c: c}
}

// List returns instructors, restricted to active ones when activeOnly is set.
func (i *Instructors) List(ctx context.Context, activeOnly bool) ([]domain.Instructor, error) {
	query := url.Values{}
	query.Set("active_only", fmt.Sprintf("%t", activeOnly))

	var instructors []domain.Instructor
	if err := i.c.get(ctx, domain.ResourceInstructors, "/instructors/", query, &instructors); err != nil {
		return nil, fmt.Errorf("listing instructors: %w", err)
	}
	return instructors, nil
}

// Get fetches one instructor by ID.
func (i *Instructors) Get(ctx context.Context, id int) (*domain.Instructor, error) {
	var instructor domain.Instructor
	if err := i.c.get(ctx, domain.ResourceInstructors, fmt.Sprintf("/instructors/%d", id), nil, &instructor); err != nil {
		return nil, fmt.Errorf("fetching instructor %d: %w", id, err)
	}
	return &instructor, nil
}

// Create registers a new instructor. The server assigns the ID and
// creation timestamp.
func (i *Instructors) Create(ctx context.Context, req domain.CreateInstructorRequest) (*domain.Instructor, error) {
	var instructor domain.Instructor
	if err := i.c.post(ctx, domain.ResourceInstructors, "/instructors/", req, &instructor); err != nil {
		return nil, fmt.Errorf("creating instructor: %w", err)
	}
	return &instructor, nil
}

// Update applies a partial update; only non-nil fields are sent.
func (i *Instructors) Update(ctx context.Context, id int, req domain.UpdateInstructorRequest) (*domain.Instructor, error) {
	var instructor domain.Instructor
	if err := i.c.put(ctx, domain.ResourceInstructors, fmt.Sprintf("/instructors/%d", id), req, &instructor); err != nil {
		return nil, fmt.Errorf("updating instructor %d: %w", id, err)
	}
	return &instructor, nil
}

// SetStatus activates or deactivates an instructor.
func (i *Instructors) SetStatus(ctx context.Context, id int, active bool) (*domain.Confirmation, error) {
	var confirmation domain.Confirmation
	req := domain.DeactivationRequest{Active: active}
	if err := i.c.patch(ctx, domain.ResourceInstructors, fmt.Sprintf("/instructors/%d/status", id), req, &confirmation); err != nil {
		return nil, fmt.Errorf("updating instructor %d status: %w", id, err)
	}
	return &confirmation, nil
}

// Delete soft-deletes an instructor by deactivating it. There is no
// endpoint that removes the record.
func (i *Instructors) Delete(ctx context.Context, id int) (*domain.Confirmation, error) {
	return i.SetStatus(ctx, id, false)
}

// Stats fetches the server-side assignment and rating aggregates.
func (i *Instructors) Stats(ctx context.Context, id int) (*domain.InstructorStats, error) {
	var stats domain.InstructorStats
	if err := i.c.get(ctx, domain.ResourceInstructors, fmt.Sprintf("/instructors/%d/stats", id), nil, &stats); err != nil {
		return nil, fmt.Errorf("fetching instructor %d stats: %w", id, err)
	}
	return &stats, nil
}

// Search runs a structured filter query.
func (i *Instructors) Search(ctx context.Context, filter domain.InstructorSearch) ([]domain.Instructor, error) {
	var instructors []domain.Instructor
	if err := i.c.post(ctx, domain.ResourceInstructors, "/instructors/search", filter, &instructors); err != nil {
		return nil, fmt.Errorf("searching instructors: %w", err)
	}
	return instructors, nil
}
