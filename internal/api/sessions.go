package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ericstephens/scheduler/internal/domain"
)

// Sessions is the resource client for course sessions and their
// session-day sub-resource.
type Sessions struct {
	c *Client
}

// NewSessions creates the session resource client.
func NewSessions(c *Client) *Sessions {
	return &Sessions{c: c}
}

// List returns course sessions matching the filter. Zero-valued filter
// fields are omitted from the query.
func (s *Sessions) List(ctx context.Context, filter domain.SessionFilter) ([]domain.CourseSession, error) {
	query := url.Values{}
	setIntParam(query, "course_id", filter.CourseID)
	setStringParam(query, "status", string(filter.Status))
	if filter.ActiveOnly {
		query.Set("active_only", "true")
	}
	setIntParam(query, "skip", filter.Skip)
	setIntParam(query, "limit", filter.Limit)

	var sessions []domain.CourseSession
	if err := s.c.get(ctx, domain.ResourceSessions, "/sessions/", query, &sessions); err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return sessions, nil
}

// Get fetches one course session by ID.
func (s *Sessions) Get(ctx context.Context, id int) (*domain.CourseSession, error) {
	var session domain.CourseSession
	if err := s.c.get(ctx, domain.ResourceSessions, fmt.Sprintf("/sessions/%d", id), nil, &session); err != nil {
		return nil, fmt.Errorf("fetching session %d: %w", id, err)
	}
	return &session, nil
}

// Create schedules a new course session. New sessions start in the
// scheduled state.
func (s *Sessions) Create(ctx context.Context, req domain.CreateCourseSessionRequest) (*domain.CourseSession, error) {
	var session domain.CourseSession
	if err := s.c.post(ctx, domain.ResourceSessions, "/sessions/", req, &session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return &session, nil
}

// Update applies a partial update; only non-nil fields are sent.
func (s *Sessions) Update(ctx context.Context, id int, req domain.UpdateCourseSessionRequest) (*domain.CourseSession, error) {
	var session domain.CourseSession
	if err := s.c.put(ctx, domain.ResourceSessions, fmt.Sprintf("/sessions/%d", id), req, &session); err != nil {
		return nil, fmt.Errorf("updating session %d: %w", id, err)
	}
	return &session, nil
}

// SetStatus moves a session to a new lifecycle state. The server
// accepts any of the four states regardless of the current one.
func (s *Sessions) SetStatus(ctx context.Context, id int, status domain.SessionStatus) (*domain.Confirmation, error) {
	var confirmation domain.Confirmation
	req := domain.StatusChangeRequest{Status: status}
	if err := s.c.patch(ctx, domain.ResourceSessions, fmt.Sprintf("/sessions/%d/status", id), req, &confirmation); err != nil {
		return nil, fmt.Errorf("updating session %d status: %w", id, err)
	}
	return &confirmation, nil
}

// Cancel soft-deletes a session by moving it to cancelled.
func (s *Sessions) Cancel(ctx context.Context, id int) (*domain.Confirmation, error) {
	return s.SetStatus(ctx, id, domain.StatusCancelled)
}

// Search runs a structured filter query.
func (s *Sessions) Search(ctx context.Context, filter domain.SessionSearch) ([]domain.CourseSession, error) {
	var sessions []domain.CourseSession
	if err := s.c.post(ctx, domain.ResourceSessions, "/sessions/search", filter, &sessions); err != nil {
		return nil, fmt.Errorf("searching sessions: %w", err)
	}
	return sessions, nil
}
