package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ericstephens/scheduler/internal/domain"
)

// ListDays returns session days across all sessions, narrowed by the
// filter. Zero-valued filter fields are omitted from the query.
func (s *Sessions) ListDays(ctx context.Context, filter domain.SessionDayFilter) ([]domain.CourseSessionDay, error) {
	query := url.Values{}
	setStringParam(query, "start_date", filter.StartDate)
	setStringParam(query, "end_date", filter.EndDate)
	setIntParam(query, "location_id", filter.LocationID)
	setIntParam(query, "skip", filter.Skip)
	setIntParam(query, "limit", filter.Limit)

	var days []domain.CourseSessionDay
	if err := s.c.get(ctx, domain.ResourceSessionDays, "/sessions/session-days", query, &days); err != nil {
		return nil, fmt.Errorf("listing session days: %w", err)
	}
	return days, nil
}

// DaysFor returns the days scheduled under one session.
func (s *Sessions) DaysFor(ctx context.Context, sessionID int) ([]domain.CourseSessionDay, error) {
	var days []domain.CourseSessionDay
	if err := s.c.get(ctx, domain.ResourceSessionDays, fmt.Sprintf("/sessions/%d/days", sessionID), nil, &days); err != nil {
		return nil, fmt.Errorf("listing days for session %d: %w", sessionID, err)
	}
	return days, nil
}

// GetDay fetches one session day by ID.
func (s *Sessions) GetDay(ctx context.Context, dayID int) (*domain.CourseSessionDay, error) {
	var day domain.CourseSessionDay
	if err := s.c.get(ctx, domain.ResourceSessionDays, fmt.Sprintf("/sessions/session-days/%d", dayID), nil, &day); err != nil {
		return nil, fmt.Errorf("fetching session day %d: %w", dayID, err)
	}
	return &day, nil
}

// CreateDay adds a day to a session.
func (s *Sessions) CreateDay(ctx context.Context, sessionID int, req domain.CreateCourseSessionDayRequest) (*domain.CourseSessionDay, error) {
	var day domain.CourseSessionDay
	if err := s.c.post(ctx, domain.ResourceSessionDays, fmt.Sprintf("/sessions/%d/days", sessionID), req, &day); err != nil {
		return nil, fmt.Errorf("creating day for session %d: %w", sessionID, err)
	}
	return &day, nil
}

// UpdateDay applies a partial update; only non-nil fields are sent.
func (s *Sessions) UpdateDay(ctx context.Context, dayID int, req domain.UpdateCourseSessionDayRequest) (*domain.CourseSessionDay, error) {
	var day domain.CourseSessionDay
	if err := s.c.put(ctx, domain.ResourceSessionDays, fmt.Sprintf("/sessions/session-days/%d", dayID), req, &day); err != nil {
		return nil, fmt.Errorf("updating session day %d: %w", dayID, err)
	}
	return &day, nil
}

// DeleteDay removes a session day. Unlike the status-bearing entities,
// session days have a genuine delete endpoint.
func (s *Sessions) DeleteDay(ctx context.Context, dayID int) (*domain.Confirmation, error) {
	var confirmation domain.Confirmation
	if err := s.c.delete(ctx, domain.ResourceSessionDays, fmt.Sprintf("/sessions/session-days/%d", dayID), &confirmation); err != nil {
		return nil, fmt.Errorf("deleting session day %d: %w", dayID, err)
	}
	return &confirmation, nil
}
