package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericstephens/scheduler/internal/domain"
)

func TestSessions_ListOmitsUnsetFilterFields(t *testing.T) {
	srv, recorded := newTestServer(t, jsonHandler(http.StatusOK, `[]`))
	sessions := NewSessions(New(srv.URL))

	_, err := sessions.List(context.Background(), domain.SessionFilter{Status: domain.StatusScheduled})
	require.NoError(t, err)

	query := (*recorded)[0].Query
	assert.Equal(t, "scheduled", query.Get("status"))
	assert.False(t, query.Has("course_id"))
	assert.False(t, query.Has("active_only"))
	assert.False(t, query.Has("skip"))
	assert.False(t, query.Has("limit"))
}

func TestSessions_ListWithPagination(t *testing.T) {
	srv, recorded := newTestServer(t, jsonHandler(http.StatusOK, `[]`))
	sessions := NewSessions(New(srv.URL))

	_, err := sessions.List(context.Background(), domain.SessionFilter{CourseID: 3, Skip: 40, Limit: 20})
	require.NoError(t, err)

	query := (*recorded)[0].Query
	assert.Equal(t, "3", query.Get("course_id"))
	assert.Equal(t, "40", query.Get("skip"))
	assert.Equal(t, "20", query.Get("limit"))
}

func TestSessions_SetStatus(t *testing.T) {
	srv, recorded := newTestServer(t, jsonHandler(http.StatusOK, `{"message": "Status updated"}`))
	sessions := NewSessions(New(srv.URL))

	_, err := sessions.SetStatus(context.Background(), 5, domain.StatusInProgress)
	require.NoError(t, err)

	req := (*recorded)[0]
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "/sessions/5/status", req.Path)
	assert.JSONEq(t, `{"status": "in_progress"}`, string(req.Body))
}

func TestSessions_CancelIsStatusPatch(t *testing.T) {
	srv, recorded := newTestServer(t, jsonHandler(http.StatusOK, `{"message": "Status updated"}`))
	sessions := NewSessions(New(srv.URL))

	_, err := sessions.Cancel(context.Background(), 5)
	require.NoError(t, err)

	req := (*recorded)[0]
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.JSONEq(t, `{"status": "cancelled"}`, string(req.Body))
}

func TestSessions_Search(t *testing.T) {
	srv, recorded := newTestServer(t, jsonHandler(http.StatusOK, `[]`))
	sessions := NewSessions(New(srv.URL))

	_, err := sessions.Search(context.Background(), domain.SessionSearch{
		CourseID:      3,
		Status:        domain.StatusScheduled,
		StartDateFrom: "2025-06-01",
	})
	require.NoError(t, err)

	req := (*recorded)[0]
	assert.Equal(t, "/sessions/search", req.Path)
	assert.JSONEq(t, `{"course_id": 3, "status": "scheduled", "start_date_from": "2025-06-01"}`, string(req.Body))
}

func TestSessions_DaysFor(t *testing.T) {
	srv, recorded := newTestServer(t, jsonHandler(http.StatusOK,
		`[{"id": 1, "session_id": 5, "day_number": 1, "date": "2025-06-02", "location_id": 2, "start_time": "09:00", "end_time": "17:00", "session_type": "full_day"}]`))
	sessions := NewSessions(New(srv.URL))

	days, err := sessions.DaysFor(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "/sessions/5/days", (*recorded)[0].Path)
	require.Len(t, days, 1)
	assert.Equal(t, domain.TypeFullDay, days[0].SessionType)
}

func TestSessions_ListDaysOmitsUnsetFilterFields(t *testing.T) {
	srv, recorded := newTestServer(t, jsonHandler(http.StatusOK, `[]`))
	sessions := NewSessions(New(srv.URL))

	_, err := sessions.ListDays(context.Background(), domain.SessionDayFilter{StartDate: "2025-06-01"})
	require.NoError(t, err)

	req := (*recorded)[0]
	assert.Equal(t, "/sessions/session-days", req.Path)
	assert.Equal(t, "2025-06-01", req.Query.Get("start_date"))
	// location_id 0 means unset and never reaches the wire.
	assert.False(t, req.Query.Has("location_id"))
	assert.False(t, req.Query.Has("end_date"))
}

func TestSessions_CreateDay(t *testing.T) {
	srv, recorded := newTestServer(t, jsonHandler(http.StatusCreated,
		`{"id": 9, "session_id": 5, "day_number": 2, "date": "2025-06-03", "location_id": 2, "start_time": "09:00", "end_time": "13:00", "session_type": "half_day"}`))
	sessions := NewSessions(New(srv.URL))

	day, err := sessions.CreateDay(context.Background(), 5, domain.CreateCourseSessionDayRequest{
		DayNumber:   2,
		Date:        "2025-06-03",
		LocationID:  2,
		StartTime:   "09:00",
		EndTime:     "13:00",
		SessionType: domain.TypeHalfDay,
	})
	require.NoError(t, err)

	req := (*recorded)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/sessions/5/days", req.Path)
	assert.Equal(t, 9, day.ID)
}

func TestSessions_UpdateDaySendsOnlySuppliedFields(t *testing.T) {
	srv, recorded := newTestServer(t, jsonHandler(http.StatusOK,
		`{"id": 9, "session_id": 5, "day_number": 2, "date": "2025-06-03", "location_id": 4, "start_time": "09:00", "end_time": "13:00", "session_type": "half_day"}`))
	sessions := NewSessions(New(srv.URL))

	locationID := 4
	_, err := sessions.UpdateDay(context.Background(), 9, domain.UpdateCourseSessionDayRequest{LocationID: &locationID})
	require.NoError(t, err)

	req := (*recorded)[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/sessions/session-days/9", req.Path)
	assert.JSONEq(t, `{"location_id": 4}`, string(req.Body))
}

func TestSessions_DeleteDayUsesDeleteVerb(t *testing.T) {
	srv, recorded := newTestServer(t, jsonHandler(http.StatusOK, `{"message": "Session day deleted"}`))
	sessions := NewSessions(New(srv.URL))

	confirmation, err := sessions.DeleteDay(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Session day deleted", confirmation.Message)

	req := (*recorded)[0]
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/sessions/session-days/9", req.Path)
}
