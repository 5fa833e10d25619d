package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericstephens/scheduler/internal/domain"
)

func TestCourses_Create(t *testing.T) {
	srv, recorded := newTestServer(t, jsonHandler(http.StatusCreated,
		`{"id": 3, "course_name": "Incident Response", "course_code": "IR-101", "duration_days": 5, "active_status": true, "created_date": "2025-03-10"}`))
	courses := NewCourses(New(srv.URL))

	created, err := courses.Create(context.Background(), domain.CreateCourseRequest{
		CourseName:   "Incident Response",
		CourseCode:   "IR-101",
		DurationDays: 5,
	})
	require.NoError(t, err)

	req := (*recorded)[0]
	assert.Equal(t, "/courses/", req.Path)
	assert.JSONEq(t, `{"course_name": "Incident Response", "course_code": "IR-101", "duration_days": 5}`, string(req.Body))
	assert.Equal(t, 3, created.ID)
}

func TestCourses_GetByCode(t *testing.T) {
	srv, recorded := newTestServer(t, jsonHandler(http.StatusOK,
		`{"id": 3, "course_name": "Incident Response", "course_code": "IR-101", "duration_days": 5, "active_status": true, "created_date": "2025-03-10"}`))
	courses := NewCourses(New(srv.URL))

	course, err := courses.GetByCode(context.Background(), "IR-101")
	require.NoError(t, err)

	assert.Equal(t, "/courses/code/IR-101", (*recorded)[0].Path)
	assert.Equal(t, "IR-101", course.CourseCode)
}

func TestCourses_SetStatusDeactivate(t *testing.T) {
	srv, recorded := newTestServer(t, jsonHandler(http.StatusOK, `{"message": "Course deactivated"}`))
	courses := NewCourses(New(srv.URL))

	_, err := courses.SetStatus(context.Background(), 3, false)
	require.NoError(t, err)

	req := (*recorded)[0]
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "/courses/3/status", req.Path)
	assert.JSONEq(t, `{"active": false}`, string(req.Body))
}

func TestCourses_Search(t *testing.T) {
	srv, recorded := newTestServer(t, jsonHandler(http.StatusOK, `[]`))
	courses := NewCourses(New(srv.URL))

	_, err := courses.Search(context.Background(), domain.CourseSearch{Code: "IR", ActiveOnly: true})
	require.NoError(t, err)

	req := (*recorded)[0]
	assert.Equal(t, "/courses/search", req.Path)
	assert.JSONEq(t, `{"code": "IR", "active_only": true}`, string(req.Body))
}

func TestLocations_DeleteIsStatusPatch(t *testing.T) {
	srv, recorded := newTestServer(t, jsonHandler(http.StatusOK, `{"message": "Location deactivated"}`))
	locations := NewLocations(New(srv.URL))

	_, err := locations.Delete(context.Background(), 4)
	require.NoError(t, err)

	req := (*recorded)[0]
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "/locations/4/status", req.Path)
	assert.JSONEq(t, `{"active": false}`, string(req.Body))
}
