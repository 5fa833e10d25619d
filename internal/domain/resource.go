package domain

// Resource names shared by the API clients, cache keys, and metrics
// labels. One name per entity type.
const (
	ResourceInstructors = "instructors"
	ResourceCourses     = "courses"
	ResourceSessions    = "sessions"
	ResourceSessionDays = "session-days"
	ResourceLocations   = "locations"
)
