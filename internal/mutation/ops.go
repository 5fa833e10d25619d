package mutation

import (
	"fmt"

	"github.com/ericstephens/scheduler/internal/domain"
	"github.com/ericstephens/scheduler/internal/query"
)

// Instructor operations.

func CreateInstructorOp() Op {
	return Op{
		Resource:       domain.ResourceInstructors,
		Name:           "create",
		Invalidate:     []string{domain.ResourceInstructors},
		SuccessMessage: "Instructor created successfully",
		FailureMessage: "Failed to create instructor",
	}
}

func UpdateInstructorOp(id int) Op {
	return Op{
		Resource:       domain.ResourceInstructors,
		Name:           "update",
		Invalidate:     []string{domain.ResourceInstructors},
		InvalidateKeys: []query.Key{query.DetailKey(domain.ResourceInstructors, id)},
		SuccessMessage: "Instructor updated successfully",
		FailureMessage: "Failed to update instructor",
	}
}

func SetInstructorStatusOp(id int, active bool) Op {
	verb := "deactivated"
	if active {
		verb = "activated"
	}
	return Op{
		Resource:       domain.ResourceInstructors,
		Name:           "status",
		Invalidate:     []string{domain.ResourceInstructors},
		InvalidateKeys: []query.Key{query.DetailKey(domain.ResourceInstructors, id)},
		SuccessMessage: fmt.Sprintf("Instructor %s successfully", verb),
		FailureMessage: "Failed to update instructor status",
	}
}

func DeleteInstructorOp(id int) Op {
	op := SetInstructorStatusOp(id, false)
	op.Name = "delete"
	op.FailureMessage = "Failed to deactivate instructor"
	return op
}

// Course operations.

func CreateCourseOp() Op {
	return Op{
		Resource:       domain.ResourceCourses,
		Name:           "create",
		Invalidate:     []string{domain.ResourceCourses},
		SuccessMessage: "Course created successfully",
		FailureMessage: "Failed to create course",
	}
}

func UpdateCourseOp(id int) Op {
	return Op{
		Resource:       domain.ResourceCourses,
		Name:           "update",
		Invalidate:     []string{domain.ResourceCourses},
		InvalidateKeys: []query.Key{query.DetailKey(domain.ResourceCourses, id)},
		SuccessMessage: "Course updated successfully",
		FailureMessage: "Failed to update course",
	}
}

func SetCourseStatusOp(id int, active bool) Op {
	verb := "deactivated"
	if active {
		verb = "activated"
	}
	return Op{
		Resource:       domain.ResourceCourses,
		Name:           "status",
		Invalidate:     []string{domain.ResourceCourses},
		InvalidateKeys: []query.Key{query.DetailKey(domain.ResourceCourses, id)},
		SuccessMessage: fmt.Sprintf("Course %s successfully", verb),
		FailureMessage: "Failed to update course status",
	}
}

func DeleteCourseOp(id int) Op {
	op := SetCourseStatusOp(id, false)
	op.Name = "delete"
	op.FailureMessage = "Failed to deactivate course"
	return op
}

// Course session operations.

func CreateSessionOp() Op {
	return Op{
		Resource:       domain.ResourceSessions,
		Name:           "create",
		Invalidate:     []string{domain.ResourceSessions},
		SuccessMessage: "Course session created successfully",
		FailureMessage: "Failed to create course session",
	}
}

func UpdateSessionOp(id int) Op {
	return Op{
		Resource:       domain.ResourceSessions,
		Name:           "update",
		Invalidate:     []string{domain.ResourceSessions},
		InvalidateKeys: []query.Key{query.DetailKey(domain.ResourceSessions, id)},
		SuccessMessage: "Course session updated successfully",
		FailureMessage: "Failed to update course session",
	}
}

func SetSessionStatusOp(id int, status domain.SessionStatus) Op {
	return Op{
		Resource:       domain.ResourceSessions,
		Name:           "status",
		Invalidate:     []string{domain.ResourceSessions},
		InvalidateKeys: []query.Key{query.DetailKey(domain.ResourceSessions, id)},
		SuccessMessage: fmt.Sprintf("Session status updated to %s", status),
		FailureMessage: "Failed to update session status",
	}
}

// Session day operations.

func CreateSessionDayOp() Op {
	return Op{
		Resource:       domain.ResourceSessionDays,
		Name:           "create",
		Invalidate:     []string{domain.ResourceSessionDays},
		SuccessMessage: "Session day created successfully",
		FailureMessage: "Failed to create session day",
	}
}

func UpdateSessionDayOp(dayID int) Op {
	return Op{
		Resource:       domain.ResourceSessionDays,
		Name:           "update",
		Invalidate:     []string{domain.ResourceSessionDays},
		InvalidateKeys: []query.Key{query.DetailKey(domain.ResourceSessionDays, dayID)},
		SuccessMessage: "Session day updated successfully",
		FailureMessage: "Failed to update session day",
	}
}

func DeleteSessionDayOp(dayID int) Op {
	return Op{
		Resource:       domain.ResourceSessionDays,
		Name:           "delete",
		Invalidate:     []string{domain.ResourceSessionDays},
		InvalidateKeys: []query.Key{query.DetailKey(domain.ResourceSessionDays, dayID)},
		SuccessMessage: "Session day deleted successfully",
		FailureMessage: "Failed to delete session day",
	}
}

// Location operations.

func CreateLocationOp() Op {
	return Op{
		Resource:       domain.ResourceLocations,
		Name:           "create",
		Invalidate:     []string{domain.ResourceLocations},
		SuccessMessage: "Location created successfully",
		FailureMessage: "Failed to create location",
	}
}

func UpdateLocationOp(id int) Op {
	return Op{
		Resource:       domain.ResourceLocations,
		Name:           "update",
		Invalidate:     []string{domain.ResourceLocations},
		InvalidateKeys: []query.Key{query.DetailKey(domain.ResourceLocations, id)},
		SuccessMessage: "Location updated successfully",
		FailureMessage: "Failed to update location",
	}
}

func SetLocationStatusOp(id int, active bool) Op {
	verb := "deactivated"
	if active {
		verb = "activated"
	}
	return Op{
		Resource:       domain.ResourceLocations,
		Name:           "status",
		Invalidate:     []string{domain.ResourceLocations},
		InvalidateKeys: []query.Key{query.DetailKey(domain.ResourceLocations, id)},
		SuccessMessage: fmt.Sprintf("Location %s successfully", verb),
		FailureMessage: "Failed to update location status",
	}
}

func DeleteLocationOp(id int) Op {
	op := SetLocationStatusOp(id, false)
	op.Name = "delete"
	op.FailureMessage = "Failed to deactivate location"
	return op
}
