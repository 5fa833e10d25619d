// Package forms validates entity payloads before they go on the wire.
// Validation is purely local: a payload that fails its rules never
// produces a network call, and every violation maps to a field-level
// message the presentation layer can show inline.
package forms

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ericstephens/scheduler/internal/domain"
)

// FieldErrors maps a field's wire name to its first violated rule's
// message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, message := range e {
		parts = append(parts, field+": "+message)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

// Validator checks entity payloads against their field and cross-field
// rules. One instance is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator with the cross-field rules registered for
// session and session-day payloads.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under wire names so messages line up with the
	// JSON the server sees.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(sessionDateOrder,
		domain.CreateCourseSessionRequest{}, domain.UpdateCourseSessionRequest{})
	v.RegisterStructValidation(sessionDayTimeOrder,
		domain.CreateCourseSessionDayRequest{}, domain.UpdateCourseSessionDayRequest{})

	return &Validator{validate: v}
}

// Check validates payload and returns one message per offending field,
// or nil when every rule passes.
func (v *Validator) Check(payload any) FieldErrors {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !stderrors.As(err, &violations) {
		return FieldErrors{"": err.Error()}
	}

	out := make(FieldErrors, len(violations))
	for _, violation := range violations {
		field := violation.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = messageFor(field, violation.Tag())
	}
	return out
}

// Dates and times are ISO strings (2025-03-01, 09:00), so lexical order
// is chronological order.

func sessionDateOrder(sl validator.StructLevel) {
	switch req := sl.Current().Interface().(type) {
	case domain.CreateCourseSessionRequest:
		if req.StartDate != "" && req.EndDate != "" && req.EndDate < req.StartDate {
			sl.ReportError(req.EndDate, "end_date", "EndDate", "dateorder", "")
		}
	case domain.UpdateCourseSessionRequest:
		if req.StartDate != nil && req.EndDate != nil && *req.EndDate < *req.StartDate {
			sl.ReportError(req.EndDate, "end_date", "EndDate", "dateorder", "")
		}
	}
}

func sessionDayTimeOrder(sl validator.StructLevel) {
	switch req := sl.Current().Interface().(type) {
	case domain.CreateCourseSessionDayRequest:
		if req.StartTime != "" && req.EndTime != "" && req.StartTime >= req.EndTime {
			sl.ReportError(req.EndTime, "end_time", "EndTime", "timeorder", "")
		}
	case domain.UpdateCourseSessionDayRequest:
		if req.StartTime != nil && req.EndTime != nil && *req.StartTime >= *req.EndTime {
			sl.ReportError(req.EndTime, "end_time", "EndTime", "timeorder", "")
		}
	}
}

// messages holds the per-field, per-rule texts shown inline.
var messages = map[string]map[string]string{
	"first_name": {
		"required": "First name is required",
		"max":      "First name must be less than 100 characters",
	},
	"last_name": {
		"required": "Last name is required",
		"max":      "Last name must be less than 100 characters",
	},
	"email": {
		"required": "Invalid email address",
		"email":    "Invalid email address",
		"max":      "Email must be less than 255 characters",
	},
	"call_sign": {
		"max": "Call sign must be less than 50 characters",
	},
	"course_name": {
		"required": "Course name is required",
		"max":      "Course name must be less than 200 characters",
	},
	"course_code": {
		"required": "Course code is required",
		"max":      "Course code must be less than 50 characters",
	},
	"duration_days": {
		"min": "Duration must be at least 1 day",
		"max": "Duration must be less than 365 days",
	},
	"course_id": {
		"required": "Course is required",
		"min":      "Course is required",
	},
	"session_name": {
		"required": "Session name is required",
		"max":      "Session name must be less than 200 characters",
	},
	"start_date": {
		"required": "Start date is required",
	},
	"end_date": {
		"required":  "End date is required",
		"dateorder": "End date must be on or after start date",
	},
	"day_number": {
		"min": "Day number must be at least 1",
	},
	"date": {
		"required": "Date is required",
	},
	"location_id": {
		"required": "Location is required",
		"min":      "Location is required",
	},
	"start_time": {
		"required": "Start time is required",
	},
	"end_time": {
		"required":  "End time is required",
		"timeorder": "End time must be after start time",
	},
	"session_type": {
		"required": "Session type is required",
		"oneof":    "Invalid session type",
	},
	"location_name": {
		"required": "Location name is required",
		"max":      "Location name must be less than 200 characters",
	},
	"address": {
		"max": "Address must be less than 255 characters",
	},
	"city": {
		"max": "City must be less than 100 characters",
	},
	"state_province": {
		"max": "State/Province must be less than 50 characters",
	},
	"postal_code": {
		"max": "Postal code must be less than 20 characters",
	},
}

func messageFor(field, tag string) string {
	if byTag, ok := messages[field]; ok {
		if message, ok := byTag[tag]; ok {
			return message
		}
	}
	return fmt.Sprintf("%s is invalid", field)
}
