// Package schedule holds the session-day scheduling rules: half-day
// end-time inference and the curated status action menu.
package schedule

import (
	"fmt"
	"strings"

	"github.com/ericstephens/scheduler/internal/domain"
)

const halfDayHours = 4

// HalfDayEndTime derives the end time for a half-day session day from
// its start time: the hour advances by four, the minutes are kept.
// Hours are not normalized past midnight, so a 21:00 start yields
// "25:00"; the time-order validation still applies to whatever the
// user submits. Returns ok=false when start is not an HH:MM value.
func HalfDayEndTime(start string) (string, bool) {
	hour, minute, ok := splitClock(start)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hour+halfDayHours, minute), true
}

func splitClock(value string) (hour, minute int, ok bool) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(parts[0], "%d", &hour); err != nil || hour < 0 {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &minute); err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// Action is one offered status transition.
type Action struct {
	Label  string
	Target domain.SessionStatus
}

// NextActions curates which status transitions to offer for a
// session's current state. The server accepts any of the four values
// regardless; this menu only decides which buttons appear.
func NextActions(status domain.SessionStatus) []Action {
	switch status {
	case domain.StatusScheduled:
		return []Action{
			{Label: "Start Session", Target: domain.StatusInProgress},
			{Label: "Cancel Session", Target: domain.StatusCancelled},
		}
	case domain.StatusInProgress:
		return []Action{
			{Label: "Complete Session", Target: domain.StatusCompleted},
			{Label: "Cancel Session", Target: domain.StatusCancelled},
		}
	case domain.StatusCompleted, domain.StatusCancelled:
		return []Action{
			{Label: "Reschedule Session", Target: domain.StatusScheduled},
		}
	}
	return nil
}
