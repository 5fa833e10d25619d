package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericstephens/scheduler/internal/domain"
)

func TestHalfDayEndTime_FourHourOffset(t *testing.T) {
	end, ok := HalfDayEndTime("09:00")

	require.True(t, ok)
	assert.Equal(t, "13:00", end)
}

func TestHalfDayEndTime_MinutesUnchanged(t *testing.T) {
	end, ok := HalfDayEndTime("08:45")

	require.True(t, ok)
	assert.Equal(t, "12:45", end)
}

func TestHalfDayEndTime_NoDayRollover(t *testing.T) {
	// A late start runs past midnight without normalization; the
	// time-order rule catches it at submission.
	end, ok := HalfDayEndTime("21:00")

	require.True(t, ok)
	assert.Equal(t, "25:00", end)
}

func TestHalfDayEndTime_SingleDigitHourPadded(t *testing.T) {
	end, ok := HalfDayEndTime("07:30")

	require.True(t, ok)
	assert.Equal(t, "11:30", end)
}

func TestHalfDayEndTime_MalformedInput(t *testing.T) {
	for _, start := range []string{"", "nine", "09", "09:xx"} {
		_, ok := HalfDayEndTime(start)
		assert.False(t, ok, "input %q", start)
	}
}

func TestNextActions_Scheduled(t *testing.T) {
	actions := NextActions(domain.StatusScheduled)

	require.Len(t, actions, 2)
	assert.Equal(t, Action{Label: "Start Session", Target: domain.StatusInProgress}, actions[0])
	assert.Equal(t, Action{Label: "Cancel Session", Target: domain.StatusCancelled}, actions[1])
}

func TestNextActions_InProgress(t *testing.T) {
	actions := NextActions(domain.StatusInProgress)

	require.Len(t, actions, 2)
	assert.Equal(t, Action{Label: "Complete Session", Target: domain.StatusCompleted}, actions[0])
	assert.Equal(t, Action{Label: "Cancel Session", Target: domain.StatusCancelled}, actions[1])
}

func TestNextActions_TerminalStatesOfferReschedule(t *testing.T) {
	for _, status := range []domain.SessionStatus{domain.StatusCompleted, domain.StatusCancelled} {
		actions := NextActions(status)

		require.Len(t, actions, 1)
		assert.Equal(t, Action{Label: "Reschedule Session", Target: domain.StatusScheduled}, actions[0])
	}
}

func TestNextActions_UnknownStatus(t *testing.T) {
	assert.Nil(t, NextActions(domain.SessionStatus("archived")))
}
