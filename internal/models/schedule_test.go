package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleStatusTransitions(t *testing.T) {
	tests := []struct {
		from    ScheduleStatus
		to      ScheduleStatus
		allowed bool
	}{
		{ScheduleStatusPendingPayment, ScheduleStatusCancelled, true},
		{ScheduleStatusConfirmed, ScheduleStatusCompleted, true},
		{ScheduleStatusConfirmed, ScheduleStatusCancelled, true},
		// confirmed is reachable only through settlement
		{ScheduleStatusPendingPayment, ScheduleStatusConfirmed, false},
		// terminal states
		{ScheduleStatusCompleted, ScheduleStatusConfirmed, false},
		{ScheduleStatusCompleted, ScheduleStatusCancelled, false},
		{ScheduleStatusCancelled, ScheduleStatusPendingPayment, false},
		{ScheduleStatusCancelled, ScheduleStatusConfirmed, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestScheduleStatusValid(t *testing.T) {
	assert.True(t, ScheduleStatusPendingPayment.Valid())
	assert.True(t, ScheduleStatusConfirmed.Valid())
	assert.False(t, ScheduleStatus("paused").Valid())
	assert.False(t, ScheduleStatus("").Valid())
}

func TestScheduleDurationHours(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	s := Schedule{StartTime: start, EndTime: start.Add(2 * time.Hour)}
	assert.Equal(t, 2.0, s.DurationHours())

	s.EndTime = start.Add(90 * time.Minute)
	assert.Equal(t, 1.5, s.DurationHours())
}

func TestScheduleHasParticipant(t *testing.T) {
	s := Schedule{TutorID: 7, StudentID: 3}
	assert.True(t, s.HasParticipant(7))
	assert.True(t, s.HasParticipant(3))
	assert.False(t, s.HasParticipant(42))
}
