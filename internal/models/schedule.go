package models

import (
	"time"
)

// ScheduleStatus is the closed set of lifecycle states for a booked slot.
type ScheduleStatus string

const (
	ScheduleStatusPendingPayment ScheduleStatus = "pending_payment"
	ScheduleStatusConfirmed      ScheduleStatus = "confirmed"
	ScheduleStatusCompleted      ScheduleStatus = "completed"
	ScheduleStatusCancelled      ScheduleStatus = "cancelled"
)

func (s ScheduleStatus) Valid() bool {
	switch s {
	case ScheduleStatusPendingPayment, ScheduleStatusConfirmed,
		ScheduleStatusCompleted, ScheduleStatusCancelled:
		return true
	}
	return false
}

// directTransitions are the moves a participant may make through the plain
// status-update path. Entering confirmed is reserved for settlement, and
// completed/cancelled are terminal.
var directTransitions = map[ScheduleStatus][]ScheduleStatus{
	ScheduleStatusPendingPayment: {ScheduleStatusCancelled},
	ScheduleStatusConfirmed:      {ScheduleStatusCompleted, ScheduleStatusCancelled},
}

// CanTransitionTo reports whether a direct status update from s to target
// is allowed.
func (s ScheduleStatus) CanTransitionTo(target ScheduleStatus) bool {
	for _, t := range directTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Schedule is one booked slot between a tutor and a student. Price is frozen
// at proposal time (duration hours x the tutor's hourly rate). Rows created
// by the same proposal share a BookingGroupID and share payment fate.
type Schedule struct {
	ID             uint           `gorm:"primarykey"`
	TutorID        uint           `gorm:"index;not null"`
	StudentID      uint           `gorm:"index;not null"`
	SubjectID      uint           `gorm:"not null"`
	StartTime      time.Time      `gorm:"not null"`
	EndTime        time.Time      `gorm:"not null"`
	Price          float64        `gorm:"type:numeric(12,2);not null"`
	Status         ScheduleStatus `gorm:"size:20;not null;default:'pending_payment'"`
	BookingGroupID string         `gorm:"size:64;index;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DurationHours returns the slot length in hours, fractional hours allowed.
func (s *Schedule) DurationHours() float64 {
	return s.EndTime.Sub(s.StartTime).Hours()
}

// HasParticipant reports whether userID is the tutor or the student on
// this schedule.
func (s *Schedule) HasParticipant(userID uint) bool {
	return s.TutorID == userID || s.StudentID == userID
}
