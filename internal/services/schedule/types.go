package schedule

import (
	"time"

	"mentormatch/internal/models"
)

// Slot is one proposed lesson window.
type Slot struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
}

// ProposalRequest carries the payload a tutor submits to propose a set of
// lessons to a student.
type ProposalRequest struct {
	StudentID uint   `json:"student_id" validate:"required"`
	SubjectID uint   `json:"subject_id" validate:"required"`
	Slots     []Slot `json:"slots" validate:"required,min=1,dive"`
}

// ProposalResult is returned after the pending-payment rows are persisted.
type ProposalResult struct {
	GroupID     string            `json:"group_id"`
	TotalAmount float64           `json:"total_amount"`
	Schedules   []models.Schedule `json:"schedules"`
}

// ProposalDetails describes an existing booking group.
type ProposalDetails struct {
	Schedules   []models.Schedule `json:"schedules"`
	TotalAmount float64           `json:"total_amount"`
}
