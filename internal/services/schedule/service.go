package schedule

import (
	"context"
	"errors"
	"fmt"

	domain "mentormatch/internal/errors"
	"mentormatch/internal/models"
	"mentormatch/internal/repositories"

	"github.com/google/uuid"
)

type service struct {
	schedules repositories.ScheduleRepository
	tutors    repositories.TutorRepository
}

// NewService creates a new schedule service.
func NewService(schedules repositories.ScheduleRepository, tutors repositories.TutorRepository) Service {
	if schedules == nil {
		panic("schedule repository is required")
	}
	if tutors == nil {
		panic("tutor repository is required")
	}
	return &service{schedules: schedules, tutors: tutors}
}

// newGroupID builds the join key shared by every row of one proposal.
// Uniqueness comes from the UUID; the tutor ID is kept for readability.
func newGroupID(tutorID uint) string {
	return fmt.Sprintf("GRP-%d-%s", tutorID, uuid.NewString())
}

func (s *service) CreateProposal(ctx context.Context, tutorID uint, req ProposalRequest) (*ProposalResult, error) {
	if len(req.Slots) == 0 {
		return nil, domain.NewValidationError("at least one slot is required")
	}
	for _, slot := range req.Slots {
		if !slot.EndTime.After(slot.StartTime) {
			return nil, domain.NewValidationError("slot end time must be after start time")
		}
	}

	profile, err := s.tutors.GetProfile(tutorID)
	if err != nil {
		if errors.Is(err, repositories.ErrTutorNotFound) {
			return nil, domain.ErrPriceNotSet
		}
		return nil, fmt.Errorf("failed to load tutor profile: %w", err)
	}
	if profile.PricePerHour == nil {
		return nil, domain.ErrPriceNotSet
	}
	pricePerHour := *profile.PricePerHour

	groupID := newGroupID(tutorID)

	rows := make([]*models.Schedule, 0, len(req.Slots))
	for _, slot := range req.Slots {
		durationHours := slot.EndTime.Sub(slot.StartTime).Hours()
		rows = append(rows, &models.Schedule{
			TutorID:        tutorID,
			StudentID:      req.StudentID,
			SubjectID:      req.SubjectID,
			StartTime:      slot.StartTime,
			EndTime:        slot.EndTime,
			Price:          durationHours * pricePerHour,
			Status:         models.ScheduleStatusPendingPayment,
			BookingGroupID: groupID,
		})
	}

	if err := s.schedules.CreateBatch(rows); err != nil {
		return nil, err
	}

	result := &ProposalResult{GroupID: groupID}
	for _, row := range rows {
		result.TotalAmount += row.Price
		result.Schedules = append(result.Schedules, *row)
	}
	return result, nil
}

func (s *service) GetProposalDetails(ctx context.Context, groupID string) (*ProposalDetails, error) {
	rows, err := s.schedules.GetByGroupID(groupID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrProposalNotFound
	}

	details := &ProposalDetails{Schedules: rows}
	for _, row := range rows {
		details.TotalAmount += row.Price
	}
	return details, nil
}

func (s *service) RejectProposal(ctx context.Context, userID uint, groupID string) ([]models.Schedule, error) {
	rows, err := s.schedules.GetByGroupID(groupID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrProposalNotFound
	}

	first := rows[0]
	if !first.HasParticipant(userID) {
		return nil, domain.ErrNotParticipant
	}
	if first.Status == models.ScheduleStatusConfirmed {
		// Paid groups need the refund path, not a plain rejection.
		return nil, domain.ErrAlreadyConfirmed
	}

	return s.schedules.UpdateGroupStatus(groupID, models.ScheduleStatusCancelled)
}

func (s *service) UpdateStatus(ctx context.Context, scheduleID, userID uint, status models.ScheduleStatus) (*models.Schedule, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("unknown schedule status")
	}

	row, err := s.schedules.GetByID(scheduleID)
	if err != nil {
		if errors.Is(err, repositories.ErrScheduleNotFound) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}

	if !row.HasParticipant(userID) {
		return nil, domain.ErrNotParticipant
	}
	if !row.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidTransition
	}

	return s.schedules.UpdateStatus(scheduleID, status)
}

func (s *service) GetScheduleForUser(ctx context.Context, userID uint, role string) ([]models.Schedule, error) {
	return s.schedules.ListByUser(userID, role)
}
