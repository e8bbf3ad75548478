package schedule

import (
	"context"

	"mentormatch/internal/models"
)

// Service defines the booking proposal and lifecycle operations.
type Service interface {
	CreateProposal(ctx context.Context, tutorID uint, req ProposalRequest) (*ProposalResult, error)
	GetProposalDetails(ctx context.Context, groupID string) (*ProposalDetails, error)
	RejectProposal(ctx context.Context, userID uint, groupID string) ([]models.Schedule, error)
	UpdateStatus(ctx context.Context, scheduleID, userID uint, status models.ScheduleStatus) (*models.Schedule, error)
	GetScheduleForUser(ctx context.Context, userID uint, role string) ([]models.Schedule, error)
}
