package repositories

import (
	"time"

	"mentormatch/internal/models"

	"gorm.io/gorm"
)

// ScheduleRepository defines the schedule store. Rows created by one
// proposal share a booking group ID and are confirmed or cancelled as a
// unit through the group-scoped updates.
type ScheduleRepository interface {
	CreateBatch(schedules []*models.Schedule) error
	GetByID(id uint) (*models.Schedule, error)
	GetByGroupID(groupID string) ([]models.Schedule, error)
	UpdateStatus(id uint, status models.ScheduleStatus) (*models.Schedule, error)
	UpdateGroupStatus(groupID string, status models.ScheduleStatus) ([]models.Schedule, error)
	ListByUser(userID uint, role string) ([]models.Schedule, error)
	ListConfirmedEndedBefore(cutoff time.Time) ([]models.Schedule, error)

	WithTx(tx *gorm.DB) ScheduleRepository
}
