package repositories

import (
	"errors"
	"fmt"
	"time"

	"mentormatch/internal/models"

	"gorm.io/gorm"
)

// visibleStatuses restricts user-facing schedule listings.
var visibleStatuses = []models.ScheduleStatus{
	models.ScheduleStatusConfirmed,
	models.ScheduleStatusCompleted,
	models.ScheduleStatusCancelled,
	models.ScheduleStatusPendingPayment,
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) CreateBatch(schedules []*models.Schedule) error {
	// Single multi-row insert: either every slot of the proposal persists
	// or none does.
	if err := r.db.Create(&schedules).Error; err != nil {
		return fmt.Errorf("failed to create schedules: %w", err)
	}
	return nil
}

func (r *scheduleRepository) GetByID(id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := r.db.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return &schedule, nil
}

func (r *scheduleRepository) GetByGroupID(groupID string) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Where("booking_group_id = ?", groupID).
		Order("start_time ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get booking group: %w", err)
	}
	return schedules, nil
}

func (r *scheduleRepository) UpdateStatus(id uint, status models.ScheduleStatus) (*models.Schedule, error) {
	result := r.db.Model(&models.Schedule{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update schedule status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrScheduleNotFound
	}
	return r.GetByID(id)
}

func (r *scheduleRepository) UpdateGroupStatus(groupID string, status models.ScheduleStatus) ([]models.Schedule, error) {
	result := r.db.Model(&models.Schedule{}).
		Where("booking_group_id = ?", groupID).
		Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update booking group status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrScheduleNotFound
	}
	return r.GetByGroupID(groupID)
}

func (r *scheduleRepository) ListByUser(userID uint, role string) ([]models.Schedule, error) {
	query := r.db.Where("status IN ?", visibleStatuses)

	switch role {
	case models.RoleTutor:
		query = query.Where("tutor_id = ?", userID)
	default:
		query = query.Where("student_id = ?", userID)
	}

	var schedules []models.Schedule
	if err := query.Order("start_time DESC").Find(&schedules).Error; err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

func (r *scheduleRepository) ListConfirmedEndedBefore(cutoff time.Time) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Where("status = ? AND end_time < ?", models.ScheduleStatusConfirmed, cutoff).
		Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ended schedules: %w", err)
	}
	return schedules, nil
}

func (r *scheduleRepository) WithTx(tx *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: tx}
}
