package repositories

import (
	"errors"
	"fmt"

	"mentormatch/internal/models"

	"gorm.io/gorm"
)

// TutorRepository exposes the tutor profile lookups the booking core needs.
type TutorRepository interface {
	GetProfile(userID uint) (*models.TutorProfile, error)
	UpsertProfile(profile *models.TutorProfile) error
}

type tutorRepository struct {
	db *gorm.DB
}

func NewTutorRepository(db *gorm.DB) TutorRepository {
	return &tutorRepository{db: db}
}

func (r *tutorRepository) GetProfile(userID uint) (*models.TutorProfile, error) {
	var profile models.TutorProfile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTutorNotFound
		}
		return nil, fmt.Errorf("failed to get tutor profile: %w", err)
	}
	return &profile, nil
}

func (r *tutorRepository) UpsertProfile(profile *models.TutorProfile) error {
	if err := r.db.Save(profile).Error; err != nil {
		return fmt.Errorf("failed to save tutor profile: %w", err)
	}
	return nil
}
