package repositories

import (
	"paisa/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository persists the per-user verification flag.
type ProfileRepository interface {
	Create(profile *models.Profile) error
	GetByUserID(userID uint) (*models.Profile, error)
	SetVerified(userID uint, verified bool) (*models.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *models.Profile) error {
	if err := r.db.Create(profile).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *profileRepository) GetByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProfileNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &profile, nil
}

func (r *profileRepository) SetVerified(userID uint, verified bool) (*models.Profile, error) {
	profile, err := r.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	profile.IsVerified = verified
	if err := r.db.Save(profile).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return profile, nil
}
