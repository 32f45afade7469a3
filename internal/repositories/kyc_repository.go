package repositories

import (
	"paisa/internal/models"

	"gorm.io/gorm"
)

// KYCRepository persists PAN and photo records.
type KYCRepository interface {
	Create(kyc *models.KYC) error
	GetByUserID(userID uint) (*models.KYC, error)
	GetByPAN(pan string) (*models.KYC, error)
	Update(kyc *models.KYC) error
}

type kycRepository struct {
	db *gorm.DB
}

func NewKYCRepository(db *gorm.DB) KYCRepository {
	return &kycRepository{db: db}
}

func (r *kycRepository) Create(kyc *models.KYC) error {
	if err := r.db.Create(kyc).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *kycRepository) GetByUserID(userID uint) (*models.KYC, error) {
	var kyc models.KYC
	if err := r.db.Where("user_id = ?", userID).First(&kyc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrKYCNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &kyc, nil
}

func (r *kycRepository) GetByPAN(pan string) (*models.KYC, error) {
	var kyc models.KYC
	if err := r.db.Where("pan_number = ?", pan).First(&kyc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrKYCNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &kyc, nil
}

func (r *kycRepository) Update(kyc *models.KYC) error {
	if err := r.db.Save(kyc).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}
