package repositories

import (
	"paisa/internal/models"

	"gorm.io/gorm"
)

// BankDetailsRepository persists provider lookup results.
type BankDetailsRepository interface {
	// Upsert creates or updates the row keyed by (UserID, VPA).
	Upsert(details *models.BankDetails) error
	ListByUserID(userID uint) ([]models.BankDetails, error)
}

type bankDetailsRepository struct {
	db *gorm.DB
}

func NewBankDetailsRepository(db *gorm.DB) BankDetailsRepository {
	return &bankDetailsRepository{db: db}
}

func (r *bankDetailsRepository) Upsert(details *models.BankDetails) error {
	var existing models.BankDetails
	err := r.db.Where("user_id = ? AND vpa = ?", details.UserID, details.VPA).
		First(&existing).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return ErrDatabaseOperation
		}
		if err := r.db.Create(details).Error; err != nil {
			return ErrDatabaseOperation
		}
		return nil
	}

	existing.Name = details.Name
	existing.MerchantIFSC = details.MerchantIFSC
	existing.TPAP = details.TPAP
	if err := r.db.Save(&existing).Error; err != nil {
		return ErrDatabaseOperation
	}
	*details = existing
	return nil
}

func (r *bankDetailsRepository) ListByUserID(userID uint) ([]models.BankDetails, error) {
	var rows []models.BankDetails
	if err := r.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return rows, nil
}
