package repositories

import (
	"paisa/internal/models"

	"gorm.io/gorm"
)

// AddressRepository persists user addresses. Addresses are append-only in
// this API; there is no update or delete surface.
type AddressRepository interface {
	Create(address *models.Address) error
	ListByUserID(userID uint) ([]models.Address, error)
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(address *models.Address) error {
	if err := r.db.Create(address).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *addressRepository) ListByUserID(userID uint) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&addresses).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return addresses, nil
}
