// Package address stores postal addresses for a user.
package address

import (
	"paisa/internal/models"
	"paisa/internal/repositories"
	"paisa/internal/validation"
)

// CreateInput is the payload for a new address.
type CreateInput struct {
	HouseFlatApartment string `json:"house_flat_apartment"`
	RoadStreet         string `json:"road_street"`
	Landmark           string `json:"landmark"`
	City               string `json:"city"`
	Pincode            string `json:"pincode"`
	State              string `json:"state"`
	AddressType        string `json:"address_type"`
}

type Service interface {
	// Create validates and stores an address owned by the user. There is no
	// cap on addresses per user.
	Create(userID uint, input CreateInput) (*models.Address, error)
}

type service struct {
	repo repositories.AddressRepository
}

func NewService(repo repositories.AddressRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(userID uint, input CreateInput) (*models.Address, error) {
	if input.AddressType == "" {
		input.AddressType = models.AddressTypeHome
	}

	v := validation.New()
	v.Required("house_flat_apartment", input.HouseFlatApartment)
	v.Required("road_street", input.RoadStreet)
	v.Required("city", input.City)
	v.Pincode("pincode", input.Pincode)
	v.State("state", input.State)
	v.AddressType("address_type", input.AddressType)
	if err := v.Err(); err != nil {
		return nil, err
	}

	addr := &models.Address{
		UserID:             userID,
		HouseFlatApartment: input.HouseFlatApartment,
		RoadStreet:         input.RoadStreet,
		Landmark:           input.Landmark,
		City:               input.City,
		Pincode:            input.Pincode,
		State:              input.State,
		AddressType:        input.AddressType,
	}
	if err := s.repo.Create(addr); err != nil {
		return nil, err
	}
	return addr, nil
}
