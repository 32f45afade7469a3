// Package kyc handles PAN capture and the photo attachment that follows it.
package kyc

import (
	"context"

	"paisa/internal/models"
	"paisa/internal/repositories"
	"paisa/internal/validation"
)

// Service defines the KYC operations.
type Service interface {
	// SubmitPAN creates the user's KYC record. The PAN must be unused by
	// anyone, regardless of owner.
	SubmitPAN(ctx context.Context, userID uint, pan string) (*models.KYC, error)

	// AttachImage stores a photo reference on an existing KYC record.
	// Fails with repositories.ErrKYCNotFound when no PAN was submitted yet.
	AttachImage(ctx context.Context, userID uint, imageURL string) (*models.KYC, error)
}

type service struct {
	repo repositories.KYCRepository
}

// NewService creates a new KYC service.
func NewService(repo repositories.KYCRepository) Service {
	return &service{repo: repo}
}

func (s *service) SubmitPAN(ctx context.Context, userID uint, pan string) (*models.KYC, error) {
	v := validation.New()
	v.PAN("pan_number", pan)
	if v.Valid() {
		if _, err := s.repo.GetByPAN(pan); err == nil {
			v.AddError("pan_number", "This PAN Number is already in use.")
		}
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	kyc := &models.KYC{
		UserID:    userID,
		PANNumber: pan,
	}
	if err := s.repo.Create(kyc); err != nil {
		return nil, err
	}
	return kyc, nil
}

func (s *service) AttachImage(ctx context.Context, userID uint, imageURL string) (*models.KYC, error) {
	v := validation.New()
	v.Required("user_image", imageURL)
	if err := v.Err(); err != nil {
		return nil, err
	}

	kyc, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	kyc.ImageURL = imageURL
	if err := s.repo.Update(kyc); err != nil {
		return nil, err
	}
	return kyc, nil
}
