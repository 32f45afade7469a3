package kyc

import (
	"context"
	"testing"

	"paisa/internal/models"
	"paisa/internal/repositories"
	"paisa/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockKYCRepo struct {
	mock.Mock
}

func (m *MockKYCRepo) Create(kyc *models.KYC) error {
	args := m.Called(kyc)
	return args.Error(0)
}

func (m *MockKYCRepo) GetByUserID(userID uint) (*models.KYC, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KYC), args.Error(1)
}

func (m *MockKYCRepo) GetByPAN(pan string) (*models.KYC, error) {
	args := m.Called(pan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KYC), args.Error(1)
}

func (m *MockKYCRepo) Update(kyc *models.KYC) error {
	args := m.Called(kyc)
	return args.Error(0)
}

func TestSubmitPAN(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the record", func(t *testing.T) {
		repo := new(MockKYCRepo)
		s := NewService(repo)

		repo.On("GetByPAN", "ABCDE1234F").Return(nil, repositories.ErrKYCNotFound)
		repo.On("Create", mock.MatchedBy(func(k *models.KYC) bool {
			return k.UserID == 7 && k.PANNumber == "ABCDE1234F" && k.ImageURL == ""
		})).Return(nil)

		record, err := s.SubmitPAN(ctx, 7, "ABCDE1234F")
		assert.NoError(t, err)
		assert.Equal(t, "ABCDE1234F", record.PANNumber)
		repo.AssertExpectations(t)
	})

	t.Run("rejects malformed PAN", func(t *testing.T) {
		repo := new(MockKYCRepo)
		s := NewService(repo)

		for _, pan := range []string{"abcde1234f", "ABCDE123F"} {
			_, err := s.SubmitPAN(ctx, 7, pan)

			var fields validation.Errors
			assert.ErrorAs(t, err, &fields)
			assert.Contains(t, fields, "pan_number")
		}
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("rejects a PAN owned by anyone", func(t *testing.T) {
		repo := new(MockKYCRepo)
		s := NewService(repo)

		// held by a different user; still a conflict
		existing := &models.KYC{UserID: 99, PANNumber: "ABCDE1234F"}
		repo.On("GetByPAN", "ABCDE1234F").Return(existing, nil)

		_, err := s.SubmitPAN(ctx, 7, "ABCDE1234F")

		var fields validation.Errors
		assert.ErrorAs(t, err, &fields)
		assert.Equal(t, "This PAN Number is already in use.", fields["pan_number"])
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestAttachImage(t *testing.T) {
	ctx := context.Background()

	t.Run("fails before any PAN submission", func(t *testing.T) {
		repo := new(MockKYCRepo)
		s := NewService(repo)

		repo.On("GetByUserID", uint(7)).Return(nil, repositories.ErrKYCNotFound)

		_, err := s.AttachImage(ctx, 7, "user_images/kyc_7.jpg")
		assert.ErrorIs(t, err, repositories.ErrKYCNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("attaches to the existing record", func(t *testing.T) {
		repo := new(MockKYCRepo)
		s := NewService(repo)

		repo.On("GetByUserID", uint(7)).Return(&models.KYC{UserID: 7, PANNumber: "ABCDE1234F"}, nil)
		repo.On("Update", mock.MatchedBy(func(k *models.KYC) bool {
			return k.ImageURL == "user_images/kyc_7.jpg"
		})).Return(nil)

		record, err := s.AttachImage(ctx, 7, "user_images/kyc_7.jpg")
		assert.NoError(t, err)
		assert.Equal(t, "user_images/kyc_7.jpg", record.ImageURL)
		repo.AssertExpectations(t)
	})

	t.Run("requires an image reference", func(t *testing.T) {
		repo := new(MockKYCRepo)
		s := NewService(repo)

		_, err := s.AttachImage(ctx, 7, "")

		var fields validation.Errors
		assert.ErrorAs(t, err, &fields)
		assert.Contains(t, fields, "user_image")
	})
}
