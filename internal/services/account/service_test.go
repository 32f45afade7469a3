package account

import (
	"testing"

	"paisa/internal/models"
	"paisa/internal/repositories"
	"paisa/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByPhone(phone string) (*models.User, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) UpdatePassword(userID uint, hashedPassword string) error {
	args := m.Called(userID, hashedPassword)
	return args.Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(profile *models.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepo) GetByUserID(userID uint) (*models.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepo) SetVerified(userID uint, verified bool) (*models.Profile, error) {
	args := m.Called(userID, verified)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func hashOf(password string) string {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hashed)
}

func TestRegister(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("successful registration", func(t *testing.T) {
		users := new(MockUserRepo)
		profiles := new(MockProfileRepo)
		s := NewService(users, profiles)

		users.On("GetByPhone", "9876543210").Return(nil, repositories.ErrUserNotFound)
		users.On("GetByEmail", "asha@example.com").Return(nil, repositories.ErrUserNotFound)
		users.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
			args.Get(0).(*models.User).ID = 7
		}).Return(nil)
		profiles.On("Create", mock.MatchedBy(func(p *models.Profile) bool {
			return p.UserID == 7 && !p.IsVerified
		})).Return(nil)

		user, token, err := s.Register(RegisterInput{
			Phone:    "9876543210",
			Name:     "Asha",
			Email:    "asha@example.com",
			Password: "hunter22!",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22!")))
		users.AssertExpectations(t)
		profiles.AssertExpectations(t)
	})

	t.Run("duplicate phone number", func(t *testing.T) {
		users := new(MockUserRepo)
		profiles := new(MockProfileRepo)
		s := NewService(users, profiles)

		users.On("GetByPhone", "9876543210").Return(&models.User{Phone: "9876543210"}, nil)
		users.On("GetByEmail", "asha@example.com").Return(nil, repositories.ErrUserNotFound)

		_, _, err := s.Register(RegisterInput{
			Phone:    "9876543210",
			Name:     "Asha",
			Email:    "asha@example.com",
			Password: "hunter22!",
		})

		var fields validation.Errors
		assert.ErrorAs(t, err, &fields)
		assert.Equal(t, "This phone number is already registered.", fields["phone_number"])
		users.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("invalid phone format skips uniqueness checks", func(t *testing.T) {
		users := new(MockUserRepo)
		profiles := new(MockProfileRepo)
		s := NewService(users, profiles)

		_, _, err := s.Register(RegisterInput{
			Phone:    "12345",
			Name:     "Asha",
			Email:    "asha@example.com",
			Password: "hunter22!",
		})

		var fields validation.Errors
		assert.ErrorAs(t, err, &fields)
		assert.Contains(t, fields, "phone_number")
		users.AssertNotCalled(t, "GetByPhone", mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tests := []struct {
		name      string
		phone     string
		password  string
		setupMock func(*MockUserRepo, *MockProfileRepo)
		wantErr   error
	}{
		{
			name:     "verified user logs in",
			phone:    "9876543210",
			password: "hunter22!",
			setupMock: func(users *MockUserRepo, profiles *MockProfileRepo) {
				users.On("GetByPhone", "9876543210").Return(&models.User{
					Phone:    "9876543210",
					Password: hashOf("hunter22!"),
				}, nil)
				profiles.On("GetByUserID", mock.Anything).Return(&models.Profile{IsVerified: true}, nil)
			},
		},
		{
			name:     "unknown phone",
			phone:    "9876543210",
			password: "hunter22!",
			setupMock: func(users *MockUserRepo, profiles *MockProfileRepo) {
				users.On("GetByPhone", "9876543210").Return(nil, repositories.ErrUserNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			phone:    "9876543210",
			password: "wrong",
			setupMock: func(users *MockUserRepo, profiles *MockProfileRepo) {
				users.On("GetByPhone", "9876543210").Return(&models.User{
					Phone:    "9876543210",
					Password: hashOf("hunter22!"),
				}, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "correct credentials but unverified",
			phone:    "9876543210",
			password: "hunter22!",
			setupMock: func(users *MockUserRepo, profiles *MockProfileRepo) {
				users.On("GetByPhone", "9876543210").Return(&models.User{
					Phone:    "9876543210",
					Password: hashOf("hunter22!"),
				}, nil)
				profiles.On("GetByUserID", mock.Anything).Return(&models.Profile{IsVerified: false}, nil)
			},
			wantErr: ErrNotVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepo)
			profiles := new(MockProfileRepo)
			if tt.setupMock != nil {
				tt.setupMock(users, profiles)
			}
			s := NewService(users, profiles)

			token, err := s.Login(tt.phone, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}

	t.Run("malformed phone is a validation error", func(t *testing.T) {
		s := NewService(new(MockUserRepo), new(MockProfileRepo))
		_, err := s.Login("12ab", "hunter22!")

		var fields validation.Errors
		assert.ErrorAs(t, err, &fields)
		assert.Contains(t, fields, "phone_number")
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("phone change resets verification", func(t *testing.T) {
		users := new(MockUserRepo)
		profiles := new(MockProfileRepo)
		s := NewService(users, profiles)

		current := &models.User{Phone: "9876543210", Name: "Asha", Email: "asha@example.com"}
		current.ID = 7
		newPhone := "9123456780"

		users.On("GetByID", uint(7)).Return(current, nil)
		users.On("GetByPhone", newPhone).Return(nil, repositories.ErrUserNotFound)
		users.On("Update", mock.MatchedBy(func(u *models.User) bool {
			return u.Phone == newPhone
		})).Return(nil)
		profiles.On("GetByUserID", uint(7)).Return(&models.Profile{UserID: 7, IsVerified: true}, nil)
		profiles.On("SetVerified", uint(7), false).Return(&models.Profile{UserID: 7, IsVerified: false}, nil)

		updated, isVerified, err := s.UpdateProfile(7, UpdateProfileInput{Phone: &newPhone})

		assert.NoError(t, err)
		assert.False(t, isVerified)
		assert.Equal(t, newPhone, updated.Phone)
		profiles.AssertExpectations(t)
	})

	t.Run("name-only change keeps verification", func(t *testing.T) {
		users := new(MockUserRepo)
		profiles := new(MockProfileRepo)
		s := NewService(users, profiles)

		current := &models.User{Phone: "9876543210", Name: "Asha", Email: "asha@example.com"}
		current.ID = 7
		newName := "Asha K"

		users.On("GetByID", uint(7)).Return(current, nil)
		users.On("Update", mock.Anything).Return(nil)
		profiles.On("GetByUserID", uint(7)).Return(&models.Profile{UserID: 7, IsVerified: true}, nil)

		updated, isVerified, err := s.UpdateProfile(7, UpdateProfileInput{Name: &newName})

		assert.NoError(t, err)
		assert.True(t, isVerified)
		assert.Equal(t, "Asha K", updated.Name)
		profiles.AssertNotCalled(t, "SetVerified", mock.Anything, mock.Anything)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		users := new(MockUserRepo)
		profiles := new(MockProfileRepo)
		s := NewService(users, profiles)

		current := &models.User{Phone: "9876543210", Email: "asha@example.com"}
		current.ID = 7
		other := &models.User{Email: "ravi@example.com"}
		other.ID = 8
		newEmail := "ravi@example.com"

		users.On("GetByID", uint(7)).Return(current, nil)
		users.On("GetByEmail", newEmail).Return(other, nil)

		_, _, err := s.UpdateProfile(7, UpdateProfileInput{Email: &newEmail})

		var fields validation.Errors
		assert.ErrorAs(t, err, &fields)
		assert.Equal(t, "This email is already in use.", fields["email"])
		users.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("mismatched confirmation leaves password untouched", func(t *testing.T) {
		users := new(MockUserRepo)
		s := NewService(users, new(MockProfileRepo))

		err := s.ChangePassword(7, "hunter22!", "hunter23!")

		var fields validation.Errors
		assert.ErrorAs(t, err, &fields)
		assert.Equal(t, "The passwords do not match.", fields["confirm_password"])
		users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything)
	})

	t.Run("matching confirmation stores a new hash", func(t *testing.T) {
		users := new(MockUserRepo)
		s := NewService(users, new(MockProfileRepo))

		users.On("UpdatePassword", uint(7), mock.MatchedBy(func(hashed string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hashed), []byte("hunter22!")) == nil
		})).Return(nil)

		err := s.ChangePassword(7, "hunter22!", "hunter22!")
		assert.NoError(t, err)
		users.AssertExpectations(t)
	})
}

func TestRequestPasswordReset(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("registered phone gets a token", func(t *testing.T) {
		users := new(MockUserRepo)
		s := NewService(users, new(MockProfileRepo))

		user := &models.User{Phone: "9876543210"}
		user.ID = 7
		users.On("GetByPhone", "9876543210").Return(user, nil)

		token, err := s.RequestPasswordReset("9876543210")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("unregistered phone is rejected", func(t *testing.T) {
		users := new(MockUserRepo)
		s := NewService(users, new(MockProfileRepo))

		users.On("GetByPhone", "9876543210").Return(nil, repositories.ErrUserNotFound)

		_, err := s.RequestPasswordReset("9876543210")

		var fields validation.Errors
		assert.ErrorAs(t, err, &fields)
		assert.Equal(t, "This phone number is not registered.", fields["phone_number"])
	})
}
