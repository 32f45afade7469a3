// Package account orchestrates the user lifecycle: registration, login,
// verification state, password reset and profile updates.
package account

import (
	"errors"
	"log"

	"paisa/internal/models"
	"paisa/internal/repositories"
	"paisa/internal/utils"
	"paisa/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("phone number is not verified")
)

// RegisterInput is the payload for a new registration.
type RegisterInput struct {
	Phone    string `json:"phone_number"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileInput carries a partial profile update. Nil fields are left
// untouched.
type UpdateProfileInput struct {
	Phone *string `json:"phone_number"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type Service interface {
	// Register creates the user and its profile and returns an auth token.
	Register(input RegisterInput) (*models.User, string, error)

	// UpdateProfile applies a partial update. A phone change resets the
	// verification flag. Returns the user and the current flag value.
	UpdateProfile(userID uint, input UpdateProfileInput) (*models.User, bool, error)

	// Login authenticates by phone and password and returns a token.
	// Unverified users cannot log in even with correct credentials.
	Login(phone, password string) (string, error)

	// SubmitVerification records the outcome of an OTP verification.
	SubmitVerification(userID uint, isVerified bool) (*models.Profile, error)

	// RequestPasswordReset issues a token for a registered phone number.
	RequestPasswordReset(phone string) (string, error)

	// ChangePassword sets a new password after confirming both values match.
	ChangePassword(userID uint, password, confirm string) error
}

type service struct {
	users    repositories.UserRepository
	profiles repositories.ProfileRepository
}

func NewService(users repositories.UserRepository, profiles repositories.ProfileRepository) Service {
	return &service{
		users:    users,
		profiles: profiles,
	}
}

func (s *service) Register(input RegisterInput) (*models.User, string, error) {
	v := validation.New()
	v.Required("name", input.Name)
	v.Required("password", input.Password)
	v.Phone("phone_number", input.Phone)
	v.Email("email", input.Email)

	if v.Valid() {
		if _, err := s.users.GetByPhone(input.Phone); err == nil {
			v.AddError("phone_number", "This phone number is already registered.")
		}
		if _, err := s.users.GetByEmail(input.Email); err == nil {
			v.AddError("email", "This email is already in use.")
		}
	}
	if err := v.Err(); err != nil {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errors.New("failed to hash password")
	}

	user := &models.User{
		Phone:    input.Phone,
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
	}
	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}

	if err := s.profiles.Create(&models.Profile{UserID: user.ID}); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *service) UpdateProfile(userID uint, input UpdateProfileInput) (*models.User, bool, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, false, err
	}

	phoneChanged := false
	v := validation.New()

	if input.Phone != nil && *input.Phone != user.Phone {
		v.Phone("phone_number", *input.Phone)
		if v.Valid() {
			if other, err := s.users.GetByPhone(*input.Phone); err == nil && other.ID != user.ID {
				v.AddError("phone_number", "This phone number is already registered.")
			}
		}
		phoneChanged = true
	}
	if input.Email != nil && *input.Email != user.Email {
		v.Email("email", *input.Email)
		if _, ok := v.Errors["email"]; !ok {
			if other, err := s.users.GetByEmail(*input.Email); err == nil && other.ID != user.ID {
				v.AddError("email", "This email is already in use.")
			}
		}
	}
	if err := v.Err(); err != nil {
		return nil, false, err
	}

	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if err := s.users.Update(user); err != nil {
		return nil, false, err
	}

	profile, err := s.profiles.GetByUserID(user.ID)
	if err != nil {
		return nil, false, err
	}
	if phoneChanged && profile.IsVerified {
		profile, err = s.profiles.SetVerified(user.ID, false)
		if err != nil {
			return nil, false, err
		}
	}

	return user, profile.IsVerified, nil
}

func (s *service) Login(phone, password string) (string, error) {
	v := validation.New()
	v.Phone("phone_number", phone)
	if err := v.Err(); err != nil {
		return "", err
	}

	user, err := s.users.GetByPhone(phone)
	if err != nil {
		log.Printf("login failed: no user for phone %s", phone)
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("login failed: bad password for user %d", user.ID)
		return "", ErrInvalidCredentials
	}

	profile, err := s.profiles.GetByUserID(user.ID)
	if err != nil {
		return "", err
	}
	if !profile.IsVerified {
		return "", ErrNotVerified
	}

	return s.issueToken(user)
}

func (s *service) SubmitVerification(userID uint, isVerified bool) (*models.Profile, error) {
	return s.profiles.SetVerified(userID, isVerified)
}

func (s *service) RequestPasswordReset(phone string) (string, error) {
	v := validation.New()
	v.Phone("phone_number", phone)
	if err := v.Err(); err != nil {
		return "", err
	}

	user, err := s.users.GetByPhone(phone)
	if err != nil {
		return "", validation.Errors{"phone_number": "This phone number is not registered."}
	}

	return s.issueToken(user)
}

func (s *service) ChangePassword(userID uint, password, confirm string) error {
	v := validation.New()
	v.Required("password", password)
	v.PasswordMatch("confirm_password", password, confirm)
	if err := v.Err(); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}
	return s.users.UpdatePassword(userID, string(hashed))
}

func (s *service) issueToken(user *models.User) (string, error) {
	token, err := utils.GenerateToken(&models.UserClaims{
		UserID: user.ID,
		Phone:  user.Phone,
	})
	if err != nil {
		log.Printf("error generating token for user %d: %v", user.ID, err)
		return "", errors.New("error generating token")
	}
	return token, nil
}
