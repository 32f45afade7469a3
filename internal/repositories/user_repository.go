package repositories

import "paisa/internal/models"

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	// Create creates a new user in the database
	Create(user *models.User) error

	// GetByID retrieves a user by their ID
	GetByID(id uint) (*models.User, error)

	// GetByPhone retrieves a user by their phone number
	GetByPhone(phone string) (*models.User, error)

	// GetByEmail retrieves a user by their email address
	GetByEmail(email string) (*models.User, error)

	// Update updates an existing user's information
	Update(user *models.User) error

	// UpdatePassword updates the user's password hash
	UpdatePassword(userID uint, hashedPassword string) error
}
