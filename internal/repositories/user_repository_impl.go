package repositories

import (
	"context"
	"log"

	"paisa/internal/models"
	"paisa/internal/repositories/cache"

	"gorm.io/gorm"
)

type userRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewUserRepository creates a new instance of UserRepository. The cache may
// be nil, in which case every read hits the database.
func NewUserRepository(db *gorm.DB, cache *cache.CacheService) UserRepository {
	return &userRepository{
		db:    db,
		cache: cache,
	}
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	if r.cache != nil {
		key := r.cache.GenerateKey("user", "id", id)
		if user, err := r.cache.GetUser(context.Background(), key); err == nil {
			return user, nil
		}
	}

	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}

	r.cacheUser(&user)
	return &user, nil
}

func (r *userRepository) GetByPhone(phone string) (*models.User, error) {
	if r.cache != nil {
		key := r.cache.GenerateKey("user", "phone", phone)
		if user, err := r.cache.GetUser(context.Background(), key); err == nil {
			return user, nil
		}
	}

	var user models.User
	if err := r.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}

	r.cacheUser(&user)
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	// Invalidate before the write so stale phone/email keys go too.
	r.invalidateUser(user.ID)

	if err := r.db.Save(user).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *userRepository) UpdatePassword(userID uint, hashedPassword string) error {
	r.invalidateUser(userID)

	result := r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password", hashedPassword)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) cacheUser(user *models.User) {
	if r.cache == nil {
		return
	}
	if err := r.cache.CacheUser(context.Background(), user); err != nil {
		log.Printf("failed to cache user %d: %v", user.ID, err)
	}
}

func (r *userRepository) invalidateUser(userID uint) {
	if r.cache == nil {
		return
	}
	if err := r.cache.InvalidateUser(context.Background(), userID); err != nil {
		log.Printf("failed to invalidate user %d cache: %v", userID, err)
	}
}
