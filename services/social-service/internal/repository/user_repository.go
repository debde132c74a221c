package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"seungpyo.lee/SocialFeed/services/social-service/internal/domain"
)

// userRepository implements domain.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository with the given GORM DB instance.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. A duplicate username yields domain.ErrUsernameTaken.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ProfilePic == "" {
		user.ProfilePic = domain.DefaultProfilePic
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by its normalized username.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by ID.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user.PasswordHash = "" // Hide password
	return &user, nil
}

// List returns up to limit users ordered by username.
func (r *userRepository) List(ctx context.Context, limit int) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.WithContext(ctx).
		Select("id", "username", "profile_pic", "online_status", "created_at").
		Order("username ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SetOnlineStatus updates the online flag of a user.
func (r *userRepository) SetOnlineStatus(ctx context.Context, id uint, online bool) error {
	result := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Update("online_status", online)
	if result.Error != nil {
		return fmt.Errorf("failed to update online status: %w", result.Error)
	}
	return nil
}
