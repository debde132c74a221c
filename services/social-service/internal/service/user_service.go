package service

import (
	"context"
	"errors"

	"seungpyo.lee/SocialFeed/services/social-service/internal/domain"
)

// MaxListedUsers caps the user directory.
const MaxListedUsers = 100

type userService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) domain.UserService {
	return &userService{users: users}
}

// ListUsers returns the public directory ordered by username.
func (s *userService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx, MaxListedUsers)
	if err != nil {
		return nil, domain.NewStorageError("failed to list users", err)
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}

// GetUser retrieves a user by their ID.
func (s *userService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.NewNotFoundError(domain.MsgUserNotFound)
		}
		return nil, domain.NewStorageError("failed to get user", err)
	}
	return user, nil
}
