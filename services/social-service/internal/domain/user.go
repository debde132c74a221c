package domain

import (
	"context"
	"time"
)

// DefaultProfilePic is assigned to users that never uploaded an avatar.
const DefaultProfilePic = "default-avatar.png"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"type:varchar(30);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"` // Hidden in JSON responses
	ProfilePic   string    `json:"profile_pic" gorm:"type:varchar(255);default:default-avatar.png"`
	OnlineStatus bool      `json:"online_status" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// AuthResult is returned by register and login: the sanitized user and the new session.
type AuthResult struct {
	User    *User
	Session *Session
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context, limit int) ([]*User, error)
	SetOnlineStatus(ctx context.Context, id uint, online bool) error
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
	Logout(ctx context.Context, userID uint, sessionID string) error
	Check(ctx context.Context, sessionID string) (*User, error)
	ResolveSession(ctx context.Context, sessionID string) (uint, bool, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]*User, error)
	GetUser(ctx context.Context, id uint) (*User, error)
}
