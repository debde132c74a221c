package domain

import (
	"context"
	"time"
)

// Session maps an opaque token to its owning user until ExpiresAt.
type Session struct {
	SessionID  string    `json:"session_id" gorm:"column:session_id;type:varchar(64);primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	ExpiresAt  time.Time `json:"expires_at" gorm:"not null"`
	RememberMe bool      `json:"remember_me" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Expired reports whether the session is no longer usable at now.
// A session is still valid at the ExpiresAt instant itself.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	// GetByID returns (nil, nil) when no row matches.
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
