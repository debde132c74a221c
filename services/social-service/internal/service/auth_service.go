package service

import (
	"context"
	"errors"
	"time"

	"seungpyo.lee/SocialFeed/pkg/logger"
	"seungpyo.lee/SocialFeed/pkg/token"
	"seungpyo.lee/SocialFeed/services/social-service/internal/domain"
	"seungpyo.lee/SocialFeed/services/social-service/internal/util"
)

// SessionLifetimes holds how long regular and remember-me sessions live.
type SessionLifetimes struct {
	Regular    time.Duration
	RememberMe time.Duration
}

// authService implements domain.AuthService on top of the user and session repositories.
type authService struct {
	users     domain.UserRepository
	sessions  domain.SessionRepository
	tokens    token.Generator
	lifetimes SessionLifetimes
	now       func() time.Time
	log       *logger.Logger
}

// NewAuthService creates a new AuthService. A nil now defaults to time.Now.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository, tokens token.Generator,
	lifetimes SessionLifetimes, now func() time.Time, log *logger.Logger) domain.AuthService {
	if now == nil {
		now = time.Now
	}
	return &authService{
		users:     users,
		sessions:  sessions,
		tokens:    tokens,
		lifetimes: lifetimes,
		now:       now,
		log:       log.Named("auth"),
	}
}

// Register validates the credentials, creates the account and starts a regular session.
func (s *authService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error) {
	username := util.NormalizeUsername(req.Username)
	if msg := util.ValidateUsername(username); msg != "" {
		return nil, domain.NewValidationError(msg)
	}
	if msg := util.ValidatePassword(req.Password); msg != "" {
		return nil, domain.NewValidationError(msg)
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, domain.NewConflictError(domain.MsgUsernameTaken)
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.NewStorageError("failed to look up username", err)
	}

	hashed, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, domain.NewStorageError("failed to hash password", err)
	}
	user := &domain.User{Username: username, PasswordHash: hashed}
	if err := s.users.Create(ctx, user); err != nil {
		// the unique index catches registrations racing past the pre-check
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, domain.NewConflictError(domain.MsgUsernameTaken)
		}
		return nil, domain.NewStorageError("failed to register user", err)
	}

	session, err := s.startSession(ctx, user.ID, false)
	if err != nil {
		return nil, err
	}
	s.log.Infof("registered user %d (%s)", user.ID, user.Username)
	user.PasswordHash = ""
	return &domain.AuthResult{User: user, Session: session}, nil
}

// Login verifies the credentials and starts a session honoring remember-me.
// Unknown usernames and wrong passwords produce the same error.
func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error) {
	username := util.NormalizeUsername(req.Username)
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			util.CheckDummyPassword(req.Password)
			return nil, domain.NewAuthError(domain.MsgInvalidCredentials)
		}
		return nil, domain.NewStorageError("failed to look up user", err)
	}
	if err := util.CheckPassword(user.PasswordHash, req.Password); err != nil {
		if !util.IsMismatch(err) {
			s.log.Warnf("stored hash for user %d is unusable: %v", user.ID, err)
		}
		return nil, domain.NewAuthError(domain.MsgInvalidCredentials)
	}

	session, err := s.startSession(ctx, user.ID, req.RememberMe)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetOnlineStatus(ctx, user.ID, true); err != nil {
		return nil, domain.NewStorageError("failed to update online status", err)
	}
	user.OnlineStatus = true
	user.PasswordHash = ""
	return &domain.AuthResult{User: user, Session: session}, nil
}

// Logout marks the user offline and removes the session row.
func (s *authService) Logout(ctx context.Context, userID uint, sessionID string) error {
	if err := s.users.SetOnlineStatus(ctx, userID, false); err != nil {
		return domain.NewStorageError("failed to update online status", err)
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return domain.NewStorageError("failed to delete session", err)
	}
	return nil
}

// Check returns the user owning a live session, or nil when there is none.
func (s *authService) Check(ctx context.Context, sessionID string) (*domain.User, error) {
	userID, ok, err := s.ResolveSession(ctx, sessionID)
	if err != nil || !ok {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			if err := s.sessions.Delete(ctx, sessionID); err != nil {
				return nil, domain.NewStorageError("failed to delete dangling session", err)
			}
			return nil, nil
		}
		return nil, domain.NewStorageError("failed to load user", err)
	}
	return user, nil
}

// ResolveSession maps a token to its user. Expired rows are deleted on sight.
func (s *authService) ResolveSession(ctx context.Context, sessionID string) (uint, bool, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return 0, false, domain.NewStorageError("failed to load session", err)
	}
	if session == nil {
		return 0, false, nil
	}
	if session.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			return 0, false, domain.NewStorageError("failed to delete expired session", err)
		}
		s.log.Debugf("expired session for user %d removed", session.UserID)
		return 0, false, nil
	}
	return session.UserID, true, nil
}

func (s *authService) startSession(ctx context.Context, userID uint, rememberMe bool) (*domain.Session, error) {
	id, err := s.tokens.NewToken()
	if err != nil {
		return nil, domain.NewStorageError("failed to generate session token", err)
	}
	ttl := s.lifetimes.Regular
	if rememberMe {
		ttl = s.lifetimes.RememberMe
	}
	now := s.now()
	session := &domain.Session{
		SessionID:  id,
		UserID:     userID,
		ExpiresAt:  now.Add(ttl),
		RememberMe: rememberMe,
		CreatedAt:  now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, domain.NewStorageError("failed to create session", err)
	}
	return session, nil
}
