package model

import "seungpyo.lee/SocialFeed/services/social-service/internal/domain"

// AuthResponse represents the register and login response payload
type AuthResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	User      *domain.User `json:"user"`
	SessionID string       `json:"session_id"`
}

// CheckResponse represents the session probe response payload
type CheckResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user"`
}

// MessageResponse is returned by endpoints with nothing but a confirmation
type MessageResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message"`
}

// FeedResponse wraps a page of the feed
type FeedResponse struct {
	Posts []*domain.FeedPost `json:"posts"`
}

// PostResponse wraps a single feed-shaped post
type PostResponse struct {
	Post *domain.FeedPost `json:"post"`
}

// UsersResponse wraps the user directory
type UsersResponse struct {
	Users []*domain.User `json:"users"`
}

// UserResponse wraps a single public user
type UserResponse struct {
	User *domain.User `json:"user"`
}

// DiagnoseResponse reports database reachability and schema presence
type DiagnoseResponse struct {
	Database string          `json:"database"`
	Tables   map[string]bool `json:"tables"`
}
