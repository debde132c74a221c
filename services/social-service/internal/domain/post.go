package domain

import (
	"context"
	"time"
)

type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ImageURL  *string   `json:"image_url" gorm:"type:varchar(2048)"`
	VideoURL  *string   `json:"video_url" gorm:"type:varchar(2048)"`
	Caption   *string   `json:"caption" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Like marks that UserID liked PostID. The composite primary key allows one row per pair.
type Like struct {
	PostID    uint      `json:"post_id" gorm:"primaryKey;autoIncrement:false"`
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`

	Post Post `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// FeedPost is a post joined with its author and aggregated like metadata.
type FeedPost struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	ImageURL   *string   `json:"image_url"`
	VideoURL   *string   `json:"video_url"`
	Caption    *string   `json:"caption"`
	CreatedAt  time.Time `json:"created_at"`
	Username   string    `json:"username"`
	ProfilePic string    `json:"profile_pic"`
	LikeCount  int64     `json:"like_count"`
	UserLiked  bool      `json:"user_liked"`
}

type CreatePostRequest struct {
	Caption  string `json:"caption"`
	ImageURL string `json:"image_url"`
	VideoURL string `json:"video_url"`
}

type FeedFilter struct {
	ViewerID uint
	Limit    int
	Offset   int
}

// LikeState is the outcome of a like toggle.
type LikeState struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id uint) (*Post, error)
	GetFeed(ctx context.Context, filter FeedFilter) ([]*FeedPost, error)
	GetFeedPost(ctx context.Context, id, viewerID uint) (*FeedPost, error)
	// Delete removes the post and its likes in one transaction.
	Delete(ctx context.Context, id uint) error
}

type LikeRepository interface {
	// Toggle removes the like when present and adds it otherwise, returning the new state.
	Toggle(ctx context.Context, postID, userID uint) (*LikeState, error)
}

type PostService interface {
	GetFeed(ctx context.Context, filter FeedFilter) ([]*FeedPost, error)
	CreatePost(ctx context.Context, req CreatePostRequest, authorID uint) (*FeedPost, error)
	DeletePost(ctx context.Context, id, userID uint) error
	ToggleLike(ctx context.Context, postID, userID uint) (*LikeState, error)
}
