package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"seungpyo.lee/SocialFeed/services/social-service/internal/domain"
)

const feedSelect = `
SELECT
	p.id, p.user_id, p.image_url, p.video_url, p.caption, p.created_at,
	u.username, u.profile_pic,
	COUNT(l.user_id) AS like_count,
	COALESCE(MAX(CASE WHEN l.user_id = ? THEN 1 ELSE 0 END), 0) AS user_liked
FROM posts p
INNER JOIN users u ON p.user_id = u.id
LEFT JOIN likes l ON p.id = l.post_id`

const feedGroup = `
GROUP BY p.id, p.user_id, p.image_url, p.video_url, p.caption, p.created_at, u.username, u.profile_pic`

// feedRow is the scan target for feed queries; user_liked arrives as an integer on every dialect.
type feedRow struct {
	ID         uint
	UserID     uint
	ImageURL   *string
	VideoURL   *string
	Caption    *string
	CreatedAt  time.Time
	Username   string
	ProfilePic string
	LikeCount  int64
	UserLiked  int64
}

func (row feedRow) toDomain() *domain.FeedPost {
	return &domain.FeedPost{
		ID:         row.ID,
		UserID:     row.UserID,
		ImageURL:   row.ImageURL,
		VideoURL:   row.VideoURL,
		Caption:    row.Caption,
		CreatedAt:  row.CreatedAt,
		Username:   row.Username,
		ProfilePic: row.ProfilePic,
		LikeCount:  row.LikeCount,
		UserLiked:  row.UserLiked > 0,
	}
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository with the given GORM DB instance.
func NewPostRepository(db *gorm.DB) domain.PostRepository {
	return &postRepository{db: db}
}

// Create inserts a new post into the database.
func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetByID retrieves a post by its ID from the database.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// GetFeed returns a page of posts, newest first, annotated for the viewer.
func (r *postRepository) GetFeed(ctx context.Context, filter domain.FeedFilter) ([]*domain.FeedPost, error) {
	var rows []feedRow
	query := feedSelect + feedGroup + "\nORDER BY p.created_at DESC, p.id DESC\nLIMIT ? OFFSET ?"
	if err := r.db.WithContext(ctx).Raw(query, filter.ViewerID, filter.Limit, filter.Offset).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}
	posts := make([]*domain.FeedPost, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toDomain())
	}
	return posts, nil
}

// GetFeedPost returns a single post in feed shape.
func (r *postRepository) GetFeedPost(ctx context.Context, id, viewerID uint) (*domain.FeedPost, error) {
	var rows []feedRow
	query := feedSelect + "\nWHERE p.id = ?" + feedGroup
	if err := r.db.WithContext(ctx).Raw(query, viewerID, id).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrPostNotFound
	}
	return rows[0].toDomain(), nil
}

// Delete removes a post and its likes by the post ID.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&domain.Like{}).Error; err != nil {
			return fmt.Errorf("failed to delete likes: %w", err)
		}
		result := tx.Delete(&domain.Post{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrPostNotFound
		}
		return nil
	})
}
