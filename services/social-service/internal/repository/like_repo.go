package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"seungpyo.lee/SocialFeed/services/social-service/internal/domain"
)

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository with the given GORM DB instance.
func NewLikeRepository(db *gorm.DB) domain.LikeRepository {
	return &likeRepository{db: db}
}

// Toggle deletes the (post, user) like if present, inserts it otherwise, and recounts.
// The delete decides the direction, so two concurrent toggles never both insert.
func (r *likeRepository) Toggle(ctx context.Context, postID, userID uint) (*domain.LikeState, error) {
	state := &domain.LikeState{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		removed := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&domain.Like{})
		if removed.Error != nil {
			return fmt.Errorf("failed to remove like: %w", removed.Error)
		}
		if removed.RowsAffected == 0 {
			like := &domain.Like{PostID: postID, UserID: userID, CreatedAt: time.Now()}
			err := tx.Omit(clause.Associations).
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(like).Error
			if err != nil {
				return fmt.Errorf("failed to add like: %w", err)
			}
			state.Liked = true
		}
		if err := tx.Model(&domain.Like{}).Where("post_id = ?", postID).Count(&state.LikeCount).Error; err != nil {
			return fmt.Errorf("failed to count likes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}
