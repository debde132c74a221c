package service

import (
	"context"
	"errors"
	"strings"

	"seungpyo.lee/SocialFeed/pkg/logger"
	"seungpyo.lee/SocialFeed/services/social-service/internal/domain"
	"seungpyo.lee/SocialFeed/services/social-service/internal/util"
)

const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 100
)

type postService struct {
	posts domain.PostRepository
	likes domain.LikeRepository
	log   *logger.Logger
}

// NewPostService creates a new PostService with the given repositories.
func NewPostService(posts domain.PostRepository, likes domain.LikeRepository, log *logger.Logger) domain.PostService {
	return &postService{posts: posts, likes: likes, log: log.Named("posts")}
}

// NormalizeFeedFilter clamps limit into [1, MaxFeedLimit] and negative offsets to zero.
func NormalizeFeedFilter(filter domain.FeedFilter) domain.FeedFilter {
	switch {
	case filter.Limit < 1:
		filter.Limit = 1
	case filter.Limit > MaxFeedLimit:
		filter.Limit = MaxFeedLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return filter
}

// GetFeed returns one page of the global feed, newest first.
func (s *postService) GetFeed(ctx context.Context, filter domain.FeedFilter) ([]*domain.FeedPost, error) {
	posts, err := s.posts.GetFeed(ctx, NormalizeFeedFilter(filter))
	if err != nil {
		return nil, domain.NewStorageError("failed to get feed", err)
	}
	return posts, nil
}

// CreatePost validates and stores a post authored by authorID and returns it in feed shape.
func (s *postService) CreatePost(ctx context.Context, req domain.CreatePostRequest, authorID uint) (*domain.FeedPost, error) {
	caption := strings.TrimSpace(req.Caption)
	imageURL := strings.TrimSpace(req.ImageURL)
	videoURL := strings.TrimSpace(req.VideoURL)

	if caption == "" && imageURL == "" && videoURL == "" {
		return nil, domain.NewValidationError(domain.MsgPostEmpty)
	}
	if imageURL != "" && !util.IsValidMediaURL(imageURL) {
		return nil, domain.NewValidationError(domain.MsgInvalidImageURL)
	}
	if videoURL != "" && !util.IsValidMediaURL(videoURL) {
		return nil, domain.NewValidationError(domain.MsgInvalidVideoURL)
	}

	post := &domain.Post{
		UserID:   authorID,
		ImageURL: nullable(imageURL),
		VideoURL: nullable(videoURL),
		Caption:  nullable(caption),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, domain.NewStorageError("failed to create post", err)
	}
	created, err := s.posts.GetFeedPost(ctx, post.ID, authorID)
	if err != nil {
		return nil, domain.NewStorageError("failed to load created post", err)
	}
	s.log.Debugf("user %d created post %d", authorID, post.ID)
	return created, nil
}

// DeletePost removes a post owned by userID together with its likes.
func (s *postService) DeletePost(ctx context.Context, id, userID uint) error {
	if id == 0 {
		return domain.NewValidationError(domain.MsgPostIDRequired)
	}
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return domain.NewNotFoundError(domain.MsgPostNotFound)
		}
		return domain.NewStorageError("failed to get post", err)
	}
	if post.UserID != userID {
		return domain.NewAuthorizationError(domain.MsgDeleteNotOwner)
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		// lost a race with another delete of the same post
		if errors.Is(err, domain.ErrPostNotFound) {
			return domain.NewNotFoundError(domain.MsgPostNotFound)
		}
		return domain.NewStorageError("failed to delete post", err)
	}
	return nil
}

// ToggleLike flips the viewer's like on a post and reports the new state.
func (s *postService) ToggleLike(ctx context.Context, postID, userID uint) (*domain.LikeState, error) {
	if postID == 0 {
		return nil, domain.NewValidationError(domain.MsgPostIDRequired)
	}
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, domain.NewNotFoundError(domain.MsgPostNotFound)
		}
		return nil, domain.NewStorageError("failed to get post", err)
	}
	state, err := s.likes.Toggle(ctx, postID, userID)
	if err != nil {
		return nil, domain.NewStorageError("failed to toggle like", err)
	}
	return state, nil
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
