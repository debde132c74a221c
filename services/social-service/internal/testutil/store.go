// Package testutil provides in-memory implementations of the domain repositories.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"seungpyo.lee/SocialFeed/services/social-service/internal/domain"
)

type likeKey struct {
	postID uint
	userID uint
}

// Store keeps users, sessions, posts and likes in maps guarded by one mutex.
// Setting Err makes every repository call fail with it.
type Store struct {
	mu       sync.Mutex
	users    map[uint]*domain.User
	sessions map[string]*domain.Session
	posts    map[uint]*domain.Post
	likes    map[likeKey]time.Time
	nextUser uint
	nextPost uint

	Err error
}

func NewStore() *Store {
	return &Store{
		users:    map[uint]*domain.User{},
		sessions: map[string]*domain.Session{},
		posts:    map[uint]*domain.Post{},
		likes:    map[likeKey]time.Time{},
	}
}

func (s *Store) Users() domain.UserRepository       { return userRepo{s} }
func (s *Store) Sessions() domain.SessionRepository { return sessionRepo{s} }
func (s *Store) Posts() domain.PostRepository       { return postRepo{s} }
func (s *Store) Likes() domain.LikeRepository       { return likeRepo{s} }

// Session returns a copy of the stored session, if any.
func (s *Store) Session(id string) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, false
	}
	return *session, true
}

// SessionCount reports how many session rows exist.
func (s *Store) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// LikeCount reports how many likes a post has.
func (s *Store) LikeCount(postID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLikes(postID)
}

// DeleteUser drops a user row without touching its sessions, leaving them dangling.
func (s *Store) DeleteUser(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

// AddPost stores a post directly, bypassing validation. It returns the assigned id.
func (s *Store) AddPost(post domain.Post) uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPost++
	post.ID = s.nextPost
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	s.posts[post.ID] = &post
	return post.ID
}

func (s *Store) countLikes(postID uint) int {
	n := 0
	for k := range s.likes {
		if k.postID == postID {
			n++
		}
	}
	return n
}

func (s *Store) feedPost(p *domain.Post, viewerID uint) *domain.FeedPost {
	fp := &domain.FeedPost{
		ID:        p.ID,
		UserID:    p.UserID,
		ImageURL:  p.ImageURL,
		VideoURL:  p.VideoURL,
		Caption:   p.Caption,
		CreatedAt: p.CreatedAt,
		LikeCount: int64(s.countLikes(p.ID)),
	}
	_, fp.UserLiked = s.likes[likeKey{p.ID, viewerID}]
	if u, ok := s.users[p.UserID]; ok {
		fp.Username = u.Username
		fp.ProfilePic = u.ProfilePic
	}
	return fp
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.s.nextUser++
	user.ID = r.s.nextUser
	if user.ProfilePic == "" {
		user.ProfilePic = domain.DefaultProfilePic
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	stored := *user
	r.s.users[user.ID] = &stored
	return nil
}

func (r userRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, u := range r.s.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r userRepo) GetByID(_ context.Context, id uint) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := *u
	found.PasswordHash = ""
	return &found, nil
}

func (r userRepo) List(_ context.Context, limit int) ([]*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	users := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		listed := *u
		listed.PasswordHash = ""
		users = append(users, &listed)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (r userRepo) SetOnlineStatus(_ context.Context, id uint, online bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if u, ok := r.s.users[id]; ok {
		u.OnlineStatus = online
	}
	return nil
}

type sessionRepo struct{ s *Store }

func (r sessionRepo) Create(_ context.Context, session *domain.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, exists := r.s.sessions[session.SessionID]; exists {
		return fmt.Errorf("duplicate session id %s", session.SessionID)
	}
	stored := *session
	r.s.sessions[session.SessionID] = &stored
	return nil
}

func (r sessionRepo) GetByID(_ context.Context, sessionID string) (*domain.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	session, ok := r.s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	found := *session
	return &found, nil
}

func (r sessionRepo) Delete(_ context.Context, sessionID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	delete(r.s.sessions, sessionID)
	return nil
}

type postRepo struct{ s *Store }

func (r postRepo) Create(_ context.Context, post *domain.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	r.s.nextPost++
	post.ID = r.s.nextPost
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	stored := *post
	r.s.posts[post.ID] = &stored
	return nil
}

func (r postRepo) GetByID(_ context.Context, id uint) (*domain.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	p, ok := r.s.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	found := *p
	return &found, nil
}

func (r postRepo) GetFeed(_ context.Context, filter domain.FeedFilter) ([]*domain.FeedPost, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	all := make([]*domain.Post, 0, len(r.s.posts))
	for _, p := range r.s.posts {
		if _, ok := r.s.users[p.UserID]; ok {
			all = append(all, p)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	feed := make([]*domain.FeedPost, 0, filter.Limit)
	for i := filter.Offset; i < len(all) && len(feed) < filter.Limit; i++ {
		feed = append(feed, r.s.feedPost(all[i], filter.ViewerID))
	}
	return feed, nil
}

func (r postRepo) GetFeedPost(_ context.Context, id, viewerID uint) (*domain.FeedPost, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	p, ok := r.s.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return r.s.feedPost(p, viewerID), nil
}

func (r postRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	for k := range r.s.likes {
		if k.postID == id {
			delete(r.s.likes, k)
		}
	}
	delete(r.s.posts, id)
	return nil
}

type likeRepo struct{ s *Store }

func (r likeRepo) Toggle(_ context.Context, postID, userID uint) (*domain.LikeState, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	key := likeKey{postID, userID}
	state := &domain.LikeState{}
	if _, ok := r.s.likes[key]; ok {
		delete(r.s.likes, key)
	} else {
		r.s.likes[key] = time.Now()
		state.Liked = true
	}
	state.LikeCount = int64(r.s.countLikes(postID))
	return state, nil
}
