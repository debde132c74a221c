package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/SocialFeed/pkg/util"
	"seungpyo.lee/SocialFeed/services/social-service/internal/domain"
	"seungpyo.lee/SocialFeed/services/social-service/internal/model"
	"seungpyo.lee/SocialFeed/services/social-service/internal/service"
)

type PostHandler struct {
	Service domain.PostService
}

func NewPostHandler(service domain.PostService) *PostHandler {
	return &PostHandler{Service: service}
}

// Feed handles GET /api/posts/feed?limit=&offset=.
func (h *PostHandler) Feed(c *gin.Context) {
	userID, _ := util.GetUserID(c)
	filter := domain.FeedFilter{
		ViewerID: userID,
		Limit:    queryInt(c, "limit", service.DefaultFeedLimit),
		Offset:   queryInt(c, "offset", 0),
	}
	posts, err := h.Service.GetFeed(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if posts == nil {
		posts = []*domain.FeedPost{}
	}
	c.JSON(http.StatusOK, model.FeedResponse{Posts: posts})
}

// Create handles POST /api/posts/create.
func (h *PostHandler) Create(c *gin.Context) {
	var req domain.CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, _ := util.GetUserID(c)
	post, err := h.Service.CreatePost(c.Request.Context(), req, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, model.PostResponse{Post: post})
}

// Delete handles DELETE /api/posts/delete?id= and DELETE /api/posts/:id.
func (h *PostHandler) Delete(c *gin.Context) {
	userID, _ := util.GetUserID(c)
	if err := h.Service.DeletePost(c.Request.Context(), postID(c), userID); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Post deleted successfully"})
}

// Like handles POST /api/posts/like?id= and POST /api/posts/:id/like.
func (h *PostHandler) Like(c *gin.Context) {
	userID, _ := util.GetUserID(c)
	state, err := h.Service.ToggleLike(c.Request.Context(), postID(c), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// postID reads the post id from the path or the id query parameter. Unusable values yield 0.
func postID(c *gin.Context) uint {
	raw := c.Param("id")
	if raw == "" {
		raw = c.Query("id")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// queryInt parses an integer query parameter, falling back to def when absent or malformed.
func queryInt(c *gin.Context, key string, def int) int {
	raw, ok := c.GetQuery(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
