package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/SocialFeed/pkg/logger"
	sessionmw "seungpyo.lee/SocialFeed/pkg/middleware"
	"seungpyo.lee/SocialFeed/services/social-service/internal/domain"
	"seungpyo.lee/SocialFeed/services/social-service/internal/middleware"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Auth   *AuthHandler
	Posts  *PostHandler
	Users  *UserHandler
	Health *HealthHandler
}

// actionRoute is one entry of a ?action= table: the only method it accepts and its handler chain.
type actionRoute struct {
	method   string
	handlers []gin.HandlerFunc
}

// NewRouter builds the engine serving both path routes and the ?action= form.
func NewRouter(h Handlers, sessions sessionmw.SessionResolver, allowedOrigin string, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.Recovery(log),
		middleware.RequestLogger(log),
		middleware.CORS(allowedOrigin),
		middleware.ErrorHandler(log),
	)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		_ = c.Error(domain.NewMethodNotAllowedError())
	})

	requireAuth := sessionmw.SessionAuth(sessions, true, domain.MsgNotAuthenticated)
	optionalAuth := sessionmw.SessionAuth(sessions, false, domain.MsgNotAuthenticated)
	requirePosts := sessionmw.SessionAuth(sessions, true, domain.MsgPostsUnauthorized)

	r.GET("/health", h.Health.Health)
	r.GET("/api/diagnose", h.Health.Diagnose)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", requireAuth, h.Auth.Logout)
		auth.GET("/check", optionalAuth, h.Auth.Check)
	}
	r.Any("/api/auth", dispatch(map[string]actionRoute{
		"register": {http.MethodPost, []gin.HandlerFunc{h.Auth.Register}},
		"login":    {http.MethodPost, []gin.HandlerFunc{h.Auth.Login}},
		"logout":   {http.MethodPost, []gin.HandlerFunc{requireAuth, h.Auth.Logout}},
		"check":    {http.MethodGet, []gin.HandlerFunc{optionalAuth, h.Auth.Check}},
	}, ""))

	posts := r.Group("/api/posts", requirePosts)
	{
		posts.GET("/feed", h.Posts.Feed)
		posts.POST("/create", h.Posts.Create)
		posts.DELETE("/delete", h.Posts.Delete)
		posts.POST("/like", h.Posts.Like)
		posts.DELETE("/:id", h.Posts.Delete)
		posts.POST("/:id/like", h.Posts.Like)
	}
	// the whole legacy posts endpoint is session-only, checked before the action
	r.Any("/api/posts", requirePosts, dispatch(map[string]actionRoute{
		"feed":   {http.MethodGet, []gin.HandlerFunc{h.Posts.Feed}},
		"create": {http.MethodPost, []gin.HandlerFunc{h.Posts.Create}},
		"delete": {http.MethodDelete, []gin.HandlerFunc{h.Posts.Delete}},
		"like":   {http.MethodPost, []gin.HandlerFunc{h.Posts.Like}},
	}, "feed"))

	users := r.Group("/api/users", requireAuth)
	{
		users.GET("", h.Users.List)
		users.GET("/:id", h.Users.Get)
	}
	return r
}

// dispatch serves an endpoint whose operation is chosen by the action query parameter.
// Handlers in a route run in order until one aborts; it must be the last handler of its gin chain.
func dispatch(routes map[string]actionRoute, defaultAction string) gin.HandlerFunc {
	return func(c *gin.Context) {
		action := c.DefaultQuery("action", defaultAction)
		route, ok := routes[action]
		if !ok {
			_ = c.Error(domain.NewValidationError(domain.MsgInvalidAction))
			return
		}
		if c.Request.Method != route.method {
			_ = c.Error(domain.NewMethodNotAllowedError())
			return
		}
		for _, handle := range route.handlers {
			handle(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
