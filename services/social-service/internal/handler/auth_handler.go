package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/SocialFeed/pkg/middleware"
	"seungpyo.lee/SocialFeed/pkg/util"
	"seungpyo.lee/SocialFeed/services/social-service/internal/domain"
	"seungpyo.lee/SocialFeed/services/social-service/internal/model"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	Service       domain.AuthService
	RememberMeTTL time.Duration // Max-Age of remember-me cookies
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service domain.AuthService, rememberMeTTL time.Duration) *AuthHandler {
	return &AuthHandler{Service: service, RememberMeTTL: rememberMeTTL}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	middleware.SetSessionCookie(c, res.Session.SessionID, 0)
	c.JSON(http.StatusCreated, model.AuthResponse{
		Success:   true,
		Message:   "Account created successfully",
		User:      res.User,
		SessionID: res.Session.SessionID,
	})
}

// Login handles POST /api/auth/login. An unreadable body counts as bad credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(&domain.Error{Kind: domain.KindAuth, Message: domain.MsgInvalidCredentials, Err: err})
		return
	}
	res, err := h.Service.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var maxAge time.Duration
	if res.Session.RememberMe {
		maxAge = h.RememberMeTTL
	}
	middleware.SetSessionCookie(c, res.Session.SessionID, maxAge)
	c.JSON(http.StatusOK, model.AuthResponse{
		Success:   true,
		Message:   "Login successful",
		User:      res.User,
		SessionID: res.Session.SessionID,
	})
}

// Logout handles POST /api/auth/logout. Requires a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, _ := util.GetUserID(c)
	sessionID, _ := util.GetSessionID(c)
	if err := h.Service.Logout(c.Request.Context(), userID, sessionID); err != nil {
		_ = c.Error(err)
		return
	}
	middleware.ClearSessionCookie(c)
	c.JSON(http.StatusOK, model.MessageResponse{Success: true, Message: "Logout successful"})
}

// Check handles GET /api/auth/check. The session is optional.
func (h *AuthHandler) Check(c *gin.Context) {
	sessionID, ok := util.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusOK, model.CheckResponse{})
		return
	}
	user, err := h.Service.Check(c.Request.Context(), sessionID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.CheckResponse{Authenticated: user != nil, User: user})
}

// bindJSON decodes the request body into dst, pushing a validation error on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(&domain.Error{Kind: domain.KindValidation, Message: domain.MsgInvalidRequestBody, Err: err})
		return false
	}
	return true
}
