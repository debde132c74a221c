package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/SocialFeed/pkg/logger"
	"seungpyo.lee/SocialFeed/services/social-service/internal/domain"
)

// ErrorHandler renders the last error pushed with c.Error as {"error": message}.
// Storage failures and untyped errors are logged and answered with a generic 500.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status, msg := http.StatusInternalServerError, domain.MsgInternalServerError

		var e *domain.Error
		if errors.As(err, &e) && e.Kind != domain.KindStorage {
			status, msg = e.Kind.HTTPStatus(), e.Message
		} else {
			log.Errorf("request %s >> %s %s failed: %v", RequestID(c), c.Request.Method, c.Request.URL.Path, err)
		}
		if c.Writer.Written() {
			return
		}
		c.JSON(status, gin.H{"error": msg})
	}
}

// Recovery turns a panic into the same 500 body the error handler produces.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Errorf("request %s >> panic: %v", RequestID(c), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": domain.MsgInternalServerError})
	})
}
