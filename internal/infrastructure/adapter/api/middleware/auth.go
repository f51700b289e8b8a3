package middleware

import (
	"strings"

	domainerr "github.com/Akilan7123/DreamPixel/internal/domain/error"
	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/usecase"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// TokenHeader is the header the web client sends its session token in
	TokenHeader = "token"
	userIDKey   = "user_id"
)

// UserID returns the authenticated user id set by Auth
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// tokenFromRequest reads the token header, falling back to a bearer Authorization header
func tokenFromRequest(c *gin.Context) string {
	if token := strings.TrimSpace(c.GetHeader(TokenHeader)); token != "" {
		return token
	}
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// Auth resolves the session token to a user id or aborts with 401
func Auth(users usecase.UserUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(dto.NewErrorResponse(domainerr.ErrUnauthorized))
			return
		}

		userID, err := users.CurrentUser(c.Request.Context(), token)
		if err != nil {
			logger.Info("Rejected session token", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": RequestID(c),
				"reason":     domainerr.Reason(err),
			})
			c.AbortWithStatusJSON(dto.NewErrorResponse(err))
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}
