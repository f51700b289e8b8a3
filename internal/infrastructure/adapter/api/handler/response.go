package handler

import (
	domainerr "github.com/Akilan7123/DreamPixel/internal/domain/error"
	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/api/dto"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError writes the error body and records err on the context.
// Server-side failures are logged here; client errors are left to the request log.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status, body := dto.NewErrorResponse(err)
	if status >= 500 {
		fields := domainerr.Fields(err)
		fields["path"] = c.Request.URL.Path
		fields["request_id"] = middleware.RequestID(c)
		logger.Error("Request failed", fields)
	}
	_ = c.Error(err)
	c.JSON(status, body)
}

// bindJSON decodes the body; malformed JSON is an invalid request
func bindJSON(c *gin.Context, logger coreport.Logger, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		logger.Debug("Invalid request body", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		respondError(c, logger, domainerr.ErrInvalidRequest)
		return false
	}
	return true
}

// currentUser returns the id placed on the context by the auth middleware
func currentUser(c *gin.Context, logger coreport.Logger) (uuid.UUID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		respondError(c, logger, domainerr.ErrUnauthorized)
		return uuid.Nil, false
	}
	return id, true
}
