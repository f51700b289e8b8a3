package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/api/dto"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// Pinger is implemented by both store backends
type Pinger interface {
	Ping(ctx context.Context) error
}

// PoolReporter is implemented by stores backed by a connection pool
type PoolReporter interface {
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthHandler reports liveness and store reachability
type HealthHandler struct {
	store   Pinger
	logger  coreport.Logger
	timeout time.Duration
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(store Pinger, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger, timeout: 2 * time.Second}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}

	resp := dto.HealthResponse{Status: "ok", Database: "ok"}
	if reporter, ok := h.store.(PoolReporter); ok {
		m := reporter.PoolMetrics()
		resp.Pool = &dto.PoolView{
			Open:      m.OpenConnections,
			InUse:     m.InUse,
			Idle:      m.IdleConnections,
			MaxOpen:   m.MaxOpenConnections,
			WaitCount: m.WaitCount,
		}
	}
	c.JSON(http.StatusOK, resp)
}
