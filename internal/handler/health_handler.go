package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/channel-lens/channel-analyzer-go/internal/cache"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	pool          *pgxpool.Pool
	responseCache *cache.Cache
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(pool *pgxpool.Pool, responseCache *cache.Cache) *HealthHandler {
	return &HealthHandler{
		pool:          pool,
		responseCache: responseCache,
	}
}

// Root serves the API banner at GET /api/.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "YouTube Channel Analyzer API",
	})
}

// LivenessProbe checks if the application is running.
func (h *HealthHandler) LivenessProbe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "UP",
		"time":   time.Now(),
	})
}

// ReadinessProbe checks if the application is ready to serve traffic.
func (h *HealthHandler) ReadinessProbe(c *gin.Context) {
	ctx := c.Request.Context()

	if h.pool != nil {
		if err := h.pool.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "DOWN",
				"database": "unhealthy",
				"error":    err.Error(),
				"time":     time.Now(),
			})
			return
		}
	}

	cacheStatus := "disabled"
	if h.responseCache.Enabled() {
		if err := h.responseCache.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "DOWN",
				"cache":  "unhealthy",
				"error":  err.Error(),
				"time":   time.Now(),
			})
			return
		}
		cacheStatus = "healthy"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "UP",
		"database": "healthy",
		"cache":    cacheStatus,
		"time":     time.Now(),
	})
}
