package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/usecase"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	redis      *redis.Client
	analysisUC usecase.AnalysisUsecase
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(redis *redis.Client, analysisUC usecase.AnalysisUsecase) *HealthHandler {
	return &HealthHandler{
		redis:      redis,
		analysisUC: analysisUC,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	// Check Redis
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			components["redis"] = "error: " + err.Error()
			healthy = false
		} else {
			components["redis"] = "ok"
		}
	} else {
		components["redis"] = "not configured"
	}

	// The classifier is constructed lazily; not having loaded it yet is
	// a normal state, not a failure
	if h.analysisUC != nil && h.analysisUC.ModelLoaded() {
		components["classifier"] = "loaded"
	} else {
		components["classifier"] = "not loaded"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
