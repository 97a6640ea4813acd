package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	startTime time.Time
	registry  Registry
}

func NewHealthHandler(reg Registry) *HealthHandler {
	return &HealthHandler{startTime: time.Now(), registry: reg}
}

// Health returns the health status and uptime of the API.
//
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"uptime":    time.Since(h.startTime).String(),
		"time":      time.Now().UTC().Format(time.RFC3339),
		"locale":    h.registry.Locale(),
		"providers": len(h.registry.ListProviders()),
	})
}
