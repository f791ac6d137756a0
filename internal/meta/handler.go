package meta

import (
	"net/http"
	"time"

	"github.com/funfun03/form-showcase/internal/config"
	"github.com/gin-gonic/gin"
)

// Handler handles meta endpoints (health check)
type Handler struct {
	cfg     *config.Config
	started time.Time
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		cfg:     cfg,
		started: time.Now(),
	}
}

// Health reports liveness. The service has no backing stores to probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"service": gin.H{
			"name":        h.cfg.App.Name,
			"environment": h.cfg.App.Env,
			"port":        h.cfg.App.Port,
		},
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}
