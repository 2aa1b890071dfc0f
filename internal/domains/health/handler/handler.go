package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/pkg/logger"
)

const checkTimeout = 2 * time.Second

// Pinger reports whether one dependency is reachable.
type Pinger func(ctx context.Context) error

// Check is a named dependency ping. A failing critical check turns the response into 503.
type Check struct {
	Name     string
	Critical bool
	Ping     Pinger
}

type HealthHandler struct {
	version string
	checks  []Check
	now     func() time.Time
}

func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{version: version, checks: checks, now: time.Now}
}

// Check handles GET /api/health
func (h *HealthHandler) Check(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	services := make(gin.H, len(h.checks))

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
		err := check.Ping(ctx)
		cancel()

		if err == nil {
			services[check.Name] = "ok"
			continue
		}

		logger.Warn("health check failed", err, map[string]interface{}{"service": check.Name})
		services[check.Name] = "unavailable"
		status = "degraded"
		if check.Critical {
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, gin.H{
		"status":    status,
		"version":   h.version,
		"timestamp": h.now().UTC().Format(time.RFC3339),
		"services":  services,
	})
}
