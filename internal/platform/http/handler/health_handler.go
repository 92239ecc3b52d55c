// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// readyTimeout bounds all readiness checks together.
const readyTimeout = 2 * time.Second

// Health handles /healthz. It only reports that the process serves HTTP;
// HEAD gets the status line without a body.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	if c.Request.Method == http.MethodHead {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Check is one dependency pinged by Ready.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// Ready returns the /readyz handler. It answers 503 and names the failing
// dependency when any check fails.
func Ready(checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()

		status := gin.H{}
		healthy := true
		for _, chk := range checks {
			if err := chk.Ping(ctx); err != nil {
				slog.Warn("readiness check failed", "check", chk.Name, "error", err)
				status[chk.Name] = "unavailable"
				healthy = false
				continue
			}
			status[chk.Name] = "ok"
		}

		if !healthy {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "checks": status})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": status})
	}
}
