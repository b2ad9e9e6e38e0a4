package meta

import (
	"context"
	"net/http"
	"time"

	"github.com/Sheddybata/sdp.app/internal/config"
	"github.com/Sheddybata/sdp.app/internal/geo"
	"github.com/Sheddybata/sdp.app/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// HealthChecker is a dependency that can report its own health.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler handles meta endpoints (health check).
type Handler struct {
	cfg   *config.Config
	db    HealthChecker
	redis HealthChecker
	geo   *geo.Dataset
}

// NewHandler creates a new meta handler. redis may be nil when no Redis is configured.
func NewHandler(cfg *config.Config, db HealthChecker, redis HealthChecker, dataset *geo.Dataset) *Handler {
	return &Handler{
		cfg:   cfg,
		db:    db,
		redis: redis,
		geo:   dataset,
	}
}

// Health checks service, database and Redis health. Only the database is
// required; a Redis failure degrades the report without failing it.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := gin.H{"database": h.check(ctx, "database", h.db)}
	status, code := "healthy", http.StatusOK
	if checks["database"].(gin.H)["status"] != "up" {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	if h.redis != nil {
		redis := h.check(ctx, "redis", h.redis)
		checks["redis"] = redis
		if redis["status"] != "up" && code == http.StatusOK {
			status = "degraded"
		}
	}

	if h.geo != nil {
		checks["geography"] = gin.H{
			"status": "up",
			"source": h.geo.Source(),
			"states": len(h.geo.States()),
		}
	}

	c.JSON(code, gin.H{
		"status": status,
		"service": gin.H{
			"name":        h.cfg.App.Name,
			"environment": h.cfg.App.Env,
		},
		"checks": checks,
	})
}

func (h *Handler) check(ctx context.Context, name string, dep HealthChecker) gin.H {
	start := time.Now()
	if err := dep.HealthCheck(ctx); err != nil {
		logger.FromContext(ctx).Error("health check failed", "dependency", name, "error", err)
		return gin.H{"status": "down", "error": err.Error()}
	}
	return gin.H{"status": "up", "latency_ms": time.Since(start).Milliseconds()}
}
