package bootstrap

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/Sheddybata/sdp.app/internal/config"
	"github.com/Sheddybata/sdp.app/internal/shared/metrics"
	"github.com/Sheddybata/sdp.app/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap handles the engine setup shared by every route group.
type Bootstrap struct {
	cfg     *config.Config
	metrics *metrics.Metrics
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config, m *metrics.Metrics) *Bootstrap {
	return &Bootstrap{
		cfg:     cfg,
		metrics: m,
	}
}

// SetupEngine creates a gin engine with the common middleware chain.
func (b *Bootstrap) SetupEngine() *gin.Engine {
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Request logging goes through slog.
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	engine := gin.New()

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout))
	engine.Use(middleware.Metrics(b.metrics))
	engine.Use(middleware.LoggerMiddleware())

	return engine
}

func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	slog.Error("panic recovered",
		"error", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error", "request_id": middleware.GetRequestID(c),
	})
}
