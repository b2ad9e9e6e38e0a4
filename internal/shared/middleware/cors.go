package middleware

import (
	"time"

	"github.com/Sheddybata/sdp.app/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}

	// A wildcard origin cannot be combined with credentials; echo the origin instead.
	if len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		if corsConfig.AllowCredentials {
			corsConfig.AllowOriginFunc = func(string) bool { return true }
		} else {
			corsConfig.AllowAllOrigins = true
		}
	}

	return cors.New(corsConfig)
}
