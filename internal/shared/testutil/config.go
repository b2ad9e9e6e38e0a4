package testutil

import (
	"time"

	"github.com/Sheddybata/sdp.app/internal/config"
)

const (
	TestAdminEmail    = "admin@sdp.org"
	TestAdminPassword = "correct-horse-battery"
)

// NewTestConfig creates a test configuration
// This removes the need for environment variables during testing
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name: "sdp-member-portal-test",
			Env:  "test",
			Port: 8080,
		},
		Database: config.DatabaseConfig{
			Driver:          config.DriverSQLite,
			Path:            ":memory:",
			MaxIdleConns:    1,
			MaxOpenConns:    1,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 10 * time.Minute,
		},
		Admin: config.AdminConfig{
			Email:         TestAdminEmail,
			SessionSecret: "test-session-secret-key-must-be-at-least-32-chars",
			SessionMaxAge: config.SessionMaxAge,
		},
		Card: config.CardConfig{
			Secret: "test-card-secret-key-must-be-at-least-32-characters",
			Expiry: 43800 * time.Hour,
		},
		Lockout: config.LockoutConfig{
			MaxAttempts: 5,
			Window:      15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			GracefulTimeout: 30 * time.Second,
		},
	}
}
