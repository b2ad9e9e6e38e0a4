package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultAdminEmail is used when ADMIN_EMAIL is unset.
	DefaultAdminEmail = "admin@sdp.org"
	// DefaultAdminPassword is accepted only while ADMIN_PASSWORD_HASH is unset.
	DefaultAdminPassword = "admin123"
	// DefaultSessionSecret must be replaced outside local/dev environments.
	DefaultSessionSecret = "change-this-secret-in-production-please-32+"
	// SessionMaxAge is fixed; the admin cookie and token share it.
	SessionMaxAge = 7 * 24 * time.Hour
)

const (
	DriverOracle   = "oracle"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Card     CardConfig
	Redis    RedisConfig
	Lockout  LockoutConfig
	Geo      GeoConfig
	CORS     CORSConfig
	Server   ServerConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port int
}

type DatabaseConfig struct {
	Driver          string // oracle | postgres | sqlite
	Host            string
	Port            int
	Service         string // Oracle service name or Postgres database name
	User            string
	Password        string
	SSLMode         string
	Path            string // sqlite file path
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	IsAutoMigrate   bool // true: drop and recreate tables (blocked in production)
}

type AdminConfig struct {
	Email         string
	PasswordHash  string
	SessionSecret string
	SessionMaxAge time.Duration
	CookieSecure  bool
}

type CardConfig struct {
	Secret string
	Expiry time.Duration
}

type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LockoutConfig struct {
	MaxAttempts int
	Window      time.Duration
}

type GeoConfig struct {
	DataFile string
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	GracefulTimeout time.Duration
}

func Load(env string) (*Config, error) {
	if err := loadEnvFile(env); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	sessionSecret := strings.TrimSpace(getEnv("SESSION_SECRET", DefaultSessionSecret))

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "sdp-member-portal"),
			Env:  env,
			Port: getEnvAsInt("APP_PORT", 8080),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverOracle)),
			Host:            getEnv("DB_HOST", ""),
			Port:            getEnvAsInt("DB_PORT", 1521),
			Service:         getEnv("DB_SERVICE", ""),
			User:            getEnv("DB_USER", ""),
			Password:        getEnv("DB_PASSWORD", ""),
			SSLMode:         getEnv("DB_SSLMODE", "require"),
			Path:            getEnv("DB_PATH", "sdp.db"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "1h"),
			ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", "10m"),
			IsAutoMigrate:   getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Admin: AdminConfig{
			Email: strings.TrimSpace(getEnv("ADMIN_EMAIL", DefaultAdminEmail)),
			// Hashes pasted through shell-escaped .env files arrive as \$2a\$...
			PasswordHash:  strings.TrimSpace(strings.ReplaceAll(getEnv("ADMIN_PASSWORD_HASH", ""), `\$`, "$")),
			SessionSecret: sessionSecret,
			SessionMaxAge: SessionMaxAge,
			CookieSecure:  getEnvAsBool("ADMIN_COOKIE_SECURE", env == "prod" || env == "production"),
		},
		Card: CardConfig{
			Secret: getEnv("CARD_TOKEN_SECRET", sessionSecret),
			Expiry: getEnvAsDuration("CARD_TOKEN_EXPIRY", "43800h"),
		},
		Redis: RedisConfig{
			URL:          getEnv("REDIS_URL", ""),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getEnvAsDuration("REDIS_DIAL_TIMEOUT", "5s"),
			ReadTimeout:  getEnvAsDuration("REDIS_READ_TIMEOUT", "3s"),
			WriteTimeout: getEnvAsDuration("REDIS_WRITE_TIMEOUT", "3s"),
		},
		Lockout: LockoutConfig{
			MaxAttempts: getEnvAsInt("LOGIN_MAX_ATTEMPTS", 5),
			Window:      getEnvAsDuration("LOGIN_LOCKOUT_WINDOW", "15m"),
		},
		Geo: GeoConfig{
			DataFile: getEnv("GEO_DATA_FILE", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 86400),
		},
		Server: ServerConfig{
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", "15s"),
			IdleTimeout:     getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
			GracefulTimeout: getEnvAsDuration("GRACEFUL_TIMEOUT", "30s"),
		},
	}

	if cfg.Database.Driver == DriverPostgres && !isSet("DB_PORT") {
		cfg.Database.Port = 5432
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate environment: %w", err)
	}

	if cfg.UsesDefaultPassword() {
		slog.Warn("ADMIN_PASSWORD_HASH is not set; the default admin password is active")
	}

	return cfg, nil
}

func loadEnvFile(env string) error {
	envFile := fmt.Sprintf(".env.%s", env)

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		slog.Warn("env file not found, using process environment", "file", envFile)
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("load env file %s: %w", envFile, err)
	}

	absPath, _ := filepath.Abs(envFile)
	slog.Info("env file loaded", "file", absPath)
	return nil
}

func (c *Config) Validate() error {
	var errors []string

	// App validation
	if c.App.Port < 1 || c.App.Port > 65535 {
		errors = append(errors, "invalid port number")
	}

	// Database validation
	switch c.Database.Driver {
	case DriverOracle, DriverPostgres:
		if c.Database.Host == "" {
			errors = append(errors, "DB_HOST is required")
		}
		if c.Database.Service == "" {
			errors = append(errors, "DB_SERVICE is required")
		}
		if c.Database.User == "" {
			errors = append(errors, "DB_USER is required")
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			errors = append(errors, "DB_PATH is required")
		}
	default:
		errors = append(errors, fmt.Sprintf("unsupported DB_DRIVER %q", c.Database.Driver))
	}

	// Admin validation
	if c.Admin.Email == "" {
		errors = append(errors, "ADMIN_EMAIL is required")
	}
	if strings.Contains(c.Admin.Email, ":") {
		errors = append(errors, "ADMIN_EMAIL must not contain ':'")
	}
	if len(c.Admin.SessionSecret) < 32 {
		errors = append(errors, "SESSION_SECRET must be at least 32 characters")
	}
	if len(c.Card.Secret) < 32 {
		errors = append(errors, "CARD_TOKEN_SECRET must be at least 32 characters")
	}

	if c.IsProduction() {
		if c.Admin.SessionSecret == DefaultSessionSecret {
			errors = append(errors, "SESSION_SECRET must be changed in production")
		}
		if c.Admin.PasswordHash == "" {
			errors = append(errors, "ADMIN_PASSWORD_HASH is required in production")
		}
	}

	if c.Lockout.MaxAttempts < 1 {
		errors = append(errors, "LOGIN_MAX_ATTEMPTS must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, ", "))
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "local" || c.App.Env == "dev"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "prod" || c.App.Env == "production"
}

// UsesDefaultPassword reports whether login falls back to DefaultAdminPassword.
func (c *Config) UsesDefaultPassword() bool {
	return c.Admin.PasswordHash == ""
}

// Helper functions
func isSet(key string) bool {
	_, exists := os.LookupEnv(key)
	return exists
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	if defaultDuration, err := time.ParseDuration(defaultValue); err == nil {
		return defaultDuration
	}
	return 0
}
