package logger

import (
	"io"
	"log/slog"
	"os"
	"regexp"
)

// New builds the portal logger for env: JSON at info level in production,
// text at debug level for local and dev, text at info level otherwise.
func New(w io.Writer, env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: LevelFor(env)}

	var handler slog.Handler
	switch env {
	case "production", "prod":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// LevelFor returns the minimum level logged in env.
func LevelFor(env string) slog.Level {
	switch env {
	case "local", "dev", "development":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Setup installs New(os.Stdout, env) as the process-wide default logger.
func Setup(env string) {
	slog.SetDefault(New(os.Stdout, env))
	slog.Info("logger initialised", "env", env, "level", LevelFor(env).String())
}

var sqlStringLiteral = regexp.MustCompile(`'(?:[^']|'')*'`)

// RedactSQL replaces every quoted literal in a rendered statement. Member rows
// carry voter IDs, phone numbers and emails, which never reach the logs.
func RedactSQL(sql string) string {
	return sqlStringLiteral.ReplaceAllString(sql, "'***'")
}
