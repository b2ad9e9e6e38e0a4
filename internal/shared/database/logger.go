package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sheddybata/sdp.app/internal/config"
	"github.com/Sheddybata/sdp.app/internal/shared/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// GormLogger writes GORM events through the request logger found in the
// query context, so SQL lines share the request_id of the HTTP call that
// issued them. Statements are logged with string literals redacted.
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormlogger.LogLevel
	// ShowSQL adds the redacted statement to successful query lines.
	ShowSQL bool
}

func newLogger(cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Info
	if cfg.IsProduction() {
		level = gormlogger.Warn
	}

	return &GormLogger{
		SlowThreshold: slowQueryThreshold,
		LogLevel:      level,
		ShowSQL:       !cfg.IsProduction(),
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.LogLevel = level
	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.LogLevel >= gormlogger.Info {
		l.from(ctx).InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.LogLevel >= gormlogger.Warn {
		l.from(ctx).WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.LogLevel >= gormlogger.Error {
		l.from(ctx).ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

// Trace logs failed and slow statements at every level above Silent and
// successful ones at debug when LogLevel is Info. Not-found lookups and
// unique violations are expected outcomes (verification misses and
// duplicate enrollments) and are left to the calling service to report.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	log := l.from(ctx)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !IsUniqueViolation(err) && l.LogLevel >= gormlogger.Error:
		log.ErrorContext(ctx, "database query failed",
			"error", err,
			"elapsed", elapsed.String(),
			"sql", logger.RedactSQL(sql),
		)

	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.LogLevel >= gormlogger.Warn:
		log.WarnContext(ctx, "slow database query",
			"elapsed", elapsed.String(),
			"threshold", l.SlowThreshold.String(),
			"rows", rows,
			"sql", logger.RedactSQL(sql),
		)

	case l.LogLevel >= gormlogger.Info:
		fields := []any{"elapsed", elapsed.String(), "rows", rows}
		if l.ShowSQL {
			fields = append(fields, "sql", logger.RedactSQL(sql))
		}
		log.DebugContext(ctx, "database query", fields...)
	}
}

func (l *GormLogger) from(ctx context.Context) *slog.Logger {
	return logger.FromContext(ctx).With("component", "gorm")
}
