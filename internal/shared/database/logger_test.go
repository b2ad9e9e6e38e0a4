package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Sheddybata/sdp.app/internal/shared/logger"
)

const memberLookup = `SELECT * FROM "members" WHERE voter_registration_number = 'ABCDEFGHIJ1234567890'`

func traceInto(l *GormLogger, begin time.Time, err error) string {
	var buf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).With("request_id", "req-7")
	ctx := logger.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, begin, func() (string, int64) { return memberLookup, 1 }, err)
	return buf.String()
}

func TestGormLogger_ErrorCarriesRequestIDAndRedactsSQL(t *testing.T) {
	l := &GormLogger{LogLevel: gormlogger.Warn}

	out := traceInto(l, time.Now(), errors.New("connection reset"))

	assert.Contains(t, out, "database query failed")
	assert.Contains(t, out, "request_id=req-7")
	assert.Contains(t, out, "component=gorm")
	assert.Contains(t, out, "'***'")
	assert.NotContains(t, out, "ABCDEFGHIJ1234567890")
}

func TestGormLogger_ExpectedOutcomesAreQuiet(t *testing.T) {
	l := &GormLogger{LogLevel: gormlogger.Warn}

	assert.Empty(t, traceInto(l, time.Now(), gorm.ErrRecordNotFound))
	assert.Empty(t, traceInto(l, time.Now(), gorm.ErrDuplicatedKey))
	assert.Empty(t, traceInto(l, time.Now(), nil))
}

func TestGormLogger_SlowQuery(t *testing.T) {
	l := &GormLogger{LogLevel: gormlogger.Warn, SlowThreshold: time.Millisecond}

	out := traceInto(l, time.Now().Add(-time.Second), nil)

	assert.Contains(t, out, "slow database query")
	assert.NotContains(t, out, "ABCDEFGHIJ1234567890")
}

func TestGormLogger_InfoShowsSQLOnlyWhenEnabled(t *testing.T) {
	hidden := traceInto(&GormLogger{LogLevel: gormlogger.Info}, time.Now(), nil)
	shown := traceInto(&GormLogger{LogLevel: gormlogger.Info, ShowSQL: true}, time.Now(), nil)

	assert.Contains(t, hidden, "database query")
	assert.NotContains(t, hidden, "sql=")
	assert.Contains(t, shown, "sql=")
	assert.NotContains(t, shown, "ABCDEFGHIJ1234567890")
}

func TestGormLogger_Silent(t *testing.T) {
	l := (&GormLogger{LogLevel: gormlogger.Info}).LogMode(gormlogger.Silent).(*GormLogger)

	assert.Empty(t, traceInto(l, time.Now(), errors.New("boom")))
}
