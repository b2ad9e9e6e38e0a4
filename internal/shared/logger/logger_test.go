package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionIsJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "production")

	l.Debug("hidden")
	l.Info("enrolled", "state", "lagos")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "enrolled", entry["msg"])
	assert.Equal(t, "lagos", entry["state"])
}

func TestNew_LocalIsTextAtDebug(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "local").Debug("visible")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestWith_AccumulatesRequestFields(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, "test").With("request_id", "req-1"))
	ctx = With(ctx, "admin", "a***@sdp.org")

	FromContext(ctx).Info("member deleted")

	assert.Contains(t, buf.String(), "request_id=req-1")
	assert.Contains(t, buf.String(), "admin=a***@sdp.org")
}

func TestFromContext_Default(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestRedactSQL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{
			`SELECT * FROM "members" WHERE voter_registration_number = 'ABCDEFGHIJ1234567890' LIMIT 1`,
			`SELECT * FROM "members" WHERE voter_registration_number = '***' LIMIT 1`,
		},
		{
			`INSERT INTO "members" ("surname","phone") VALUES ('O''Neil','0803 123 4567')`,
			`INSERT INTO "members" ("surname","phone") VALUES ('***','***')`,
		},
		{`SELECT count(*) FROM "events"`, `SELECT count(*) FROM "events"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RedactSQL(tt.in))
	}
}
