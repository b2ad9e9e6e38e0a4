package meta_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Sheddybata/sdp.app/internal/geo"
	"github.com/Sheddybata/sdp.app/internal/meta"
	"github.com/Sheddybata/sdp.app/internal/shared/database"
	"github.com/Sheddybata/sdp.app/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct{ err error }

func (s stubChecker) HealthCheck(context.Context) error { return s.err }

type healthResponse struct {
	Status string                    `json:"status"`
	Checks map[string]map[string]any `json:"checks"`
}

func health(t *testing.T, h *meta.Handler) (int, healthResponse) {
	t.Helper()
	router := testutil.SetupTestRouter()
	router.GET("/health", h.Health)

	rec := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/health"})
	var resp healthResponse
	testutil.ParseResponse(t, rec, &resp)
	return rec.Code, resp
}

func TestHealth_Healthy(t *testing.T) {
	db := &database.DB{DB: testutil.SetupTestDB(t)}

	code, resp := health(t, meta.NewHandler(testutil.NewTestConfig(), db, nil, geo.Sample()))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "up", resp.Checks["database"]["status"])
	assert.Equal(t, geo.SourceSample, resp.Checks["geography"]["source"])
	assert.NotContains(t, resp.Checks, "redis")
}

func TestHealth_DatabaseDown(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	testutil.CloseTestDB(t, gdb)

	code, resp := health(t, meta.NewHandler(testutil.NewTestConfig(), &database.DB{DB: gdb}, nil, nil))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "down", resp.Checks["database"]["status"])
}

func TestHealth_RedisDownIsDegraded(t *testing.T) {
	code, resp := health(t, meta.NewHandler(testutil.NewTestConfig(), stubChecker{}, stubChecker{err: errors.New("connection refused")}, nil))

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "down", resp.Checks["redis"]["status"])
	assert.Equal(t, "connection refused", resp.Checks["redis"]["error"])
}
