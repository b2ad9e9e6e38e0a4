package router_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/Sheddybata/sdp.app/internal/admin"
	"github.com/Sheddybata/sdp.app/internal/config"
	"github.com/Sheddybata/sdp.app/internal/enrollment"
	"github.com/Sheddybata/sdp.app/internal/geo"
	"github.com/Sheddybata/sdp.app/internal/router"
	"github.com/Sheddybata/sdp.app/internal/shared/database"
	"github.com/Sheddybata/sdp.app/internal/shared/metrics"
	"github.com/Sheddybata/sdp.app/internal/shared/middleware"
	"github.com/Sheddybata/sdp.app/internal/shared/testutil"
	"github.com/Sheddybata/sdp.app/internal/verification"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()

	cfg := testutil.NewTestConfig()
	engine := testutil.SetupTestRouter()
	err := router.Setup(engine, cfg, router.Infra{
		DB:      &database.DB{DB: testutil.SetupTestDB(t)},
		Geo:     geo.Sample(),
		Metrics: metrics.NewNop(),
	})
	require.NoError(t, err)
	return engine, cfg
}

func enrollmentForm() enrollment.Form {
	return enrollment.Form{
		Title:                   "Chief",
		Surname:                 "Okonkwo",
		FirstName:               "Chidi",
		Phone:                   "0803 123 4567",
		DateOfBirth:             "1990-05-04",
		State:                   "lagos",
		LGA:                     "ikeja",
		Ward:                    "w99",
		VoterRegistrationNumber: "ABCD EFGH IJ12 3456 7890",
		AgreedToConstitution:    true,
	}
}

func TestAdminGate(t *testing.T) {
	app, cfg := setupApp(t)
	session := testutil.AdminSessionCookie(cfg)

	tests := []struct {
		name     string
		path     string
		cookies  []*http.Cookie
		code     int
		location string
	}{
		{"dashboard without session", "/admin", nil, http.StatusFound, middleware.AdminLoginPath},
		{"members without session", "/admin/members", nil, http.StatusFound, middleware.AdminLoginPath},
		{"export with forged session", "/admin/members/export.csv", []*http.Cookie{{Name: middleware.SessionCookieName, Value: "Zm9yZ2Vk"}}, http.StatusFound, middleware.AdminLoginPath},
		{"login page without session", "/admin/login", nil, http.StatusOK, ""},
		{"login page with session", "/admin/login", []*http.Cookie{session}, http.StatusFound, middleware.AdminHomePath},
		{"members with session", "/admin/members", []*http.Cookie{session}, http.StatusOK, ""},
		{"dashboard with session", "/admin", []*http.Cookie{session}, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.ExecuteRequest(t, app, testutil.TestRequest{Method: http.MethodGet, URL: tt.path, Cookies: tt.cookies})

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

func TestEnrollVerifyAndExport(t *testing.T) {
	app, cfg := setupApp(t)

	rec := testutil.ExecuteRequest(t, app, testutil.TestRequest{Method: http.MethodPost, URL: "/enroll/new", Body: enrollmentForm()})
	require.Equal(t, http.StatusCreated, rec.Code)
	var enrolled enrollment.Enrollment
	testutil.ParseResponse(t, rec, &enrolled)
	assert.Equal(t, "SDP-OKO-567890", enrolled.Card.MembershipID)
	require.NotEmpty(t, enrolled.Card.Token)

	// The same voter ID cannot enroll twice.
	rec = testutil.ExecuteRequest(t, app, testutil.TestRequest{Method: http.MethodPost, URL: "/enroll/new", Body: enrollmentForm()})
	assert.Equal(t, http.StatusConflict, rec.Code)

	for _, req := range []testutil.TestRequest{
		{Method: http.MethodPost, URL: "/enroll/verify/membership-id", Body: verification.MembershipIDRequest{MembershipID: "sdp-oko-567890"}},
		{Method: http.MethodPost, URL: "/enroll/verify/voter-id", Body: verification.VoterIDRequest{VoterID: "abcdefghij1234567890"}},
		{Method: http.MethodPost, URL: "/enroll/verify/card", Body: verification.CardRequest{CardToken: enrolled.Card.Token}},
	} {
		rec = testutil.ExecuteRequest(t, app, req)
		require.Equal(t, http.StatusOK, rec.Code, req.URL)
		var result verification.Result
		testutil.ParseResponse(t, rec, &result)
		assert.True(t, result.Found, req.URL)
	}

	rec = testutil.ExecuteRequest(t, app, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/admin/members/export.csv",
		Cookies: []*http.Cookie{testutil.AdminSessionCookie(cfg)},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	lines := strings.Split(rec.Body.String(), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"Okonkwo","Chidi"`)
	assert.Contains(t, lines[1], `"Lagos","Ikeja","Anifowoshe"`)
}

func TestDashboardNamesSignedInAdmin(t *testing.T) {
	app, cfg := setupApp(t)

	rec := testutil.ExecuteRequest(t, app, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/admin/dashboard",
		Cookies: []*http.Cookie{testutil.AdminSessionCookie(cfg)},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var d admin.Dashboard
	testutil.ParseResponse(t, rec, &d)
	assert.Equal(t, testutil.TestAdminEmail, d.SignedInAs)
}

func TestHealthAndMetrics(t *testing.T) {
	app, _ := setupApp(t)

	rec := testutil.ExecuteRequest(t, app, testutil.TestRequest{Method: http.MethodGet, URL: "/health"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = testutil.ExecuteRequest(t, app, testutil.TestRequest{Method: http.MethodGet, URL: "/metrics"})
	assert.Equal(t, http.StatusOK, rec.Code)
}
