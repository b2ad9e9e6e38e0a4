package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sheddybata/sdp.app/internal/auth"
	"github.com/Sheddybata/sdp.app/internal/config"
	sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"
	"github.com/Sheddybata/sdp.app/internal/shared/metrics"
	"github.com/Sheddybata/sdp.app/internal/shared/middleware"
	"github.com/Sheddybata/sdp.app/internal/shared/testutil"
	"github.com/Sheddybata/sdp.app/internal/shared/token"
	"github.com/gin-gonic/gin"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	router   *gin.Engine
	cfg      *config.Config
	sessions *token.SessionManager
	metrics  *metrics.Metrics
}

// setupAuth builds a router with login and logout. An empty passwordHash
// selects the default admin password.
func setupAuth(t *testing.T, passwordHash string) authFixture {
	t.Helper()

	cfg := testutil.NewTestConfig()
	cfg.Admin.PasswordHash = passwordHash
	sessions := token.NewSessionManager(cfg)
	m := metrics.NewNop()
	lockout := auth.NewLockout(auth.NewMemoryLockoutStore(), cfg.Lockout.MaxAttempts, cfg.Lockout.Window)
	h := auth.NewAuthHandler(auth.NewAuthService(cfg, sessions, lockout, m), false)

	router := testutil.SetupTestRouter()
	router.POST("/admin/login", h.Login)
	router.POST("/admin/logout", h.Logout)
	return authFixture{router: router, cfg: cfg, sessions: sessions, metrics: m}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func login(t *testing.T, f authFixture, email, password, ip string) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.ExecuteRequest(t, f.router, testutil.TestRequest{
		Method:  http.MethodPost,
		URL:     "/admin/login",
		Body:    auth.LoginRequest{Email: email, Password: password},
		Headers: map[string]string{"X-Forwarded-For": ip, "User-Agent": "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"},
	})
}

func TestLogin_Success(t *testing.T) {
	f := setupAuth(t, hashPassword(t, testutil.TestAdminPassword))

	rec := login(t, f, "  ADMIN@sdp.org ", testutil.TestAdminPassword, "10.0.0.1")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp auth.LoginResponse
	testutil.ParseResponse(t, rec, &resp)
	assert.True(t, resp.OK)

	cookie := testutil.ResponseCookie(rec, middleware.SessionCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)
	assert.Equal(t, "/", cookie.Path)
	assert.NoError(t, f.sessions.Verify(cookie.Value))
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.LoginAttemptsTotal.WithLabelValues(metrics.OutcomeSuccess)))
}

func TestLogin_InvalidCredentialsShareOneMessage(t *testing.T) {
	f := setupAuth(t, hashPassword(t, testutil.TestAdminPassword))

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", testutil.TestAdminEmail, "not-the-password"},
		{"unknown email", "someone@sdp.org", testutil.TestAdminPassword},
		{"default password with hash configured", testutil.TestAdminEmail, config.DefaultAdminPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := login(t, f, tt.email, tt.password, "10.0.0.1")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			var errResp sharedError.ErrorResponse
			testutil.ParseResponse(t, rec, &errResp)
			assert.Equal(t, "AUTH-001", errResp.Code)
			assert.Equal(t, "Invalid email or password", errResp.Message)
			assert.Nil(t, testutil.ResponseCookie(rec, middleware.SessionCookieName))
		})
	}
}

func TestLogin_DefaultPassword(t *testing.T) {
	f := setupAuth(t, "")

	rec := login(t, f, testutil.TestAdminEmail, " admin123 ", "10.0.0.1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = login(t, f, testutil.TestAdminEmail, "admin1234", "10.0.0.1")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	f := setupAuth(t, "")

	rec := testutil.ExecuteRequest(t, f.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/admin/login",
		Body:   map[string]string{"email": testutil.TestAdminEmail},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp sharedError.ErrorResponse
	testutil.ParseResponse(t, rec, &errResp)
	assert.Equal(t, sharedError.ValidationFailed.Code, errResp.Code)
}

func TestLogin_LockoutAfterRepeatedFailures(t *testing.T) {
	f := setupAuth(t, hashPassword(t, testutil.TestAdminPassword))

	for i := 0; i < f.cfg.Lockout.MaxAttempts; i++ {
		rec := login(t, f, testutil.TestAdminEmail, "guess", "10.0.0.9")
		require.Equal(t, http.StatusUnauthorized, rec.Code, "attempt %d", i+1)
	}

	// Even the right password is refused while locked.
	rec := login(t, f, testutil.TestAdminEmail, testutil.TestAdminPassword, "10.0.0.9")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "900", rec.Header().Get("Retry-After"))
	var errResp sharedError.ErrorResponse
	testutil.ParseResponse(t, rec, &errResp)
	assert.Equal(t, "AUTH-002", errResp.Code)
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.LoginAttemptsTotal.WithLabelValues(metrics.OutcomeLocked)))

	// Other clients are unaffected.
	rec = login(t, f, testutil.TestAdminEmail, testutil.TestAdminPassword, "10.0.0.10")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_SuccessClearsFailures(t *testing.T) {
	f := setupAuth(t, hashPassword(t, testutil.TestAdminPassword))
	fail := func() {
		for i := 0; i < f.cfg.Lockout.MaxAttempts-1; i++ {
			login(t, f, testutil.TestAdminEmail, "guess", "10.0.0.3")
		}
	}

	fail()
	require.Equal(t, http.StatusOK, login(t, f, testutil.TestAdminEmail, testutil.TestAdminPassword, "10.0.0.3").Code)
	fail()
	assert.Equal(t, http.StatusOK, login(t, f, testutil.TestAdminEmail, testutil.TestAdminPassword, "10.0.0.3").Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	f := setupAuth(t, "")

	rec := testutil.ExecuteRequest(t, f.router, testutil.TestRequest{
		Method:  http.MethodPost,
		URL:     "/admin/logout",
		Cookies: []*http.Cookie{testutil.AdminSessionCookie(f.cfg)},
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	cookie := testutil.ResponseCookie(rec, middleware.SessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
