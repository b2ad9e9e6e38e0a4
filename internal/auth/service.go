package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Sheddybata/sdp.app/internal/config"
	"github.com/Sheddybata/sdp.app/internal/shared/logger"
	"github.com/Sheddybata/sdp.app/internal/shared/metrics"
	"github.com/Sheddybata/sdp.app/internal/shared/token"
	"github.com/mssola/useragent"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	adminEmail   string
	passwordHash string
	sessions     *token.SessionManager
	lockout      *Lockout
	metrics      *metrics.Metrics
}

func NewAuthService(cfg *config.Config, sessions *token.SessionManager, lockout *Lockout, m *metrics.Metrics) *AuthService {
	return &AuthService{
		adminEmail:   strings.ToLower(strings.TrimSpace(cfg.Admin.Email)),
		passwordHash: cfg.Admin.PasswordHash,
		sessions:     sessions,
		lockout:      lockout,
		metrics:      m,
	}
}

// Login checks the admin credentials and issues a session. Every credential
// failure returns ErrInvalidCredentials; a client with too many recent
// failures gets ErrTooManyAttempts without the credentials being checked.
func (a *AuthService) Login(ctx context.Context, request *LoginRequest, client ClientInfo) (*Session, error) {
	log := logger.FromContext(ctx).With(clientAttrs(client)...)
	email := strings.ToLower(strings.TrimSpace(request.Email))

	// Lockout store failures fail open: a Redis outage must not lock the admin out.
	locked, err := a.lockout.Locked(ctx, client.IP)
	if err != nil {
		log.Warn("login lockout check failed", "error", err)
	}
	if locked {
		a.metrics.IncrementLoginAttempt(metrics.OutcomeLocked)
		log.Warn("login blocked - too many failures", "email", logger.MaskEmail(email))
		return nil, fmt.Errorf("login: %w", ErrTooManyAttempts)
	}

	if !a.checkCredentials(email, strings.TrimSpace(request.Password)) {
		failures, err := a.lockout.Fail(ctx, client.IP)
		if err != nil {
			log.Warn("record login failure failed", "error", err)
		}
		a.metrics.IncrementLoginAttempt(metrics.OutcomeInvalid)
		log.Warn("login failed - invalid credentials", "email", logger.MaskEmail(email), "failures", failures)
		return nil, fmt.Errorf("login: %w", ErrInvalidCredentials)
	}

	if err := a.lockout.Reset(ctx, client.IP); err != nil {
		log.Warn("clear login failures failed", "error", err)
	}
	a.metrics.IncrementLoginAttempt(metrics.OutcomeSuccess)
	log.Info("admin logged in", "email", logger.MaskEmail(email))

	return &Session{Token: a.sessions.Issue(), MaxAge: a.sessions.MaxAge()}, nil
}

func (a *AuthService) checkCredentials(email, password string) bool {
	if email != a.adminEmail {
		return false
	}
	if a.passwordHash == "" {
		return subtle.ConstantTimeCompare([]byte(password), []byte(config.DefaultAdminPassword)) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
}

func clientAttrs(client ClientInfo) []any {
	ua := useragent.New(client.UserAgent)
	browser, version := ua.Browser()
	return []any{
		slog.String("client_ip", client.IP),
		slog.Group("user_agent",
			slog.String("browser", browser),
			slog.String("version", version),
			slog.String("os", ua.OS()),
			slog.Bool("mobile", ua.Mobile()),
			slog.Bool("bot", ua.Bot()),
		),
	}
}
