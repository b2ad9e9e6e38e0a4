package testutil

import (
	"net/http"

	"github.com/Sheddybata/sdp.app/internal/config"
	"github.com/Sheddybata/sdp.app/internal/shared/middleware"
	"github.com/Sheddybata/sdp.app/internal/shared/token"
)

// AdminSessionCookie returns a valid admin session cookie for cfg.
func AdminSessionCookie(cfg *config.Config) *http.Cookie {
	return &http.Cookie{
		Name:  middleware.SessionCookieName,
		Value: token.NewSessionManager(cfg).Issue(),
	}
}
