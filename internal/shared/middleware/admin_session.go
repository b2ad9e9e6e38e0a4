package middleware

import (
	"net/http"
	"strings"

	sharedContext "github.com/Sheddybata/sdp.app/internal/shared/context"
	"github.com/Sheddybata/sdp.app/internal/shared/logger"
	"github.com/Sheddybata/sdp.app/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName = "admin_session"
	AdminHomePath     = "/admin"
	AdminLoginPath    = "/admin/login"
)

// SessionVerifier validates admin session tokens.
type SessionVerifier interface {
	Verify(token string) error
}

// AdminSession gates /admin routes. Requests without a valid session are
// redirected to the login page; any request to the login page from an
// already authenticated admin is redirected to the dashboard.
func AdminSession(sessions SessionVerifier, adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		isLogin := path == AdminLoginPath || strings.HasPrefix(path, AdminLoginPath+"/")

		cookie, _ := c.Cookie(SessionCookieName)
		err := token.ErrMalformedSession
		if cookie != "" {
			err = sessions.Verify(cookie)
		}

		if isLogin {
			if err == nil {
				c.Redirect(http.StatusFound, AdminHomePath)
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if err != nil {
			if cookie != "" {
				logger.FromContext(c.Request.Context()).Warn("admin session rejected",
					"reason", err.Error(),
					"path", path,
					"client_ip", c.ClientIP(),
				)
				ClearSessionCookie(c, false)
			}
			c.Redirect(http.StatusFound, AdminLoginPath)
			c.Abort()
			return
		}

		sharedContext.SetAdmin(c, adminEmail)
		c.Request = c.Request.WithContext(logger.With(c.Request.Context(), "admin", logger.MaskEmail(adminEmail)))
		c.Next()
	}
}

// SetSessionCookie writes the admin session cookie (HttpOnly, SameSite=Lax).
func SetSessionCookie(c *gin.Context, value string, maxAgeSeconds int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, value, maxAgeSeconds, "/", "", secure, true)
}

// ClearSessionCookie expires the admin session cookie.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
