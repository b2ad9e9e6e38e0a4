package auth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Sheddybata/sdp.app/internal/shared/handler"
	"github.com/Sheddybata/sdp.app/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  *AuthService
	cookieSecure bool
}

func NewAuthHandler(authService *AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieSecure: cookieSecure,
	}
}

// Login handles POST /admin/login.
func (a *AuthHandler) Login(c *gin.Context) {
	var request LoginRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	client := ClientInfo{IP: c.ClientIP(), UserAgent: c.Request.UserAgent()}
	session, err := a.authService.Login(c.Request.Context(), &request, client)
	if err != nil {
		if errors.Is(err, ErrTooManyAttempts) {
			c.Header("Retry-After", strconv.Itoa(int(a.authService.lockout.Window().Seconds())))
		}
		handler.RespondDomainError(c, err)
		return
	}

	middleware.SetSessionCookie(c, session.Token, int(session.MaxAge.Seconds()), a.cookieSecure)
	c.JSON(http.StatusOK, LoginResponse{OK: true})
}

// Logout handles POST /admin/logout.
func (a *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, a.cookieSecure)
	c.Status(http.StatusNoContent)
}

// LoginPage handles GET /admin/login for clients without a valid session.
// Authenticated clients never reach it; the session gate redirects them.
func (a *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, LoginResponse{OK: false})
}
