package auth

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=72"`
}

// ClientInfo identifies the caller for lockout and audit logging.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// Session is an issued admin session token.
type Session struct {
	Token  string
	MaxAge time.Duration
}

type LoginResponse struct {
	OK bool `json:"ok"`
}
