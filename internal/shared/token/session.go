package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Sheddybata/sdp.app/internal/config"
)

var (
	ErrMalformedSession = errors.New("token: malformed session token")
	ErrBadSignature     = errors.New("token: session signature mismatch")
	ErrSessionExpired   = errors.New("token: session expired")
	ErrWrongSubject     = errors.New("token: session subject is not the admin")
)

// Allowed clock skew for tokens stamped slightly in the future.
const maxFutureSkew = time.Minute

// signaturesEqual compares MACs in constant time.
var signaturesEqual = hmac.Equal

// SessionManager issues and verifies admin session tokens of the form
// base64("email:issuedAtMillis:hex(HMAC-SHA256(secret, email:issuedAtMillis))").
type SessionManager struct {
	secret []byte
	email  string
	maxAge time.Duration
	now    func() time.Time
}

func NewSessionManager(cfg *config.Config) *SessionManager {
	return &SessionManager{
		secret: []byte(cfg.Admin.SessionSecret),
		email:  cfg.Admin.Email,
		maxAge: cfg.Admin.SessionMaxAge,
		now:    time.Now,
	}
}

// WithClock returns a copy of m that reads time from now.
func (m *SessionManager) WithClock(now func() time.Time) *SessionManager {
	cp := *m
	cp.now = now
	return &cp
}

// MaxAge is the lifetime of an issued token.
func (m *SessionManager) MaxAge() time.Duration {
	return m.maxAge
}

// Issue returns a token for the configured admin email.
func (m *SessionManager) Issue() string {
	payload := m.email + ":" + strconv.FormatInt(m.now().UnixMilli(), 10)
	return base64.StdEncoding.EncodeToString([]byte(payload + ":" + m.sign(payload)))
}

// Verify checks format, signature, subject and age of a token.
func (m *SessionManager) Verify(token string) error {
	if token == "" {
		return ErrMalformedSession
	}

	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSession, err)
	}

	parts := strings.Split(string(decoded), ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return ErrMalformedSession
	}
	email, issuedRaw, sigHex := parts[0], parts[1], parts[2]

	got, err := hex.DecodeString(sigHex)
	if err != nil {
		return ErrBadSignature
	}
	want, _ := hex.DecodeString(m.sign(email + ":" + issuedRaw))
	if !signaturesEqual(got, want) {
		return ErrBadSignature
	}

	if !strings.EqualFold(strings.TrimSpace(email), strings.TrimSpace(m.email)) {
		return ErrWrongSubject
	}

	issuedMillis, err := strconv.ParseInt(issuedRaw, 10, 64)
	if err != nil {
		return ErrMalformedSession
	}
	age := m.now().Sub(time.UnixMilli(issuedMillis))
	if age > m.maxAge || age < -maxFutureSkew {
		return ErrSessionExpired
	}

	return nil
}

func (m *SessionManager) sign(payload string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
