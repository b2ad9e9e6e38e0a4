package token

import (
	"testing"
	"time"

	"github.com/Sheddybata/sdp.app/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCardManager() *JWTCardManager {
	return NewJWTCardManager(&config.Config{
		App:  config.AppConfig{Name: "sdp-member-portal"},
		Card: config.CardConfig{Secret: "card-secret-key-must-be-at-least-32-chars", Expiry: 43800 * time.Hour},
	})
}

func TestCardManager_IssueAndValidate(t *testing.T) {
	m := newTestCardManager()

	tok, err := m.Issue("0b9f0d8e-5f6a-4bb8-9a57-7a0b1b9e2f10", "SDP-OKO-567890")
	require.NoError(t, err)

	claims, err := m.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, "SDP-OKO-567890", claims.MembershipID)
	assert.Equal(t, "0b9f0d8e-5f6a-4bb8-9a57-7a0b1b9e2f10", claims.Subject)
	assert.Equal(t, "sdp-member-portal", claims.Issuer)
}

func TestCardManager_Expired(t *testing.T) {
	m := newTestCardManager()
	m.now = func() time.Time { return time.Now().Add(-50000 * time.Hour) }
	tok, err := m.Issue("id", "SDP-OKO-567890")
	require.NoError(t, err)

	_, err = newTestCardManager().Validate(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestCardManager_RejectsForeignTokens(t *testing.T) {
	m := newTestCardManager()

	_, err := m.Validate("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewJWTCardManager(&config.Config{
		App:  config.AppConfig{Name: "sdp-member-portal"},
		Card: config.CardConfig{Secret: "a-different-secret-of-at-least-32-chars", Expiry: time.Hour},
	})
	tok, err := other.Issue("id", "SDP-OKO-567890")
	require.NoError(t, err)
	_, err = m.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, CardClaims{MembershipID: "SDP-OKO-567890"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Validate(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCardManager_MissingClaims(t *testing.T) {
	m := newTestCardManager()

	tok, err := m.Issue("", "SDP-OKO-567890")
	require.NoError(t, err)

	_, err = m.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}
