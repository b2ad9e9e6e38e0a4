package token

import (
	"errors"
	"time"

	"github.com/Sheddybata/sdp.app/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("token: invalid token")
	ErrExpiredToken  = errors.New("token: expired token")
	ErrInvalidClaims = errors.New("token: invalid claims")
)

// CardClaims identify the member a card was issued to.
type CardClaims struct {
	MembershipID string `json:"membership_id"`
	jwt.RegisteredClaims
}

// CardManager signs and validates member card tokens.
type CardManager interface {
	Issue(memberID, membershipID string) (string, error)
	Validate(tokenString string) (*CardClaims, error)
}

type JWTCardManager struct {
	secret []byte
	issuer string
	expiry time.Duration
	now    func() time.Time
}

func NewJWTCardManager(cfg *config.Config) *JWTCardManager {
	return &JWTCardManager{
		secret: []byte(cfg.Card.Secret),
		issuer: cfg.App.Name,
		expiry: cfg.Card.Expiry,
		now:    time.Now,
	}
}

func (m *JWTCardManager) Issue(memberID, membershipID string) (string, error) {
	now := m.now()

	claims := CardClaims{
		MembershipID: membershipID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   memberID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTCardManager) Validate(tokenString string) (*CardClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &CardClaims{}, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*CardClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.MembershipID == "" || claims.Subject == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

var _ CardManager = (*JWTCardManager)(nil)
