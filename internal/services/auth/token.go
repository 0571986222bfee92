package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tenpinclub/rollbook/internal/dependencies/clock"
	"github.com/tenpinclub/rollbook/internal/model"
)

// ErrInvalidToken covers every token failure: malformed, forged, or expired.
// Callers treat them all the same — "unauthenticated" — so no finer
// distinction is surfaced.
var ErrInvalidToken = errors.New("invalid or expired token")

// DefaultTokenTTL is how long an issued session token stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims is the identity a session token carries.
type Claims struct {
	ID   int        `json:"id"`
	Name string     `json:"name"`
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewTokenService creates a token service signing with the given secret.
// A zero ttl falls back to DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration, clk clock.Clock) *TokenService {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clk,
	}
}

// Issue signs a token carrying the user's id, name and role.
func (t *TokenService) Issue(user *model.User) (string, error) {
	now := t.clock.Now()
	claims := Claims{
		ID:   user.ID,
		Name: user.Name,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify decodes and validates a token. Any failure — bad signature, bad
// encoding, expiry — yields ErrInvalidToken.
func (t *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(token *jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.clock.Now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
