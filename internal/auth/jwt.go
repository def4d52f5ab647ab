package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/Greenhouse_Go/internal/domain"
)

// BearerPrefix precedes the token in the Authorization header
const BearerPrefix = "Bearer "

// Claims is the JWT payload; AccountID is the opaque account reference
type Claims struct {
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for the account, valid for ttl
func GenerateToken(accountID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a token string and returns its claims
func ParseToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if strings.TrimSpace(claims.AccountID) == "" {
		return nil, errors.New("token has no account_id")
	}
	return claims, nil
}

// Authenticator resolves an Authorization header to an account reference
type Authenticator struct {
	secret string
}

// NewAuthenticator creates an authenticator for tokens signed with secret
func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: secret}
}

// Authenticate returns the account id carried by a "Bearer <jwt>" header.
// Every failure wraps domain.ErrUnauthenticated.
func (a *Authenticator) Authenticate(header string) (string, error) {
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", fmt.Errorf("%w: missing bearer token", domain.ErrUnauthenticated)
	}
	claims, err := ParseToken(strings.TrimPrefix(header, BearerPrefix), a.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	return claims.AccountID, nil
}

type contextKey struct{}

// WithAccountID stores the authenticated account in ctx
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, contextKey{}, accountID)
}

// AccountIDFromContext returns the authenticated account, if any
func AccountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}
