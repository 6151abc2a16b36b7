// Package auth holds the token, PIN hashing and OTP primitives.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrMissingToken   = errors.New("authorization token required")
	ErrWrongTokenType = errors.New("wrong token type")
)

// TokenType separates short-lived access tokens from refresh tokens.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims are the JWT claims issued for a user. The subject is the user id.
type Claims struct {
	Type TokenType `json:"type"`
	jwt.RegisteredClaims
}

// UserID parses the subject back into a user id.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return id, nil
}

// TokenManager signs and validates HS256 tokens.
type TokenManager struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenManager creates a token manager. secretKey must not be empty in production.
func NewTokenManager(secretKey string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// GenerateAccess issues an access token for userID.
func (m *TokenManager) GenerateAccess(userID int64) (string, error) {
	return m.generate(userID, AccessToken, m.accessTTL)
}

// GenerateRefresh issues a refresh token for userID.
func (m *TokenManager) GenerateRefresh(userID int64) (string, error) {
	return m.generate(userID, RefreshToken, m.refreshTTL)
}

func (m *TokenManager) generate(userID int64, typ TokenType, ttl time.Duration) (string, error) {
	now := m.now()
	claims := &Claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Validate parses tokenString and checks it is of the expected type.
func (m *TokenManager) Validate(tokenString string, want TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != want {
		return nil, fmt.Errorf("%w: expected %s token", ErrWrongTokenType, want)
	}
	return claims, nil
}
