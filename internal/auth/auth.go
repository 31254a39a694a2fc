// internal/auth/auth.go
//
// Package auth implements the optional bearer-token gate on the websocket
// endpoint. Tokens are HS256 JWTs; the subject is an opaque caller label
// used only for logging. When no secret is configured the gate is off and
// every connection is accepted.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Gate verifies connection tokens.
type Gate struct {
	secret []byte
}

// NewGate returns a gate signing and verifying with the given secret.
func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// CreateToken issues a token for a caller, valid for the given duration.
func (g *Gate) CreateToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks a token and returns its subject.
func (g *Gate) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return g.secret, nil
		})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Subject, nil
}
