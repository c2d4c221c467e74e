// Package token issues and verifies the bearer tokens handed out at sign-in.
package token

import (
	"errors"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is what a verified token says about its bearer.
type Claims struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Verifier checks a token issued by the matching issuer.
type Verifier interface {
	Verify(tokenStr string) (*Claims, error)
}
