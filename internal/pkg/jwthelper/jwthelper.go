package jwthelper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bombsimon/team-betting-client/internal/domain"
)

var ErrTokenExpired = errors.New("token has expired")

// Claims mirrors what the betting API signs into its tokens.
type Claims struct {
	jwt.RegisteredClaims

	ID    int    `json:"id"`
	Email string `json:"email"`
	Image string `json:"image"`
}

// BetterFromToken extracts the better identity carried in a session token.
// The signature is the server's concern; the client only mirrors identity, so
// the token is parsed without verification.
func BetterFromToken(tokenString string) (*domain.Better, error) {
	claims := &Claims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("parser.ParseUnverified -> %w", err)
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, ErrTokenExpired
	}

	return &domain.Better{
		ID:        claims.ID,
		Name:      claims.Subject,
		Email:     claims.Email,
		Image:     claims.Image,
		Confirmed: true,
	}, nil
}
