package jwtauth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"pet-parade/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNotConfigured = errors.New("jwt signer not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

const DefaultTTL = 24 * time.Hour

// Config del emisor/verificador de JWT.
// Secret normalmente viene de JWT_SECRET.
type Config struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// tokenClaims es el payload firmado. sub lleva el id numérico del usuario.
type tokenClaims struct {
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Signer emite tokens HS256. Implementa auth.TokenIssuer.
type Signer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewSigner(cfg Config) *Signer {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Signer{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		issuer: strings.TrimSpace(cfg.Issuer),
		now:    time.Now,
	}
}

func (s *Signer) IsConfigured() bool {
	return s != nil && len(s.secret) > 0
}

func (s *Signer) Issue(_ context.Context, c auth.Claims) (string, error) {
	if !s.IsConfigured() {
		return "", ErrNotConfigured
	}
	if c.UserID <= 0 {
		return "", errors.New("jwt: user id required")
	}

	now := s.now()
	claims := tokenClaims{
		Email: strings.TrimSpace(c.Email),
		Roles: c.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(c.UserID, 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
