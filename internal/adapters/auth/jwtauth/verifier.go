package jwtauth

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"pet-parade/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier implementa auth.AuthVerifier validando tokens emitidos por Signer.
type Verifier struct {
	signer *Signer
}

func NewVerifier(signer *Signer) *Verifier {
	return &Verifier{signer: signer}
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if v == nil || !v.signer.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.signer.now),
		jwt.WithExpirationRequired(),
	}
	if v.signer.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.signer.issuer))
	}

	var tc tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &tc, func(*jwt.Token) (any, error) {
		return v.signer.secret, nil
	}, opts...)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(tc.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return auth.Claims{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return auth.Claims{
		UserID: userID,
		Email:  tc.Email,
		Roles:  tc.Roles,
	}, nil
}
