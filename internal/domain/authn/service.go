package authn

import (
	"context"
	"fmt"

	"pet-parade/internal/domain/users"
	"pet-parade/internal/ports/auth"
)

// AuthResponse es lo único que ve el cliente tras autenticarse.
type AuthResponse struct {
	JWT string `json:"jwt"`
}

// CredentialVerifier es el subconjunto de users.Service que usa este módulo.
type CredentialVerifier interface {
	VerifyCredentials(ctx context.Context, email, password string) (users.User, error)
}

type Service struct {
	users  CredentialVerifier
	issuer auth.TokenIssuer
}

func NewService(u CredentialVerifier, issuer auth.TokenIssuer) *Service {
	return &Service{users: u, issuer: issuer}
}

// Authenticate verifica credenciales y emite el token.
// Devuelve users.ErrInvalidCredentials sin distinguir email de password.
func (s *Service) Authenticate(ctx context.Context, username, password string) (AuthResponse, error) {
	u, err := s.users.VerifyCredentials(ctx, username, password)
	if err != nil {
		return AuthResponse{}, err
	}

	tok, err := s.issuer.Issue(ctx, auth.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Roles:  u.Roles,
	})
	if err != nil {
		return AuthResponse{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResponse{JWT: tok}, nil
}
