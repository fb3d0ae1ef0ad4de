package likes

import (
	"context"
	"time"

	"pet-parade/internal/domain/pets"
	"pet-parade/internal/domain/users"
)

// PetFinder y UserFinder son los subconjuntos de pets.Service y users.Service que usa este módulo.
type PetFinder interface {
	FindByID(ctx context.Context, id int64) (pets.Pet, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id int64) (users.User, error)
}

type Service struct {
	repo  Repository
	pets  PetFinder
	users UserFinder
	now   func() time.Time
}

func NewService(repo Repository, p PetFinder, u UserFinder) *Service {
	return &Service{
		repo:  repo,
		pets:  p,
		users: u,
		now:   time.Now,
	}
}

// Like registra el like. La mascota y el usuario deben existir y el usuario
// no puede ser el dueño.
func (s *Service) Like(ctx context.Context, petID, userID int64) error {
	if petID <= 0 || userID <= 0 {
		return ErrInvalidInput
	}

	pet, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	if pet.OwnerID != nil && *pet.OwnerID == userID {
		return ErrOwnPet
	}

	return s.repo.Add(ctx, Like{
		PetID:     petID,
		UserID:    userID,
		CreatedAt: s.now(),
	})
}

// Unlike quita el like; ErrNotFound si no existía.
func (s *Service) Unlike(ctx context.Context, petID, userID int64) error {
	if petID <= 0 || userID <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Remove(ctx, petID, userID)
}
