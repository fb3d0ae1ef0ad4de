package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repository interface {
	// Create asigna ID. Devuelve ErrEmailTaken si el email ya existe.
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) error
	GetByID(ctx context.Context, id int64) (User, error)
	// GetByEmail espera el email ya normalizado (minúsculas).
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	// Delete no falla si el id no existe.
	Delete(ctx context.Context, id int64) error
}

// PetOwnership lo implementa el repositorio de mascotas.
type PetOwnership interface {
	OwnedPetIDs(ctx context.Context, ownerIDs []int64) (map[int64][]int64, error)
	// ClearOwner deja sin dueño las mascotas del usuario borrado.
	ClearOwner(ctx context.Context, ownerID int64) error
}

type LikeStore interface {
	LikedByUsers(ctx context.Context, userIDs []int64) (map[int64][]int64, error)
	DeleteByUser(ctx context.Context, userID int64) error
}
