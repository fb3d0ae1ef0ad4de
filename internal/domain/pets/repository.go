package pets

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("pet not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Repository interface {
	// Create asigna ID y devuelve la mascota persistida.
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id int64) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	ListBySpecies(ctx context.Context, s Species) ([]Pet, error)
	ListRecent(ctx context.Context, limit int) ([]Pet, error)
	// Delete no falla si el id no existe.
	Delete(ctx context.Context, id int64) error

	// OwnedPetIDs agrupa por dueño los IDs de sus mascotas, en orden de ID.
	// Los dueños sin mascotas no aparecen en el mapa.
	OwnedPetIDs(ctx context.Context, ownerIDs []int64) (map[int64][]int64, error)
	// ClearOwner pone OwnerID en nil en todas las mascotas de ownerID.
	ClearOwner(ctx context.Context, ownerID int64) error
}

// LikeStore es lo que este módulo necesita del almacén de likes.
type LikeStore interface {
	LikersByPets(ctx context.Context, petIDs []int64) (map[int64][]int64, error)
	DeleteByPet(ctx context.Context, petID int64) error
}

// OwnerDirectory responde si un usuario existe; lo implementa users.Service.
type OwnerDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
