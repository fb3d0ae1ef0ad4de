package likes

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("like not found")
	ErrAlreadyLiked = errors.New("pet already liked by this user")
	ErrOwnPet       = errors.New("owners cannot like their own pet")
	ErrInvalidInput = errors.New("invalid input")
)

type Repository interface {
	// Add devuelve ErrAlreadyLiked si el par ya existe.
	Add(ctx context.Context, l Like) error
	// Remove devuelve ErrNotFound si el par no existe.
	Remove(ctx context.Context, petID, userID int64) error

	// LikersByPets devuelve, por mascota, los ids de usuarios que la likearon.
	// Las mascotas sin likes no aparecen en el map.
	LikersByPets(ctx context.Context, petIDs []int64) (map[int64][]int64, error)
	// LikedByUsers devuelve, por usuario, los ids de mascotas que likeó.
	LikedByUsers(ctx context.Context, userIDs []int64) (map[int64][]int64, error)

	DeleteByPet(ctx context.Context, petID int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}
