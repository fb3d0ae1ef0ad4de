package users

import "time"

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User es el registro de un usuario. PasswordHash nunca sale por la API.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Roles        []string
	DateCreated  time.Time

	// PetIDs y LikedPetIDs se derivan de pets y likes; el repositorio de
	// usuarios no los guarda.
	PetIDs      []int64
	LikedPetIDs []int64
}

// LikesGiven es la cantidad de mascotas a las que dio like.
func (u User) LikesGiven() int {
	return len(u.LikedPetIDs)
}

func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
