package likes

import "time"

// Like es el voto de un usuario a una mascota. Un par (PetID, UserID) es único.
type Like struct {
	PetID     int64
	UserID    int64
	CreatedAt time.Time
}
