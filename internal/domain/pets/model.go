package pets

import "time"

// Species es el enum entero de especies. 0 significa "sin especificar" y,
// como filtro, "todas".
type Species int

const (
	SpeciesAny Species = iota
	SpeciesDog
	SpeciesCat
	SpeciesBird
	SpeciesFish
	SpeciesRabbit
	SpeciesReptile
	SpeciesOther
)

func (s Species) String() string {
	switch s {
	case SpeciesAny:
		return "any"
	case SpeciesDog:
		return "dog"
	case SpeciesCat:
		return "cat"
	case SpeciesBird:
		return "bird"
	case SpeciesFish:
		return "fish"
	case SpeciesRabbit:
		return "rabbit"
	case SpeciesReptile:
		return "reptile"
	case SpeciesOther:
		return "other"
	default:
		return "unknown"
	}
}

// Pet representa el perfil de una mascota del desfile.
type Pet struct {
	// ID es nil hasta que el repositorio lo asigna.
	ID *int64

	Name    string
	Bio     string
	Species Species

	Birthday *time.Time
	OwnerID  *int64

	// LikingUsers lo completa el service; los repositorios de mascotas no lo persisten.
	LikingUsers []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Likes es la cantidad de usuarios que dieron like.
func (p Pet) Likes() int {
	return len(p.LikingUsers)
}

// HasID indica si la mascota ya tiene identidad asignada.
func (p Pet) HasID() bool {
	return p.ID != nil && *p.ID > 0
}
