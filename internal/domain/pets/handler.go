package pets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-parade/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const birthdayLayout = "2006-01-02"

// PetService es la capability que consume el handler.
// *Service la implementa; los tests pueden inyectar un fake.
type PetService interface {
	FindAll(ctx context.Context) ([]Pet, error)
	FindByID(ctx context.Context, id int64) (Pet, error)
	FindRecentCreated(ctx context.Context) ([]Pet, error)
	FindAllBySpecies(ctx context.Context, species Species) ([]Pet, error)
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) (Pet, error)
	DeleteByID(ctx context.Context, id int64) error
}

// RegisterRoutes monta /pets. writeGuard (opcional) envuelve solo las rutas de escritura.
func RegisterRoutes(r chi.Router, svc PetService, log logger.Logger, writeGuard func(http.Handler) http.Handler) {
	if log == nil {
		log = logger.NewNop()
	}

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc, log))
		pr.Get("/recent", listRecentPetsHandler(svc, log))
		pr.Get("/{id}", getPetHandler(svc, log))

		// Leaderboard: filtro por especie en el body (0 = todas)
		pr.Post("/species", listPetsBySpeciesHandler(svc, log))

		pr.Group(func(wr chi.Router) {
			if writeGuard != nil {
				wr.Use(writeGuard)
			}
			wr.Post("/", createPetHandler(svc, log))
			wr.Put("/", updatePetHandler(svc, log))
			wr.Delete("/{id}", deletePetHandler(svc, log))
		})
	})
}

// petDTO es la forma pública de una mascota.
type petDTO struct {
	ID        *int64     `json:"id"`
	Name      string     `json:"name"`
	Bio       string     `json:"bio"`
	Species   Species    `json:"species" enums:"0,1,2,3,4,5,6,7"`
	Birthday  *string    `json:"birthday"` // YYYY-MM-DD
	Owner     *int64     `json:"owner"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	// Solo salida: se ignoran en POST y PUT.
	Stats       petStats `json:"stats"`
	LikingUsers []int64  `json:"likingUsers"`
}

// petStats.Rating queda en null: no hay calificaciones.
type petStats struct {
	Likes  int      `json:"likes"`
	Rating *float64 `json:"rating"`
}

// leaderboardRequest filtra por especie; 0 devuelve todas.
type leaderboardRequest struct {
	Species Species `json:"species"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petDTO
// @Failure 500 {object} errorResponse
// @Router /pets [get]
func listPetsHandler(svc PetService, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.FindAll(r.Context())
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetDTOs(items))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} petDTO
// @Failure 400 {object} errorResponse "id inválido"
// @Failure 404 {object} errorResponse "pet not found"
// @Router /pets/{id} [get]
func getPetHandler(svc PetService, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		p, err := svc.FindByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetDTO(p))
	}
}

// listRecentPetsHandler godoc
// @Summary Mascotas creadas recientemente
// @Description Devuelve las últimas mascotas registradas, más nuevas primero. El tamaño de la ventana lo define el servicio (PETS_RECENT_LIMIT).
// @Tags pets
// @Produce json
// @Success 200 {array} petDTO
// @Router /pets/recent [get]
func listRecentPetsHandler(svc PetService, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.FindRecentCreated(r.Context())
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetDTOs(items))
	}
}

// listPetsBySpeciesHandler godoc
// @Summary Mascotas por especie (leaderboard)
// @Description species=0 equivale a listar todas.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body leaderboardRequest true "Filtro de especie"
// @Success 200 {array} petDTO
// @Failure 400 {object} errorResponse
// @Router /pets/species [post]
func listPetsBySpeciesHandler(svc PetService, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req leaderboardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		var (
			items []Pet
			err   error
		)
		// El wildcard se resuelve aquí y no en el servicio.
		if req.Species == SpeciesAny {
			items, err = svc.FindAll(r.Context())
		} else {
			items, err = svc.FindAllBySpecies(r.Context(), req.Species)
		}
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetDTOs(items))
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description El id enviado por el cliente se ignora; lo asigna el servidor.
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token (obligatorio si AUTH_REQUIRED=true)"
// @Param payload body petDTO true "Mascota"
// @Success 201 {object} petDTO
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /pets [post]
func createPetHandler(svc PetService, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		// Identidad asignada por el servidor: nunca se acepta un id del cliente.
		req.ID = nil

		p, err := fromPetDTO(req)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		created, err := svc.Create(r.Context(), p)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPetDTO(created))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplaza el registro completo; el id viaja en el body.
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token (obligatorio si AUTH_REQUIRED=true)"
// @Param payload body petDTO true "Mascota con id"
// @Success 200 {object} petDTO
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /pets [put]
func updatePetHandler(svc PetService, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := fromPetDTO(req)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		updated, err := svc.Update(r.Context(), p)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetDTO(updated))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Responde 204 exista o no la mascota.
// @Tags pets
// @Param Authorization header string false "Bearer token (obligatorio si AUTH_REQUIRED=true)"
// @Param id path int true "ID de la mascota"
// @Success 204
// @Failure 400 {object} errorResponse
// @Router /pets/{id} [delete]
func deletePetHandler(svc PetService, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteByID(r.Context(), id); err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func fromPetDTO(d petDTO) (Pet, error) {
	p := Pet{
		ID:      d.ID,
		Name:    d.Name,
		Bio:     d.Bio,
		Species: d.Species,
		OwnerID: d.Owner,
	}

	if d.Birthday != nil && strings.TrimSpace(*d.Birthday) != "" {
		t, err := time.Parse(birthdayLayout, strings.TrimSpace(*d.Birthday))
		if err != nil {
			return Pet{}, errors.New("birthday must be YYYY-MM-DD")
		}
		p.Birthday = &t
	}
	return p, nil
}

func toPetDTO(p Pet) petDTO {
	d := petDTO{
		ID:      p.ID,
		Name:    p.Name,
		Bio:     p.Bio,
		Species: p.Species,
		Owner:   p.OwnerID,

		Stats:       petStats{Likes: p.Likes()},
		LikingUsers: make([]int64, 0, len(p.LikingUsers)),
	}
	d.LikingUsers = append(d.LikingUsers, p.LikingUsers...)
	if p.Birthday != nil {
		s := p.Birthday.Format(birthdayLayout)
		d.Birthday = &s
	}
	if !p.CreatedAt.IsZero() {
		t := p.CreatedAt
		d.CreatedAt = &t
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		d.UpdatedAt = &t
	}
	return d
}

func toPetDTOs(items []Pet) []petDTO {
	out := make([]petDTO, 0, len(items))
	for _, p := range items {
		out = append(out, toPetDTO(p))
	}
	return out
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "pet not found")
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error("pets: service error", map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err,
		})
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
