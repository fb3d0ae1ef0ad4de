package likes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"pet-parade/internal/domain/pets"
	"pet-parade/internal/domain/users"
	"pet-parade/internal/middleware"
	"pet-parade/internal/platform/logger"
	"pet-parade/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

// successBody es lo que espera el cliente web; no es JSON.
const successBody = "Success"

type LikeService interface {
	Like(ctx context.Context, petID, userID int64) error
	Unlike(ctx context.Context, petID, userID int64) error
}

// RegisterRoutes monta /likes. guard (opcional) envuelve ambas rutas.
func RegisterRoutes(r chi.Router, svc LikeService, log logger.Logger, guard func(http.Handler) http.Handler) {
	if log == nil {
		log = logger.NewNop()
	}
	v := validation.New()

	r.Group(func(gr chi.Router) {
		if guard != nil {
			gr.Use(guard)
		}
		gr.Post("/likes", likeHandler(svc, v, log))
		gr.Delete("/likes", unlikeHandler(svc, v, log))
	})
}

type likeRequest struct {
	PetID  int64 `json:"petId" validate:"required,gt=0"`
	UserID int64 `json:"userId" validate:"required,gt=0"`
}

// likeHandler godoc
// @Summary Dar like a una mascota
// @Description Responde el texto "Success". Con token, userId debe ser el del token (salvo ROLE_ADMIN).
// @Tags likes
// @Accept json
// @Produce plain
// @Param Authorization header string false "Bearer token (obligatorio si AUTH_REQUIRED=true)"
// @Param payload body likeRequest true "Mascota y usuario"
// @Success 200 {string} string "Success"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "ya tenía like"
// @Router /likes [post]
func likeHandler(svc LikeService, v *validation.Validator, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeLike(w, r, v)
		if !ok {
			return
		}
		if err := svc.Like(r.Context(), req.PetID, req.UserID); err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeSuccess(w)
	}
}

// unlikeHandler godoc
// @Summary Quitar like
// @Tags likes
// @Accept json
// @Produce plain
// @Param Authorization header string false "Bearer token (obligatorio si AUTH_REQUIRED=true)"
// @Param payload body likeRequest true "Mascota y usuario"
// @Success 200 {string} string "Success"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /likes [delete]
func unlikeHandler(svc LikeService, v *validation.Validator, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeLike(w, r, v)
		if !ok {
			return
		}
		if err := svc.Unlike(r.Context(), req.PetID, req.UserID); err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeSuccess(w)
	}
}

func decodeLike(w http.ResponseWriter, r *http.Request, v *validation.Validator) (likeRequest, bool) {
	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return req, false
	}
	if err := v.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return req, false
	}

	// Con token, solo se vota en nombre propio.
	if c, ok := middleware.GetClaims(r.Context()); ok {
		if c.UserID != req.UserID && !c.HasRole(users.RoleAdmin) {
			writeError(w, http.StatusForbidden, "userId does not match token")
			return req, false
		}
	}
	return req, true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, pets.ErrNotFound), errors.Is(err, users.ErrNotFound), errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrOwnPet):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrAlreadyLiked):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.Error("likes: service error", map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err,
		})
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeSuccess(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(successBody))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
