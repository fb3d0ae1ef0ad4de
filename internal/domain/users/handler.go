package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-parade/internal/middleware"
	"pet-parade/internal/platform/logger"
	"pet-parade/internal/platform/validation"
	"pet-parade/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// UserService es la capability que consume el handler.
type UserService interface {
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	Signup(ctx context.Context, in SignupInput) (User, error)
	Update(ctx context.Context, u User) (User, error)
	DeleteByID(ctx context.Context, id int64) error
}

// RegisterRoutes monta /users. guard (opcional) protege login, update y delete.
func RegisterRoutes(r chi.Router, svc UserService, log logger.Logger, guard func(http.Handler) http.Handler) {
	if log == nil {
		log = logger.NewNop()
	}
	v := validation.New()

	r.Route("/users", func(ur chi.Router) {
		ur.Get("/", listUsersHandler(svc, log))
		ur.Get("/{id}", getUserHandler(svc, log))
		ur.Post("/signup", signupHandler(svc, v, log))

		ur.Group(func(gr chi.Router) {
			if guard != nil {
				gr.Use(guard)
			}
			gr.Post("/login", loginHandler(svc, v, log))
			gr.Put("/", updateUserHandler(svc, v, log))
			gr.Delete("/{id}", deleteUserHandler(svc, log))
		})
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	// bcrypt ignora lo que pase de 72 bytes
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// userDTO es la forma pública del usuario; no incluye el hash.
type userDTO struct {
	ID          int64      `json:"id" validate:"required,gt=0"`
	Username    string     `json:"username" validate:"required,min=3,max=50"`
	Email       string     `json:"email" validate:"required,email"`
	Roles       []string   `json:"roles" validate:"omitempty,dive,oneof=ROLE_USER ROLE_ADMIN"`
	DateCreated *time.Time `json:"dateCreated,omitempty"`

	// Solo salida: PUT los ignora.
	Pets      []int64   `json:"pets"`
	LikedPets []int64   `json:"likedPets"`
	Stats     userStats `json:"stats"`
}

type userStats struct {
	LikesGivenCount int `json:"likesGivenCount"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// listUsersHandler godoc
// @Summary Listar usuarios
// @Tags users
// @Produce json
// @Success 200 {array} userDTO
// @Router /users [get]
func listUsersHandler(svc UserService, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.FindAll(r.Context())
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		out := make([]userDTO, 0, len(items))
		for _, u := range items {
			out = append(out, toUserDTO(u))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getUserHandler godoc
// @Summary Obtener usuario
// @Tags users
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} userDTO
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /users/{id} [get]
func getUserHandler(svc UserService, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		u, err := svc.FindByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserDTO(u))
	}
}

// loginHandler godoc
// @Summary Login (lookup por email)
// @Description Devuelve el usuario con ese email. Las credenciales se verifican en POST /auth; si el request trae un Bearer cuyo email no coincide responde 403.
// @Tags users
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token emitido por POST /auth"
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} userDTO
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /users/login [post]
func loginHandler(svc UserService, v *validation.Validator, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !decodeAndValidate(w, r, v, &req) {
			return
		}

		if c, ok := middleware.GetClaims(r.Context()); ok && c.Email != "" {
			if !strings.EqualFold(strings.TrimSpace(c.Email), strings.TrimSpace(req.Email)) {
				writeError(w, http.StatusForbidden, "token does not belong to this email")
				return
			}
		}

		u, err := svc.FindByEmail(r.Context(), req.Email)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserDTO(u))
	}
}

// signupHandler godoc
// @Summary Registrar usuario
// @Tags users
// @Accept json
// @Produce json
// @Param payload body signupRequest true "Datos de alta"
// @Success 201 {object} userDTO
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse "email ya registrado"
// @Router /users/signup [post]
func signupHandler(svc UserService, v *validation.Validator, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if !decodeAndValidate(w, r, v, &req) {
			return
		}

		u, err := svc.Signup(r.Context(), SignupInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, toUserDTO(u))
	}
}

// updateUserHandler godoc
// @Summary Actualizar usuario
// @Description Reemplaza username, email y roles. El password no se toca. Con token, solo el propio usuario o un ROLE_ADMIN; los roles solo los cambia un ROLE_ADMIN.
// @Tags users
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token (obligatorio si AUTH_REQUIRED=true)"
// @Param payload body userDTO true "Usuario con id"
// @Success 200 {object} userDTO
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /users [put]
func updateUserHandler(svc UserService, v *validation.Validator, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req userDTO
		if !decodeAndValidate(w, r, v, &req) {
			return
		}

		if c, ok := middleware.GetClaims(r.Context()); ok {
			if !selfOrAdmin(c, req.ID) {
				writeError(w, http.StatusForbidden, "cannot modify another user")
				return
			}
			if !c.HasRole(RoleAdmin) {
				req.Roles = nil
			}
		}

		u, err := svc.Update(r.Context(), User{
			ID:       req.ID,
			Username: req.Username,
			Email:    req.Email,
			Roles:    req.Roles,
		})
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserDTO(u))
	}
}

// deleteUserHandler godoc
// @Summary Borrar usuario
// @Description Responde 204 exista o no el usuario. Con token, solo el propio usuario o un ROLE_ADMIN.
// @Tags users
// @Param Authorization header string false "Bearer token (obligatorio si AUTH_REQUIRED=true)"
// @Param id path int true "ID del usuario"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /users/{id} [delete]
func deleteUserHandler(svc UserService, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		if c, ok := middleware.GetClaims(r.Context()); ok && !selfOrAdmin(c, id) {
			writeError(w, http.StatusForbidden, "cannot delete another user")
			return
		}
		if err := svc.DeleteByID(r.Context(), id); err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// decodeAndValidate escribe el 400 y devuelve false si el body no sirve.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validation.Validator, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := v.Struct(dst); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: verr.Fields})
			return false
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func selfOrAdmin(c auth.Claims, id int64) bool {
	return c.UserID == id || c.HasRole(RoleAdmin)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func toUserDTO(u User) userDTO {
	d := userDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Roles:    u.Roles,
	}
	if d.Roles == nil {
		d.Roles = []string{}
	}
	d.Pets = append(make([]int64, 0, len(u.PetIDs)), u.PetIDs...)
	d.LikedPets = append(make([]int64, 0, len(u.LikedPetIDs)), u.LikedPetIDs...)
	d.Stats.LikesGivenCount = u.LikesGiven()
	if !u.DateCreated.IsZero() {
		t := u.DateCreated
		d.DateCreated = &t
	}
	return d
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.Error("users: service error", map[string]any{
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
