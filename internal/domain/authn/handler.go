package authn

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-parade/internal/domain/users"
	"pet-parade/internal/platform/logger"
	"pet-parade/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.NewNop()
	}
	r.Post("/auth", authenticateHandler(svc, validation.New(), log))
}

// authRequest usa "username" porque así lo manda el cliente web; el valor es el email.
type authRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// authenticateHandler godoc
// @Summary Obtener JWT
// @Description Verifica email (campo username) y password; devuelve {jwt} para usar como Bearer.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body authRequest true "Credenciales"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "invalid json / validation failed"
// @Failure 401 {object} map[string]string "invalid credentials"
// @Router /auth [post]
func authenticateHandler(svc *Service, v *validation.Validator, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := v.Struct(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		resp, err := svc.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, users.ErrInvalidCredentials) {
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeError(w, http.StatusUnauthorized, "invalid credentials")
				return
			}
			log.Error("auth: authenticate failed", map[string]any{"error": err})
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
