package likes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-parade/internal/domain/pets"
	"pet-parade/internal/middleware"
	"pet-parade/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	calls  []string
	petID  int64
	userID int64
	err    error
}

func (f *fakeService) Like(ctx context.Context, petID, userID int64) error {
	f.calls = append(f.calls, "Like")
	f.petID, f.userID = petID, userID
	return f.err
}

func (f *fakeService) Unlike(ctx context.Context, petID, userID int64) error {
	f.calls = append(f.calls, "Unlike")
	f.petID, f.userID = petID, userID
	return f.err
}

func serve(t *testing.T, svc LikeService, method string, body any, claims *auth.Claims) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/likes", &buf)
	req.Header.Set("Content-Type", "application/json")
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), *claims))
	}

	r := chi.NewRouter()
	RegisterRoutes(r, svc, nil, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_LikeAndUnlike_Success(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			svc := &fakeService{}
			rec := serve(t, svc, method, map[string]any{"petId": 3, "userId": 5}, nil)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "Success", rec.Body.String())
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
			assert.Equal(t, int64(3), svc.petID)
			assert.Equal(t, int64(5), svc.userID)
		})
	}
}

func TestHandler_BadInputNeverReachesService(t *testing.T) {
	cases := map[string]any{
		"malformed json": "{nope",
		"missing petId":  map[string]any{"userId": 5},
		"missing userId": map[string]any{"petId": 3},
		"zero petId":     map[string]any{"petId": 0, "userId": 5},
		"empty body":     map[string]any{},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			svc := &fakeService{}
			rec := serve(t, svc, http.MethodPost, body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, svc.calls)
		})
	}
}

func TestHandler_ClaimsMustMatchUser(t *testing.T) {
	body := map[string]any{"petId": 3, "userId": 5}

	svc := &fakeService{}
	rec := serve(t, svc, http.MethodPost, body, &auth.Claims{UserID: 6, Roles: []string{"ROLE_USER"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, svc.calls)

	rec = serve(t, svc, http.MethodPost, body, &auth.Claims{UserID: 5})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, svc, http.MethodDelete, body, &auth.Claims{UserID: 1, Roles: []string{"ROLE_ADMIN"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Like", "Unlike"}, svc.calls)
}

func TestHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrInvalidInput, http.StatusBadRequest},
		{pets.ErrNotFound, http.StatusNotFound},
		{ErrNotFound, http.StatusNotFound},
		{ErrOwnPet, http.StatusForbidden},
		{ErrAlreadyLiked, http.StatusConflict},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			svc := &fakeService{err: tc.err}
			rec := serve(t, svc, http.MethodPost, map[string]any{"petId": 3, "userId": 5}, nil)

			assert.Equal(t, tc.want, rec.Code)
			assert.NotEqual(t, "Success", rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "db down")
		})
	}
}
