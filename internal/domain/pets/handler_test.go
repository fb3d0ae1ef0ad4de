package pets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService registra qué método se llamó y con qué.
type fakeService struct {
	calls []string

	created   Pet
	updated   Pet
	species   Species
	deletedID int64

	items []Pet
	err   error
}

func (f *fakeService) FindAll(ctx context.Context) ([]Pet, error) {
	f.calls = append(f.calls, "FindAll")
	return f.items, f.err
}

func (f *fakeService) FindByID(ctx context.Context, id int64) (Pet, error) {
	f.calls = append(f.calls, "FindByID")
	if f.err != nil {
		return Pet{}, f.err
	}
	return Pet{ID: &id, Name: "found"}, nil
}

func (f *fakeService) FindRecentCreated(ctx context.Context) ([]Pet, error) {
	f.calls = append(f.calls, "FindRecentCreated")
	return f.items, f.err
}

func (f *fakeService) FindAllBySpecies(ctx context.Context, s Species) ([]Pet, error) {
	f.calls = append(f.calls, "FindAllBySpecies")
	f.species = s
	return f.items, f.err
}

func (f *fakeService) Create(ctx context.Context, p Pet) (Pet, error) {
	f.calls = append(f.calls, "Create")
	f.created = p
	if f.err != nil {
		return Pet{}, f.err
	}
	id := int64(7)
	p.ID = &id
	return p, nil
}

func (f *fakeService) Update(ctx context.Context, p Pet) (Pet, error) {
	f.calls = append(f.calls, "Update")
	f.updated = p
	return p, f.err
}

func (f *fakeService) DeleteByID(ctx context.Context, id int64) error {
	f.calls = append(f.calls, "DeleteByID")
	f.deletedID = id
	return f.err
}

func newTestHandler(svc PetService, guard func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, nil, guard)
	return r
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Create_StripsClientID(t *testing.T) {
	svc := &fakeService{}
	h := newTestHandler(svc, nil)

	rec := do(t, h, http.MethodPost, "/pets", map[string]any{
		"id":       123,
		"name":     "Milo",
		"bio":      "good boy",
		"species":  1,
		"birthday": "2020-05-17",
		"owner":    3,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	assert.Nil(t, svc.created.ID)
	assert.Equal(t, SpeciesDog, svc.created.Species)
	require.NotNil(t, svc.created.Birthday)
	assert.Equal(t, time.Date(2020, 5, 17, 0, 0, 0, 0, time.UTC), *svc.created.Birthday)
	require.NotNil(t, svc.created.OwnerID)
	assert.Equal(t, int64(3), *svc.created.OwnerID)

	var out petDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotNil(t, out.ID)
	assert.Equal(t, int64(7), *out.ID)
	require.NotNil(t, out.Birthday)
	assert.Equal(t, "2020-05-17", *out.Birthday)
}

func TestHandler_Create_BadInputNeverReachesService(t *testing.T) {
	cases := map[string]any{
		"malformed json": "{not json",
		"bad birthday":   map[string]any{"name": "x", "birthday": "17/05/2020"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			svc := &fakeService{}
			rec := do(t, newTestHandler(svc, nil), http.MethodPost, "/pets", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, svc.calls)
		})
	}
}

func TestHandler_Species_ZeroIsEverything(t *testing.T) {
	svc := &fakeService{items: []Pet{{Name: "a"}, {Name: "b"}}}
	rec := do(t, newTestHandler(svc, nil), http.MethodPost, "/pets/species", map[string]any{"species": 0})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"FindAll"}, svc.calls)

	var out []petDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, 2)
}

func TestHandler_Species_Filter(t *testing.T) {
	svc := &fakeService{}
	rec := do(t, newTestHandler(svc, nil), http.MethodPost, "/pets/species", map[string]any{"species": 2})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"FindAllBySpecies"}, svc.calls)
	assert.Equal(t, SpeciesCat, svc.species)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestHandler_Recent_NotCapturedByID(t *testing.T) {
	svc := &fakeService{}
	rec := do(t, newTestHandler(svc, nil), http.MethodGet, "/pets/recent", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"FindRecentCreated"}, svc.calls)
}

func TestHandler_GetByID(t *testing.T) {
	svc := &fakeService{}
	h := newTestHandler(svc, nil)

	rec := do(t, h, http.MethodGet, "/pets/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.calls)

	svc.err = ErrNotFound
	rec = do(t, h, http.MethodGet, "/pets/5", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	svc.err = nil
	rec = do(t, h, http.MethodGet, "/pets/5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
}

func TestHandler_Update_PassesIDFromBody(t *testing.T) {
	svc := &fakeService{}
	rec := do(t, newTestHandler(svc, nil), http.MethodPut, "/pets", map[string]any{
		"id":   9,
		"name": "Renamed",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.updated.ID)
	assert.Equal(t, int64(9), *svc.updated.ID)
}

func TestHandler_Delete_NoContent(t *testing.T) {
	svc := &fakeService{}
	rec := do(t, newTestHandler(svc, nil), http.MethodDelete, "/pets/404", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(404), svc.deletedID)
	assert.Empty(t, rec.Body.String())
}

func TestHandler_InternalErrorIsOpaque(t *testing.T) {
	svc := &fakeService{err: errors.New("connection refused")}
	rec := do(t, newTestHandler(svc, nil), http.MethodGet, "/pets", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHandler_WriteGuardOnlyWrapsWrites(t *testing.T) {
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}
	svc := &fakeService{}
	h := newTestHandler(svc, deny)

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/pets", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/pets/species", map[string]any{"species": 0}).Code)

	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodPost, "/pets", map[string]any{"name": "x"}).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodPut, "/pets", map[string]any{"id": 1}).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodDelete, "/pets/1", nil).Code)

	assert.Equal(t, []string{"FindAll", "FindAll"}, svc.calls)
}

func TestHandler_StatsAndLikingUsers(t *testing.T) {
	id := int64(1)
	svc := &fakeService{items: []Pet{
		{ID: &id, Name: "Milo", LikingUsers: []int64{4, 8}},
		{Name: "Luna"},
	}}
	rec := do(t, newTestHandler(svc, nil), http.MethodGet, "/pets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)

	assert.Equal(t, map[string]any{"likes": float64(2), "rating": nil}, out[0]["stats"])
	assert.Equal(t, []any{float64(4), float64(8)}, out[0]["likingUsers"])
	assert.Equal(t, []any{}, out[1]["likingUsers"])
}

func TestHandler_Create_IgnoresClientStats(t *testing.T) {
	svc := &fakeService{}
	rec := do(t, newTestHandler(svc, nil), http.MethodPost, "/pets", map[string]any{
		"name":        "Milo",
		"stats":       map[string]any{"likes": 100},
		"likingUsers": []int64{1, 2, 3},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, svc.created.LikingUsers)
}
