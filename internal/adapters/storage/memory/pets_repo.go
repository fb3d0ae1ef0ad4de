package memory

import (
	"context"
	"sort"
	"sync"

	"pet-parade/internal/domain/pets"
)

type petRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[int64]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// El id siempre sale de la secuencia local, nunca del caller.
	r.nextID++
	id := r.nextID
	p.ID = &id

	r.byID[id] = clonePet(p)
	return clonePet(p), nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !p.HasID() {
		return pets.ErrInvalidInput
	}
	if _, exists := r.byID[*p.ID]; !exists {
		return pets.ErrNotFound
	}
	r.byID[*p.ID] = clonePet(p)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return clonePet(p), nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.filter(func(pets.Pet) bool { return true }), nil
}

func (r *petRepo) ListBySpecies(ctx context.Context, s pets.Species) ([]pets.Pet, error) {
	return r.filter(func(p pets.Pet) bool { return p.Species == s }), nil
}

func (r *petRepo) ListRecent(ctx context.Context, limit int) ([]pets.Pet, error) {
	out := r.filter(func(pets.Pet) bool { return true })

	// Más nuevas primero; a igual created_at, id mayor primero.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return *out[i].ID > *out[j].ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *petRepo) OwnedPetIDs(ctx context.Context, ownerIDs []int64) (map[int64][]int64, error) {
	want := make(map[int64]struct{}, len(ownerIDs))
	for _, id := range ownerIDs {
		want[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64][]int64)
	for id, p := range r.byID {
		if p.OwnerID == nil {
			continue
		}
		if _, ok := want[*p.OwnerID]; ok {
			out[*p.OwnerID] = append(out[*p.OwnerID], id)
		}
	}
	for _, ids := range out {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}
	return out, nil
}

// ClearOwner replica el ON DELETE SET NULL de Postgres.
func (r *petRepo) ClearOwner(ctx context.Context, ownerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.byID {
		if p.OwnerID != nil && *p.OwnerID == ownerID {
			p.OwnerID = nil
			r.byID[id] = p
		}
	}
	return nil
}

// filter devuelve copias ordenadas por created_at asc, id asc.
func (r *petRepo) filter(keep func(pets.Pet) bool) []pets.Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		if keep(p) {
			out = append(out, clonePet(p))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return *out[i].ID < *out[j].ID
	})
	return out
}

// clonePet evita que el caller mute punteros compartidos con el store.
func clonePet(p pets.Pet) pets.Pet {
	if p.ID != nil {
		id := *p.ID
		p.ID = &id
	}
	if p.OwnerID != nil {
		o := *p.OwnerID
		p.OwnerID = &o
	}
	if p.Birthday != nil {
		b := *p.Birthday
		p.Birthday = &b
	}
	p.LikingUsers = nil
	return p
}
