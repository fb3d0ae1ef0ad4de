package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"pet-parade/internal/domain/users"
)

type userRepo struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]users.User
	byEmail map[string]int64
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID:    make(map[int64]users.User),
		byEmail: make(map[string]int64),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(u.Email)
	if key == "" {
		return users.User{}, users.ErrInvalidInput
	}
	if _, taken := r.byEmail[key]; taken {
		return users.User{}, users.ErrEmailTaken
	}

	r.nextID++
	u.ID = r.nextID
	u.Roles = cloneRoles(u.Roles)

	r.byID[u.ID] = u
	r.byEmail[key] = u.ID
	return u, nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[u.ID]
	if !ok {
		return users.ErrNotFound
	}

	newKey := emailKey(u.Email)
	if owner, taken := r.byEmail[newKey]; taken && owner != u.ID {
		return users.ErrEmailTaken
	}

	delete(r.byEmail, emailKey(current.Email))
	u.Roles = cloneRoles(u.Roles)
	r.byID[u.ID] = u
	r.byEmail[newKey] = u.ID
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	u.Roles = cloneRoles(u.Roles)
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	u := r.byID[id]
	u.Roles = cloneRoles(u.Roles)
	return u, nil
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		u.Roles = cloneRoles(u.Roles)
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *userRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.byID[id]; ok {
		delete(r.byEmail, emailKey(u.Email))
		delete(r.byID, id)
	}
	return nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloneRoles(roles []string) []string {
	if roles == nil {
		return nil
	}
	out := make([]string, len(roles))
	copy(out, roles)
	return out
}
