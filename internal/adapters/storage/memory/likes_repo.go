package memory

import (
	"context"
	"sort"
	"sync"

	"pet-parade/internal/domain/likes"
)

type likeKey struct {
	petID  int64
	userID int64
}

type likeRepo struct {
	mu    sync.RWMutex
	byKey map[likeKey]likes.Like
}

func NewLikeRepo() likes.Repository {
	return &likeRepo{
		byKey: make(map[likeKey]likes.Like),
	}
}

func (r *likeRepo) Add(ctx context.Context, l likes.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := likeKey{petID: l.PetID, userID: l.UserID}
	if _, exists := r.byKey[k]; exists {
		return likes.ErrAlreadyLiked
	}
	r.byKey[k] = l
	return nil
}

func (r *likeRepo) Remove(ctx context.Context, petID, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := likeKey{petID: petID, userID: userID}
	if _, exists := r.byKey[k]; !exists {
		return likes.ErrNotFound
	}
	delete(r.byKey, k)
	return nil
}

func (r *likeRepo) LikersByPets(ctx context.Context, petIDs []int64) (map[int64][]int64, error) {
	return r.group(petIDs, func(k likeKey) (int64, int64) { return k.petID, k.userID }), nil
}

func (r *likeRepo) LikedByUsers(ctx context.Context, userIDs []int64) (map[int64][]int64, error) {
	return r.group(userIDs, func(k likeKey) (int64, int64) { return k.userID, k.petID }), nil
}

func (r *likeRepo) DeleteByPet(ctx context.Context, petID int64) error {
	r.deleteWhere(func(k likeKey) bool { return k.petID == petID })
	return nil
}

func (r *likeRepo) DeleteByUser(ctx context.Context, userID int64) error {
	r.deleteWhere(func(k likeKey) bool { return k.userID == userID })
	return nil
}

// group arma key -> valores ordenados, solo para las keys pedidas.
func (r *likeRepo) group(keys []int64, split func(likeKey) (int64, int64)) map[int64][]int64 {
	want := make(map[int64]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64][]int64)
	for k := range r.byKey {
		key, val := split(k)
		if _, ok := want[key]; ok {
			out[key] = append(out[key], val)
		}
	}
	for _, vals := range out {
		sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	}
	return out
}

func (r *likeRepo) deleteWhere(match func(likeKey) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k := range r.byKey {
		if match(k) {
			delete(r.byKey, k)
		}
	}
}
