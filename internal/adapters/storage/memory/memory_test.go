package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"pet-parade/internal/domain/likes"
	"pet-parade/internal/domain/pets"
	"pet-parade/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetRepo_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	bogus := int64(500)
	a, err := repo.Create(ctx, pets.Pet{ID: &bogus, Name: "a"})
	require.NoError(t, err)
	b, err := repo.Create(ctx, pets.Pet{Name: "b"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), *a.ID)
	assert.Equal(t, int64(2), *b.ID)
}

func TestPetRepo_ReturnsCopies(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	owner := int64(3)
	created, err := repo.Create(ctx, pets.Pet{Name: "Milo", OwnerID: &owner})
	require.NoError(t, err)

	*created.OwnerID = 99
	got, err := repo.GetByID(ctx, *created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), *got.OwnerID)
}

func TestPetRepo_ListOrderAndRecent(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, name := range []string{"first", "second", "third"} {
		at := base.Add(time.Duration(i) * time.Hour)
		_, err := repo.Create(ctx, pets.Pet{Name: name, Species: pets.SpeciesDog, CreatedAt: at, UpdatedAt: at})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, pets.Pet{Name: "cat", Species: pets.SpeciesCat, CreatedAt: base, UpdatedAt: base})
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []string{"first", "cat", "second", "third"}, names(all))

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"third", "second"}, names(recent))

	dogs, err := repo.ListBySpecies(ctx, pets.SpeciesDog)
	require.NoError(t, err)
	assert.Len(t, dogs, 3)
}

func TestPetRepo_UpdateAndDelete(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	missing := int64(8)
	assert.ErrorIs(t, repo.Update(ctx, pets.Pet{ID: &missing}), pets.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, pets.Pet{}), pets.ErrInvalidInput)

	p, err := repo.Create(ctx, pets.Pet{Name: "Milo"})
	require.NoError(t, err)
	p.Name = "Otis"
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, *p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Otis", got.Name)

	require.NoError(t, repo.Delete(ctx, *p.ID))
	require.NoError(t, repo.Delete(ctx, 12345))
	_, err = repo.GetByID(ctx, *p.ID)
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestPetRepo_ConcurrentCreate(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, pets.Pet{Name: "p"})
		}()
	}
	wg.Wait()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	seen := map[int64]bool{}
	for _, p := range all {
		seen[*p.ID] = true
	}
	assert.Len(t, seen, 50)
}

func TestUserRepo_EmailIndex(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	ana, err := repo.Create(ctx, users.User{Username: "ana", Email: "ana@example.com", Roles: []string{users.RoleUser}})
	require.NoError(t, err)
	bob, err := repo.Create(ctx, users.User{Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, users.User{Username: "ana2", Email: "ANA@example.com"})
	assert.ErrorIs(t, err, users.ErrEmailTaken)

	_, err = repo.Create(ctx, users.User{Username: "nobody"})
	assert.ErrorIs(t, err, users.ErrInvalidInput)

	got, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, ana.ID, got.ID)

	// cambiar email libera el anterior
	ana.Email = "ana.new@example.com"
	require.NoError(t, repo.Update(ctx, ana))
	_, err = repo.GetByEmail(ctx, "ana@example.com")
	assert.ErrorIs(t, err, users.ErrNotFound)

	bob.Email = "ana.new@example.com"
	assert.ErrorIs(t, repo.Update(ctx, bob), users.ErrEmailTaken)

	assert.ErrorIs(t, repo.Update(ctx, users.User{ID: 99, Email: "x@example.com"}), users.ErrNotFound)
}

func TestUserRepo_ListAndDelete(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	for _, e := range []string{"c@example.com", "a@example.com", "b@example.com"} {
		_, err := repo.Create(ctx, users.User{Username: e, Email: e})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(3), list[2].ID)

	require.NoError(t, repo.Delete(ctx, 1))
	require.NoError(t, repo.Delete(ctx, 1))

	_, err = repo.GetByEmail(ctx, "c@example.com")
	assert.ErrorIs(t, err, users.ErrNotFound)

	// el email borrado vuelve a estar libre
	_, err = repo.Create(ctx, users.User{Username: "c", Email: "c@example.com"})
	assert.NoError(t, err)
}

func TestPetRepo_OwnershipLinks(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	ana, bob := int64(1), int64(2)
	for _, owner := range []*int64{&ana, &bob, &ana, nil} {
		_, err := repo.Create(ctx, pets.Pet{Name: "p", OwnerID: owner})
		require.NoError(t, err)
	}

	owned, err := repo.OwnedPetIDs(ctx, []int64{ana, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int64][]int64{ana: {1, 3}}, owned)

	require.NoError(t, repo.ClearOwner(ctx, ana))
	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got.OwnerID)

	owned, err = repo.OwnedPetIDs(ctx, []int64{ana, bob})
	require.NoError(t, err)
	assert.Equal(t, map[int64][]int64{bob: {2}}, owned)
}

func TestLikeRepo(t *testing.T) {
	repo := NewLikeRepo()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Add(ctx, likes.Like{PetID: 1, UserID: 7, CreatedAt: now}))
	require.NoError(t, repo.Add(ctx, likes.Like{PetID: 1, UserID: 3, CreatedAt: now}))
	require.NoError(t, repo.Add(ctx, likes.Like{PetID: 2, UserID: 3, CreatedAt: now}))
	assert.ErrorIs(t, repo.Add(ctx, likes.Like{PetID: 1, UserID: 7}), likes.ErrAlreadyLiked)

	byPet, err := repo.LikersByPets(ctx, []int64{1, 2, 9})
	require.NoError(t, err)
	assert.Equal(t, map[int64][]int64{1: {3, 7}, 2: {3}}, byPet)

	byUser, err := repo.LikedByUsers(ctx, []int64{3})
	require.NoError(t, err)
	assert.Equal(t, map[int64][]int64{3: {1, 2}}, byUser)

	require.NoError(t, repo.Remove(ctx, 1, 7))
	assert.ErrorIs(t, repo.Remove(ctx, 1, 7), likes.ErrNotFound)

	require.NoError(t, repo.DeleteByUser(ctx, 3))
	byPet, err = repo.LikersByPets(ctx, []int64{1, 2})
	require.NoError(t, err)
	assert.Empty(t, byPet)

	require.NoError(t, repo.Add(ctx, likes.Like{PetID: 5, UserID: 1}))
	require.NoError(t, repo.DeleteByPet(ctx, 5))
	byUser, err = repo.LikedByUsers(ctx, []int64{1})
	require.NoError(t, err)
	assert.Empty(t, byUser)
}

func names(ps []pets.Pet) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}
