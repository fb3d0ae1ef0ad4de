package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"pet-parade/internal/domain/likes"
	"pet-parade/internal/domain/pets"
	"pet-parade/internal/domain/users"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolesCSV(t *testing.T) {
	assert.Equal(t, users.RoleUser, joinRoles(nil))
	assert.Equal(t, "ROLE_USER,ROLE_ADMIN", joinRoles([]string{users.RoleUser, users.RoleAdmin}))

	assert.Equal(t, []string{"ROLE_USER", "ROLE_ADMIN"}, splitRoles(" ROLE_USER , ROLE_ADMIN ,"))
	assert.Empty(t, splitRoles(""))
}

func TestIsUniqueViolation(t *testing.T) {
	dup := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, isUniqueViolation(dup))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(fmt.Errorf("other")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := fmt.Errorf("insert pet: %w", &pgconn.PgError{Code: "23503"})
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(nil))
}

// Requiere un Postgres descartable: TEST_DB_DSN=postgres://... go test ./...
func openTestDB(t *testing.T) *PetsRepo {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	_, err = db.Exec(`TRUNCATE likes, pets, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return NewPetsRepo(db)
}

func TestPetsRepo_Integration(t *testing.T) {
	repo := openTestDB(t)
	usersRepo := NewUsersRepo(repo.db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	owner, err := usersRepo.Create(ctx, users.User{
		Username:     "ana",
		Email:        "ana@example.com",
		PasswordHash: "x",
		Roles:        []string{users.RoleUser},
		DateCreated:  now,
	})
	require.NoError(t, err)

	_, err = usersRepo.Create(ctx, users.User{Username: "dup", Email: "ana@example.com", PasswordHash: "x", DateCreated: now})
	assert.ErrorIs(t, err, users.ErrEmailTaken)

	bd := time.Date(2020, 5, 17, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, pets.Pet{
		Name:      "Milo",
		Species:   pets.SpeciesDog,
		Birthday:  &bd,
		OwnerID:   &owner.ID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	require.True(t, created.HasID())

	got, err := repo.GetByID(ctx, *created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milo", got.Name)
	require.NotNil(t, got.Birthday)
	assert.Equal(t, "2020-05-17", got.Birthday.Format("2006-01-02"))

	recent, err := repo.ListRecent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	missing := int64(9999)
	assert.ErrorIs(t, repo.Update(ctx, pets.Pet{ID: &missing, UpdatedAt: now}), pets.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, *created.ID))
	require.NoError(t, repo.Delete(ctx, *created.ID))
	_, err = repo.GetByID(ctx, *created.ID)
	assert.ErrorIs(t, err, pets.ErrNotFound)

	byEmail, err := usersRepo.GetByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, byEmail.ID)
	assert.Equal(t, []string{users.RoleUser}, byEmail.Roles)
}

func TestOwnersAndLikes_Integration(t *testing.T) {
	petsRepo := openTestDB(t)
	usersRepo := NewUsersRepo(petsRepo.db)
	likesRepo := NewLikesRepo(petsRepo.db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	ghost := int64(4242)
	_, err := petsRepo.Create(ctx, pets.Pet{Name: "Nadie", OwnerID: &ghost, CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, pets.ErrInvalidInput)

	ana, err := usersRepo.Create(ctx, users.User{Username: "ana", Email: "ana@example.com", PasswordHash: "x", DateCreated: now})
	require.NoError(t, err)
	bob, err := usersRepo.Create(ctx, users.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x", DateCreated: now})
	require.NoError(t, err)

	milo, err := petsRepo.Create(ctx, pets.Pet{Name: "Milo", OwnerID: &ana.ID, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	milo.OwnerID = &ghost
	assert.ErrorIs(t, petsRepo.Update(ctx, milo), pets.ErrInvalidInput)

	owned, err := petsRepo.OwnedPetIDs(ctx, []int64{ana.ID, bob.ID})
	require.NoError(t, err)
	assert.Equal(t, map[int64][]int64{ana.ID: {*milo.ID}}, owned)

	require.NoError(t, likesRepo.Add(ctx, likes.Like{PetID: *milo.ID, UserID: bob.ID, CreatedAt: now}))
	assert.ErrorIs(t, likesRepo.Add(ctx, likes.Like{PetID: *milo.ID, UserID: bob.ID, CreatedAt: now}), likes.ErrAlreadyLiked)
	assert.ErrorIs(t, likesRepo.Add(ctx, likes.Like{PetID: 999, UserID: bob.ID, CreatedAt: now}), likes.ErrInvalidInput)

	likers, err := likesRepo.LikersByPets(ctx, []int64{*milo.ID})
	require.NoError(t, err)
	assert.Equal(t, []int64{bob.ID}, likers[*milo.ID])

	liked, err := likesRepo.LikedByUsers(ctx, []int64{bob.ID})
	require.NoError(t, err)
	assert.Equal(t, []int64{*milo.ID}, liked[bob.ID])

	require.NoError(t, likesRepo.Remove(ctx, *milo.ID, bob.ID))
	assert.ErrorIs(t, likesRepo.Remove(ctx, *milo.ID, bob.ID), likes.ErrNotFound)

	require.NoError(t, petsRepo.ClearOwner(ctx, ana.ID))
	got, err := petsRepo.GetByID(ctx, *milo.ID)
	require.NoError(t, err)
	assert.Nil(t, got.OwnerID)
}
