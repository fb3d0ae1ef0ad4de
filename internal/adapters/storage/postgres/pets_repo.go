package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pet-parade/internal/domain/pets"
)

const petColumns = `id, name, bio, species, birthday, owner_id, created_at, updated_at`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (
			name, bio, species, birthday, owner_id,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		p.Name,
		p.Bio,
		int(p.Species),
		toNullDate(p.Birthday),
		toNullInt64(p.OwnerID),
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return pets.Pet{}, fmt.Errorf("%w: owner does not exist", pets.ErrInvalidInput)
		}
		return pets.Pet{}, fmt.Errorf("insert pet: %w", err)
	}

	p.ID = &id
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	if !p.HasID() {
		return pets.ErrInvalidInput
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			bio = $3,
			species = $4,
			birthday = $5,
			owner_id = $6,
			updated_at = $7
		WHERE id = $1
	`,
		*p.ID,
		p.Name,
		p.Bio,
		int(p.Species),
		toNullDate(p.Birthday),
		toNullInt64(p.OwnerID),
		p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: owner does not exist", pets.ErrInvalidInput)
		}
		return fmt.Errorf("update pet %d: %w", *p.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected pet %d: %w", *p.ID, err)
	}
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("get pet %d: %w", id, err)
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.query(ctx, `SELECT `+petColumns+` FROM pets ORDER BY created_at ASC, id ASC`)
}

func (r *PetsRepo) ListBySpecies(ctx context.Context, s pets.Species) ([]pets.Pet, error) {
	return r.query(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE species = $1
		ORDER BY created_at ASC, id ASC
	`, int(s))
}

func (r *PetsRepo) ListRecent(ctx context.Context, limit int) ([]pets.Pet, error) {
	return r.query(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete pet %d: %w", id, err)
	}
	return nil
}

func (r *PetsRepo) OwnedPetIDs(ctx context.Context, ownerIDs []int64) (map[int64][]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT owner_id, id
		FROM pets
		WHERE owner_id = ANY($1)
		ORDER BY owner_id, id
	`, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("query owned pets: %w", err)
	}
	defer rows.Close()

	return scanGroups(rows)
}

func (r *PetsRepo) ClearOwner(ctx context.Context, ownerID int64) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE pets SET owner_id = NULL WHERE owner_id = $1`, ownerID); err != nil {
		return fmt.Errorf("clear owner %d: %w", ownerID, err)
	}
	return nil
}

func (r *PetsRepo) query(ctx context.Context, q string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pet: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var (
		p       pets.Pet
		id      int64
		species int
		bd      sql.NullTime
		owner   sql.NullInt64
	)
	if err := s.Scan(
		&id,
		&p.Name,
		&p.Bio,
		&species,
		&bd,
		&owner,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.ID = &id
	p.Species = pets.Species(species)
	if bd.Valid {
		// birthday es DATE; pgx lo entrega como medianoche UTC
		t := bd.Time
		p.Birthday = &t
	}
	if owner.Valid {
		o := owner.Int64
		p.OwnerID = &o
	}
	return p, nil
}

func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func toNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
