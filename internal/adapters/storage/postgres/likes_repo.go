package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pet-parade/internal/domain/likes"
)

type LikesRepo struct {
	db *sql.DB
}

func NewLikesRepo(db *sql.DB) *LikesRepo {
	return &LikesRepo{db: db}
}

func (r *LikesRepo) Add(ctx context.Context, l likes.Like) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO likes (pet_id, user_id, created_at)
		VALUES ($1, $2, $3)
	`, l.PetID, l.UserID, l.CreatedAt)
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return likes.ErrAlreadyLiked
	case isForeignKeyViolation(err):
		// la mascota o el usuario se borró entre la validación y el insert
		return fmt.Errorf("%w: pet or user does not exist", likes.ErrInvalidInput)
	default:
		return fmt.Errorf("insert like: %w", err)
	}
}

func (r *LikesRepo) Remove(ctx context.Context, petID, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE pet_id = $1 AND user_id = $2`, petID, userID)
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected like: %w", err)
	}
	if n == 0 {
		return likes.ErrNotFound
	}
	return nil
}

func (r *LikesRepo) LikersByPets(ctx context.Context, petIDs []int64) (map[int64][]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pet_id, user_id
		FROM likes
		WHERE pet_id = ANY($1)
		ORDER BY pet_id, user_id
	`, petIDs)
	if err != nil {
		return nil, fmt.Errorf("query likers: %w", err)
	}
	defer rows.Close()

	return scanGroups(rows)
}

func (r *LikesRepo) LikedByUsers(ctx context.Context, userIDs []int64) (map[int64][]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, pet_id
		FROM likes
		WHERE user_id = ANY($1)
		ORDER BY user_id, pet_id
	`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("query liked pets: %w", err)
	}
	defer rows.Close()

	return scanGroups(rows)
}

// Tras borrar la mascota o el usuario, el ON DELETE CASCADE ya dejó esto en no-op.
func (r *LikesRepo) DeleteByPet(ctx context.Context, petID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE pet_id = $1`, petID); err != nil {
		return fmt.Errorf("delete likes of pet %d: %w", petID, err)
	}
	return nil
}

func (r *LikesRepo) DeleteByUser(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete likes of user %d: %w", userID, err)
	}
	return nil
}

// scanGroups lee filas (key, value) ya ordenadas y las agrupa por key.
func scanGroups(rows *sql.Rows) (map[int64][]int64, error) {
	out := make(map[int64][]int64)
	for rows.Next() {
		var key, val int64
		if err := rows.Scan(&key, &val); err != nil {
			return nil, fmt.Errorf("scan pair: %w", err)
		}
		out[key] = append(out[key], val)
	}
	return out, rows.Err()
}
