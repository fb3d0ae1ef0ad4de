package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-parade/internal/domain/users"
)

const userColumns = `id, username, email, password_hash, roles, date_created`

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_hash, roles, date_created)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		u.Username,
		u.Email,
		u.PasswordHash,
		joinRoles(u.Roles),
		u.DateCreated,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return users.User{}, users.ErrEmailTaken
		}
		return users.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			username = $2,
			email = $3,
			roles = $4
		WHERE id = $1
	`,
		u.ID,
		u.Username,
		u.Email,
		joinRoles(u.Roles),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrEmailTaken
		}
		return fmt.Errorf("update user %d: %w", u.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected user %d: %w", u.ID, err)
	}
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

func (r *UsersRepo) getOne(ctx context.Context, q string, arg any) (users.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, q, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func scanUser(s rowScanner) (users.User, error) {
	var (
		u     users.User
		roles string
	)
	if err := s.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &roles, &u.DateCreated); err != nil {
		return users.User{}, err
	}
	u.Roles = splitRoles(roles)
	return u, nil
}

// roles se guarda como CSV; son pocos valores y fijos.
func joinRoles(roles []string) string {
	if len(roles) == 0 {
		return users.RoleUser
	}
	return strings.Join(roles, ",")
}

func splitRoles(s string) []string {
	out := make([]string, 0, 1)
	for _, r := range strings.Split(s, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
