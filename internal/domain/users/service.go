package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo  Repository
	pets  PetOwnership
	likes LikeStore
	now   func() time.Time
	cost  int
}

type Option func(*Service)

// WithPetLinks completa PetIDs y LikedPetIDs en las lecturas y limpia
// mascotas y likes al borrar. Cualquiera de los dos puede ser nil.
func WithPetLinks(p PetOwnership, l LikeStore) Option {
	return func(s *Service) {
		s.pets = p
		s.likes = l
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		now:  time.Now,
		cost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type SignupInput struct {
	Username string
	Email    string
	Password string
}

func (s *Service) FindAll(ctx context.Context) ([]User, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.withLinks(ctx, list)
}

func (s *Service) FindByID(ctx context.Context, id int64) (User, error) {
	if id <= 0 {
		return User{}, ErrNotFound
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	return s.withLinksOne(ctx, u)
}

// Exists lo usa pets para validar el dueño.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	_, err := s.repo.GetByID(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// FindByEmail busca por email normalizado. No verifica credenciales.
func (s *Service) FindByEmail(ctx context.Context, email string) (User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return User{}, ErrNotFound
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	return s.withLinksOne(ctx, u)
}

// Signup crea el usuario con ROLE_USER y el password hasheado con bcrypt.
func (s *Service) Signup(ctx context.Context, in SignupInput) (User, error) {
	email := normalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)
	if email == "" || username == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return User{}, ErrInvalidInput
		}
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Roles:        []string{RoleUser},
		DateCreated:  s.now(),
	})
}

// Update reemplaza username/email/roles. Password y fecha de alta se conservan.
func (s *Service) Update(ctx context.Context, u User) (User, error) {
	if u.ID <= 0 {
		return User{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, u.ID)
	if err != nil {
		return User{}, err
	}

	current.Username = strings.TrimSpace(u.Username)
	current.Email = normalizeEmail(u.Email)
	if len(u.Roles) > 0 {
		current.Roles = u.Roles
	}
	if current.Username == "" || current.Email == "" {
		return User{}, ErrInvalidInput
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return User{}, err
	}
	return s.withLinksOne(ctx, current)
}

// DeleteByID borra el usuario, sus likes y lo quita como dueño de sus mascotas.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.likes != nil {
		if err := s.likes.DeleteByUser(ctx, id); err != nil {
			return fmt.Errorf("delete likes of user %d: %w", id, err)
		}
	}
	if s.pets != nil {
		if err := s.pets.ClearOwner(ctx, id); err != nil {
			return fmt.Errorf("release pets of user %d: %w", id, err)
		}
	}
	return nil
}

// VerifyCredentials compara el password contra el hash guardado.
// Email inexistente y password incorrecto devuelven el mismo error.
func (s *Service) VerifyCredentials(ctx context.Context, email, password string) (User, error) {
	u, err := s.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) withLinksOne(ctx context.Context, u User) (User, error) {
	out, err := s.withLinks(ctx, []User{u})
	if err != nil {
		return User{}, err
	}
	return out[0], nil
}

func (s *Service) withLinks(ctx context.Context, list []User) ([]User, error) {
	if len(list) == 0 || (s.pets == nil && s.likes == nil) {
		return list, nil
	}

	ids := make([]int64, 0, len(list))
	for _, u := range list {
		ids = append(ids, u.ID)
	}

	var owned, liked map[int64][]int64
	var err error
	if s.pets != nil {
		if owned, err = s.pets.OwnedPetIDs(ctx, ids); err != nil {
			return nil, fmt.Errorf("owned pets: %w", err)
		}
	}
	if s.likes != nil {
		if liked, err = s.likes.LikedByUsers(ctx, ids); err != nil {
			return nil, fmt.Errorf("liked pets: %w", err)
		}
	}

	for i := range list {
		list[i].PetIDs = owned[list[i].ID]
		list[i].LikedPetIDs = liked[list[i].ID]
	}
	return list, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
