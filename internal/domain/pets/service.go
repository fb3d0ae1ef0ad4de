package pets

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const DefaultRecentLimit = 10

type Service struct {
	repo        Repository
	likes       LikeStore
	owners      OwnerDirectory
	now         func() time.Time
	recentLimit int
}

type Option func(*Service)

// WithRecentLimit fija cuántas mascotas devuelve FindRecentCreated.
func WithRecentLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.recentLimit = n
		}
	}
}

// WithLikes completa LikingUsers en las lecturas y limpia likes al borrar.
func WithLikes(l LikeStore) Option {
	return func(s *Service) { s.likes = l }
}

// WithOwners valida que el dueño exista en Create y Update.
func WithOwners(o OwnerDirectory) Option {
	return func(s *Service) { s.owners = o }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:        repo,
		now:         time.Now,
		recentLimit: DefaultRecentLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) FindAll(ctx context.Context) ([]Pet, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.withLikers(ctx, list)
}

func (s *Service) FindByID(ctx context.Context, id int64) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	out, err := s.withLikers(ctx, []Pet{p})
	if err != nil {
		return Pet{}, err
	}
	return out[0], nil
}

// FindRecentCreated devuelve las últimas recentLimit mascotas, más nuevas primero.
func (s *Service) FindRecentCreated(ctx context.Context) ([]Pet, error) {
	list, err := s.repo.ListRecent(ctx, s.recentLimit)
	if err != nil {
		return nil, err
	}
	return s.withLikers(ctx, list)
}

func (s *Service) FindAllBySpecies(ctx context.Context, species Species) ([]Pet, error) {
	if species < 0 {
		return nil, ErrInvalidInput
	}
	list, err := s.repo.ListBySpecies(ctx, species)
	if err != nil {
		return nil, err
	}
	return s.withLikers(ctx, list)
}

// Create persiste una mascota nueva. El repositorio asigna el ID.
func (s *Service) Create(ctx context.Context, p Pet) (Pet, error) {
	if p.Species < 0 {
		return Pet{}, ErrInvalidInput
	}
	if err := s.checkOwner(ctx, p.OwnerID); err != nil {
		return Pet{}, err
	}

	now := s.now()
	p.ID = nil
	p.Name = strings.TrimSpace(p.Name)
	p.Bio = strings.TrimSpace(p.Bio)
	p.LikingUsers = nil
	p.CreatedAt = now
	p.UpdatedAt = now

	return s.repo.Create(ctx, p)
}

// Update reemplaza el registro completo. Conserva CreatedAt del existente.
func (s *Service) Update(ctx context.Context, p Pet) (Pet, error) {
	if !p.HasID() || p.Species < 0 {
		return Pet{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, *p.ID)
	if err != nil {
		return Pet{}, err
	}
	if err := s.checkOwner(ctx, p.OwnerID); err != nil {
		return Pet{}, err
	}

	p.Name = strings.TrimSpace(p.Name)
	p.Bio = strings.TrimSpace(p.Bio)
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}

	out, err := s.withLikers(ctx, []Pet{p})
	if err != nil {
		return Pet{}, err
	}
	return out[0], nil
}

func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.likes == nil {
		return nil
	}
	return s.likes.DeleteByPet(ctx, id)
}

func (s *Service) checkOwner(ctx context.Context, ownerID *int64) error {
	if ownerID == nil || s.owners == nil {
		return nil
	}
	ok, err := s.owners.Exists(ctx, *ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: owner %d does not exist", ErrInvalidInput, *ownerID)
	}
	return nil
}

func (s *Service) withLikers(ctx context.Context, list []Pet) ([]Pet, error) {
	if s.likes == nil || len(list) == 0 {
		return list, nil
	}

	ids := make([]int64, 0, len(list))
	for _, p := range list {
		if p.HasID() {
			ids = append(ids, *p.ID)
		}
	}
	likers, err := s.likes.LikersByPets(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].HasID() {
			list[i].LikingUsers = likers[*list[i].ID]
		}
	}
	return list, nil
}
