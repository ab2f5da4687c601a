package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"printfarm_ops/internal/domain/entities"
	"printfarm_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFilamentNotFound  = errors.New("filament not found")
	ErrInvalidFilamentID = errors.New("invalid filament id")
	ErrInvalidFilament   = errors.New("invalid filament")
)

// IFilamentUseCase exposes filament inventory operations.

type IFilamentUseCase interface {
	Create(ctx context.Context, f entities.Filament) (entities.Filament, error)
	GetByID(ctx context.Context, id string) (entities.Filament, error)
	List(ctx context.Context) ([]entities.Filament, error)
	Update(ctx context.Context, f entities.Filament) (entities.Filament, error)
	Delete(ctx context.Context, id string) error
}

type FilamentUseCase struct {
	repo interfaces.IFilamentRepository
}

var _ IFilamentUseCase = (*FilamentUseCase)(nil)

func NewFilamentUseCase(repo interfaces.IFilamentRepository) *FilamentUseCase {
	return &FilamentUseCase{repo: repo}
}

func validateFilament(f entities.Filament) error {
	if strings.TrimSpace(f.Color) == "" || strings.TrimSpace(f.Brand) == "" || strings.TrimSpace(f.Material) == "" {
		return ErrInvalidFilament
	}
	if f.PricePerKg <= 0 {
		return ErrInvalidFilament
	}
	if f.TotalQtyKg < 0 {
		return ErrInvalidFilament
	}
	if f.MinFilamentsKg != nil && *f.MinFilamentsKg < 0 {
		return ErrInvalidFilament
	}
	return nil
}

func (u *FilamentUseCase) Create(ctx context.Context, f entities.Filament) (entities.Filament, error) {
	if err := validateFilament(f); err != nil {
		return entities.Filament{}, err
	}

	now := time.Now().UTC()
	f.ID = uuid.NewString()
	f.CreatedAt = now
	f.UpdatedAt = now
	return u.repo.Create(ctx, f)
}

func (u *FilamentUseCase) GetByID(ctx context.Context, id string) (entities.Filament, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Filament{}, ErrInvalidFilamentID
	}

	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Filament{}, err
	}
	if f.ID == "" {
		return entities.Filament{}, ErrFilamentNotFound
	}
	return f, nil
}

func (u *FilamentUseCase) List(ctx context.Context) ([]entities.Filament, error) {
	return u.repo.List(ctx)
}

func (u *FilamentUseCase) Update(ctx context.Context, f entities.Filament) (entities.Filament, error) {
	f.ID = strings.TrimSpace(f.ID)
	if f.ID == "" {
		return entities.Filament{}, ErrInvalidFilamentID
	}
	if err := validateFilament(f); err != nil {
		return entities.Filament{}, err
	}

	existing, err := u.repo.GetByID(ctx, f.ID)
	if err != nil {
		return entities.Filament{}, err
	}
	if existing.ID == "" {
		return entities.Filament{}, ErrFilamentNotFound
	}

	f.CreatedAt = existing.CreatedAt
	f.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, f)
}

func (u *FilamentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidFilamentID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrFilamentNotFound
	}
	return u.repo.Delete(ctx, id)
}
