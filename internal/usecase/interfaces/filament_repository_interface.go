package interfaces

import (
	"context"
	"printfarm_ops/internal/domain/entities"
)

// IFilamentRepository abstracts DynamoDB persistence for Filament.
//
// Costing only needs GetByID (price lookup); the CRUD panels need the rest.

type IFilamentRepository interface {
	Create(ctx context.Context, f entities.Filament) (entities.Filament, error)
	GetByID(ctx context.Context, id string) (entities.Filament, error)
	List(ctx context.Context) ([]entities.Filament, error)
	Update(ctx context.Context, f entities.Filament) (entities.Filament, error)
	Delete(ctx context.Context, id string) error
}
