package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"printfarm_ops/internal/domain/entities"
	"printfarm_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidProduct   = errors.New("invalid product")
	ErrInvalidPlate     = errors.New("invalid plate")
)

// IProductUseCase exposes product catalog operations.
//
// Create and Update recompute the persisted COP through the strict costing
// path: a product referencing a filament that no longer resolves cannot be
// saved with an understated cost.

type IProductUseCase interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, []string, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, []string, error)
	Delete(ctx context.Context, id string) error
}

type ProductUseCase struct {
	repo         interfaces.IProductRepository
	filamentRepo interfaces.IFilamentRepository
	costing      ICostingUseCase
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, filamentRepo interfaces.IFilamentRepository, costing ICostingUseCase) *ProductUseCase {
	return &ProductUseCase{repo: repo, filamentRepo: filamentRepo, costing: costing}
}

func validateProduct(p entities.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidProduct
	}
	if len(p.Plates) == 0 && p.PrintTimeHrs <= 0 {
		return ErrInvalidProduct
	}
	if p.AdditionalPartsCost < 0 {
		return ErrInvalidProduct
	}
	for _, plate := range p.Plates {
		if strings.TrimSpace(plate.Name) == "" || plate.Quantity < 1 || plate.PrintTimeHrs <= 0 {
			return ErrInvalidPlate
		}
	}
	if len(p.AllUsages()) == 0 {
		return ErrInvalidProduct
	}
	return nil
}

// Create validates the product, derives its COP and generates a SKU. The
// returned warnings list flags usage lines backed by filaments with zero
// inventory on hand; that never blocks creation.
func (u *ProductUseCase) Create(ctx context.Context, p entities.Product) (entities.Product, []string, error) {
	if err := validateProduct(p); err != nil {
		return entities.Product{}, nil, err
	}

	cop, err := u.costing.ComputeProductCop(ctx, p.AllUsages(), p.AdditionalPartsCost)
	if err != nil {
		return entities.Product{}, nil, err
	}

	warnings, err := u.stockWarnings(ctx, p.AllUsages())
	if err != nil {
		return entities.Product{}, nil, err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.SKU = generateSKU()
	p.COP = cop
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Product{}, nil, err
	}
	log.Printf("[product][usecase] created id=%s sku=%s cop=%f", created.ID, created.SKU, created.COP)
	return created, warnings, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

// Update re-derives the COP from current filament prices. The SKU is stable
// across updates.
func (u *ProductUseCase) Update(ctx context.Context, p entities.Product) (entities.Product, []string, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Product{}, nil, ErrInvalidProductID
	}
	if err := validateProduct(p); err != nil {
		return entities.Product{}, nil, err
	}

	existing, err := u.repo.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Product{}, nil, err
	}
	if existing.ID == "" {
		return entities.Product{}, nil, ErrProductNotFound
	}

	cop, err := u.costing.ComputeProductCop(ctx, p.AllUsages(), p.AdditionalPartsCost)
	if err != nil {
		return entities.Product{}, nil, err
	}

	warnings, err := u.stockWarnings(ctx, p.AllUsages())
	if err != nil {
		return entities.Product{}, nil, err
	}

	p.SKU = existing.SKU
	p.COP = cop
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Product{}, nil, err
	}
	return updated, warnings, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrProductNotFound
	}
	return u.repo.Delete(ctx, id)
}

// stockWarnings reports usage lines whose filament currently has no inventory.
// Runs after the strict COP derivation, so every reference is known to resolve.
func (u *ProductUseCase) stockWarnings(ctx context.Context, usages []entities.FilamentUsage) ([]string, error) {
	var warnings []string
	seen := make(map[string]bool, len(usages))
	for _, usage := range usages {
		if seen[usage.FilamentID] {
			continue
		}
		seen[usage.FilamentID] = true

		f, err := u.filamentRepo.GetByID(ctx, usage.FilamentID)
		if err != nil {
			return nil, err
		}
		if f.ID != "" && f.TotalQtyKg == 0 {
			warnings = append(warnings, fmt.Sprintf("filament %s (%s %s) has no inventory on hand", f.ID, f.Brand, f.Color))
		}
	}
	return warnings, nil
}

func generateSKU() string {
	return "PRD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
