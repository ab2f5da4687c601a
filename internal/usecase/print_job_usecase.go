package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"printfarm_ops/internal/domain/entities"
	"printfarm_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPrintJobNotFound  = errors.New("print job not found")
	ErrInvalidPrintJobID = errors.New("invalid print job id")
	ErrInvalidPrintJob   = errors.New("invalid print job")
)

// IPrintJobUseCase exposes print job planning operations.
//
// Create and Update persist the COGS figure derived with the same algorithm
// the live preview uses, so a submitted job always matches what the form
// showed. Execution-side transitions (start/stop) live outside this service.

type IPrintJobUseCase interface {
	Create(ctx context.Context, j entities.PrintJob) (entities.PrintJob, error)
	GetByID(ctx context.Context, id string) (entities.PrintJob, error)
	List(ctx context.Context) ([]entities.PrintJob, error)
	Update(ctx context.Context, j entities.PrintJob) (entities.PrintJob, error)
	Delete(ctx context.Context, id string) error
}

type PrintJobUseCase struct {
	repo        interfaces.IPrintJobRepository
	productRepo interfaces.IProductRepository
	typeRepo    interfaces.IPrinterTypeRepository
	costing     ICostingUseCase
}

var _ IPrintJobUseCase = (*PrintJobUseCase)(nil)

func NewPrintJobUseCase(
	repo interfaces.IPrintJobRepository,
	productRepo interfaces.IProductRepository,
	typeRepo interfaces.IPrinterTypeRepository,
	costing ICostingUseCase,
) *PrintJobUseCase {
	return &PrintJobUseCase{repo: repo, productRepo: productRepo, typeRepo: typeRepo, costing: costing}
}

// validateJob checks what a persisted job must have that a draft may lack:
// at least one complete line, every product resolving, and a known printer
// type. Leniency belongs to the preview, not to storage.
func (u *PrintJobUseCase) validateJob(ctx context.Context, j entities.PrintJob) error {
	if len(j.Products) == 0 {
		return ErrInvalidPrintJob
	}
	for _, line := range j.Products {
		if strings.TrimSpace(line.ProductID) == "" || line.ItemsQty < 1 {
			return ErrInvalidPrintJob
		}
		p, err := u.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return err
		}
		if p.ID == "" {
			return ErrProductNotFound
		}
	}
	if j.PackagingCostEUR < 0 {
		return ErrInvalidPrintJob
	}

	if strings.TrimSpace(j.PrinterTypeID) == "" {
		return ErrInvalidPrintJob
	}
	pt, err := u.typeRepo.GetByID(ctx, j.PrinterTypeID)
	if err != nil {
		return err
	}
	if pt.ID == "" {
		return ErrPrinterTypeNotFound
	}
	return nil
}

func (u *PrintJobUseCase) price(ctx context.Context, j entities.PrintJob) (CogsPreview, error) {
	lines := make([]DraftJobProduct, 0, len(j.Products))
	for _, line := range j.Products {
		lines = append(lines, DraftJobProduct{ProductID: line.ProductID, ItemsQty: line.ItemsQty})
	}
	packaging := strconv.FormatFloat(j.PackagingCostEUR, 'f', -1, 64)
	return u.costing.ComputeJobCogsPreview(ctx, lines, j.PrinterTypeID, packaging)
}

func (u *PrintJobUseCase) Create(ctx context.Context, j entities.PrintJob) (entities.PrintJob, error) {
	if j.Status == "" {
		j.Status = entities.PrintJobStatusPending
	}
	if !validJobStatus(j.Status) {
		return entities.PrintJob{}, ErrInvalidPrintJob
	}
	if err := u.validateJob(ctx, j); err != nil {
		return entities.PrintJob{}, err
	}

	preview, err := u.price(ctx, j)
	if err != nil {
		return entities.PrintJob{}, err
	}

	now := time.Now().UTC()
	j.ID = uuid.NewString()
	j.CalculatedCOGSEUR = preview.TotalCOGS
	j.TotalPrintTimeHrs = preview.TotalPrintTime
	j.CreatedAt = now
	j.UpdatedAt = now

	created, err := u.repo.Create(ctx, j)
	if err != nil {
		return entities.PrintJob{}, err
	}
	log.Printf("[printjob][usecase] created id=%s cogs=%f print_time_hrs=%f", created.ID, created.CalculatedCOGSEUR, created.TotalPrintTimeHrs)
	return created, nil
}

func (u *PrintJobUseCase) GetByID(ctx context.Context, id string) (entities.PrintJob, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PrintJob{}, ErrInvalidPrintJobID
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PrintJob{}, err
	}
	if j.ID == "" {
		return entities.PrintJob{}, ErrPrintJobNotFound
	}
	return j, nil
}

func (u *PrintJobUseCase) List(ctx context.Context) ([]entities.PrintJob, error) {
	return u.repo.List(ctx)
}

func (u *PrintJobUseCase) Update(ctx context.Context, j entities.PrintJob) (entities.PrintJob, error) {
	j.ID = strings.TrimSpace(j.ID)
	if j.ID == "" {
		return entities.PrintJob{}, ErrInvalidPrintJobID
	}

	existing, err := u.repo.GetByID(ctx, j.ID)
	if err != nil {
		return entities.PrintJob{}, err
	}
	if existing.ID == "" {
		return entities.PrintJob{}, ErrPrintJobNotFound
	}

	if j.Status == "" {
		j.Status = existing.Status
	}
	if !validJobStatus(j.Status) {
		return entities.PrintJob{}, ErrInvalidPrintJob
	}
	if err := u.validateJob(ctx, j); err != nil {
		return entities.PrintJob{}, err
	}

	preview, err := u.price(ctx, j)
	if err != nil {
		return entities.PrintJob{}, err
	}

	j.CalculatedCOGSEUR = preview.TotalCOGS
	j.TotalPrintTimeHrs = preview.TotalPrintTime
	j.CreatedAt = existing.CreatedAt
	j.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, j)
}

func (u *PrintJobUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPrintJobID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrPrintJobNotFound
	}
	return u.repo.Delete(ctx, id)
}

func validJobStatus(s entities.PrintJobStatus) bool {
	switch s {
	case entities.PrintJobStatusPending, entities.PrintJobStatusPrinting,
		entities.PrintJobStatusCompleted, entities.PrintJobStatusCancelled:
		return true
	}
	return false
}
