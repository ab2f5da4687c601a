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
	ErrPrinterNotFound      = errors.New("printer not found")
	ErrInvalidPrinterID     = errors.New("invalid printer id")
	ErrInvalidPrinter       = errors.New("invalid printer")
	ErrPrinterTypeNotFound  = errors.New("printer type not found")
	ErrInvalidPrinterTypeID = errors.New("invalid printer type id")
	ErrInvalidPrinterType   = errors.New("invalid printer type")
	ErrPrinterTypeInUse     = errors.New("printer type still has printers")
)

// IPrinterTypeUseCase exposes printer-type fleet operations.

type IPrinterTypeUseCase interface {
	Create(ctx context.Context, pt entities.PrinterType) (entities.PrinterType, error)
	GetByID(ctx context.Context, id string) (entities.PrinterType, error)
	List(ctx context.Context) ([]entities.PrinterType, error)
	Update(ctx context.Context, pt entities.PrinterType) (entities.PrinterType, error)
	Delete(ctx context.Context, id string) error
}

type PrinterTypeUseCase struct {
	repo        interfaces.IPrinterTypeRepository
	printerRepo interfaces.IPrinterRepository
}

var _ IPrinterTypeUseCase = (*PrinterTypeUseCase)(nil)

func NewPrinterTypeUseCase(repo interfaces.IPrinterTypeRepository, printerRepo interfaces.IPrinterRepository) *PrinterTypeUseCase {
	return &PrinterTypeUseCase{repo: repo, printerRepo: printerRepo}
}

func (u *PrinterTypeUseCase) Create(ctx context.Context, pt entities.PrinterType) (entities.PrinterType, error) {
	if strings.TrimSpace(pt.Brand) == "" || strings.TrimSpace(pt.Model) == "" || pt.ExpectedLifeHours <= 0 {
		return entities.PrinterType{}, ErrInvalidPrinterType
	}

	now := time.Now().UTC()
	pt.ID = uuid.NewString()
	pt.CreatedAt = now
	pt.UpdatedAt = now
	return u.repo.Create(ctx, pt)
}

func (u *PrinterTypeUseCase) GetByID(ctx context.Context, id string) (entities.PrinterType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PrinterType{}, ErrInvalidPrinterTypeID
	}

	pt, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PrinterType{}, err
	}
	if pt.ID == "" {
		return entities.PrinterType{}, ErrPrinterTypeNotFound
	}
	return pt, nil
}

func (u *PrinterTypeUseCase) List(ctx context.Context) ([]entities.PrinterType, error) {
	return u.repo.List(ctx)
}

func (u *PrinterTypeUseCase) Update(ctx context.Context, pt entities.PrinterType) (entities.PrinterType, error) {
	pt.ID = strings.TrimSpace(pt.ID)
	if pt.ID == "" {
		return entities.PrinterType{}, ErrInvalidPrinterTypeID
	}
	if strings.TrimSpace(pt.Brand) == "" || strings.TrimSpace(pt.Model) == "" || pt.ExpectedLifeHours <= 0 {
		return entities.PrinterType{}, ErrInvalidPrinterType
	}

	existing, err := u.repo.GetByID(ctx, pt.ID)
	if err != nil {
		return entities.PrinterType{}, err
	}
	if existing.ID == "" {
		return entities.PrinterType{}, ErrPrinterTypeNotFound
	}

	pt.CreatedAt = existing.CreatedAt
	pt.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, pt)
}

// Delete refuses to remove a type that still has printers attached; dangling
// printers would silently drop out of every rate computation.
func (u *PrinterTypeUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPrinterTypeID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrPrinterTypeNotFound
	}

	printers, err := u.printerRepo.ListByTypeID(ctx, id)
	if err != nil {
		return err
	}
	if len(printers) > 0 {
		return ErrPrinterTypeInUse
	}
	return u.repo.Delete(ctx, id)
}

// IPrinterUseCase exposes physical-printer fleet operations.

type IPrinterUseCase interface {
	Create(ctx context.Context, p entities.Printer) (entities.Printer, error)
	GetByID(ctx context.Context, id string) (entities.Printer, error)
	List(ctx context.Context) ([]entities.Printer, error)
	Update(ctx context.Context, p entities.Printer) (entities.Printer, error)
	Delete(ctx context.Context, id string) error
}

type PrinterUseCase struct {
	repo     interfaces.IPrinterRepository
	typeRepo interfaces.IPrinterTypeRepository
}

var _ IPrinterUseCase = (*PrinterUseCase)(nil)

func NewPrinterUseCase(repo interfaces.IPrinterRepository, typeRepo interfaces.IPrinterTypeRepository) *PrinterUseCase {
	return &PrinterUseCase{repo: repo, typeRepo: typeRepo}
}

func (u *PrinterUseCase) validatePrinter(ctx context.Context, p entities.Printer) error {
	if strings.TrimSpace(p.PrinterTypeID) == "" || p.PurchasePriceEUR <= 0 {
		return ErrInvalidPrinter
	}
	switch p.Status {
	case entities.PrinterStatusIdle, entities.PrinterStatusPrinting, entities.PrinterStatusMaintenance:
	default:
		return ErrInvalidPrinter
	}

	pt, err := u.typeRepo.GetByID(ctx, p.PrinterTypeID)
	if err != nil {
		return err
	}
	if pt.ID == "" {
		return ErrPrinterTypeNotFound
	}
	return nil
}

func (u *PrinterUseCase) Create(ctx context.Context, p entities.Printer) (entities.Printer, error) {
	if p.Status == "" {
		p.Status = entities.PrinterStatusIdle
	}
	if err := u.validatePrinter(ctx, p); err != nil {
		return entities.Printer{}, err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *PrinterUseCase) GetByID(ctx context.Context, id string) (entities.Printer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Printer{}, ErrInvalidPrinterID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Printer{}, err
	}
	if p.ID == "" {
		return entities.Printer{}, ErrPrinterNotFound
	}
	return p, nil
}

func (u *PrinterUseCase) List(ctx context.Context) ([]entities.Printer, error) {
	return u.repo.List(ctx)
}

func (u *PrinterUseCase) Update(ctx context.Context, p entities.Printer) (entities.Printer, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Printer{}, ErrInvalidPrinterID
	}
	if err := u.validatePrinter(ctx, p); err != nil {
		return entities.Printer{}, err
	}

	existing, err := u.repo.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Printer{}, err
	}
	if existing.ID == "" {
		return entities.Printer{}, ErrPrinterNotFound
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, p)
}

func (u *PrinterUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPrinterID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrPrinterNotFound
	}
	return u.repo.Delete(ctx, id)
}
