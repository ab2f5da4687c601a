package interfaces

import (
	"context"
	"printfarm_ops/internal/domain/entities"
)

// IPrinterTypeRepository abstracts DynamoDB persistence for PrinterType.

type IPrinterTypeRepository interface {
	Create(ctx context.Context, pt entities.PrinterType) (entities.PrinterType, error)
	GetByID(ctx context.Context, id string) (entities.PrinterType, error)
	List(ctx context.Context) ([]entities.PrinterType, error)
	Update(ctx context.Context, pt entities.PrinterType) (entities.PrinterType, error)
	Delete(ctx context.Context, id string) error
}

// IPrinterRepository abstracts DynamoDB persistence for Printer.
//
// The hourly-rate derivation must be able to:
//   - list every printer of a given type (purchase prices are averaged live,
//     never cached)

type IPrinterRepository interface {
	Create(ctx context.Context, p entities.Printer) (entities.Printer, error)
	GetByID(ctx context.Context, id string) (entities.Printer, error)
	List(ctx context.Context) ([]entities.Printer, error)
	ListByTypeID(ctx context.Context, printerTypeID string) ([]entities.Printer, error)
	Update(ctx context.Context, p entities.Printer) (entities.Printer, error)
	Delete(ctx context.Context, id string) error
}
