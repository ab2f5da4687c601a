package interfaces

import (
	"context"
	"printfarm_ops/internal/domain/entities"
)

// IPrintJobRepository abstracts DynamoDB persistence for PrintJob.

type IPrintJobRepository interface {
	Create(ctx context.Context, j entities.PrintJob) (entities.PrintJob, error)
	GetByID(ctx context.Context, id string) (entities.PrintJob, error)
	List(ctx context.Context) ([]entities.PrintJob, error)
	Update(ctx context.Context, j entities.PrintJob) (entities.PrintJob, error)
	Delete(ctx context.Context, id string) error
}
