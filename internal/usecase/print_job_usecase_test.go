package usecase

import (
	"context"
	"errors"
	"testing"

	"printfarm_ops/internal/domain/entities"
	mock_interfaces "printfarm_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type printJobMocks struct {
	jobs         *mock_interfaces.MockIPrintJobRepository
	products     *mock_interfaces.MockIProductRepository
	printerTypes *mock_interfaces.MockIPrinterTypeRepository
	printers     *mock_interfaces.MockIPrinterRepository
}

func newPrintJobUseCase(ctrl *gomock.Controller) (*PrintJobUseCase, printJobMocks) {
	m := printJobMocks{
		jobs:         mock_interfaces.NewMockIPrintJobRepository(ctrl),
		products:     mock_interfaces.NewMockIProductRepository(ctrl),
		printerTypes: mock_interfaces.NewMockIPrinterTypeRepository(ctrl),
		printers:     mock_interfaces.NewMockIPrinterRepository(ctrl),
	}
	costing := NewCostingUseCase(nil, m.products, m.printers, m.printerTypes)
	return NewPrintJobUseCase(m.jobs, m.products, m.printerTypes, costing), m
}

func validPrintJob() entities.PrintJob {
	return entities.PrintJob{
		Products:         []entities.JobProduct{{ProductID: "prod-1", ItemsQty: 3}},
		PrinterTypeID:    "pt-1",
		PackagingCostEUR: 1.50,
	}
}

func TestPrintJobUseCase_Create(t *testing.T) {
	t.Run("no lines", func(t *testing.T) {
		uc := NewPrintJobUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.PrintJob{PrinterTypeID: "pt-1"})
		if !errors.Is(err, ErrInvalidPrintJob) {
			t.Fatalf("expected ErrInvalidPrintJob, got %v", err)
		}
	})

	t.Run("incomplete line", func(t *testing.T) {
		uc := NewPrintJobUseCase(nil, nil, nil, nil)
		j := validPrintJob()
		j.Products[0].ItemsQty = 0
		_, err := uc.Create(context.Background(), j)
		if !errors.Is(err, ErrInvalidPrintJob) {
			t.Fatalf("expected ErrInvalidPrintJob, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewPrintJobUseCase(nil, nil, nil, nil)
		j := validPrintJob()
		j.Status = "paused"
		_, err := uc.Create(context.Background(), j)
		if !errors.Is(err, ErrInvalidPrintJob) {
			t.Fatalf("expected ErrInvalidPrintJob, got %v", err)
		}
	})

	t.Run("unresolved product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPrintJobUseCase(ctrl)

		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{}, nil)

		_, err := uc.Create(context.Background(), validPrintJob())
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("missing printer type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPrintJobUseCase(ctrl)

		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1"}, nil)

		j := validPrintJob()
		j.PrinterTypeID = ""
		_, err := uc.Create(context.Background(), j)
		if !errors.Is(err, ErrInvalidPrintJob) {
			t.Fatalf("expected ErrInvalidPrintJob, got %v", err)
		}
	})

	t.Run("unresolved printer type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPrintJobUseCase(ctrl)

		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1"}, nil)
		m.printerTypes.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PrinterType{}, nil)

		_, err := uc.Create(context.Background(), validPrintJob())
		if !errors.Is(err, ErrPrinterTypeNotFound) {
			t.Fatalf("expected ErrPrinterTypeNotFound, got %v", err)
		}
	})

	t.Run("success persists priced figures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPrintJobUseCase(ctrl)

		product := entities.Product{ID: "prod-1", COP: 1.30, PrintTimeHrs: 2}
		printerType := entities.PrinterType{ID: "pt-1", ExpectedLifeHours: 10000}

		// Once during validation, once while pricing.
		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(product, nil).Times(2)
		m.printerTypes.EXPECT().GetByID(gomock.Any(), "pt-1").Return(printerType, nil).Times(2)
		m.printers.EXPECT().ListByTypeID(gomock.Any(), "pt-1").Return([]entities.Printer{
			{ID: "p-1", PurchasePriceEUR: 500},
			{ID: "p-2", PurchasePriceEUR: 700},
		}, nil)
		m.jobs.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PrintJob{})).DoAndReturn(
			func(_ context.Context, j entities.PrintJob) (entities.PrintJob, error) {
				if j.ID == "" || j.CreatedAt.IsZero() {
					t.Fatalf("expected id and timestamps: %+v", j)
				}
				if j.Status != entities.PrintJobStatusPending {
					t.Fatalf("expected pending status, got %q", j.Status)
				}
				if !almostEqual(j.CalculatedCOGSEUR, 5.76) {
					t.Fatalf("expected cogs 5.76, got %v", j.CalculatedCOGSEUR)
				}
				if !almostEqual(j.TotalPrintTimeHrs, 6) {
					t.Fatalf("expected print time 6, got %v", j.TotalPrintTimeHrs)
				}
				return j, nil
			},
		)

		created, err := uc.Create(context.Background(), validPrintJob())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(created.CalculatedCOGSEUR, 5.76) {
			t.Fatalf("unexpected job: %+v", created)
		}
	})
}

func TestPrintJobUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPrintJobUseCase(ctrl)

		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.PrintJob{}, nil)

		j := validPrintJob()
		j.ID = "job-1"
		_, err := uc.Update(context.Background(), j)
		if !errors.Is(err, ErrPrintJobNotFound) {
			t.Fatalf("expected ErrPrintJobNotFound, got %v", err)
		}
	})

	t.Run("reprices on update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPrintJobUseCase(ctrl)

		existing := validPrintJob()
		existing.ID = "job-1"
		existing.Status = entities.PrintJobStatusPending
		existing.CalculatedCOGSEUR = 99

		product := entities.Product{ID: "prod-1", COP: 1.30, PrintTimeHrs: 2}
		printerType := entities.PrinterType{ID: "pt-1", ExpectedLifeHours: 10000}

		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(existing, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(product, nil).Times(2)
		m.printerTypes.EXPECT().GetByID(gomock.Any(), "pt-1").Return(printerType, nil).Times(2)
		m.printers.EXPECT().ListByTypeID(gomock.Any(), "pt-1").Return(nil, nil)
		m.jobs.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.PrintJob{})).DoAndReturn(
			func(_ context.Context, j entities.PrintJob) (entities.PrintJob, error) {
				// No printers in the fleet yet, so only filament and packaging.
				if !almostEqual(j.CalculatedCOGSEUR, 5.40) {
					t.Fatalf("expected repriced cogs 5.40, got %v", j.CalculatedCOGSEUR)
				}
				if j.Status != entities.PrintJobStatusPending {
					t.Fatalf("expected inherited status, got %q", j.Status)
				}
				return j, nil
			},
		)

		j := validPrintJob()
		j.ID = "job-1"
		j.Status = ""
		if _, err := uc.Update(context.Background(), j); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPrintJobUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPrintJobUseCase(ctrl)

		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.PrintJob{}, nil)

		if err := uc.Delete(context.Background(), "job-1"); !errors.Is(err, ErrPrintJobNotFound) {
			t.Fatalf("expected ErrPrintJobNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPrintJobUseCase(ctrl)

		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.PrintJob{ID: "job-1"}, nil)
		m.jobs.EXPECT().Delete(gomock.Any(), "job-1").Return(nil)

		if err := uc.Delete(context.Background(), "job-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
