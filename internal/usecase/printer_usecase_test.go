package usecase

import (
	"context"
	"errors"
	"testing"

	"printfarm_ops/internal/domain/entities"
	mock_interfaces "printfarm_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPrinterTypeUseCase_Create(t *testing.T) {
	t.Run("invalid printer type", func(t *testing.T) {
		uc := NewPrinterTypeUseCase(nil, nil)
		cases := []entities.PrinterType{
			{},
			{Brand: "Prusa", Model: "MK4S", ExpectedLifeHours: 0},
			{Brand: "  ", Model: "MK4S", ExpectedLifeHours: 10000},
		}
		for _, pt := range cases {
			if _, err := uc.Create(context.Background(), pt); !errors.Is(err, ErrInvalidPrinterType) {
				t.Fatalf("expected ErrInvalidPrinterType for %+v, got %v", pt, err)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPrinterTypeRepository(ctrl)
		uc := NewPrinterTypeUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PrinterType{})).DoAndReturn(
			func(_ context.Context, pt entities.PrinterType) (entities.PrinterType, error) {
				if pt.ID == "" || pt.CreatedAt.IsZero() {
					t.Fatalf("expected id and timestamps: %+v", pt)
				}
				return pt, nil
			},
		)

		pt, err := uc.Create(context.Background(), entities.PrinterType{Brand: "Prusa", Model: "MK4S", ExpectedLifeHours: 10000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pt.Brand != "Prusa" {
			t.Fatalf("unexpected printer type: %+v", pt)
		}
	})
}

func TestPrinterTypeUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPrinterTypeRepository(ctrl)
		uc := NewPrinterTypeUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PrinterType{}, nil)

		if err := uc.Delete(context.Background(), "pt-1"); !errors.Is(err, ErrPrinterTypeNotFound) {
			t.Fatalf("expected ErrPrinterTypeNotFound, got %v", err)
		}
	})

	t.Run("refused while printers attached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPrinterTypeRepository(ctrl)
		printerRepo := mock_interfaces.NewMockIPrinterRepository(ctrl)
		uc := NewPrinterTypeUseCase(repo, printerRepo)

		repo.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PrinterType{ID: "pt-1"}, nil)
		printerRepo.EXPECT().ListByTypeID(gomock.Any(), "pt-1").Return([]entities.Printer{{ID: "p-1"}}, nil)

		if err := uc.Delete(context.Background(), "pt-1"); !errors.Is(err, ErrPrinterTypeInUse) {
			t.Fatalf("expected ErrPrinterTypeInUse, got %v", err)
		}
	})

	t.Run("success with empty fleet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPrinterTypeRepository(ctrl)
		printerRepo := mock_interfaces.NewMockIPrinterRepository(ctrl)
		uc := NewPrinterTypeUseCase(repo, printerRepo)

		repo.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PrinterType{ID: "pt-1"}, nil)
		printerRepo.EXPECT().ListByTypeID(gomock.Any(), "pt-1").Return(nil, nil)
		repo.EXPECT().Delete(gomock.Any(), "pt-1").Return(nil)

		if err := uc.Delete(context.Background(), "pt-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPrinterUseCase_Create(t *testing.T) {
	t.Run("invalid printer", func(t *testing.T) {
		uc := NewPrinterUseCase(nil, nil)
		cases := []entities.Printer{
			{},
			{PrinterTypeID: "pt-1", PurchasePriceEUR: 0},
			{PrinterTypeID: "pt-1", PurchasePriceEUR: 500, Status: "exploded"},
		}
		for _, p := range cases {
			if _, err := uc.Create(context.Background(), p); !errors.Is(err, ErrInvalidPrinter) {
				t.Fatalf("expected ErrInvalidPrinter for %+v, got %v", p, err)
			}
		}
	})

	t.Run("unknown printer type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		typeRepo := mock_interfaces.NewMockIPrinterTypeRepository(ctrl)
		uc := NewPrinterUseCase(nil, typeRepo)

		typeRepo.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PrinterType{}, nil)

		_, err := uc.Create(context.Background(), entities.Printer{PrinterTypeID: "pt-1", PurchasePriceEUR: 500})
		if !errors.Is(err, ErrPrinterTypeNotFound) {
			t.Fatalf("expected ErrPrinterTypeNotFound, got %v", err)
		}
	})

	t.Run("success defaults status to idle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPrinterRepository(ctrl)
		typeRepo := mock_interfaces.NewMockIPrinterTypeRepository(ctrl)
		uc := NewPrinterUseCase(repo, typeRepo)

		typeRepo.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PrinterType{ID: "pt-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Printer{})).DoAndReturn(
			func(_ context.Context, p entities.Printer) (entities.Printer, error) {
				if p.Status != entities.PrinterStatusIdle {
					t.Fatalf("expected idle status, got %q", p.Status)
				}
				if p.ID == "" || p.CreatedAt.IsZero() {
					t.Fatalf("expected id and timestamps: %+v", p)
				}
				return p, nil
			},
		)

		p, err := uc.Create(context.Background(), entities.Printer{PrinterTypeID: "pt-1", PurchasePriceEUR: 500})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.PurchasePriceEUR != 500 {
			t.Fatalf("unexpected printer: %+v", p)
		}
	})
}

func TestPrinterUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPrinterRepository(ctrl)
		typeRepo := mock_interfaces.NewMockIPrinterTypeRepository(ctrl)
		uc := NewPrinterUseCase(repo, typeRepo)

		typeRepo.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PrinterType{ID: "pt-1"}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Printer{}, nil)

		_, err := uc.Update(context.Background(), entities.Printer{
			ID: "p-1", PrinterTypeID: "pt-1", PurchasePriceEUR: 500, Status: entities.PrinterStatusPrinting,
		})
		if !errors.Is(err, ErrPrinterNotFound) {
			t.Fatalf("expected ErrPrinterNotFound, got %v", err)
		}
	})
}
