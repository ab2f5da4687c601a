package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"printfarm_ops/internal/adapter/http/dto/response"
	"printfarm_ops/internal/adapter/http/handlers/mocks"
	"printfarm_ops/internal/domain/entities"
	"printfarm_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPrintJobHandler_CreatePrintJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		h := NewPrintJobHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/print-jobs", h.CreatePrintJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/print-jobs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unresolved printer type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		h := NewPrintJobHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/print-jobs", h.CreatePrintJob)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PrintJob{}, usecase.ErrPrinterTypeNotFound)

		body := `{"products":[{"product_id":"prod-1","items_qty":3}],"printer_type_id":"gone","packaging_cost_eur":"1.50"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/print-jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success parses packaging text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		h := NewPrintJobHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/print-jobs", h.CreatePrintJob)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PrintJob{})).DoAndReturn(
			func(_ context.Context, j entities.PrintJob) (entities.PrintJob, error) {
				if j.PackagingCostEUR != 1.5 {
					t.Fatalf("expected parsed packaging 1.5, got %v", j.PackagingCostEUR)
				}
				if len(j.Products) != 1 || j.Products[0].ItemsQty != 3 {
					t.Fatalf("unexpected lines: %+v", j.Products)
				}
				j.ID = "job-1"
				j.CalculatedCOGSEUR = 5.76
				return j, nil
			},
		)

		body := `{"products":[{"product_id":"prod-1","items_qty":3}],"printer_type_id":"pt-1","packaging_cost_eur":"1,50"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/print-jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res response.PrintJobResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res.ID != "job-1" || res.CalculatedCOGSEUR != 5.76 {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}

func TestPrintJobHandler_PreviewCogs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		costing := mocks.NewMockICostingUseCase(ctrl)
		h := NewPrintJobHandler(nil, costing)

		r := gin.New()
		r.POST("/v1/print-jobs/preview", h.PreviewCogs)

		req := httptest.NewRequest(http.MethodPost, "/v1/print-jobs/preview", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty draft is a normal request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		costing := mocks.NewMockICostingUseCase(ctrl)
		h := NewPrintJobHandler(nil, costing)

		r := gin.New()
		r.POST("/v1/print-jobs/preview", h.PreviewCogs)

		costing.EXPECT().ComputeJobCogsPreview(gomock.Any(), gomock.Len(0), "", "").
			Return(usecase.CogsPreview{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/print-jobs/preview", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res response.CogsPreviewResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res.IsValid || res.TotalCOGS != 0 {
			t.Fatalf("expected zero invalid preview, got %+v", res)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		costing := mocks.NewMockICostingUseCase(ctrl)
		h := NewPrintJobHandler(nil, costing)

		r := gin.New()
		r.POST("/v1/print-jobs/preview", h.PreviewCogs)

		costing.EXPECT().ComputeJobCogsPreview(gomock.Any(), []usecase.DraftJobProduct{
			{ProductID: "prod-1", ItemsQty: 3},
		}, "pt-1", "1.50").Return(usecase.CogsPreview{
			FilamentCost:   3.90,
			PrinterCost:    0.36,
			PackagingCost:  1.50,
			TotalPrintTime: 6,
			TotalCOGS:      5.76,
			IsValid:        true,
		}, nil)

		body := `{"products":[{"product_id":"prod-1","items_qty":3}],"printer_type_id":"pt-1","packaging_cost_eur":"1.50"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/print-jobs/preview", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var res response.CogsPreviewResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !res.IsValid || res.TotalCOGS != 5.76 {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}

func TestPrintJobHandler_UpdatePrintJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		h := NewPrintJobHandler(uc, nil)

		r := gin.New()
		r.PUT("/v1/print-jobs/:id", h.UpdatePrintJob)

		uc.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.PrintJob{})).DoAndReturn(
			func(_ context.Context, j entities.PrintJob) (entities.PrintJob, error) {
				if j.ID != "job-1" {
					t.Fatalf("expected path id on entity, got %q", j.ID)
				}
				return entities.PrintJob{}, usecase.ErrPrintJobNotFound
			},
		)

		body := `{"products":[{"product_id":"prod-1","items_qty":1}],"printer_type_id":"pt-1"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/print-jobs/job-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPrintJobHandler_DeletePrintJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		h := NewPrintJobHandler(uc, nil)

		r := gin.New()
		r.DELETE("/v1/print-jobs/:id", h.DeletePrintJob)

		uc.EXPECT().Delete(gomock.Any(), "job-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/print-jobs/job-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
