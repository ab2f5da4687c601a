package handlers

import (
	"bytes"
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

func TestPrinterTypeHandler_GetPrinterType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrinterTypeUseCase(ctrl)
		costing := mocks.NewMockICostingUseCase(ctrl)
		h := NewPrinterTypeHandler(uc, costing)

		r := gin.New()
		r.GET("/v1/printer-types/:id", h.GetPrinterType)

		uc.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PrinterType{}, usecase.ErrPrinterTypeNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/printer-types/pt-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("carries live hourly rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrinterTypeUseCase(ctrl)
		costing := mocks.NewMockICostingUseCase(ctrl)
		h := NewPrinterTypeHandler(uc, costing)

		r := gin.New()
		r.GET("/v1/printer-types/:id", h.GetPrinterType)

		uc.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PrinterType{
			ID: "pt-1", Brand: "Prusa", Model: "MK4S", ExpectedLifeHours: 10000,
		}, nil)
		costing.EXPECT().ComputePrinterHourlyRate(gomock.Any(), "pt-1").Return(0.06, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/printer-types/pt-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res response.PrinterTypeResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res.HourlyRateEUR != 0.06 {
			t.Fatalf("expected rate 0.06, got %+v", res)
		}
	})

	t.Run("rate failure does not break the panel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrinterTypeUseCase(ctrl)
		costing := mocks.NewMockICostingUseCase(ctrl)
		h := NewPrinterTypeHandler(uc, costing)

		r := gin.New()
		r.GET("/v1/printer-types/:id", h.GetPrinterType)

		uc.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PrinterType{
			ID: "pt-1", Brand: "Prusa", Model: "MK4S", ExpectedLifeHours: 10000,
		}, nil)
		costing.EXPECT().ComputePrinterHourlyRate(gomock.Any(), "pt-1").Return(0.0, usecase.ErrPrinterTypeNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/printer-types/pt-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res response.PrinterTypeResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res.HourlyRateEUR != 0 {
			t.Fatalf("expected zero rate, got %+v", res)
		}
	})
}

func TestPrinterTypeHandler_DeletePrinterType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("still in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrinterTypeUseCase(ctrl)
		h := NewPrinterTypeHandler(uc, nil)

		r := gin.New()
		r.DELETE("/v1/printer-types/:id", h.DeletePrinterType)

		uc.EXPECT().Delete(gomock.Any(), "pt-1").Return(usecase.ErrPrinterTypeInUse)

		req := httptest.NewRequest(http.MethodDelete, "/v1/printer-types/pt-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPrinterHandler_CreatePrinter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrinterUseCase(ctrl)
		h := NewPrinterHandler(uc)

		r := gin.New()
		r.POST("/v1/printers", h.CreatePrinter)

		req := httptest.NewRequest(http.MethodPost, "/v1/printers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown printer type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrinterUseCase(ctrl)
		h := NewPrinterHandler(uc)

		r := gin.New()
		r.POST("/v1/printers", h.CreatePrinter)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Printer{}, usecase.ErrPrinterTypeNotFound)

		body := `{"printer_type_id":"gone","purchase_price_eur":500}`
		req := httptest.NewRequest(http.MethodPost, "/v1/printers", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrinterUseCase(ctrl)
		h := NewPrinterHandler(uc)

		r := gin.New()
		r.POST("/v1/printers", h.CreatePrinter)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Printer{
			ID: "p-1", PrinterTypeID: "pt-1", Name: "left shelf", PurchasePriceEUR: 500,
			Status: entities.PrinterStatusIdle,
		}, nil)

		body := `{"printer_type_id":"pt-1","name":"left shelf","purchase_price_eur":500}`
		req := httptest.NewRequest(http.MethodPost, "/v1/printers", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res response.PrinterResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res.ID != "p-1" || res.Status != "idle" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}
