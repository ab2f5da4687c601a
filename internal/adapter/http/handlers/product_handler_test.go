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

func TestProductHandler_CreateProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.POST("/v1/products", h.CreateProduct)

		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown filament reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.POST("/v1/products", h.CreateProduct)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Product{}, nil, usecase.ErrUnknownFilament)

		body := `{"name":"Dragon","print_time_hrs":2,"usages":[{"filament_id":"ghost","grams_used":50}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success with stock warnings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.POST("/v1/products", h.CreateProduct)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, []string, error) {
				if p.Name != "Dragon" || len(p.Usages) != 1 {
					t.Fatalf("unexpected entity: %+v", p)
				}
				p.ID = "prod-1"
				p.SKU = "PRD-AAAA1111"
				p.COP = 1.30
				return p, []string{"filament fil-1 (Prusament Black) has no inventory on hand"}, nil
			},
		)

		body := `{"name":"Dragon","print_time_hrs":2,"additional_parts_cost":0.30,"usages":[{"filament_id":"fil-1","grams_used":50}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res response.ProductResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res.SKU != "PRD-AAAA1111" || res.COP != 1.30 {
			t.Fatalf("unexpected response: %+v", res)
		}
		if len(res.Warnings) != 1 {
			t.Fatalf("expected warnings in response: %+v", res)
		}
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.GET("/v1/products/:id", h.GetProduct)

		uc.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{}, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/prod-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("effective time reflects plates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.GET("/v1/products/:id", h.GetProduct)

		uc.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{
			ID:           "prod-1",
			Name:         "Dragon",
			PrintTimeHrs: 99,
			Plates: []entities.Plate{
				{Name: "base", Quantity: 2, PrintTimeHrs: 1.5},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/prod-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res response.ProductResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res.EffectivePrintTimeHrs != 3 {
			t.Fatalf("expected effective time 3, got %+v", res)
		}
	})
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload per usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.PUT("/v1/products/:id", h.UpdateProduct)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Product{}, nil, usecase.ErrInvalidPlate)

		body := `{"name":"Dragon","plates":[{"name":"base","quantity":1,"print_time_hrs":1}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/products/prod-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
