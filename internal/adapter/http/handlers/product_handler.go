package handlers

import (
	"errors"
	"log"
	"net/http"

	request "printfarm_ops/internal/adapter/http/dto/request"
	response "printfarm_ops/internal/adapter/http/dto/response"
	"printfarm_ops/internal/usecase"
	"printfarm_ops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)

// ProductHandler handles HTTP requests for the product catalog panel.
//
// Saving a product derives its COP through the strict costing path, so a
// payload referencing an unknown filament is rejected as a whole instead of
// being stored with an understated cost.

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	created, warnings, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(warnings) > 0 {
		log.Printf("[product][handler] created with warnings id=%s warnings=%d", created.ID, len(warnings))
	}

	c.JSON(http.StatusCreated, response.FromProductWithWarnings(created, warnings))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(p))
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	ps, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(ps))
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	p := payload.ToEntity()
	p.ID = c.Param("id")

	updated, warnings, err := h.usecase.Update(c.Request.Context(), p)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductWithWarnings(updated, warnings))
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidProduct),
		errors.Is(err, usecase.ErrInvalidPlate), errors.Is(err, usecase.ErrNoUsageLines),
		errors.Is(err, usecase.ErrInvalidUsageLine), errors.Is(err, usecase.ErrInvalidCostValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownFilament):
		return pkg.NewDomainErrorSimple("UNKNOWN_FILAMENT_REFERENCE", "Product references an unknown filament", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
