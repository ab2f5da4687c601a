package handlers

import (
	"errors"
	"net/http"

	request "printfarm_ops/internal/adapter/http/dto/request"
	response "printfarm_ops/internal/adapter/http/dto/response"
	"printfarm_ops/internal/domain/entities"
	"printfarm_ops/internal/usecase"
	"printfarm_ops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPrintJobPayload = pkg.NewDomainErrorSimple("INVALID_PRINT_JOB_INPUT", "Invalid print job payload", http.StatusBadRequest)

// PrintJobHandler handles HTTP requests for print jobs, including the live
// COGS preview the job form calls on every change.

type PrintJobHandler struct {
	usecase usecase.IPrintJobUseCase
	costing usecase.ICostingUseCase
}

func NewPrintJobHandler(uc usecase.IPrintJobUseCase, costing usecase.ICostingUseCase) *PrintJobHandler {
	return &PrintJobHandler{usecase: uc, costing: costing}
}

func (h *PrintJobHandler) toEntity(payload request.PrintJobRequest) entities.PrintJob {
	return entities.PrintJob{
		Products:         payload.ToJobProducts(),
		PrinterTypeID:    payload.PrinterTypeID,
		PackagingCostEUR: usecase.ParseCurrencyInput(payload.PackagingCostEUR),
		Status:           entities.PrintJobStatus(payload.Status),
	}
}

func (h *PrintJobHandler) CreatePrintJob(c *gin.Context) {
	var payload request.PrintJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPrintJobPayload.HTTPStatus, errInvalidPrintJobPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), h.toEntity(payload))
	if err != nil {
		appErr := mapPrintJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPrintJob(created))
}

func (h *PrintJobHandler) GetPrintJob(c *gin.Context) {
	j, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPrintJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrintJob(j))
}

func (h *PrintJobHandler) ListPrintJobs(c *gin.Context) {
	js, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPrintJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrintJobs(js))
}

func (h *PrintJobHandler) UpdatePrintJob(c *gin.Context) {
	var payload request.PrintJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPrintJobPayload.HTTPStatus, errInvalidPrintJobPayload.ToHTTPError())
		return
	}

	j := h.toEntity(payload)
	j.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), j)
	if err != nil {
		appErr := mapPrintJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrintJob(updated))
}

func (h *PrintJobHandler) DeletePrintJob(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPrintJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// PreviewCogs serves the live draft estimate. Malformed JSON is still a 400,
// but an incomplete draft (missing lines, no printer type, empty packaging
// field) is a normal request and yields a zero, not-yet-valid preview.
func (h *PrintJobHandler) PreviewCogs(c *gin.Context) {
	var payload request.CogsPreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPrintJobPayload.HTTPStatus, errInvalidPrintJobPayload.ToHTTPError())
		return
	}

	lines := make([]usecase.DraftJobProduct, 0, len(payload.Products))
	for _, p := range payload.Products {
		lines = append(lines, usecase.DraftJobProduct{ProductID: p.ProductID, ItemsQty: p.ItemsQty})
	}

	preview, err := h.costing.ComputeJobCogsPreview(c.Request.Context(), lines, payload.PrinterTypeID, payload.PackagingCostEUR)
	if err != nil {
		appErr := mapPrintJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCogsPreview(preview))
}

func mapPrintJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPrintJobID), errors.Is(err, usecase.ErrInvalidPrintJob):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPrintJobNotFound):
		return pkg.NewDomainErrorSimple("PRINT_JOB_NOT_FOUND", "Print job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPrinterTypeNotFound):
		return pkg.NewDomainErrorSimple("PRINTER_TYPE_NOT_FOUND", "Printer type not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
