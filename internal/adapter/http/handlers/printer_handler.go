package handlers

import (
	"errors"
	"net/http"

	request "printfarm_ops/internal/adapter/http/dto/request"
	response "printfarm_ops/internal/adapter/http/dto/response"
	"printfarm_ops/internal/usecase"
	"printfarm_ops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPrinterPayload = pkg.NewDomainErrorSimple("INVALID_PRINTER_INPUT", "Invalid printer payload", http.StatusBadRequest)

// PrinterTypeHandler handles HTTP requests for printer types. Responses carry
// the live hourly depreciation rate so the fleet panel never shows a stale
// figure.

type PrinterTypeHandler struct {
	usecase usecase.IPrinterTypeUseCase
	costing usecase.ICostingUseCase
}

func NewPrinterTypeHandler(uc usecase.IPrinterTypeUseCase, costing usecase.ICostingUseCase) *PrinterTypeHandler {
	return &PrinterTypeHandler{usecase: uc, costing: costing}
}

func (h *PrinterTypeHandler) withRate(c *gin.Context, pt response.PrinterTypeResponse) response.PrinterTypeResponse {
	rate, err := h.costing.ComputePrinterHourlyRate(c.Request.Context(), pt.ID)
	if err != nil {
		// A missing rate must not break the panel; the stored fields stand
		// on their own.
		return pt
	}
	pt.HourlyRateEUR = rate
	return pt
}

func (h *PrinterTypeHandler) CreatePrinterType(c *gin.Context) {
	var payload request.PrinterTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPrinterPayload.HTTPStatus, errInvalidPrinterPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPrinterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPrinterType(created, 0))
}

func (h *PrinterTypeHandler) GetPrinterType(c *gin.Context) {
	pt, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPrinterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, h.withRate(c, response.FromPrinterType(pt, 0)))
}

func (h *PrinterTypeHandler) ListPrinterTypes(c *gin.Context) {
	pts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPrinterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.PrinterTypeResponse, 0, len(pts))
	for _, pt := range pts {
		out = append(out, h.withRate(c, response.FromPrinterType(pt, 0)))
	}
	c.JSON(http.StatusOK, out)
}

func (h *PrinterTypeHandler) UpdatePrinterType(c *gin.Context) {
	var payload request.PrinterTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPrinterPayload.HTTPStatus, errInvalidPrinterPayload.ToHTTPError())
		return
	}

	pt := payload.ToEntity()
	pt.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), pt)
	if err != nil {
		appErr := mapPrinterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, h.withRate(c, response.FromPrinterType(updated, 0)))
}

func (h *PrinterTypeHandler) DeletePrinterType(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPrinterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// PrinterHandler handles HTTP requests for physical printers.

type PrinterHandler struct {
	usecase usecase.IPrinterUseCase
}

func NewPrinterHandler(uc usecase.IPrinterUseCase) *PrinterHandler {
	return &PrinterHandler{usecase: uc}
}

func (h *PrinterHandler) CreatePrinter(c *gin.Context) {
	var payload request.PrinterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPrinterPayload.HTTPStatus, errInvalidPrinterPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPrinterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPrinter(created))
}

func (h *PrinterHandler) GetPrinter(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPrinterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrinter(p))
}

func (h *PrinterHandler) ListPrinters(c *gin.Context) {
	ps, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPrinterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrinters(ps))
}

func (h *PrinterHandler) UpdatePrinter(c *gin.Context) {
	var payload request.PrinterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPrinterPayload.HTTPStatus, errInvalidPrinterPayload.ToHTTPError())
		return
	}

	p := payload.ToEntity()
	p.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), p)
	if err != nil {
		appErr := mapPrinterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrinter(updated))
}

func (h *PrinterHandler) DeletePrinter(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPrinterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPrinterError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPrinterID), errors.Is(err, usecase.ErrInvalidPrinter),
		errors.Is(err, usecase.ErrInvalidPrinterTypeID), errors.Is(err, usecase.ErrInvalidPrinterType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPrinterTypeInUse):
		return pkg.NewDomainErrorSimple("PRINTER_TYPE_IN_USE", "Printer type still has printers attached", http.StatusConflict)
	case errors.Is(err, usecase.ErrPrinterNotFound):
		return pkg.NewDomainErrorSimple("PRINTER_NOT_FOUND", "Printer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPrinterTypeNotFound):
		return pkg.NewDomainErrorSimple("PRINTER_TYPE_NOT_FOUND", "Printer type not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
