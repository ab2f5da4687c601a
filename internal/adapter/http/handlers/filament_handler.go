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

var errInvalidFilamentPayload = pkg.NewDomainErrorSimple("INVALID_FILAMENT_INPUT", "Invalid filament payload", http.StatusBadRequest)

// FilamentHandler handles HTTP requests for the filament inventory panel.

type FilamentHandler struct {
	usecase usecase.IFilamentUseCase
}

func NewFilamentHandler(uc usecase.IFilamentUseCase) *FilamentHandler {
	return &FilamentHandler{usecase: uc}
}

func (h *FilamentHandler) CreateFilament(c *gin.Context) {
	var payload request.FilamentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFilamentPayload.HTTPStatus, errInvalidFilamentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapFilamentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFilament(created))
}

func (h *FilamentHandler) GetFilament(c *gin.Context) {
	f, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFilamentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFilament(f))
}

func (h *FilamentHandler) ListFilaments(c *gin.Context) {
	fs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapFilamentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFilaments(fs))
}

func (h *FilamentHandler) UpdateFilament(c *gin.Context) {
	var payload request.FilamentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFilamentPayload.HTTPStatus, errInvalidFilamentPayload.ToHTTPError())
		return
	}

	f := payload.ToEntity()
	f.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), f)
	if err != nil {
		appErr := mapFilamentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFilament(updated))
}

func (h *FilamentHandler) DeleteFilament(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapFilamentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapFilamentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFilamentID), errors.Is(err, usecase.ErrInvalidFilament):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFilamentNotFound):
		return pkg.NewDomainErrorSimple("FILAMENT_NOT_FOUND", "Filament not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
