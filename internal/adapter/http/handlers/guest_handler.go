package handlers

import (
	"errors"
	"net/http"

	request "comanda/internal/adapter/http/dto/request"
	response "comanda/internal/adapter/http/dto/response"
	"comanda/internal/usecase"
	"comanda/pkg"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	usecase usecase.IGuestUseCase
}

func NewGuestHandler(uc usecase.IGuestUseCase) *GuestHandler {
	return &GuestHandler{usecase: uc}
}

func (h *GuestHandler) CreateGuests(c *gin.Context) {
	var payload request.CreateGuestsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	guests, err := h.usecase.CreateGuests(c.Request.Context(), c.Param("table_id"), payload.Count, payload.HostName)
	if err != nil {
		writeError(c, mapGuestError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromGuests(guests))
}

func (h *GuestHandler) List(c *gin.Context) {
	guests, err := h.usecase.List(c.Request.Context(), c.Param("table_id"))
	if err != nil {
		writeError(c, mapGuestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGuests(guests))
}

// ClearTable frees the table for the next party. Refused while an order is open.
func (h *GuestHandler) ClearTable(c *gin.Context) {
	if err := h.usecase.ClearTable(c.Request.Context(), c.Param("table_id")); err != nil {
		writeError(c, mapGuestError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapGuestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGuestCount):
		return pkg.NewDomainErrorSimple("INVALID_GUEST_COUNT", "Guest count must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGuestsAlreadyCreated):
		return pkg.NewDomainErrorSimple("GUESTS_ALREADY_CREATED", "Guests already created for this table", http.StatusConflict)
	case errors.Is(err, usecase.ErrTableHasOpenOrder):
		return pkg.NewDomainErrorSimple("TABLE_HAS_OPEN_ORDER", "Table has an open order", http.StatusConflict)
	default:
		return mapTableError(err)
	}
}
