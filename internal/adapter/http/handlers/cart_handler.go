package handlers

import (
	"errors"
	"net/http"

	request "comanda/internal/adapter/http/dto/request"
	response "comanda/internal/adapter/http/dto/response"
	"comanda/internal/domain/cart"
	"comanda/internal/usecase"
	"comanda/pkg"

	"github.com/gin-gonic/gin"
)

// CartHandler edits the unconfirmed lines of a table. Every device at the
// table sees the same cart; guest_id only scopes the totals.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) List(c *gin.Context) {
	tableID := c.Param("table_id")
	guestID := c.Query("guest_id")

	lines, err := h.usecase.ListLines(c.Request.Context(), tableID, guestID)
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	totals, err := h.usecase.Totals(c.Request.Context(), tableID, guestID)
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.CartResponse{Lines: response.FromLines(lines), Totals: response.FromTotals(totals)})
}

func (h *CartHandler) AddLine(c *gin.Context) {
	var payload request.AddLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	line, err := h.usecase.AddLine(c.Request.Context(), c.Param("table_id"), payload.GuestID, payload.ItemID, payload.Extras, payload.RemovedIngredients)
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLine(line))
}

// Increment bumps the guest's simple line for the item, creating it if needed.
func (h *CartHandler) Increment(c *gin.Context) {
	var payload request.IncrementLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	line, err := h.usecase.IncrementSimple(c.Request.Context(), c.Param("table_id"), payload.GuestID, payload.ItemID)
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLine(line))
}

func (h *CartHandler) UpdateLine(c *gin.Context) {
	var payload request.UpdateLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Empty() {
		writeError(c, errInvalidPayload)
		return
	}

	line, result, err := h.usecase.UpdateLine(c.Request.Context(), c.Param("table_id"), c.Param("line_id"), payload.ToLineUpdate())
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}

	res := response.LineUpdateResponse{}
	switch result {
	case cart.Removed:
		res.Result = "removed"
	case cart.Updated:
		res.Result = "updated"
	default:
		res.Result = "unchanged"
	}
	if result != cart.Removed {
		l := response.FromLine(line)
		res.Line = &l
	}
	c.JSON(http.StatusOK, res)
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID), errors.Is(err, usecase.ErrInvalidLineID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomization):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMIZATION", "Customization not offered for this item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMenuItemNotFound):
		return pkg.NewDomainErrorSimple("MENU_ITEM_NOT_FOUND", "Menu item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCartLineNotFound):
		return pkg.NewDomainErrorSimple("CART_LINE_NOT_FOUND", "Cart line not found or already sent", http.StatusNotFound)
	default:
		return mapTableError(err)
	}
}
