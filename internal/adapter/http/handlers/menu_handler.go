package handlers

import (
	"errors"
	"net/http"

	response "comanda/internal/adapter/http/dto/response"
	"comanda/internal/usecase"
	"comanda/pkg"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	usecase usecase.IMenuUseCase
}

func NewMenuHandler(uc usecase.IMenuUseCase) *MenuHandler {
	return &MenuHandler{usecase: uc}
}

func (h *MenuHandler) GetMenu(c *gin.Context) {
	menu, err := h.usecase.GetMenu(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		writeError(c, mapMenuError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMenu(menu))
}

func mapMenuError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRestaurantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRestaurantNotFound):
		return pkg.NewDomainErrorSimple("RESTAURANT_NOT_FOUND", "Restaurant not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
