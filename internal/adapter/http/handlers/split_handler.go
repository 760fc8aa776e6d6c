package handlers

import (
	"context"
	"errors"
	"net/http"

	request "comanda/internal/adapter/http/dto/request"
	response "comanda/internal/adapter/http/dto/response"
	"comanda/internal/domain/split"
	"comanda/internal/usecase"
	"comanda/pkg"

	"github.com/gin-gonic/gin"
)

type SplitHandler struct {
	usecase usecase.ISplitUseCase
}

func NewSplitHandler(uc usecase.ISplitUseCase) *SplitHandler {
	return &SplitHandler{usecase: uc}
}

// Compute previews the split; nothing is stored.
func (h *SplitHandler) Compute(c *gin.Context) {
	h.run(c, h.usecase.Compute)
}

// Confirm stores every guest's amount. An incomplete custom split is refused.
func (h *SplitHandler) Confirm(c *gin.Context) {
	h.run(c, h.usecase.Confirm)
}

func (h *SplitHandler) run(c *gin.Context, fn func(ctx context.Context, tableID string, req usecase.SplitRequest) (split.Result, error)) {
	var payload request.SplitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	req, err := payload.ToUseCase()
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_SPLIT_AMOUNT", "Invalid split amount", http.StatusBadRequest))
		return
	}

	res, err := fn(c.Request.Context(), c.Param("table_id"), req)
	if err != nil {
		writeError(c, mapSplitError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSplit(res))
}

func mapSplitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSplitMethod):
		return pkg.NewDomainErrorSimple("INVALID_SPLIT_METHOD", "Invalid split method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSplitAmount):
		return pkg.NewDomainErrorSimple("INVALID_SPLIT_AMOUNT", "Invalid split amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSplitIncomplete):
		return pkg.NewDomainErrorSimple("SPLIT_INCOMPLETE", "Split does not cover the bill", http.StatusUnprocessableEntity)
	default:
		return mapTableError(err)
	}
}
