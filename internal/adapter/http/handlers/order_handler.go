package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "comanda/internal/adapter/http/dto/request"
	response "comanda/internal/adapter/http/dto/response"
	"comanda/internal/domain/entities"
	"comanda/internal/infrastructure/metrics"
	"comanda/internal/usecase"
	"comanda/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// Send turns every pending line of the table into a new kitchen batch.
// With nothing pending it answers 200 and sent=false.
func (h *OrderHandler) Send(c *gin.Context) {
	res, err := h.usecase.SendPending(c.Request.Context(), c.Param("table_id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	if !res.Sent {
		c.JSON(http.StatusOK, response.FromSendResult(res))
		return
	}
	metrics.BatchesSent.Inc()
	c.JSON(http.StatusCreated, response.FromSendResult(res))
}

func (h *OrderHandler) State(c *gin.Context) {
	view, err := h.usecase.View(c.Request.Context(), c.Param("table_id"), c.Query("guest_id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromView(view))
}

// Snapshot is the resync read used after a reconnect.
func (h *OrderHandler) Snapshot(c *gin.Context) {
	snap, err := h.usecase.Snapshot(c.Request.Context(), c.Param("table_id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// AdvanceBatch is the kitchen side: PREPARANDO -> LISTO -> SERVIDO.
func (h *OrderHandler) AdvanceBatch(c *gin.Context) {
	var payload request.AdvanceBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	status := entities.BatchStatus(strings.ToUpper(strings.TrimSpace(payload.Status)))
	b, err := h.usecase.AdvanceBatch(c.Request.Context(), c.Param("batch_id"), status)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	metrics.BatchTransitions.WithLabelValues(string(b.Status)).Inc()
	zap.L().Info("[order][handler] batch advanced", zap.String("batch_id", b.ID), zap.String("status", string(b.Status)))
	c.JSON(http.StatusOK, response.FromBatch(b))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBatchID), errors.Is(err, usecase.ErrInvalidBatchStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBatchNotFound):
		return pkg.NewDomainErrorSimple("BATCH_NOT_FOUND", "Batch not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidBatchTransition):
		return pkg.NewDomainErrorSimple("INVALID_BATCH_TRANSITION", "Batch status can only move forward", http.StatusConflict)
	case errors.Is(err, usecase.ErrSendConflict):
		return pkg.NewDomainErrorSimple("SEND_CONFLICT", "Another send is in progress, retry", http.StatusConflict)
	default:
		return mapTableError(err)
	}
}
