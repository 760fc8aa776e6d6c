package handlers

import (
	"errors"
	"net/http"

	"comanda/internal/usecase"
	"comanda/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errNoSession      = pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "No active session on this device", http.StatusNotFound)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error("[http] request failed",
			zap.String("path", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(appErr.Err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapTableError covers the lookups every table-scoped use case shares.
func mapTableError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTableID), errors.Is(err, usecase.ErrInvalidGuestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTableNotFound):
		return pkg.NewDomainErrorSimple("TABLE_NOT_FOUND", "Table not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGuestNotFound):
		return pkg.NewDomainErrorSimple("GUEST_NOT_FOUND", "Guest not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderClosed):
		return pkg.NewDomainErrorSimple("ORDER_CLOSED", "Order already paid", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
