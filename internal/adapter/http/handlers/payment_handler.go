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

// PaymentHandler exposes checkout, the gateway return and the staff
// confirmation for cash and transfer.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

func (h *PaymentHandler) Checkout(c *gin.Context) {
	state, err := h.usecase.Checkout(c.Request.Context(), c.Param("table_id"), c.Query("guest_id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckout(state))
}

func (h *PaymentHandler) Start(c *gin.Context) {
	var payload request.StartPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	method := entities.PaymentMethod(strings.ToLower(strings.TrimSpace(payload.Method)))
	start, err := h.usecase.Start(c.Request.Context(), c.Param("table_id"), payload.GuestID, method, payload.ReturnURL)
	if err != nil {
		metrics.Payments.WithLabelValues(string(method), "failed").Inc()
		writeError(c, mapPaymentError(err))
		return
	}
	metrics.Payments.WithLabelValues(string(start.Method), "started").Inc()
	c.JSON(http.StatusCreated, response.FromPaymentStart(start))
}

// Return is where the gateway sends the guest back. Mercado Pago reports the
// outcome as status or collection_status.
func (h *PaymentHandler) Return(c *gin.Context) {
	tableID := c.Param("table_id")
	if tableID == "" {
		tableID = c.Query("table_id")
	}
	status := c.Query("status")
	if status == "" {
		status = c.Query("collection_status")
	}

	state, err := h.usecase.HandleReturn(c.Request.Context(), tableID, c.Query("guest_id"), status)
	if err != nil {
		if errors.Is(err, usecase.ErrPaymentNotApproved) {
			metrics.Payments.WithLabelValues(string(entities.PaymentMethodMercadoPago), "rejected").Inc()
		}
		writeError(c, mapPaymentError(err))
		return
	}
	metrics.Payments.WithLabelValues(string(entities.PaymentMethodMercadoPago), "approved").Inc()
	c.JSON(http.StatusOK, response.FromCheckout(state))
}

// StaffConfirm marks a cash or transfer share as paid.
func (h *PaymentHandler) StaffConfirm(c *gin.Context) {
	var payload request.StaffConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	method := entities.PaymentMethod(strings.ToLower(strings.TrimSpace(payload.Method)))
	state, err := h.usecase.ConfirmByStaff(c.Request.Context(), c.Param("table_id"), c.Param("guest_id"), method)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	metrics.Payments.WithLabelValues(string(method), "confirmed").Inc()
	zap.L().Info("[payment][handler] staff confirmed payment",
		zap.String("guest_id", state.Guest.ID),
		zap.String("method", string(method)),
	)
	c.JSON(http.StatusOK, response.FromCheckout(state))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Invalid payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentMethodUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_UNAVAILABLE", "Payment method not available at this restaurant", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGuestAlreadyPaid):
		return pkg.NewDomainErrorSimple("GUEST_ALREADY_PAID", "Guest already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToPay):
		return pkg.NewDomainErrorSimple("NOTHING_TO_PAY", "Guest has nothing to pay", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNoRedirect):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment provider returned no checkout url", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment provider rejected the request", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAUTHORIZED", "Payment provider credentials rejected", err, http.StatusBadGateway)
	default:
		return mapTableError(err)
	}
}
