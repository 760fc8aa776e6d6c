package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"comanda/internal/adapter/http/dto/response"
	"comanda/internal/adapter/http/handlers/mocks"
	"comanda/internal/domain/entities"
	"comanda/internal/domain/reconciler"
	"comanda/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(uc usecase.IPaymentUseCase) *gin.Engine {
	h := NewPaymentHandler(uc)
	r := gin.New()
	r.GET("/v1/tables/:table_id/checkout", h.Checkout)
	r.POST("/v1/tables/:table_id/payments", h.Start)
	r.GET("/v1/payments/return", h.Return)
	r.PATCH("/v1/staff/tables/:table_id/guests/:guest_id/payment", h.StaffConfirm)
	return r
}

func TestPaymentHandler_Start(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mercadopago redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().Start(gomock.Any(), "t1", "g1", entities.PaymentMethodMercadoPago, "").Return(usecase.PaymentStart{
			Guest:       entities.Guest{ID: "g1"},
			Method:      entities.PaymentMethodMercadoPago,
			Amount:      decimal.NewFromInt(20),
			RedirectURL: "https://mp.test/checkout",
		}, nil)

		w := perform(newPaymentRouter(uc), http.MethodPost, "/v1/tables/t1/payments", `{"guest_id":"g1","method":"MercadoPago"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body response.PaymentStartResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.RedirectURL != "https://mp.test/checkout" || body.Amount != "20.00" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("gateway credentials rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().Start(gomock.Any(), "t1", "g1", entities.PaymentMethodMercadoPago, "").Return(usecase.PaymentStart{}, usecase.ErrPaymentGatewayUnauthorized)

		w := perform(newPaymentRouter(uc), http.MethodPost, "/v1/tables/t1/payments", `{"guest_id":"g1","method":"mercadopago"}`)
		if w.Code != http.StatusBadGateway || errorCode(t, w) != "PAYMENT_GATEWAY_UNAUTHORIZED" {
			t.Fatalf("expected 502 PAYMENT_GATEWAY_UNAUTHORIZED, got %d", w.Code)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().Start(gomock.Any(), "t1", "g1", entities.PaymentMethodEfectivo, "").Return(usecase.PaymentStart{}, usecase.ErrGuestAlreadyPaid)

		w := perform(newPaymentRouter(uc), http.MethodPost, "/v1/tables/t1/payments", `{"guest_id":"g1","method":"efectivo"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Return(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().HandleReturn(gomock.Any(), "t1", "g1", "approved").Return(usecase.CheckoutState{
			Guest:     entities.Guest{ID: "g1", Paid: true, PaymentMethod: entities.PaymentMethodMercadoPago},
			OrderID:   "o1",
			Remaining: decimal.NewFromInt(5),
			Next:      reconciler.StepShareLink,
		}, nil)

		w := perform(newPaymentRouter(uc), http.MethodGet, "/v1/payments/return?table_id=t1&guest_id=g1&collection_status=approved", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.CheckoutResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Next != "share_link" || body.Remaining != "5.00" || !body.Guest.Paid {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().HandleReturn(gomock.Any(), "t1", "g1", "failure").Return(usecase.CheckoutState{}, usecase.ErrPaymentNotApproved)

		w := perform(newPaymentRouter(uc), http.MethodGet, "/v1/payments/return?table_id=t1&guest_id=g1&status=failure", "")
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_StaffConfirm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("confirms cash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().ConfirmByStaff(gomock.Any(), "t1", "g2", entities.PaymentMethodEfectivo).Return(usecase.CheckoutState{
			Guest:       entities.Guest{ID: "g2", Paid: true},
			OrderStatus: entities.OrderStatusPagado,
			Next:        reconciler.StepConfirmation,
		}, nil)

		w := perform(newPaymentRouter(uc), http.MethodPatch, "/v1/staff/tables/t1/guests/g2/payment", `{"method":"efectivo"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("internal error is masked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().ConfirmByStaff(gomock.Any(), "t1", "g2", entities.PaymentMethodTransferencia).Return(usecase.CheckoutState{}, errors.New("ProvisionedThroughputExceededException"))

		w := perform(newPaymentRouter(uc), http.MethodPatch, "/v1/staff/tables/t1/guests/g2/payment", `{"method":"transferencia"}`)
		if w.Code != http.StatusInternalServerError || errorCode(t, w) != "INTERNAL_ERROR" {
			t.Fatalf("expected 500 INTERNAL_ERROR, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	uc.EXPECT().Checkout(gomock.Any(), "t1", "g1").Return(usecase.CheckoutState{
		Guest: entities.Guest{ID: "g1"},
		Shares: []entities.BillShare{
			{GuestID: "g1", Amount: decimal.RequireFromString("12.5"), Status: entities.ShareStatusPendiente},
		},
		Next: reconciler.StepCheckout,
	}, nil)

	w := perform(newPaymentRouter(uc), http.MethodGet, "/v1/tables/t1/checkout?guest_id=g1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body response.CheckoutResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body.Shares) != 1 || body.Shares[0].Amount != "12.50" || body.Shares[0].Status != "PENDIENTE" {
		t.Fatalf("unexpected body %+v", body)
	}
}
