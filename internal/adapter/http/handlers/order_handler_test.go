package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"comanda/internal/adapter/http/dto/response"
	"comanda/internal/adapter/http/handlers/mocks"
	"comanda/internal/domain/entities"
	"comanda/internal/domain/tablestate"
	"comanda/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(uc usecase.IOrderUseCase) *gin.Engine {
	h := NewOrderHandler(uc)
	r := gin.New()
	r.POST("/v1/tables/:table_id/orders/send", h.Send)
	r.GET("/v1/tables/:table_id/state", h.State)
	r.GET("/v1/tables/:table_id/snapshot", h.Snapshot)
	r.PATCH("/v1/kitchen/batches/:batch_id", h.AdvanceBatch)
	return r
}

func TestOrderHandler_Send(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().SendPending(gomock.Any(), "t1").Return(usecase.SendResult{}, nil)

		w := perform(newOrderRouter(uc), http.MethodPost, "/v1/tables/t1/orders/send", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.SendResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Sent {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("creates a batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().SendPending(gomock.Any(), "t1").Return(usecase.SendResult{
			Sent:  true,
			Order: entities.Order{ID: "o1", Status: entities.OrderStatusAbierto, TotalAmount: decimal.NewFromInt(25)},
			Batch: entities.OrderBatch{ID: "b1", OrderID: "o1", BatchNumber: 1, Status: entities.BatchStatusPreparando},
			Lines: []entities.OrderItem{{ID: "l1", IsConfirmed: true, Quantity: 1}},
		}, nil)

		w := perform(newOrderRouter(uc), http.MethodPost, "/v1/tables/t1/orders/send", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body response.SendResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Batch == nil || body.Batch.BatchNumber != 1 || body.Order.TotalAmount != "25.00" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().SendPending(gomock.Any(), "t1").Return(usecase.SendResult{}, usecase.ErrSendConflict)

		w := perform(newOrderRouter(uc), http.MethodPost, "/v1/tables/t1/orders/send", "")
		if w.Code != http.StatusConflict || errorCode(t, w) != "SEND_CONFLICT" {
			t.Fatalf("expected 409 SEND_CONFLICT, got %d", w.Code)
		}
	})

	t.Run("closed order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().SendPending(gomock.Any(), "t1").Return(usecase.SendResult{}, usecase.ErrOrderClosed)

		w := perform(newOrderRouter(uc), http.MethodPost, "/v1/tables/t1/orders/send", "")
		if w.Code != http.StatusConflict || errorCode(t, w) != "ORDER_CLOSED" {
			t.Fatalf("expected 409 ORDER_CLOSED, got %d", w.Code)
		}
	})
}

func TestOrderHandler_State(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	uc.EXPECT().View(gomock.Any(), "t1", "g1").Return(tablestate.View{
		Screen:        tablestate.ScreenProgress,
		KitchenStatus: entities.BatchStatusPreparando,
		OrderID:       "o1",
	}, nil)

	w := perform(newOrderRouter(uc), http.MethodGet, "/v1/tables/t1/state?guest_id=g1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body response.ViewResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Screen != "progress" || body.KitchenStatus != "PREPARANDO" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestOrderHandler_Snapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	uc.EXPECT().Snapshot(gomock.Any(), "t1").Return(tablestate.Snapshot{
		Guests: []entities.Guest{{ID: "g1"}},
	}, nil)

	w := perform(newOrderRouter(uc), http.MethodGet, "/v1/tables/t1/snapshot", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body response.SnapshotResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Order != nil || len(body.Guests) != 1 || body.Batches == nil {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestOrderHandler_AdvanceBatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("normalizes the status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().AdvanceBatch(gomock.Any(), "b1", entities.BatchStatusListo).
			Return(entities.OrderBatch{ID: "b1", OrderID: "o1", BatchNumber: 1, Status: entities.BatchStatusListo}, nil)

		w := perform(newOrderRouter(uc), http.MethodPatch, "/v1/kitchen/batches/b1", `{"status":" listo "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("backwards move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().AdvanceBatch(gomock.Any(), "b1", entities.BatchStatusPreparando).
			Return(entities.OrderBatch{}, usecase.ErrInvalidBatchTransition)

		w := perform(newOrderRouter(uc), http.MethodPatch, "/v1/kitchen/batches/b1", `{"status":"PREPARANDO"}`)
		if w.Code != http.StatusConflict || errorCode(t, w) != "INVALID_BATCH_TRANSITION" {
			t.Fatalf("expected 409 INVALID_BATCH_TRANSITION, got %d", w.Code)
		}
	})

	t.Run("unknown batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().AdvanceBatch(gomock.Any(), "zz", entities.BatchStatusServido).
			Return(entities.OrderBatch{}, usecase.ErrBatchNotFound)

		w := perform(newOrderRouter(uc), http.MethodPatch, "/v1/kitchen/batches/zz", `{"status":"SERVIDO"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
