package handlers

import (
	"net/http"
	"testing"

	"comanda/internal/adapter/http/handlers/mocks"
	"comanda/internal/domain/entities"
	"comanda/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newReviewRouter(uc usecase.IReviewUseCase) *gin.Engine {
	h := NewReviewHandler(uc)
	r := gin.New()
	r.POST("/v1/tables/:table_id/reviews", h.Submit)
	r.GET("/v1/tables/:table_id/reviews", h.List)
	r.PATCH("/v1/tables/:table_id/cart/:line_id/rating", h.RateLine)
	return r
}

func TestReviewHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), "t1", "g1", 9, "").Return(entities.Review{}, usecase.ErrInvalidRating)

		w := perform(newReviewRouter(uc), http.MethodPost, "/v1/tables/t1/reviews", `{"guest_id":"g1","rating":9}`)
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "INVALID_RATING" {
			t.Fatalf("expected 400 INVALID_RATING, got %d", w.Code)
		}
	})

	t.Run("stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), "t1", "g1", 5, "excelente").Return(entities.Review{ID: "r1", OrderID: "o1", GuestID: "g1", Rating: 5}, nil)

		w := perform(newReviewRouter(uc), http.MethodPost, "/v1/tables/t1/reviews", `{"guest_id":"g1","rating":5,"comment":"excelente"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestReviewHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReviewUseCase(ctrl)
	uc.EXPECT().List(gomock.Any(), "t1").Return(nil, usecase.ErrOrderNotFound)

	w := perform(newReviewRouter(uc), http.MethodGet, "/v1/tables/t1/reviews", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestReviewHandler_RateLine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unsent line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		uc.EXPECT().RateLine(gomock.Any(), "t1", "l1", 4).Return(entities.OrderItem{}, usecase.ErrLineNotConfirmed)

		w := perform(newReviewRouter(uc), http.MethodPatch, "/v1/tables/t1/cart/l1/rating", `{"rating":4}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		uc.EXPECT().RateLine(gomock.Any(), "t1", "zz", 4).Return(entities.OrderItem{}, usecase.ErrCartLineNotFound)

		w := perform(newReviewRouter(uc), http.MethodPatch, "/v1/tables/t1/cart/zz/rating", `{"rating":4}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
