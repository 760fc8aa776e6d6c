package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"comanda/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestReviewUseCase_Submit(t *testing.T) {
	t.Run("rating out of range", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil, nil, nil, nil)
		for _, r := range []int{0, 6, -1} {
			if _, err := uc.Submit(context.Background(), "t1", "g1", r, ""); !errors.Is(err, ErrInvalidRating) {
				t.Fatalf("rating %d: expected ErrInvalidRating, got %v", r, err)
			}
		}
	})

	t.Run("comment too long", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.Submit(context.Background(), "t1", "g1", 4, strings.Repeat("x", 1001)); !errors.Is(err, ErrCommentTooLong) {
			t.Fatalf("expected ErrCommentTooLong, got %v", err)
		}
	})

	t.Run("no order yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := NewReviewUseCase(m.restaurants, m.orders, m.guests, m.items, m.reviews)

		expectTable(m)
		m.guests.EXPECT().GetByID(gomock.Any(), "g1").Return(entities.Guest{ID: "g1", TableID: "t1"}, nil)
		m.orders.EXPECT().GetLatestByTableID(gomock.Any(), "t1").Return(entities.Order{}, nil)

		if _, err := uc.Submit(context.Background(), "t1", "g1", 5, ""); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("stores the review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := NewReviewUseCase(m.restaurants, m.orders, m.guests, m.items, m.reviews)

		expectTable(m)
		m.guests.EXPECT().GetByID(gomock.Any(), "g1").Return(entities.Guest{ID: "g1", TableID: "t1"}, nil)
		m.orders.EXPECT().GetLatestByTableID(gomock.Any(), "t1").Return(openOrder, nil)
		m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) {
				if r.ID == "" || r.OrderID != "o1" || r.GuestID != "g1" || r.Rating != 4 || r.Comment != "muy rico" {
					t.Fatalf("unexpected review %+v", r)
				}
				return r, nil
			})

		got, err := uc.Submit(context.Background(), "t1", "g1", 4, "  muy rico ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TableID != "t1" {
			t.Fatalf("unexpected table %q", got.TableID)
		}
	})
}

func TestReviewUseCase_RateLine(t *testing.T) {
	t.Run("line of another table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := NewReviewUseCase(m.restaurants, m.orders, m.guests, m.items, m.reviews)

		expectTable(m)
		m.items.EXPECT().GetByID(gomock.Any(), "l1").Return(entities.OrderItem{ID: "l1", TableID: "t9", IsConfirmed: true}, nil)

		if _, err := uc.RateLine(context.Background(), "t1", "l1", 3); !errors.Is(err, ErrCartLineNotFound) {
			t.Fatalf("expected ErrCartLineNotFound, got %v", err)
		}
	})

	t.Run("unconfirmed line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := NewReviewUseCase(m.restaurants, m.orders, m.guests, m.items, m.reviews)

		expectTable(m)
		m.items.EXPECT().GetByID(gomock.Any(), "l1").Return(entities.OrderItem{ID: "l1", TableID: "t1"}, nil)

		if _, err := uc.RateLine(context.Background(), "t1", "l1", 3); !errors.Is(err, ErrLineNotConfirmed) {
			t.Fatalf("expected ErrLineNotConfirmed, got %v", err)
		}
	})

	t.Run("rates a confirmed line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := NewReviewUseCase(m.restaurants, m.orders, m.guests, m.items, m.reviews)

		expectTable(m)
		m.items.EXPECT().GetByID(gomock.Any(), "l1").Return(entities.OrderItem{ID: "l1", TableID: "t1", IsConfirmed: true}, nil)
		rating := 5
		m.items.EXPECT().SetRating(gomock.Any(), "l1", 5).Return(entities.OrderItem{ID: "l1", TableID: "t1", IsConfirmed: true, Rating: &rating}, nil)

		got, err := uc.RateLine(context.Background(), "t1", " l1 ", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Rating == nil || *got.Rating != 5 {
			t.Fatalf("unexpected rating %+v", got.Rating)
		}
	})
}

func TestReviewUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newRepoMocks(ctrl)
	uc := NewReviewUseCase(m.restaurants, m.orders, m.guests, m.items, m.reviews)

	expectTable(m)
	m.orders.EXPECT().GetLatestByTableID(gomock.Any(), "t1").Return(openOrder, nil)
	m.reviews.EXPECT().ListByOrderID(gomock.Any(), "o1").Return([]entities.Review{{ID: "r1", OrderID: "o1", Rating: 5}}, nil)

	got, err := uc.List(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "r1" {
		t.Fatalf("unexpected reviews %+v", got)
	}
}
