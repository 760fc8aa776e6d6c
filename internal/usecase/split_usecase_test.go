package usecase

import (
	"context"
	"errors"
	"testing"

	"comanda/internal/domain/entities"
	"comanda/internal/domain/split"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newSplitUseCase(m repoMocks) *SplitUseCase {
	return NewSplitUseCase(m.restaurants, m.menus, m.orders, m.guests, m.items, m.publisher)
}

var splitGuests = []entities.Guest{{ID: "g1", TableID: "t1"}, {ID: "g2", TableID: "t1"}}

func expectSplitScope(m repoMocks, lines []entities.OrderItem) {
	expectTable(m)
	expectMenu(m)
	m.guests.EXPECT().GetByID(gomock.Any(), "g1").Return(splitGuests[0], nil)
	m.orders.EXPECT().GetLatestByTableID(gomock.Any(), "t1").Return(openOrder, nil)
	m.guests.EXPECT().ListByTableID(gomock.Any(), "t1").Return(splitGuests, nil)
	m.items.EXPECT().ListByTableID(gomock.Any(), "t1").Return(lines, nil)
}

var splitLines = []entities.OrderItem{
	{ID: "l1", ItemID: "A", GuestID: "g1", Quantity: 2, IsConfirmed: true, OrderID: "o1"},
	{ID: "l2", ItemID: "B", GuestID: "g2", Quantity: 1, IsConfirmed: true, OrderID: "o1"},
	{ID: "l3", ItemID: "B", GuestID: "g2", Quantity: 4},
}

func TestSplitUseCase_Compute(t *testing.T) {
	t.Run("invalid method", func(t *testing.T) {
		uc := NewSplitUseCase(nil, nil, nil, nil, nil, nil)
		if _, err := uc.Compute(context.Background(), "t1", SplitRequest{GuestID: "g1", Method: "dice"}); !errors.Is(err, ErrInvalidSplitMethod) {
			t.Fatalf("expected ErrInvalidSplitMethod, got %v", err)
		}
	})

	t.Run("equal over sent and pending lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := newSplitUseCase(m)

		expectSplitScope(m, splitLines)

		res, err := uc.Compute(context.Background(), "t1", SplitRequest{
			GuestID:      "g1",
			Method:       split.MethodEqual,
			Participants: []string{"g1", " g2 "},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertDecimal(t, "45", res.Subtotal)
		assertDecimal(t, "22.5", res.Share("g1"))
		assertDecimal(t, "22.5", res.Share("g2"))
		if res.Shares[0].Status != entities.ShareStatusPendiente || res.Shares[1].Status != entities.ShareStatusImpagado {
			t.Fatalf("unexpected statuses %+v", res.Shares)
		}
	})

	t.Run("per guest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := newSplitUseCase(m)

		expectSplitScope(m, splitLines)

		res, err := uc.Compute(context.Background(), "t1", SplitRequest{GuestID: "g1", Method: split.MethodPerGuest})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertDecimal(t, "20", res.Share("g1"))
		assertDecimal(t, "25", res.Share("g2"))
	})

	t.Run("negative custom amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := newSplitUseCase(m)

		expectSplitScope(m, splitLines)

		_, err := uc.Compute(context.Background(), "t1", SplitRequest{
			GuestID: "g1",
			Method:  split.MethodCustom,
			Custom:  map[string]decimal.Decimal{"g1": decimal.NewFromInt(-3)},
		})
		if !errors.Is(err, ErrInvalidSplitAmount) {
			t.Fatalf("expected ErrInvalidSplitAmount, got %v", err)
		}
	})

	t.Run("empty cart is a complete zero bill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := newSplitUseCase(m)

		expectSplitScope(m, nil)

		res, err := uc.Compute(context.Background(), "t1", SplitRequest{
			GuestID:      "g1",
			Method:       split.MethodEqual,
			Participants: []string{"g1", "g2"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertDecimal(t, "0", res.Subtotal)
		assertDecimal(t, "0", res.Share("g1"))
		if !res.Complete {
			t.Fatalf("expected an empty bill to be complete")
		}
	})

	t.Run("lines of an older order are left out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := newSplitUseCase(m)

		stale := entities.OrderItem{ID: "old", ItemID: "A", GuestID: "g1", Quantity: 3, IsConfirmed: true, OrderID: "o0"}
		expectSplitScope(m, append([]entities.OrderItem{stale}, splitLines...))

		res, err := uc.Compute(context.Background(), "t1", SplitRequest{GuestID: "g1", Method: split.MethodPerGuest})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertDecimal(t, "45", res.Subtotal)
	})
}

func TestSplitUseCase_Confirm(t *testing.T) {
	t.Run("incomplete split is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := newSplitUseCase(m)

		expectSplitScope(m, splitLines)

		_, err := uc.Confirm(context.Background(), "t1", SplitRequest{
			GuestID: "g1",
			Method:  split.MethodCustom,
			Custom:  map[string]decimal.Decimal{"g1": decimal.NewFromInt(10)},
		})
		if !errors.Is(err, ErrSplitIncomplete) {
			t.Fatalf("expected ErrSplitIncomplete, got %v", err)
		}
	})

	t.Run("stores individual amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := newSplitUseCase(m)

		expectSplitScope(m, splitLines)
		m.guests.EXPECT().SetIndividualAmounts(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, amounts map[string]decimal.Decimal) error {
				assertDecimal(t, "25", amounts["g1"])
				assertDecimal(t, "20", amounts["g2"])
				return nil
			})
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		_, err := uc.Confirm(context.Background(), "t1", SplitRequest{
			GuestID: "g1",
			Method:  split.MethodCustom,
			Custom: map[string]decimal.Decimal{
				"g1": decimal.NewFromInt(25),
				"g2": decimal.NewFromInt(20),
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
