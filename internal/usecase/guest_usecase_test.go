package usecase

import (
	"context"
	"errors"
	"testing"

	"comanda/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestGuestUseCase_CreateGuests(t *testing.T) {
	t.Run("invalid count", func(t *testing.T) {
		uc := NewGuestUseCase(nil, nil, nil, nil)
		for _, n := range []int{0, -1, MaxGuestsPerTable + 1} {
			if _, err := uc.CreateGuests(context.Background(), "t1", n, "Ana"); !errors.Is(err, ErrInvalidGuestCount) {
				t.Fatalf("count=%d: expected ErrInvalidGuestCount, got %v", n, err)
			}
		}
	})

	t.Run("table not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := NewGuestUseCase(m.restaurants, m.guests, m.items, m.orders)

		m.restaurants.EXPECT().GetTableByID(gomock.Any(), "nope").Return(entities.Table{}, nil)

		if _, err := uc.CreateGuests(context.Background(), "nope", 2, "Ana"); !errors.Is(err, ErrTableNotFound) {
			t.Fatalf("expected ErrTableNotFound, got %v", err)
		}
	})

	t.Run("already created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := NewGuestUseCase(m.restaurants, m.guests, m.items, m.orders)

		expectTable(m)
		m.guests.EXPECT().ListByTableID(gomock.Any(), "t1").Return([]entities.Guest{{ID: "g1"}}, nil)

		if _, err := uc.CreateGuests(context.Background(), "t1", 2, "Ana"); !errors.Is(err, ErrGuestsAlreadyCreated) {
			t.Fatalf("expected ErrGuestsAlreadyCreated, got %v", err)
		}
	})

	t.Run("first guest is the host", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := NewGuestUseCase(m.restaurants, m.guests, m.items, m.orders)

		expectTable(m)
		m.guests.EXPECT().ListByTableID(gomock.Any(), "t1").Return(nil, nil)
		m.guests.EXPECT().CreateMany(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, gs []entities.Guest) ([]entities.Guest, error) { return gs, nil })

		got, err := uc.CreateGuests(context.Background(), "t1", 3, " Ana ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 guests, got %d", len(got))
		}
		if !got[0].IsHost || got[0].Name != "Ana" {
			t.Fatalf("unexpected host %+v", got[0])
		}
		if got[1].IsHost || got[2].Name != "Comensal 3" {
			t.Fatalf("unexpected guests %+v", got[1:])
		}
		for _, g := range got {
			if g.ID == "" || g.TableID != "t1" {
				t.Fatalf("unexpected guest %+v", g)
			}
		}
	})
}

func TestGuestUseCase_ClearTable(t *testing.T) {
	t.Run("open order blocks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := NewGuestUseCase(m.restaurants, m.guests, m.items, m.orders)

		expectTable(m)
		m.orders.EXPECT().GetLatestByTableID(gomock.Any(), "t1").Return(openOrder, nil)

		if err := uc.ClearTable(context.Background(), "t1"); !errors.Is(err, ErrTableHasOpenOrder) {
			t.Fatalf("expected ErrTableHasOpenOrder, got %v", err)
		}
	})

	t.Run("clears guests and unsent lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newRepoMocks(ctrl)
		uc := NewGuestUseCase(m.restaurants, m.guests, m.items, m.orders)

		paid := openOrder
		paid.Status = entities.OrderStatusPagado
		expectTable(m)
		m.orders.EXPECT().GetLatestByTableID(gomock.Any(), "t1").Return(paid, nil)
		m.items.EXPECT().DeleteUnconfirmedByTableID(gomock.Any(), "t1").Return(nil)
		m.guests.EXPECT().DeleteByTableID(gomock.Any(), "t1").Return(nil)

		if err := uc.ClearTable(context.Background(), "t1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
