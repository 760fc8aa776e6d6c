package usecase

import (
	"fmt"
	"testing"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"
	mock_interfaces "comanda/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type repoMocks struct {
	restaurants *mock_interfaces.MockIRestaurantRepository
	menus       *mock_interfaces.MockIMenuRepository
	orders      *mock_interfaces.MockIOrderRepository
	guests      *mock_interfaces.MockIGuestRepository
	items       *mock_interfaces.MockIOrderItemRepository
	reviews     *mock_interfaces.MockIReviewRepository
	gateway     *mock_interfaces.MockIPaymentGateway
	publisher   *mock_interfaces.MockIEventPublisher
	sessions    *mock_interfaces.MockISessionStore
}

func newRepoMocks(ctrl *gomock.Controller) repoMocks {
	return repoMocks{
		restaurants: mock_interfaces.NewMockIRestaurantRepository(ctrl),
		menus:       mock_interfaces.NewMockIMenuRepository(ctrl),
		orders:      mock_interfaces.NewMockIOrderRepository(ctrl),
		guests:      mock_interfaces.NewMockIGuestRepository(ctrl),
		items:       mock_interfaces.NewMockIOrderItemRepository(ctrl),
		reviews:     mock_interfaces.NewMockIReviewRepository(ctrl),
		gateway:     mock_interfaces.NewMockIPaymentGateway(ctrl),
		publisher:   mock_interfaces.NewMockIEventPublisher(ctrl),
		sessions:    mock_interfaces.NewMockISessionStore(ctrl),
	}
}

var (
	testTable = entities.Table{ID: "t1", RestaurantID: "r1", Number: "7"}
	testMenu  = []entities.MenuItem{
		{ID: "A", RestaurantID: "r1", Name: "Milanesa", Price: decimal.NewFromInt(10), Customization: &entities.Customization{
			IngredientsToAdd:    []string{"queso"},
			IngredientsToRemove: []string{"cebolla"},
		}},
		{ID: "B", RestaurantID: "r1", Name: "Agua", Price: decimal.NewFromInt(5)},
	}
	openOrder = entities.Order{ID: "o1", TableID: "t1", RestaurantID: "r1", Status: entities.OrderStatusAbierto, Version: 2}
)

func expectTable(m repoMocks) {
	m.restaurants.EXPECT().GetTableByID(gomock.Any(), "t1").Return(testTable, nil).AnyTimes()
}

func expectMenu(m repoMocks) {
	m.menus.EXPECT().ListItems(gomock.Any(), "r1").Return(testMenu, nil).AnyTimes()
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	if !decimal.RequireFromString(want).Equal(got) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func interfacesConflict() error {
	return fmt.Errorf("update line: %w", interfaces.ErrConflict)
}
