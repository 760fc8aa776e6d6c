package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"
)

var ErrInvalidRestaurantID = errors.New("invalid restaurant_id")

type MenuView struct {
	Categories []entities.Category
	Items      []entities.MenuItem
}

type IMenuUseCase interface {
	GetMenu(ctx context.Context, restaurantID string) (MenuView, error)
}

type MenuUseCase struct {
	restaurants interfaces.IRestaurantRepository
	menus       interfaces.IMenuRepository
}

var _ IMenuUseCase = (*MenuUseCase)(nil)

func NewMenuUseCase(restaurants interfaces.IRestaurantRepository, menus interfaces.IMenuRepository) *MenuUseCase {
	return &MenuUseCase{restaurants: restaurants, menus: menus}
}

func (u *MenuUseCase) GetMenu(ctx context.Context, restaurantID string) (MenuView, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return MenuView{}, ErrInvalidRestaurantID
	}
	r, err := u.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return MenuView{}, err
	}
	if r.ID == "" {
		return MenuView{}, ErrRestaurantNotFound
	}

	categories, err := u.menus.ListCategories(ctx, restaurantID)
	if err != nil {
		return MenuView{}, err
	}
	items, err := u.menus.ListItems(ctx, restaurantID)
	if err != nil {
		return MenuView{}, err
	}

	sort.SliceStable(categories, func(i, j int) bool { return categories[i].Position < categories[j].Position })
	sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return MenuView{Categories: categories, Items: items}, nil
}
