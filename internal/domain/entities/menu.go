package entities

import "github.com/shopspring/decimal"

type Category struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Position     int    `json:"position"`
}

// Customization lists the ingredients a guest may add to or remove from an item.
type Customization struct {
	IngredientsToAdd    []string `json:"ingredients_to_add"`
	IngredientsToRemove []string `json:"ingredients_to_remove"`
}

// MenuItem is read-only reference data, loaded once per session.
type MenuItem struct {
	ID            string          `json:"id"`
	RestaurantID  string          `json:"restaurant_id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	CategoryID    string          `json:"category_id"`
	SubcategoryID string          `json:"subcategory_id,omitempty"`
	DietaryTags   []string        `json:"dietary_tags"`
	Customization *Customization  `json:"customization,omitempty"`
}

// Menu is the price lookup used by the cart and the split engine.
type Menu map[string]MenuItem

func NewMenu(items []MenuItem) Menu {
	m := make(Menu, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return m
}

// Price returns the unit price of itemID and whether it resolved.
func (m Menu) Price(itemID string) (decimal.Decimal, bool) {
	it, ok := m[itemID]
	if !ok {
		return decimal.Zero, false
	}
	return it.Price, true
}
