package request

import "comanda/internal/domain/cart"

type AddLineRequest struct {
	GuestID            string   `json:"guest_id" binding:"required"`
	ItemID             string   `json:"item_id" binding:"required"`
	Extras             []string `json:"extras"`
	RemovedIngredients []string `json:"removed_ingredients"`
}

type IncrementLineRequest struct {
	GuestID string `json:"guest_id" binding:"required"`
	ItemID  string `json:"item_id" binding:"required"`
}

// UpdateLineRequest is a partial update: absent fields are left untouched.
// A quantity of 0 removes the line.
type UpdateLineRequest struct {
	Quantity           *int      `json:"quantity"`
	Extras             *[]string `json:"extras"`
	RemovedIngredients *[]string `json:"removed_ingredients"`
}

func (r UpdateLineRequest) Empty() bool {
	return r.Quantity == nil && r.Extras == nil && r.RemovedIngredients == nil
}

func (r UpdateLineRequest) ToLineUpdate() cart.LineUpdate {
	return cart.LineUpdate{
		Quantity: r.Quantity,
		Extras:   r.Extras,
		Removed:  r.RemovedIngredients,
	}
}

type RateLineRequest struct {
	Rating int `json:"rating" binding:"required"`
}
