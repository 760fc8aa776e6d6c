package response

import (
	"time"

	"comanda/internal/domain/entities"
)

type SessionResponse struct {
	DeviceID      string    `json:"device_id"`
	RestaurantID  string    `json:"restaurant_id"`
	TableID       string    `json:"table_id"`
	TableNumber   string    `json:"table_number"`
	AccessCode    string    `json:"access_code"`
	ActiveOrderID string    `json:"active_order_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		DeviceID:      s.DeviceID,
		RestaurantID:  s.RestaurantID,
		TableID:       s.TableID,
		TableNumber:   s.TableNumber,
		AccessCode:    s.AccessCode,
		ActiveOrderID: s.ActiveOrderID,
		CreatedAt:     s.CreatedAt,
	}
}

type GuestResponse struct {
	ID               string  `json:"id"`
	TableID          string  `json:"table_id"`
	Name             string  `json:"name"`
	IsHost           bool    `json:"is_host"`
	IndividualAmount *string `json:"individual_amount,omitempty"`
	Paid             bool    `json:"paid"`
	PaymentMethod    string  `json:"payment_method,omitempty"`
}

func FromGuest(g entities.Guest) GuestResponse {
	return GuestResponse{
		ID:               g.ID,
		TableID:          g.TableID,
		Name:             g.Name,
		IsHost:           g.IsHost,
		IndividualAmount: moneyPtr(g.IndividualAmount),
		Paid:             g.Paid,
		PaymentMethod:    string(g.PaymentMethod),
	}
}

func FromGuests(guests []entities.Guest) []GuestResponse {
	out := make([]GuestResponse, 0, len(guests))
	for _, g := range guests {
		out = append(out, FromGuest(g))
	}
	return out
}
