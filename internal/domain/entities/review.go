package entities

import "time"

// Review is the feedback left by a guest after paying.
type Review struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	TableID   string    `json:"table_id"`
	GuestID   string    `json:"guest_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
