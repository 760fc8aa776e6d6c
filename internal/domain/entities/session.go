package entities

import "time"

// Session is the device-scoped dining session kept across reloads.
//
// It is cleared on explicit logout/restart or once the bill is paid.
type Session struct {
	DeviceID      string    `json:"device_id"`
	AccessCode    string    `json:"access_code"`
	TableNumber   string    `json:"table_number"`
	RestaurantID  string    `json:"restaurant_id"`
	TableID       string    `json:"table_id"`
	ActiveOrderID string    `json:"active_order_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
