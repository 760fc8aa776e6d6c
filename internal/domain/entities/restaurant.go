package entities

// Restaurant is resolved from the access code printed on the table QR.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (access_code-index): access_code
type Restaurant struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AccessCode string `json:"access_code"`
}

// Table is a physical table inside a restaurant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (restaurant_id-index): restaurant_id
type Table struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Number       string `json:"number"`
}

// PaymentConfig holds the per-restaurant provider settings.
//
// MercadoPagoAccessToken overrides the service-wide token when present.
type PaymentConfig struct {
	RestaurantID           string `json:"restaurant_id"`
	MercadoPagoAccessToken string `json:"-"`
	TransferAlias          string `json:"transfer_alias"`
	TransferCBU            string `json:"transfer_cbu"`
	TransferHolder         string `json:"transfer_holder"`
	AcceptsCash            bool   `json:"accepts_cash"`
}
