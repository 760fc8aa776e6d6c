package request

// JoinSessionRequest is what the QR landing page posts.
type JoinSessionRequest struct {
	AccessCode  string `json:"access_code" binding:"required"`
	TableNumber string `json:"table_number" binding:"required"`
}

type CreateGuestsRequest struct {
	Count    int    `json:"count" binding:"required"`
	HostName string `json:"host_name"`
}
