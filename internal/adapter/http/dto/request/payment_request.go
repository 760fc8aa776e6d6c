package request

type StartPaymentRequest struct {
	GuestID   string `json:"guest_id" binding:"required"`
	Method    string `json:"method" binding:"required"`
	ReturnURL string `json:"return_url"`
}

type StaffConfirmPaymentRequest struct {
	Method string `json:"method" binding:"required"`
}

type ReviewRequest struct {
	GuestID string `json:"guest_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
