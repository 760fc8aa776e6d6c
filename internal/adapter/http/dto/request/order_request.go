package request

type AdvanceBatchRequest struct {
	Status string `json:"status" binding:"required"`
}
