package routes

import (
	"comanda/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathKitchen  = "/kitchen"
	PathStaff    = "/staff"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	// Checkout return URL; table and guest travel in the query.
	rg.GET(PathPayments+"/return", paymentHandler.Return)
}

func addKitchenRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	kitchen := rg.Group(PathKitchen)
	{
		kitchen.PATCH("/batches/:batch_id", orderHandler.AdvanceBatch)
	}
}

func addStaffRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	staff := rg.Group(PathStaff)
	{
		staff.PATCH("/tables/:table_id/guests/:guest_id/payment", paymentHandler.StaffConfirm)
	}
}
