package routes

import (
	"comanda/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathTables = "/tables/:table_id"

type tableHandlers struct {
	guests  *handlers.GuestHandler
	cart    *handlers.CartHandler
	orders  *handlers.OrderHandler
	split   *handlers.SplitHandler
	payment *handlers.PaymentHandler
	reviews *handlers.ReviewHandler
	stream  *handlers.StreamHandler
}

func addTableRoutes(rg *gin.RouterGroup, h tableHandlers) {
	table := rg.Group(PathTables)
	{
		table.DELETE("", h.guests.ClearTable)
		table.POST("/guests", h.guests.CreateGuests)
		table.GET("/guests", h.guests.List)

		table.GET("/cart", h.cart.List)
		table.POST("/cart", h.cart.AddLine)
		table.POST("/cart/increment", h.cart.Increment)
		table.PATCH("/cart/:line_id", h.cart.UpdateLine)
		table.PATCH("/cart/:line_id/rating", h.reviews.RateLine)

		table.POST("/orders/send", h.orders.Send)
		table.GET("/state", h.orders.State)
		table.GET("/snapshot", h.orders.Snapshot)
		table.GET("/stream", h.stream.Stream)

		table.POST("/split", h.split.Compute)
		table.POST("/split/confirm", h.split.Confirm)

		table.GET("/checkout", h.payment.Checkout)
		table.POST("/payments", h.payment.Start)

		table.POST("/reviews", h.reviews.Submit)
		table.GET("/reviews", h.reviews.List)
	}
}
