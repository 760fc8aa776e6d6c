package routes

import (
	"comanda/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions    = "/sessions"
	PathRestaurants = "/restaurants"
)

func addSessionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.Join)
		sessions.GET("/current", sessionHandler.Current)
		sessions.DELETE("/current", sessionHandler.Leave)
	}
}

func addMenuRoutes(rg *gin.RouterGroup, menuHandler *handlers.MenuHandler) {
	rg.GET(PathRestaurants+"/:restaurant_id/menu", menuHandler.GetMenu)
}
