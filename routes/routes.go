package routes

import (
	"Farol/controllers"
	"Farol/services/gateway"
	"Farol/services/registry"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the REST surface and the websocket mount. All
// game mutation flows through the websocket protocol; the REST endpoints
// are read-only conveniences.
func SetupRoutes(router *gin.Engine, reg *registry.Registry, hub *gateway.Hub) {
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.GET("/leaderboard", controllers.GetLeaderboard(reg))

	api.GET("/online", controllers.GetOnlineUsers(reg))

	api.GET("/ws", hub.ServeWS())
}
