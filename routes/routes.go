package routes

import (
	"net/http"

	"github.com/Fromshel/ontaste-api/controllers"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every API route onto the engine.
func RegisterRoutes(r *gin.Engine, mc *controllers.MenuController, ac *controllers.AuthController, oc *controllers.OrderController) {
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		api.GET("/menu", mc.GetMenu)
		api.GET("/seed", mc.SeedMenu)

		api.POST("/register", ac.Register)
		api.POST("/login", ac.Login)

		api.POST("/order", oc.CreateOrder)
		api.GET("/orders/:email", oc.GetOrdersByEmail)
	}
}
