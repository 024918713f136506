package controllers

import (
	"net/http"

	"github.com/Fromshel/ontaste-api/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests for order operations.
type OrderController struct {
	orderService services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(orderService services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder handles POST /api/order. The body is an arbitrary JSON object;
// no schema is enforced beyond it being an object.
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var payload map[string]interface{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	id, svcErr := oc.orderService.PlaceOrder(ctx.Request.Context(), payload)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

// GetOrdersByEmail handles GET /api/orders/:email.
func (oc *OrderController) GetOrdersByEmail(ctx *gin.Context) {
	email := ctx.Param("email")

	orders, svcErr := oc.orderService.ListOrdersByEmail(ctx.Request.Context(), email)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, orders)
}
