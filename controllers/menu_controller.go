package controllers

import (
	"net/http"

	"github.com/Fromshel/ontaste-api/services"
	"github.com/gin-gonic/gin"
)

// MenuController handles HTTP requests for menu operations.
type MenuController struct {
	menuService services.MenuService
}

// NewMenuController creates a new MenuController.
func NewMenuController(menuService services.MenuService) *MenuController {
	return &MenuController{menuService: menuService}
}

// GetMenu handles GET /api/menu.
func (mc *MenuController) GetMenu(ctx *gin.Context) {
	items, svcErr := mc.menuService.ListMenu(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// SeedMenu handles GET /api/seed.
func (mc *MenuController) SeedMenu(ctx *gin.Context) {
	result, svcErr := mc.menuService.SeedMenu(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, result)
}
