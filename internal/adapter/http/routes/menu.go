package routes

import (
	"github.com/KelwinHenrique/garfai-be/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMenus        = "/menus"
	PathEnvironments = "/environments"
	PathItems        = "/items"
)

func addMenuRoutes(rg *gin.RouterGroup, menuHandler *handlers.MenuHandler) {
	menus := rg.Group(PathMenus)
	{
		// Endpoints compatíveis com IMenuUseCase.
		menus.POST("/import", menuHandler.ImportMenu)
		menus.GET("/:menuId", menuHandler.GetMenuByID)
	}

	environments := rg.Group(PathEnvironments)
	{
		environments.GET("/:environmentId/menus", menuHandler.ListMenus)
		environments.GET("/:environmentId/menus/active", menuHandler.GetActiveMenu)
	}

	items := rg.Group(PathItems)
	{
		items.GET("/:itemId", menuHandler.GetItemByID)
	}
}
