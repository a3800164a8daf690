package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/KelwinHenrique/garfai-be/internal/adapter/http/dto/request"
	response "github.com/KelwinHenrique/garfai-be/internal/adapter/http/dto/response"
	"github.com/KelwinHenrique/garfai-be/internal/usecase"
	"github.com/KelwinHenrique/garfai-be/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMenuPayload = pkg.NewDomainErrorSimple("INVALID_MENU_INPUT", "Invalid menu payload", http.StatusBadRequest)

type MenuHandler struct {
	usecase usecase.IMenuUseCase
}

func NewMenuHandler(uc usecase.IMenuUseCase) *MenuHandler {
	return &MenuHandler{usecase: uc}
}

// ImportMenu fetches a merchant catalog from the marketplace and materializes it.
func (h *MenuHandler) ImportMenu(c *gin.Context) {
	var payload request.ImportMenuRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMenuPayload.HTTPStatus, errInvalidMenuPayload.ToHTTPError())
		return
	}

	menu, err := h.usecase.ImportMenu(c.Request.Context(), payload.EnvironmentID, payload.MerchantID)
	if err != nil {
		log.Printf("[menu][handler] import failed environment_id=%s err=%v", payload.EnvironmentID, err)
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.FromMenu(menu))
}

func (h *MenuHandler) GetMenuByID(c *gin.Context) {
	menu, err := h.usecase.GetMenuByID(c.Request.Context(), c.Param("menuId"))
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, menu)
}

// GetActiveMenu returns the currently active catalog tree for an environment.
func (h *MenuHandler) GetActiveMenu(c *gin.Context) {
	menu, err := h.usecase.GetActiveMenuByEnvironment(c.Request.Context(), c.Param("environmentId"))
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, menu)
}

func (h *MenuHandler) ListMenus(c *gin.Context) {
	menus, err := h.usecase.ListMenusByEnvironment(c.Request.Context(), c.Param("environmentId"))
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"menus": response.FromMenuList(menus)})
}

func (h *MenuHandler) GetItemByID(c *gin.Context) {
	item, err := h.usecase.GetItemByID(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, item)
}

func mapMenuError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEnvironmentNotFound):
		return pkg.NewDomainErrorSimple("ENVIRONMENT_NOT_FOUND", "Environment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMenuNotFound):
		return pkg.NewDomainErrorSimple("MENU_NOT_FOUND", "Menu not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyCatalog):
		return pkg.NewDomainErrorSimple("EMPTY_CATALOG", "Remote catalog had no categories", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
