package handler

import (
	"github.com/chingz/pos-api/internal/application/service"
	"github.com/chingz/pos-api/internal/domain/enum"
	"github.com/chingz/pos-api/internal/domain/repository"
	"github.com/chingz/pos-api/internal/presentation/http/dto/request"
	"github.com/chingz/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MenuHandler handles menu item HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List handles listing menu items, sorted category then name
func (h *MenuHandler) List(c *gin.Context) {
	params := &repository.MenuItemFilterParams{
		Search: c.Query("search"),
	}

	if categoryStr := c.Query("category"); categoryStr != "" {
		category := enum.MenuCategory(categoryStr)
		params.Category = &category
	}

	items, err := h.menuService.ListMenuItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu items retrieved successfully", items)
}

// Get handles getting a single menu item
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := h.menuService.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item retrieved successfully", item)
}

// Create handles creating a menu item
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.CreateMenuItem(c.Request.Context(), &service.CreateMenuItemInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Recipe:   req.Recipe,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created successfully", item)
}

// Update handles updating a menu item
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req request.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.UpdateMenuItem(c.Request.Context(), id, &service.UpdateMenuItemInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated successfully", item)
}

// UpdateRecipe handles setting or clearing a menu item's recipe
func (h *MenuHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req request.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.UpdateRecipe(c.Request.Context(), id, req.Recipe)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recipe updated successfully", item)
}

// SearchRecipes handles the recipe notebook search
func (h *MenuHandler) SearchRecipes(c *gin.Context) {
	items, err := h.menuService.SearchRecipes(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recipes retrieved successfully", items)
}

// Delete handles deleting a menu item
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.DeleteMenuItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item deleted successfully", nil)
}
