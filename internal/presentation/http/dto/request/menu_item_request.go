package request

// CreateMenuItemRequest represents a create menu item request
type CreateMenuItemRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Price    float64 `json:"price" binding:"min=0"`
	Category string  `json:"category"`
	Recipe   *string `json:"recipe"`
}

// UpdateMenuItemRequest represents an update menu item request. Omitted
// fields are left unchanged.
type UpdateMenuItemRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	Category *string  `json:"category"`
}

// UpdateRecipeRequest represents a recipe update. A null recipe clears it.
type UpdateRecipeRequest struct {
	Recipe *string `json:"recipe"`
}
