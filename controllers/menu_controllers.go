package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellavista/restaurant-backend/models"
	"github.com/bellavista/restaurant-backend/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenuItems lists available items, optionally filtered by category.
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !models.IsValidCategory(category) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid category"))
		return
	}

	query := mc.DB.Where("is_available = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var items []models.MenuItem
	if err := query.Order("category, name").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menu items", gin.H{
		"items":      items,
		"categories": models.MenuItemCategories,
		"category":   category,
	})
}

// GetFeaturedItems backs the homepage: the first six available items.
func (mc *MenuController) GetFeaturedItems(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Where("is_available = ?", true).Limit(6).Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Featured items", items)
}

// GetMenuItemByID returns one item, available or not.
func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item id"))
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

type menuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
	Ingredients string  `json:"ingredients"`
	Allergens   string  `json:"allergens"`
	IsAvailable *bool   `json:"is_available"`
}

// CreateMenuItem adds an item to the menu (staff only).
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !models.IsValidCategory(req.Category) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid category"))
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
		Allergens:   req.Allergens,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Menu item created: %s (%s)", item.Name, item.Category)
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem applies a partial update (staff only).
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item id"))
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var input struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Category    *string  `json:"category"`
		Price       *float64 `json:"price"`
		ImageURL    *string  `json:"image_url"`
		Ingredients *string  `json:"ingredients"`
		Allergens   *string  `json:"allergens"`
		IsAvailable *bool    `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if input.Category != nil && !models.IsValidCategory(*input.Category) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid category"))
		return
	}
	if input.Price != nil && *input.Price <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must be positive"))
		return
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	if input.Ingredients != nil {
		item.Ingredients = *input.Ingredients
	}
	if input.Allergens != nil {
		item.Allergens = *input.Allergens
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem removes an item (staff only). Items referenced by past
// orders are protected by the foreign key; those get a conflict response
// and should be marked unavailable instead.
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item id"))
		return
	}

	if err := mc.DB.Delete(&models.MenuItem{}, id).Error; err != nil {
		if isForeignKeyViolation(err) {
			utils.RespondError(c, http.StatusConflict,
				errors.New("this item appears on existing orders and cannot be deleted; mark it unavailable instead"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", nil)
}

// isForeignKeyViolation matches referential integrity errors across the
// sqlite and mysql drivers.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}
