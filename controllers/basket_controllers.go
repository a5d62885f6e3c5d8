package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellavista/restaurant-backend/basket"
	"github.com/bellavista/restaurant-backend/models"
	"github.com/bellavista/restaurant-backend/utils"
)

type BasketController struct {
	DB      *gorm.DB
	Baskets basket.Store
}

func NewBasketController(db *gorm.DB, baskets basket.Store) *BasketController {
	return &BasketController{DB: db, Baskets: baskets}
}

// basketLine is one priced basket entry resolved against the menu.
type basketLine struct {
	Item     models.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
	Subtotal float64         `json:"subtotal"`
}

// resolveBasket prices the basket against current menu prices. Entries
// whose item no longer exists are skipped, not surfaced as errors.
func resolveBasket(db *gorm.DB, b basket.Basket) ([]basketLine, float64) {
	lines := make([]basketLine, 0, len(b))
	var total float64

	for itemID, qty := range b {
		var item models.MenuItem
		if err := db.First(&item, itemID).Error; err != nil {
			continue
		}
		subtotal := item.Price * float64(qty)
		lines = append(lines, basketLine{
			Item:     item,
			Quantity: qty,
			Subtotal: subtotal,
		})
		total += subtotal
	}

	return lines, total
}

// ViewBasket returns the basket contents with current prices.
func (bc *BasketController) ViewBasket(c *gin.Context) {
	sessionID := c.GetString("basket_session")

	b, err := bc.Baskets.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	lines, total := resolveBasket(bc.DB, b)

	utils.RespondJSON(c, http.StatusOK, "Basket contents", gin.H{
		"items": lines,
		"total": total,
		"count": b.Count(),
	})
}

// AddToBasket adds quantity of one item, verifying it exists and is
// available first.
func (bc *BasketController) AddToBasket(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item id"))
		return
	}

	// Body is optional; a bare POST adds a single unit.
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	var item models.MenuItem
	if err := bc.DB.Where("id = ? AND is_available = ?", itemID, true).First(&item).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("item not found or not available"))
		return
	}

	sessionID := c.GetString("basket_session")
	b, err := bc.Baskets.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	b.Add(uint(itemID), input.Quantity)
	if err := bc.Baskets.Save(c.Request.Context(), sessionID, b); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item added to basket", gin.H{
		"item_name":    item.Name,
		"basket_count": b.Count(),
	})
}

// UpdateBasket sets the quantity of one entry; zero or less removes it.
func (bc *BasketController) UpdateBasket(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item id"))
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sessionID := c.GetString("basket_session")
	b, err := bc.Baskets.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	b.Set(uint(itemID), input.Quantity)
	if err := bc.Baskets.Save(c.Request.Context(), sessionID, b); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	_, total := resolveBasket(bc.DB, b)

	utils.RespondJSON(c, http.StatusOK, "Basket updated", gin.H{
		"total": total,
		"count": b.Count(),
	})
}

// RemoveFromBasket deletes an entry unconditionally.
func (bc *BasketController) RemoveFromBasket(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item id"))
		return
	}

	sessionID := c.GetString("basket_session")
	b, err := bc.Baskets.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	b.Remove(uint(itemID))
	if err := bc.Baskets.Save(c.Request.Context(), sessionID, b); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	_, total := resolveBasket(bc.DB, b)

	utils.RespondJSON(c, http.StatusOK, "Item removed from basket", gin.H{
		"total":        total,
		"basket_empty": b.IsEmpty(),
	})
}
