package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bellavista/restaurant-backend/controllers"
	"github.com/bellavista/restaurant-backend/models"
	"github.com/bellavista/restaurant-backend/utils"
)

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	menuCtrl := controllers.NewMenuController(db)
	r.GET("/menu", menuCtrl.GetAllMenuItems)
	r.GET("/menu/featured", menuCtrl.GetFeaturedItems)
	r.GET("/menu/:item_id", menuCtrl.GetMenuItemByID)
	r.POST("/staff/menu", menuCtrl.CreateMenuItem)
	r.PATCH("/staff/menu/:item_id", menuCtrl.UpdateMenuItem)
	r.DELETE("/staff/menu/:item_id", menuCtrl.DeleteMenuItem)
	return r
}

func TestMenuItemCRUD(t *testing.T) {
	db := newTestDB()
	r := setupMenuRouter(db)

	payload, _ := json.Marshal(map[string]interface{}{
		"name":        "Margherita Pizza",
		"description": "Classic Italian pizza",
		"category":    "main",
		"price":       12.99,
		"ingredients": "Tomato sauce, Mozzarella, Basil",
		"allergens":   "Gluten, Dairy",
	})
	req, _ := http.NewRequest("POST", "/staff/menu", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	itemID := int(data["id"].(float64))

	// Detail lookup.
	url := fmt.Sprintf("/menu/%d", itemID)
	req, _ = http.NewRequest("GET", url, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Partial update.
	payload, _ = json.Marshal(map[string]interface{}{
		"price":        13.50,
		"is_available": false,
	})
	req, _ = http.NewRequest("PATCH", fmt.Sprintf("/staff/menu/%d", itemID), bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var item models.MenuItem
	assert.NoError(t, db.First(&item, itemID).Error)
	assert.Equal(t, 13.50, item.Price)
	assert.False(t, item.IsAvailable)
	assert.Equal(t, "Margherita Pizza", item.Name)

	// Delete.
	req, _ = http.NewRequest("DELETE", fmt.Sprintf("/staff/menu/%d", itemID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Error(t, db.First(&models.MenuItem{}, itemID).Error)
}

func TestCreateUnavailableItemStaysUnavailable(t *testing.T) {
	db := newTestDB()
	r := setupMenuRouter(db)

	payload, _ := json.Marshal(map[string]interface{}{
		"name":         "Seasonal Special",
		"category":     "main",
		"price":        15.00,
		"is_available": false,
	})
	req, _ := http.NewRequest("POST", "/staff/menu", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// The explicit false must survive the insert, not be swallowed by a
	// column default.
	var item models.MenuItem
	assert.NoError(t, db.Where("name = ?", "Seasonal Special").First(&item).Error)
	assert.False(t, item.IsAvailable)

	// And the public listing must not show it.
	req, _ = http.NewRequest("GET", "/menu", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Len(t, data["items"], 0)

	// Omitting the flag still defaults to available.
	payload, _ = json.Marshal(map[string]interface{}{
		"name": "Daily Bread", "category": "starter", "price": 3.00,
	})
	req, _ = http.NewRequest("POST", "/staff/menu", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var bread models.MenuItem
	assert.NoError(t, db.Where("name = ?", "Daily Bread").First(&bread).Error)
	assert.True(t, bread.IsAvailable)
}

func TestMenuValidation(t *testing.T) {
	db := newTestDB()
	r := setupMenuRouter(db)

	cases := []map[string]interface{}{
		{"name": "Bad Category", "category": "brunch", "price": 9.99},
		{"name": "Free Lunch", "category": "main", "price": 0},
		{"name": "Negative", "category": "main", "price": -1.00},
		{"category": "main", "price": 9.99},
	}
	for _, body := range cases {
		payload, _ := json.Marshal(body)
		req, _ := http.NewRequest("POST", "/staff/menu", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	var count int64
	db.Model(&models.MenuItem{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteOrderedItemConflicts(t *testing.T) {
	// Foreign keys need switching on explicitly under sqlite, or the
	// RESTRICT constraint protecting order history never fires.
	dbCounter++
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_fk=1", dbCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.MenuItem{}, &models.Order{}, &models.OrderItem{},
	))
	r := setupMenuRouter(db)

	ordered := seedMenuItem(db, "Ordered Pizza", 12.00, true)
	unordered := seedMenuItem(db, "Never Ordered", 8.00, true)

	order := models.Order{
		OrderNumber: utils.GenerateOrderNumber(),
		OrderType:   models.OrderTypeCollection,
		Status:      models.OrderStatusPaid,
		Subtotal:    12.00,
		Total:       12.00,
	}
	assert.NoError(t, db.Create(&order).Error)
	assert.NoError(t, db.Create(&models.OrderItem{
		OrderID: order.ID, MenuItemID: ordered.ID, Quantity: 1, Price: 12.00,
	}).Error)

	// Deleting an item that appears on an order is refused.
	req, _ := http.NewRequest("DELETE", fmt.Sprintf("/staff/menu/%d", ordered.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, db.First(&models.MenuItem{}, ordered.ID).Error)

	// An item with no order history deletes cleanly.
	req, _ = http.NewRequest("DELETE", fmt.Sprintf("/staff/menu/%d", unordered.ID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMenuListingFiltersByCategoryAndAvailability(t *testing.T) {
	db := newTestDB()
	r := setupMenuRouter(db)

	seedMenuItem(db, "Available Main", 10.00, true)
	seedMenuItem(db, "Hidden Main", 11.00, false)
	starter := models.MenuItem{
		Name: "Soup", Category: models.CategoryStarter, Price: 4.50, IsAvailable: true,
	}
	db.Create(&starter)

	// Unfiltered listing shows only available items.
	req, _ := http.NewRequest("GET", "/menu", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Len(t, data["items"], 2)

	// Category filter.
	req, _ = http.NewRequest("GET", "/menu?category=starter", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.Len(t, data["items"], 1)

	// Unknown category rejected.
	req, _ = http.NewRequest("GET", "/menu?category=brunch", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Detail works for unavailable items too.
	var hidden models.MenuItem
	db.Where("name = ?", "Hidden Main").First(&hidden)
	req, _ = http.NewRequest("GET", fmt.Sprintf("/menu/%d", hidden.ID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
