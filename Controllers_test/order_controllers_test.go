package Controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/bellavista/restaurant-backend/basket"
	"github.com/bellavista/restaurant-backend/controllers"
	"github.com/bellavista/restaurant-backend/models"
	"github.com/bellavista/restaurant-backend/services"
)

const orderTestSession = "order-test-session"

func setupOrderRouter(db *gorm.DB, store basket.Store, mailer *fakeMailer) *gin.Engine {
	r := gin.New()
	r.Use(fixedBasketSession(orderTestSession))
	notify := services.NewNotificationService(db, mailer)
	orderCtrl := controllers.NewOrderController(db, store, notify, nil, 5.00, "admin@restaurant.com")
	r.GET("/checkout", orderCtrl.Checkout)
	r.POST("/orders", orderCtrl.PlaceOrder)
	r.GET("/orders/:order_number", orderCtrl.GetOrderByNumber)
	return r
}

func placeOrder(t *testing.T, r *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	assert.NoError(t, err)
	req, err := http.NewRequest("POST", "/orders", bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlaceDeliveryOrderTotals(t *testing.T) {
	db := newTestDB()
	store := newBasketStore()
	mailer := &fakeMailer{}
	r := setupOrderRouter(db, store, mailer)

	itemA := seedMenuItem(db, "Item A", 10.00, true)
	itemB := seedMenuItem(db, "Item B", 5.00, true)
	store.Save(context.Background(), orderTestSession, basket.Basket{itemA.ID: 2, itemB.ID: 1})

	w := placeOrder(t, r, map[string]interface{}{
		"order_type":       "delivery",
		"delivery_address": "1 High Street",
		"guest_name":       "Ada",
		"guest_email":      "ada@example.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	assert.NoError(t, db.Preload("Items").First(&order).Error)
	assert.Equal(t, 25.00, order.Subtotal)
	assert.Equal(t, 5.00, order.DeliveryFee)
	assert.Equal(t, 30.00, order.Total)
	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.Len(t, order.Items, 2)
	assert.Len(t, order.OrderNumber, 16)

	// Basket is cleared after checkout.
	b, err := store.Get(context.Background(), orderTestSession)
	assert.NoError(t, err)
	assert.True(t, b.IsEmpty())

	// Customer confirmation plus admin alert.
	assert.Len(t, mailer.sent, 2)
	assert.Equal(t, "ada@example.com", mailer.sent[0].Recipient)
	assert.Equal(t, "admin@restaurant.com", mailer.sent[1].Recipient)
}

func TestPlaceCollectionOrderHasNoDeliveryFee(t *testing.T) {
	db := newTestDB()
	store := newBasketStore()
	r := setupOrderRouter(db, store, &fakeMailer{})

	item := seedMenuItem(db, "Item A", 10.00, true)
	store.Save(context.Background(), orderTestSession, basket.Basket{item.ID: 1})

	w := placeOrder(t, r, map[string]interface{}{
		"order_type":  "collection",
		"guest_email": "ada@example.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	assert.NoError(t, db.First(&order).Error)
	assert.Equal(t, 0.00, order.DeliveryFee)
	assert.Equal(t, order.Subtotal, order.Total)
	assert.NotNil(t, order.CollectionTime)
}

func TestEmptyBasketCheckoutRejected(t *testing.T) {
	db := newTestDB()
	store := newBasketStore()
	r := setupOrderRouter(db, store, &fakeMailer{})

	w := placeOrder(t, r, map[string]interface{}{
		"order_type":       "delivery",
		"delivery_address": "1 High Street",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// The summary endpoint rejects the empty basket too.
	req, _ := http.NewRequest("GET", "/checkout", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeliveryOrderRequiresAddress(t *testing.T) {
	db := newTestDB()
	store := newBasketStore()
	r := setupOrderRouter(db, store, &fakeMailer{})

	item := seedMenuItem(db, "Item A", 10.00, true)
	store.Save(context.Background(), orderTestSession, basket.Basket{item.ID: 1})

	w := placeOrder(t, r, map[string]interface{}{"order_type": "delivery"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestOrderItemPriceSnapshot(t *testing.T) {
	db := newTestDB()
	store := newBasketStore()
	r := setupOrderRouter(db, store, &fakeMailer{})

	item := seedMenuItem(db, "Item A", 10.00, true)
	store.Save(context.Background(), orderTestSession, basket.Basket{item.ID: 1})

	w := placeOrder(t, r, map[string]interface{}{
		"order_type":  "collection",
		"guest_email": "ada@example.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Raise the menu price after the order; the line keeps the price
	// paid at order time.
	db.Model(&models.MenuItem{}).Where("id = ?", item.ID).Update("price", 99.99)

	var line models.OrderItem
	assert.NoError(t, db.First(&line).Error)
	assert.Equal(t, 10.00, line.Price)
	assert.Equal(t, 10.00, line.LineTotal())
}

func TestNotifierFailureDoesNotFailOrder(t *testing.T) {
	db := newTestDB()
	store := newBasketStore()
	mailer := &fakeMailer{fail: true}
	r := setupOrderRouter(db, store, mailer)

	item := seedMenuItem(db, "Item A", 10.00, true)
	store.Save(context.Background(), orderTestSession, basket.Basket{item.ID: 1})

	w := placeOrder(t, r, map[string]interface{}{
		"order_type":  "collection",
		"guest_email": "ada@example.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Equal(t, int64(1), orderCount)

	// The failures are recorded in the email log.
	var logs []models.EmailLog
	db.Find(&logs)
	assert.Len(t, logs, 2)
	for _, entry := range logs {
		assert.False(t, entry.Delivered)
		assert.NotEmpty(t, entry.Error)
	}
}

func TestGetOrderByNumber(t *testing.T) {
	db := newTestDB()
	store := newBasketStore()
	r := setupOrderRouter(db, store, &fakeMailer{})

	item := seedMenuItem(db, "Item A", 10.00, true)
	store.Save(context.Background(), orderTestSession, basket.Basket{item.ID: 1})

	w := placeOrder(t, r, map[string]interface{}{
		"order_type":  "collection",
		"guest_email": "ada@example.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	assert.NoError(t, db.First(&order).Error)

	req, _ := http.NewRequest("GET", "/orders/"+order.OrderNumber, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req, _ = http.NewRequest("GET", "/orders/DOESNOTEXIST0000", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
