package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellavista/restaurant-backend/basket"
	"github.com/bellavista/restaurant-backend/models"
	"github.com/bellavista/restaurant-backend/services"
	"github.com/bellavista/restaurant-backend/utils"
)

type OrderController struct {
	DB          *gorm.DB
	Baskets     basket.Store
	Notify      *services.NotificationService
	Events      *services.EventPublisher
	DeliveryFee float64
	AdminEmail  string
}

func NewOrderController(db *gorm.DB, baskets basket.Store, notify *services.NotificationService,
	events *services.EventPublisher, deliveryFee float64, adminEmail string) *OrderController {
	return &OrderController{
		DB:          db,
		Baskets:     baskets,
		Notify:      notify,
		Events:      events,
		DeliveryFee: deliveryFee,
		AdminEmail:  adminEmail,
	}
}

// Checkout returns the priced basket plus the delivery fee preview.
func (oc *OrderController) Checkout(c *gin.Context) {
	sessionID := c.GetString("basket_session")

	b, err := oc.Baskets.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if b.IsEmpty() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("your basket is empty"))
		return
	}

	lines, subtotal := resolveBasket(oc.DB, b)

	utils.RespondJSON(c, http.StatusOK, "Checkout summary", gin.H{
		"items":        lines,
		"subtotal":     subtotal,
		"delivery_fee": oc.DeliveryFee,
		"total":        subtotal + oc.DeliveryFee,
	})
}

// PlaceOrder creates an order from the basket. Totals are recomputed
// server-side from current menu prices; client-submitted totals are
// never trusted.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req struct {
		OrderType       string `json:"order_type" binding:"required,oneof=delivery collection"`
		DeliveryAddress string `json:"delivery_address"`
		PaymentMethod   string `json:"payment_method"`
		PaymentToken    string `json:"payment_token"`
		GuestName       string `json:"guest_name"`
		GuestEmail      string `json:"guest_email" binding:"omitempty,email"`
		GuestPhone      string `json:"guest_phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.OrderType == models.OrderTypeDelivery && req.DeliveryAddress == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("delivery address is required for delivery orders"))
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "card"
	}

	sessionID := c.GetString("basket_session")
	b, err := oc.Baskets.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if b.IsEmpty() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("your basket is empty"))
		return
	}

	lines, subtotal := resolveBasket(oc.DB, b)
	if len(lines) == 0 {
		// Everything in the basket has been removed from the menu.
		utils.RespondError(c, http.StatusBadRequest, errors.New("your basket is empty"))
		return
	}

	deliveryFee := 0.0
	if req.OrderType == models.OrderTypeDelivery {
		deliveryFee = oc.DeliveryFee
	}

	order := models.Order{
		OrderNumber:   utils.GenerateOrderNumber(),
		UserID:        currentUserIDPtr(c),
		OrderType:     req.OrderType,
		Status:        models.OrderStatusPaid,
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		GuestPhone:    req.GuestPhone,
		Subtotal:      subtotal,
		DeliveryFee:   deliveryFee,
		Total:         subtotal + deliveryFee,
		PaymentMethod: req.PaymentMethod,
		PaymentToken:  req.PaymentToken,
	}

	if req.OrderType == models.OrderTypeDelivery {
		order.DeliveryAddress = req.DeliveryAddress
	} else {
		collectAt := time.Now().Add(time.Hour)
		order.CollectionTime = &collectAt
	}

	// Header and line items go in one transaction so a failed line
	// never leaves a half-written order behind.
	err = oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, line := range lines {
			item := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: line.Item.ID,
				Quantity:   line.Quantity,
				Price:      line.Item.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := oc.Baskets.Clear(c.Request.Context(), sessionID); err != nil {
		utils.ErrorLogger.Printf("Failed to clear basket for session %s: %v", sessionID, err)
	}

	if order.UserID != nil {
		oc.DB.Preload("User").Preload("Items.MenuItem").First(&order, order.ID)
	} else {
		oc.DB.Preload("Items.MenuItem").First(&order, order.ID)
	}

	utils.InfoLogger.Printf("Order %s created: %s, total %s", order.OrderNumber, order.OrderType, utils.FormatGBP(order.Total))

	ctx := c.Request.Context()
	oc.Notify.Dispatch(ctx, services.OrderConfirmationMessage(&order))
	oc.Notify.Dispatch(ctx, services.AdminAlertMessage(oc.AdminEmail, "Order", oc.adminOrderDetails(&order)))
	oc.Events.Publish(ctx, services.Event{
		Kind:      services.EventOrderCreated,
		Number:    order.OrderNumber,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	})

	utils.RespondJSON(c, http.StatusCreated, "Order placed successfully", order)
}

func (oc *OrderController) adminOrderDetails(order *models.Order) string {
	return fmt.Sprintf("Order Number: %s\nCustomer: %s\nEmail: %s\nPhone: %s\nOrder Type: %s\nTotal: %s",
		order.OrderNumber, order.CustomerName(), order.CustomerEmail(),
		order.GuestPhone, order.OrderType, utils.FormatGBP(order.Total))
}

// GetOrderByNumber returns the confirmation view of one order.
// Authenticated users may only read their own orders; guest orders are
// readable by anyone holding the order number.
func (oc *OrderController) GetOrderByNumber(c *gin.Context) {
	number := c.Param("order_number")

	var order models.Order
	if err := oc.DB.Preload("Items.MenuItem").Where("order_number = ?", number).First(&order).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if order.UserID != nil {
		userID, ok := currentUserID(c)
		if !ok || userID != *order.UserID {
			utils.RespondError(c, http.StatusForbidden, errors.New("access denied"))
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// MyOrders lists the authenticated user's orders, newest first.
func (oc *OrderController) MyOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var orders []models.Order
	if err := oc.DB.Preload("Items.MenuItem").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Your orders", orders)
}
