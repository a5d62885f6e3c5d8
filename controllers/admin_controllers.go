package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellavista/restaurant-backend/models"
	"github.com/bellavista/restaurant-backend/services"
	"github.com/bellavista/restaurant-backend/utils"
)

// AdminController backs the staff dashboard. All routes are gated by
// the staff flag in the JWT.
type AdminController struct {
	DB     *gorm.DB
	Notify *services.NotificationService
}

func NewAdminController(db *gorm.DB, notify *services.NotificationService) *AdminController {
	return &AdminController{DB: db, Notify: notify}
}

// GetDashboardStats summarizes orders and reservations for the
// dashboard landing page.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	var totalOrders, pendingOrders, totalReservations, upcomingReservations int64

	ac.DB.Model(&models.Order{}).Count(&totalOrders)
	ac.DB.Model(&models.Order{}).
		Where("status IN ?", []string{models.OrderStatusPending, models.OrderStatusPaid, models.OrderStatusPreparing}).
		Count(&pendingOrders)
	ac.DB.Model(&models.Reservation{}).Count(&totalReservations)
	ac.DB.Model(&models.Reservation{}).
		Where("date >= ? AND status = ?", time.Now().Format(models.ReservationDateLayout), models.ReservationStatusConfirmed).
		Count(&upcomingReservations)

	var recentOrders []models.Order
	ac.DB.Order("created_at DESC").Limit(10).Find(&recentOrders)

	var recentReservations []models.Reservation
	ac.DB.Order("created_at DESC").Limit(10).Find(&recentReservations)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"total_orders":          totalOrders,
		"pending_orders":        pendingOrders,
		"total_reservations":    totalReservations,
		"upcoming_reservations": upcomingReservations,
		"recent_orders":         recentOrders,
		"recent_reservations":   recentReservations,
	})
}

// ListOrders returns all orders, optionally filtered by status.
func (ac *AdminController) ListOrders(c *gin.Context) {
	query := ac.DB.Preload("Items").Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrder returns one order with its line items.
func (ac *AdminController) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var order models.Order
	if err := ac.DB.Preload("Items.MenuItem").Preload("User").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus moves an order through the fulfillment flow. Only
// transitions in the legal-transition table are applied.
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := ac.DB.Preload("User").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !models.CanTransitionOrder(order.Status, input.Status) {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("cannot change order status from %s to %s", order.Status, input.Status))
		return
	}

	order.Status = input.Status
	if err := ac.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %s status changed to %s", order.OrderNumber, order.Status)

	ac.Notify.Dispatch(c.Request.Context(), services.OrderStatusUpdateMessage(&order))

	utils.RespondJSON(c, http.StatusOK, "Order status updated successfully", order)
}

// ListReservations returns all bookings, optionally filtered by status
// and/or date.
func (ac *AdminController) ListReservations(c *gin.Context) {
	query := ac.DB.Order("date, time")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if dateStr := c.Query("date"); dateStr != "" {
		if date, err := time.Parse(models.ReservationDateLayout, dateStr); err == nil {
			query = query.Where("date = ?", date.Format(models.ReservationDateLayout))
		}
		// Malformed date filters are ignored, matching the listing's
		// lenient filtering behaviour.
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// UpdateReservationStatus moves a booking through its lifecycle,
// validated against the legal-transition table.
func (ac *AdminController) UpdateReservationStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation id"))
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var reservation models.Reservation
	if err := ac.DB.Preload("User").First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !models.CanTransitionReservation(reservation.Status, input.Status) {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("cannot change reservation status from %s to %s", reservation.Status, input.Status))
		return
	}

	reservation.Status = input.Status
	if err := ac.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %s status changed to %s", reservation.ReservationNumber, reservation.Status)

	ac.Notify.Dispatch(c.Request.Context(), services.ReservationStatusUpdateMessage(&reservation))

	utils.RespondJSON(c, http.StatusOK, "Reservation status updated successfully", reservation)
}

// ListEmailLog exposes the notification audit trail.
func (ac *AdminController) ListEmailLog(c *gin.Context) {
	var entries []models.EmailLog
	if err := ac.DB.Order("created_at DESC").Limit(100).Find(&entries).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Email log", entries)
}
