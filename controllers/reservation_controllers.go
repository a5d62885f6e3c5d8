package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellavista/restaurant-backend/models"
	"github.com/bellavista/restaurant-backend/services"
	"github.com/bellavista/restaurant-backend/utils"
)

type ReservationController struct {
	DB         *gorm.DB
	Notify     *services.NotificationService
	Events     *services.EventPublisher
	AdminEmail string
}

func NewReservationController(db *gorm.DB, notify *services.NotificationService,
	events *services.EventPublisher, adminEmail string) *ReservationController {
	return &ReservationController{DB: db, Notify: notify, Events: events, AdminEmail: adminEmail}
}

// CreateReservation books a table slot. The composite unique index on
// (date, time) makes the insert the real double-booking guard; the
// pre-check only exists for a friendly error message.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		Date            string `json:"date" binding:"required"`
		Time            string `json:"time" binding:"required"`
		Guests          int    `json:"guests" binding:"required,min=1"`
		SpecialRequests string `json:"special_requests"`
		GuestName       string `json:"guest_name"`
		GuestEmail      string `json:"guest_email" binding:"omitempty,email"`
		GuestPhone      string `json:"guest_phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	date, err := time.Parse(models.ReservationDateLayout, req.Date)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date or time format"))
		return
	}
	slot, err := time.Parse(models.ReservationTimeLayout, req.Time)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date or time format"))
		return
	}

	dateStr := date.Format(models.ReservationDateLayout)
	timeStr := slot.Format(models.ReservationTimeLayout)

	var count int64
	rc.DB.Model(&models.Reservation{}).Where("date = ? AND time = ?", dateStr, timeStr).Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusConflict, errors.New("this time slot is already booked, please choose another time"))
		return
	}

	reservation := models.Reservation{
		ReservationNumber: utils.GenerateOrderNumber(),
		UserID:            currentUserIDPtr(c),
		Date:              dateStr,
		Time:              timeStr,
		Guests:            req.Guests,
		SpecialRequests:   req.SpecialRequests,
		Status:            models.ReservationStatusConfirmed,
		GuestName:         req.GuestName,
		GuestEmail:        req.GuestEmail,
		GuestPhone:        req.GuestPhone,
	}

	if err := rc.DB.Create(&reservation).Error; err != nil {
		// A concurrent request can win the slot between the check and
		// the insert; the unique index turns that race into an error.
		if isUniqueViolation(err) {
			utils.RespondError(c, http.StatusConflict, errors.New("this time slot is already booked, please choose another time"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if reservation.UserID != nil {
		rc.DB.Preload("User").First(&reservation, reservation.ID)
	}

	utils.InfoLogger.Printf("Reservation %s created for %s %s (%d guests)",
		reservation.ReservationNumber, reservation.Date, reservation.Time, reservation.Guests)

	ctx := c.Request.Context()
	rc.Notify.Dispatch(ctx, services.ReservationConfirmationMessage(&reservation))
	rc.Notify.Dispatch(ctx, services.AdminAlertMessage(rc.AdminEmail, "Reservation", rc.adminReservationDetails(&reservation)))
	rc.Events.Publish(ctx, services.Event{
		Kind:      services.EventReservationCreated,
		Number:    reservation.ReservationNumber,
		Guests:    reservation.Guests,
		CreatedAt: reservation.CreatedAt,
	})

	utils.RespondJSON(c, http.StatusCreated, "Reservation confirmed", reservation)
}

func (rc *ReservationController) adminReservationDetails(res *models.Reservation) string {
	requests := res.SpecialRequests
	if requests == "" {
		requests = "None"
	}
	return fmt.Sprintf("Reservation Number: %s\nGuest Name: %s\nEmail: %s\nPhone: %s\nDate: %s\nTime: %s\nNumber of Guests: %d\nSpecial Requests: %s",
		res.ReservationNumber, res.CustomerName(), res.CustomerEmail(),
		res.GuestPhone, res.Date, res.Time, res.Guests, requests)
}

// GetReservationByNumber returns the confirmation view of one booking.
func (rc *ReservationController) GetReservationByNumber(c *gin.Context) {
	number := c.Param("reservation_number")

	var reservation models.Reservation
	if err := rc.DB.Where("reservation_number = ?", number).First(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	if reservation.UserID != nil {
		userID, ok := currentUserID(c)
		if !ok || userID != *reservation.UserID {
			utils.RespondError(c, http.StatusForbidden, errors.New("access denied"))
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// MyReservations lists the authenticated user's bookings.
func (rc *ReservationController) MyReservations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var reservations []models.Reservation
	if err := rc.DB.Where("user_id = ?", userID).
		Order("date DESC, time DESC").Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Your reservations", reservations)
}

// isUniqueViolation matches unique constraint errors across the sqlite
// and mysql drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
