package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/bellavista/restaurant-backend/models"
	"github.com/bellavista/restaurant-backend/utils"
)

// Message builders for the emails the restaurant sends. Content mirrors
// the confirmation mails customers already receive.

func OrderConfirmationMessage(order *models.Order) Message {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\n", order.CustomerName())
	b.WriteString("Thank you for your order! Your order has been confirmed.\n\n")
	b.WriteString("Order Details:\n--------------\n")
	fmt.Fprintf(&b, "Order Number: %s\n", order.OrderNumber)
	fmt.Fprintf(&b, "Order Type: %s\n", order.OrderType)
	fmt.Fprintf(&b, "Total Amount: %s\n", utils.FormatGBP(order.Total))
	fmt.Fprintf(&b, "Status: %s\n\n", order.Status)

	if order.OrderType == models.OrderTypeDelivery {
		fmt.Fprintf(&b, "Delivery Address: %s\n", order.DeliveryAddress)
		fmt.Fprintf(&b, "Delivery Fee: %s\n", utils.FormatGBP(order.DeliveryFee))
	}

	b.WriteString("\nWe will notify you when your order is being prepared.\n\n")
	b.WriteString("Thank you for choosing our restaurant!\n\n")
	b.WriteString("Best regards,\nRestaurant Team")

	return Message{
		Recipient: order.CustomerEmail(),
		Subject:   fmt.Sprintf("Order Confirmation - %s", order.OrderNumber),
		Body:      b.String(),
		Kind:      models.EmailKindOrderConfirmation,
	}
}

func ReservationConfirmationMessage(res *models.Reservation) Message {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\n", res.CustomerName())
	b.WriteString("Your table reservation has been confirmed!\n\n")
	b.WriteString("Reservation Details:\n-------------------\n")
	fmt.Fprintf(&b, "Reservation Number: %s\n", res.ReservationNumber)
	fmt.Fprintf(&b, "Date: %s\n", formatReservationDate(res.Date))
	fmt.Fprintf(&b, "Time: %s\n", formatReservationTime(res.Time))
	fmt.Fprintf(&b, "Number of Guests: %d\n", res.Guests)
	fmt.Fprintf(&b, "Status: %s\n\n", res.Status)

	if res.SpecialRequests != "" {
		fmt.Fprintf(&b, "Special Requests: %s\n\n", res.SpecialRequests)
	}

	b.WriteString("We look forward to serving you!\n\n")
	b.WriteString("Best regards,\nRestaurant Team")

	return Message{
		Recipient: res.CustomerEmail(),
		Subject:   fmt.Sprintf("Reservation Confirmation - %s", res.ReservationNumber),
		Body:      b.String(),
		Kind:      models.EmailKindReservationConfirmation,
	}
}

func OrderStatusUpdateMessage(order *models.Order) Message {
	body := fmt.Sprintf("Hi %s,\n\nYour order status has been updated to: %s\n\nOrder Number: %s",
		order.CustomerName(), order.Status, order.OrderNumber)

	return Message{
		Recipient: order.CustomerEmail(),
		Subject:   fmt.Sprintf("Order Status Update - %s", order.OrderNumber),
		Body:      body,
		Kind:      models.EmailKindStatusUpdate,
	}
}

func ReservationStatusUpdateMessage(res *models.Reservation) Message {
	body := fmt.Sprintf("Hi %s,\n\nYour reservation status has been updated to: %s\n\nReservation Number: %s",
		res.CustomerName(), res.Status, res.ReservationNumber)

	return Message{
		Recipient: res.CustomerEmail(),
		Subject:   fmt.Sprintf("Reservation Status Update - %s", res.ReservationNumber),
		Body:      body,
		Kind:      models.EmailKindStatusUpdate,
	}
}

func WelcomeMessage(user *models.User) Message {
	body := fmt.Sprintf("Hi %s,\n\nThank you for signing up! Your account has been created successfully.", user.Name)

	return Message{
		Recipient: user.Email,
		Subject:   "Welcome to Our Restaurant!",
		Body:      body,
		Kind:      models.EmailKindWelcome,
	}
}

// AdminAlertMessage notifies staff about a new order or reservation.
func AdminAlertMessage(adminEmail, noun, details string) Message {
	body := fmt.Sprintf("New %s received!\n\n%s\n\nPlease check the staff dashboard for more details.\n\nBest regards,\nRestaurant System",
		noun, details)

	return Message{
		Recipient: adminEmail,
		Subject:   fmt.Sprintf("New %s Notification", noun),
		Body:      body,
		Kind:      models.EmailKindAdminAlert,
	}
}

func formatReservationDate(date string) string {
	t, err := time.Parse(models.ReservationDateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("January 02, 2006")
}

func formatReservationTime(value string) string {
	t, err := time.Parse(models.ReservationTimeLayout, value)
	if err != nil {
		return value
	}
	return t.Format("03:04 PM")
}
