package models

import "time"

// Notification kinds recorded in the email log.
const (
	EmailKindWelcome                 = "welcome"
	EmailKindOrderConfirmation       = "order_confirmation"
	EmailKindReservationConfirmation = "reservation_confirmation"
	EmailKindStatusUpdate            = "status_update"
	EmailKindAdminAlert              = "admin_alert"
)

// EmailLog records every attempted outbound email and whether the
// provider accepted it. Delivery is best effort; a failed row never
// fails the order or reservation that produced it.
type EmailLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Recipient string    `gorm:"type:varchar(255);not null" json:"recipient"`
	Subject   string    `gorm:"type:varchar(255);not null" json:"subject"`
	Kind      string    `gorm:"type:varchar(40);not null;index" json:"kind"`
	Delivered bool      `gorm:"not null" json:"delivered"`
	Error     string    `gorm:"type:text" json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
