package models

import "time"

// Reservation statuses.
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
)

var reservationTransitions = map[string][]string{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCompleted, ReservationStatusCancelled},
}

// CanTransitionReservation reports whether a reservation may move from
// one status to another.
func CanTransitionReservation(from, to string) bool {
	for _, s := range reservationTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Date/time layouts accepted for reservations.
const (
	ReservationDateLayout = "2006-01-02"
	ReservationTimeLayout = "15:04"
)

// Reservation is a table booking. The composite unique index on
// (date, time) is the safety net against double bookings: the insert
// fails atomically at the storage layer even if two requests race past
// the application-level slot check.
type Reservation struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	ReservationNumber string `gorm:"type:varchar(32);uniqueIndex;not null" json:"reservation_number"`
	UserID            *uint  `gorm:"index" json:"user_id,omitempty"`
	User              *User  `gorm:"foreignKey:UserID;references:ID" json:"-"`

	Date            string `gorm:"type:varchar(10);not null;uniqueIndex:idx_reservation_slot" json:"date"`
	Time            string `gorm:"type:varchar(5);not null;uniqueIndex:idx_reservation_slot" json:"time"`
	Guests          int    `gorm:"not null" json:"guests"`
	SpecialRequests string `gorm:"type:text" json:"special_requests"`
	Status          string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	GuestName  string `gorm:"type:varchar(200)" json:"guest_name"`
	GuestEmail string `gorm:"type:varchar(255)" json:"guest_email"`
	GuestPhone string `gorm:"type:varchar(20)" json:"guest_phone"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (r *Reservation) CustomerEmail() string {
	if r.GuestEmail != "" {
		return r.GuestEmail
	}
	if r.User != nil {
		return r.User.Email
	}
	return ""
}

func (r *Reservation) CustomerName() string {
	if r.GuestName != "" {
		return r.GuestName
	}
	if r.User != nil {
		return r.User.Name
	}
	return "Guest"
}
