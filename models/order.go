package models

import "time"

// Order types.
const (
	OrderTypeDelivery   = "delivery"
	OrderTypeCollection = "collection"
)

// Order statuses.
const (
	OrderStatusPending        = "pending"
	OrderStatusPaid           = "paid"
	OrderStatusPreparing      = "preparing"
	OrderStatusReady          = "ready"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCompleted      = "completed"
	OrderStatusCancelled      = "cancelled"
)

// orderTransitions is the set of legal status moves. Anything not listed
// here is rejected, including moves out of a terminal status.
var orderTransitions = map[string][]string{
	OrderStatusPending:        {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:           {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:      {OrderStatusReady, OrderStatusOutForDelivery, OrderStatusCancelled},
	OrderStatusReady:          {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusOutForDelivery: {OrderStatusDelivered, OrderStatusCancelled},
}

// CanTransitionOrder reports whether an order may move from one status
// to another.
func CanTransitionOrder(from, to string) bool {
	for _, s := range orderTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNumber string `gorm:"type:varchar(32);uniqueIndex;not null" json:"order_number"`
	UserID      *uint  `gorm:"index" json:"user_id,omitempty"`
	User        *User  `gorm:"foreignKey:UserID;references:ID" json:"-"`
	OrderType   string `gorm:"type:varchar(20);not null" json:"order_type"`
	Status      string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Guest contact, used when no account is attached.
	GuestName  string `gorm:"type:varchar(200)" json:"guest_name"`
	GuestEmail string `gorm:"type:varchar(255)" json:"guest_email"`
	GuestPhone string `gorm:"type:varchar(20)" json:"guest_phone"`

	DeliveryAddress string     `gorm:"type:text" json:"delivery_address"`
	CollectionTime  *time.Time `json:"collection_time,omitempty"`

	Subtotal    float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	DeliveryFee float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"delivery_fee"`
	Total       float64 `gorm:"type:decimal(10,2);not null" json:"total"`

	// Payment token is opaque, never validated against a processor.
	PaymentMethod string `gorm:"type:varchar(50);not null;default:'card'" json:"payment_method"`
	PaymentToken  string `gorm:"type:varchar(200)" json:"-"`

	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null" json:"updated_at"`
}

// CustomerEmail returns the address notifications should go to, guest
// contact first, the account second.
func (o *Order) CustomerEmail() string {
	if o.GuestEmail != "" {
		return o.GuestEmail
	}
	if o.User != nil {
		return o.User.Email
	}
	return ""
}

// CustomerName returns the display name for notifications.
func (o *Order) CustomerName() string {
	if o.GuestName != "" {
		return o.GuestName
	}
	if o.User != nil {
		return o.User.Name
	}
	return "Customer"
}
