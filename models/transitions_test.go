package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderTransitions(t *testing.T) {
	assert.True(t, CanTransitionOrder(OrderStatusPending, OrderStatusPaid))
	assert.True(t, CanTransitionOrder(OrderStatusPaid, OrderStatusPreparing))
	assert.True(t, CanTransitionOrder(OrderStatusPreparing, OrderStatusOutForDelivery))
	assert.True(t, CanTransitionOrder(OrderStatusOutForDelivery, OrderStatusDelivered))
	assert.True(t, CanTransitionOrder(OrderStatusReady, OrderStatusCompleted))

	// No skipping ahead.
	assert.False(t, CanTransitionOrder(OrderStatusPending, OrderStatusDelivered))
	assert.False(t, CanTransitionOrder(OrderStatusPaid, OrderStatusCompleted))

	// No going back.
	assert.False(t, CanTransitionOrder(OrderStatusPreparing, OrderStatusPaid))

	// Terminal states stay terminal.
	for _, status := range []string{OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled} {
		assert.False(t, CanTransitionOrder(status, OrderStatusPending), "from %s", status)
		assert.False(t, CanTransitionOrder(status, OrderStatusCancelled), "from %s", status)
	}

	// Unknown statuses never transition.
	assert.False(t, CanTransitionOrder("bogus", OrderStatusPaid))
	assert.False(t, CanTransitionOrder(OrderStatusPending, "bogus"))
}

func TestReservationTransitions(t *testing.T) {
	assert.True(t, CanTransitionReservation(ReservationStatusPending, ReservationStatusConfirmed))
	assert.True(t, CanTransitionReservation(ReservationStatusConfirmed, ReservationStatusCompleted))
	assert.True(t, CanTransitionReservation(ReservationStatusConfirmed, ReservationStatusCancelled))

	assert.False(t, CanTransitionReservation(ReservationStatusConfirmed, ReservationStatusPending))
	assert.False(t, CanTransitionReservation(ReservationStatusCompleted, ReservationStatusCancelled))
	assert.False(t, CanTransitionReservation(ReservationStatusCancelled, ReservationStatusConfirmed))
}

func TestMenuItemCategories(t *testing.T) {
	for _, cat := range MenuItemCategories {
		assert.True(t, IsValidCategory(cat))
	}
	assert.False(t, IsValidCategory("brunch"))
	assert.False(t, IsValidCategory(""))
}
