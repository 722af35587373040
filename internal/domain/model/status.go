package model

import (
	domainErrors "github.com/mkholodov/storefront/internal/domain/errors"
)

// OrderStatus describes fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:    {OrderStatusProcessing: true, OrderStatusCancelled: true},
	OrderStatusProcessing: {OrderStatusShipped: true, OrderStatusCancelled: true},
	OrderStatusShipped:    {OrderStatusDelivered: true},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s OrderStatus) bool {
	_, ok := validNext[s]
	return ok
}

// Transition validates a status change. Same-state is accepted as a no-op,
// anything outside the transition table fails with TransitionError.
func Transition(from, to OrderStatus) error {
	if !ValidStatus(to) {
		return domainErrors.NewValidation("status", "unknown status "+string(to))
	}
	if from == to {
		return nil
	}
	if !validNext[from][to] {
		return &domainErrors.TransitionError{From: string(from), To: string(to)}
	}
	return nil
}

// Terminal reports whether no further status transitions are accepted.
func Terminal(s OrderStatus) bool {
	return len(validNext[s]) == 0
}
