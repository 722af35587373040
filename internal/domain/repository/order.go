package repository

import (
	"context"

	"github.com/mkholodov/storefront/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create persists a new order. A number collision surfaces as ErrConflict.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// ListByUser returns the owner's orders most-recent-first; an empty
	// result is an empty slice, never an error.
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	// Update loads the order under a row lock, applies fn and persists the
	// mutable fields as a single atomic write. An error from fn aborts the
	// transaction and leaves the order unchanged.
	Update(ctx context.Context, id string, fn func(*model.Order) error) (*model.Order, error)
}
