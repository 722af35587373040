package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/mkholodov/storefront/internal/domain/errors"
	"github.com/mkholodov/storefront/internal/domain/model"
	"github.com/mkholodov/storefront/internal/domain/repository"
	"github.com/mkholodov/storefront/internal/pkg/ordernum"
)

// OrderUseCase encapsulates order lifecycle logic: creation with a unique
// order number, ownership-scoped reads, and role-scoped transitions.
type OrderUseCase struct {
	orders   repository.OrderRepository
	numbers  *ordernum.Generator
	attempts int
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase. attempts bounds order number
// regeneration on collision.
func NewOrderUseCase(orders repository.OrderRepository, numbers *ordernum.Generator, attempts int) *OrderUseCase {
	if attempts <= 0 {
		attempts = 1
	}
	return &OrderUseCase{orders: orders, numbers: numbers, attempts: attempts, now: time.Now}
}

// Create validates the checkout draft and persists a new order for the
// caller. A number collision gets a fresh suffix; the attempt budget
// exhausting surfaces the conflict to the caller.
func (u *OrderUseCase) Create(ctx context.Context, ident model.Identity, draft model.OrderDraft) (*model.Order, error) {
	order, err := model.NewOrder(ident.UserID, draft)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < u.attempts; attempt++ {
		order.Number = u.numbers.Next(u.now())
		stored, err := u.orders.Create(ctx, order)
		if err == nil {
			return stored, nil
		}
		if !errors.Is(err, domainErrors.ErrConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// Get returns a single order visible to the caller. Foreign orders are
// reported as not found.
func (u *OrderUseCase) Get(ctx context.Context, ident model.Identity, orderID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := authorizeRead(ident, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListOwn returns the caller's orders most-recent-first; no orders is an
// empty slice.
func (u *OrderUseCase) ListOwn(ctx context.Context, ident model.Identity) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, ident.UserID)
}

// ConfirmPayment attaches a payment confirmation to an order the caller
// owns. Ownership is re-checked inside the storage transaction, so a stale
// earlier read cannot authorize the write.
func (u *OrderUseCase) ConfirmPayment(ctx context.Context, ident model.Identity, orderID string, result model.PaymentResult) (*model.Order, error) {
	return u.orders.Update(ctx, orderID, func(o *model.Order) error {
		if err := authorizeOwner(ident, o); err != nil {
			return err
		}
		return o.MarkPaid(result, u.now())
	})
}

// AdminUpdate applies an admin-scoped patch to any order, subject to the
// status state machine. Role is re-checked inside the transaction.
func (u *OrderUseCase) AdminUpdate(ctx context.Context, ident model.Identity, orderID string, patch model.AdminOrderPatch) (*model.Order, error) {
	if err := authorizeAdmin(ident); err != nil {
		return nil, err
	}
	return u.orders.Update(ctx, orderID, func(o *model.Order) error {
		if err := authorizeAdmin(ident); err != nil {
			return err
		}
		return patch.Apply(o, u.now())
	})
}
