package test

import (
	"context"
	"time"

	"github.com/mkholodov/storefront/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, error)
	IdentityFn     func(context.Context, int64) (model.Identity, error)
}

// Register returns a fresh customer account for successful scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCustomer}, "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCustomer}, "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// Identity resolves the stubbed caller identity.
func (s AuthFacadeStub) Identity(ctx context.Context, userID int64) (model.Identity, error) {
	if s.IdentityFn != nil {
		return s.IdentityFn(ctx, userID)
	}
	return model.Identity{UserID: userID, Role: model.RoleCustomer}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn  func(context.Context, model.Identity, model.OrderDraft) (*model.Order, error)
	OrderFn   func(context.Context, model.Identity, string) (*model.Order, error)
	OrdersFn  func(context.Context, model.Identity) ([]model.Order, error)
	ConfirmFn func(context.Context, model.Identity, string, model.PaymentResult) (*model.Order, error)
	UpdateFn  func(context.Context, model.Identity, string, model.AdminOrderPatch) (*model.Order, error)
}

// CreateOrder delegates to the override or returns a pending order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, ident model.Identity, draft model.OrderDraft) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, ident, draft)
	}
	return &model.Order{
		ID:         "order-1",
		Number:     "ORD-260101-12345",
		UserID:     ident.UserID,
		Status:     model.OrderStatusPending,
		TotalPrice: draft.TotalPrice,
		CreatedAt:  time.Unix(0, 0).UTC(),
		UpdatedAt:  time.Unix(0, 0).UTC(),
	}, nil
}

// Order returns a single order visible to the caller.
func (s OrderFacadeStub) Order(ctx context.Context, ident model.Identity, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, ident, orderID)
	}
	return &model.Order{ID: orderID, UserID: ident.UserID, Status: model.OrderStatusPending}, nil
}

// Orders returns predefined orders for the caller.
func (s OrderFacadeStub) Orders(ctx context.Context, ident model.Identity) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, ident)
	}
	return []model.Order{{ID: "order-1", UserID: ident.UserID}}, nil
}

// ConfirmPayment executes configured confirmation handler.
func (s OrderFacadeStub) ConfirmPayment(ctx context.Context, ident model.Identity, orderID string, result model.PaymentResult) (*model.Order, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, ident, orderID, result)
	}
	now := time.Unix(0, 0).UTC()
	return &model.Order{ID: orderID, UserID: ident.UserID, Status: model.OrderStatusPending, IsPaid: true, PaidAt: &now, PaymentResult: &result}, nil
}

// UpdateOrder executes configured admin patch handler.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, ident model.Identity, orderID string, patch model.AdminOrderPatch) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, ident, orderID, patch)
	}
	order := &model.Order{ID: orderID, Status: model.OrderStatusPending}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	return order, nil
}

// AddressFacadeStub simulates address book operations.
type AddressFacadeStub struct {
	AddFn       func(context.Context, int64, model.Address) (*model.Address, error)
	UpdateFn    func(context.Context, int64, model.Address) (*model.Address, error)
	DeleteFn    func(context.Context, int64, string) error
	AddressesFn func(context.Context, int64) ([]model.Address, error)
}

// AddAddress stores a new address for the user.
func (s AddressFacadeStub) AddAddress(ctx context.Context, userID int64, addr model.Address) (*model.Address, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, addr)
	}
	addr.ID = "addr-1"
	addr.UserID = userID
	return &addr, nil
}

// UpdateAddress modifies an existing address.
func (s AddressFacadeStub) UpdateAddress(ctx context.Context, userID int64, addr model.Address) (*model.Address, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, addr)
	}
	addr.UserID = userID
	return &addr, nil
}

// DeleteAddress removes an address.
func (s AddressFacadeStub) DeleteAddress(ctx context.Context, userID int64, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, id)
	}
	return nil
}

// Addresses returns preconfigured address book contents.
func (s AddressFacadeStub) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.AddressesFn != nil {
		return s.AddressesFn(ctx, userID)
	}
	return []model.Address{{ID: "addr-1", UserID: userID, IsDefault: true}}, nil
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	AddressFacadeStub
}
