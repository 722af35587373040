package app

import (
	"context"

	"github.com/mkholodov/storefront/internal/domain/model"
	"github.com/mkholodov/storefront/internal/usecase"
)

// StorefrontFacade exposes the use case layer as a single surface for the
// HTTP handlers and the auth middleware.
type StorefrontFacade struct {
	auth      *usecase.AuthUseCase
	orders    *usecase.OrderUseCase
	addresses *usecase.AddressUseCase
}

func NewStorefrontFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, addresses *usecase.AddressUseCase) *StorefrontFacade {
	return &StorefrontFacade{auth: auth, orders: orders, addresses: addresses}
}

func (f *StorefrontFacade) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, password)
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) Identity(ctx context.Context, userID int64) (model.Identity, error) {
	return f.auth.Identity(ctx, userID)
}

func (f *StorefrontFacade) CreateOrder(ctx context.Context, ident model.Identity, draft model.OrderDraft) (*model.Order, error) {
	return f.orders.Create(ctx, ident, draft)
}

func (f *StorefrontFacade) Order(ctx context.Context, ident model.Identity, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, ident, orderID)
}

func (f *StorefrontFacade) Orders(ctx context.Context, ident model.Identity) ([]model.Order, error) {
	return f.orders.ListOwn(ctx, ident)
}

func (f *StorefrontFacade) ConfirmPayment(ctx context.Context, ident model.Identity, orderID string, result model.PaymentResult) (*model.Order, error) {
	return f.orders.ConfirmPayment(ctx, ident, orderID, result)
}

func (f *StorefrontFacade) UpdateOrder(ctx context.Context, ident model.Identity, orderID string, patch model.AdminOrderPatch) (*model.Order, error) {
	return f.orders.AdminUpdate(ctx, ident, orderID, patch)
}

func (f *StorefrontFacade) AddAddress(ctx context.Context, userID int64, addr model.Address) (*model.Address, error) {
	return f.addresses.Add(ctx, userID, addr)
}

func (f *StorefrontFacade) UpdateAddress(ctx context.Context, userID int64, addr model.Address) (*model.Address, error) {
	return f.addresses.Update(ctx, userID, addr)
}

func (f *StorefrontFacade) DeleteAddress(ctx context.Context, userID int64, id string) error {
	return f.addresses.Delete(ctx, userID, id)
}

func (f *StorefrontFacade) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	return f.addresses.List(ctx, userID)
}
