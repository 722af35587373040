package handlers

import (
	"context"

	"github.com/mkholodov/storefront/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	Identity(ctx context.Context, userID int64) (model.Identity, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, ident model.Identity, draft model.OrderDraft) (*model.Order, error)
	Order(ctx context.Context, ident model.Identity, orderID string) (*model.Order, error)
	Orders(ctx context.Context, ident model.Identity) ([]model.Order, error)
	ConfirmPayment(ctx context.Context, ident model.Identity, orderID string, result model.PaymentResult) (*model.Order, error)
	UpdateOrder(ctx context.Context, ident model.Identity, orderID string, patch model.AdminOrderPatch) (*model.Order, error)
}

// AddressFacade provides address book operations.
type AddressFacade interface {
	AddAddress(ctx context.Context, userID int64, addr model.Address) (*model.Address, error)
	UpdateAddress(ctx context.Context, userID int64, addr model.Address) (*model.Address, error)
	DeleteAddress(ctx context.Context, userID int64, id string) error
	Addresses(ctx context.Context, userID int64) ([]model.Address, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	OrderFacade
	AddressFacade
}
