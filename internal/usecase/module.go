package usecase

import (
	"go.uber.org/fx"

	"github.com/mkholodov/storefront/internal/config"
	"github.com/mkholodov/storefront/internal/domain/repository"
	"github.com/mkholodov/storefront/internal/pkg/ordernum"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewAddressUseCase,
	ordernum.New,
	newOrderUseCase,
)

type orderParams struct {
	fx.In

	Orders  repository.OrderRepository
	Numbers *ordernum.Generator
	Config  *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Numbers, p.Config.OrderNumberAttempts)
}
