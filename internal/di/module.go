package di

import (
	"go.uber.org/fx"

	"github.com/mkholodov/storefront/internal/app"
	"github.com/mkholodov/storefront/internal/config"
	"github.com/mkholodov/storefront/internal/logger"
	"github.com/mkholodov/storefront/internal/pkg/auth"
	"github.com/mkholodov/storefront/internal/server/http/router"
	"github.com/mkholodov/storefront/internal/storage/postgres"
	"github.com/mkholodov/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
