package usecase

import (
	domainErrors "github.com/mkholodov/storefront/internal/domain/errors"
	"github.com/mkholodov/storefront/internal/domain/model"
)

// Authorization rules for order access. Customers may only see and touch
// their own orders, and a denial must be indistinguishable from absence,
// so every refusal here is ErrNotFound rather than a permission error.

func authorizeRead(ident model.Identity, o *model.Order) error {
	if ident.IsAdmin() || ident.Owns(o) {
		return nil
	}
	return domainErrors.ErrNotFound
}

func authorizeOwner(ident model.Identity, o *model.Order) error {
	if ident.Owns(o) {
		return nil
	}
	return domainErrors.ErrNotFound
}

func authorizeAdmin(ident model.Identity) error {
	if ident.IsAdmin() {
		return nil
	}
	return domainErrors.ErrNotFound
}
