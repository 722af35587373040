package usecase

import (
	"context"

	domainErrors "github.com/mkholodov/storefront/internal/domain/errors"
	"github.com/mkholodov/storefront/internal/domain/model"
	"github.com/mkholodov/storefront/internal/domain/repository"
)

// AddressUseCase manages a user's address book. The single-default
// invariant is enforced by the repository inside one transaction; this
// layer validates input and pins ownership.
type AddressUseCase struct {
	addresses repository.AddressRepository
}

// NewAddressUseCase constructs AddressUseCase.
func NewAddressUseCase(addresses repository.AddressRepository) *AddressUseCase {
	return &AddressUseCase{addresses: addresses}
}

// Add stores a new address for the user.
func (u *AddressUseCase) Add(ctx context.Context, userID int64, addr model.Address) (*model.Address, error) {
	addr.UserID = userID
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return u.addresses.Add(ctx, &addr)
}

// Update modifies one of the user's own addresses.
func (u *AddressUseCase) Update(ctx context.Context, userID int64, addr model.Address) (*model.Address, error) {
	if addr.ID == "" {
		return nil, domainErrors.NewValidation("id", "missing")
	}
	addr.UserID = userID
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return u.addresses.Update(ctx, &addr)
}

// Delete removes one of the user's own addresses. Deleting the default
// leaves the user without one.
func (u *AddressUseCase) Delete(ctx context.Context, userID int64, id string) error {
	if id == "" {
		return domainErrors.NewValidation("id", "missing")
	}
	return u.addresses.Delete(ctx, userID, id)
}

// List returns the user's addresses.
func (u *AddressUseCase) List(ctx context.Context, userID int64) ([]model.Address, error) {
	return u.addresses.ListByUser(ctx, userID)
}
