package repository

import (
	"context"

	"github.com/mkholodov/storefront/internal/domain/model"
)

// AddressRepository describes the per-user address book. Implementations
// must keep the single-default invariant: a write that marks an address
// default clears every other default of the same user atomically.
type AddressRepository interface {
	Add(ctx context.Context, addr *model.Address) (*model.Address, error)
	// Update modifies an address owned by addr.UserID; a foreign or absent
	// address is ErrNotFound.
	Update(ctx context.Context, addr *model.Address) (*model.Address, error)
	// Delete removes the address. Deleting the current default leaves the
	// user with no default; no other address is promoted.
	Delete(ctx context.Context, userID int64, id string) error
	ListByUser(ctx context.Context, userID int64) ([]model.Address, error)
}
