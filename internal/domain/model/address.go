package model

import (
	"time"

	domainErrors "github.com/mkholodov/storefront/internal/domain/errors"
)

// Address is an entry in a user's address book. At most one address per
// user carries IsDefault after any completed operation.
type Address struct {
	ID        string
	UserID    int64
	Street    string
	City      string
	State     string
	ZipCode   string
	Country   string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks that all required address fields are present.
func (a *Address) Validate() error {
	fields := map[string]string{
		"street":  a.Street,
		"city":    a.City,
		"state":   a.State,
		"zipCode": a.ZipCode,
		"country": a.Country,
	}
	for field, value := range fields {
		if value == "" {
			return domainErrors.NewValidation(field, "missing")
		}
	}
	return nil
}
