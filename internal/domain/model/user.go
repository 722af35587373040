package model

import "time"

// Role controls which order fields a caller may read or write.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User represents a registered storefront account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Identity is the resolved caller of a request.
type Identity struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether the caller holds the elevated role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Owns reports whether the caller placed the order.
func (i Identity) Owns(o *Order) bool {
	return o != nil && o.UserID == i.UserID
}
