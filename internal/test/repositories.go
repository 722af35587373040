package test

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainErrors "github.com/mkholodov/storefront/internal/domain/errors"
	"github.com/mkholodov/storefront/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	mu      sync.Mutex
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Create registers user unless the email is taken.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{ID: s.Next, Email: email, PasswordHash: passwordHash, Role: role, CreatedAt: time.Now()}
	s.Next++
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub keeps orders in-memory with the same conflict and
// locking semantics the PostgreSQL repository provides.
type OrderRepositoryStub struct {
	mu      sync.Mutex
	ByID    map[string]*model.Order
	numbers map[string]bool
	seq     int
	Err     error
}

// NewOrderRepositoryStub constructs an empty order store.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		ByID:    make(map[string]*model.Order),
		numbers: make(map[string]bool),
	}
}

// Create persists a copy of the order; a duplicate number is a conflict.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.numbers[order.Number] {
		return nil, fmt.Errorf("order number %s taken: %w", order.Number, domainErrors.ErrConflict)
	}
	s.seq++
	stored := cloneOrder(order)
	stored.ID = fmt.Sprintf("order-%d", s.seq)
	stored.CreatedAt = time.Now().Add(time.Duration(s.seq) * time.Millisecond)
	stored.UpdatedAt = stored.CreatedAt
	s.ByID[stored.ID] = stored
	s.numbers[stored.Number] = true
	return cloneOrder(stored), nil
}

// GetByID returns a copy of the stored order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return cloneOrder(order), nil
}

// ListByUser returns the user's orders most-recent-first.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Order, 0)
	for _, order := range s.ByID {
		if order.UserID == userID {
			result = append(result, *cloneOrder(order))
		}
	}
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].CreatedAt.After(result[i].CreatedAt) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

// Update applies fn to the stored order under the stub's lock; an error
// from fn leaves the order untouched.
func (s *OrderRepositoryStub) Update(ctx context.Context, id string, fn func(*model.Order) error) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	working := cloneOrder(order)
	if err := fn(working); err != nil {
		return nil, err
	}
	working.UpdatedAt = time.Now()
	s.ByID[id] = working
	return cloneOrder(working), nil
}

func cloneOrder(o *model.Order) *model.Order {
	clone := *o
	clone.Items = make([]model.OrderItem, len(o.Items))
	copy(clone.Items, o.Items)
	if o.PaymentResult != nil {
		result := *o.PaymentResult
		clone.PaymentResult = &result
	}
	if o.PaidAt != nil {
		paidAt := *o.PaidAt
		clone.PaidAt = &paidAt
	}
	if o.DeliveredAt != nil {
		deliveredAt := *o.DeliveredAt
		clone.DeliveredAt = &deliveredAt
	}
	return &clone
}

// AddressRepositoryStub keeps addresses in-memory and maintains the
// single-default invariant atomically under its lock, mirroring the
// transactional behaviour of the PostgreSQL repository.
type AddressRepositoryStub struct {
	mu   sync.Mutex
	ByID map[string]*model.Address
	seq  int
	Err  error
}

// NewAddressRepositoryStub constructs an empty address store.
func NewAddressRepositoryStub() *AddressRepositoryStub {
	return &AddressRepositoryStub{ByID: make(map[string]*model.Address)}
}

// Add stores a copy of the address, clearing sibling defaults when needed.
func (s *AddressRepositoryStub) Add(ctx context.Context, addr *model.Address) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	stored := *addr
	stored.ID = fmt.Sprintf("addr-%d", s.seq)
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	if stored.IsDefault {
		s.clearDefaultLocked(stored.UserID, stored.ID)
	}
	s.ByID[stored.ID] = &stored
	result := stored
	return &result, nil
}

// Update modifies an address owned by addr.UserID.
func (s *AddressRepositoryStub) Update(ctx context.Context, addr *model.Address) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.ByID[addr.ID]
	if !ok || existing.UserID != addr.UserID {
		return nil, domainErrors.ErrNotFound
	}
	stored := *addr
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	if stored.IsDefault {
		s.clearDefaultLocked(stored.UserID, stored.ID)
	}
	s.ByID[stored.ID] = &stored
	result := stored
	return &result, nil
}

// Delete removes an address owned by userID; the default is not
// re-assigned.
func (s *AddressRepositoryStub) Delete(ctx context.Context, userID int64, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.ByID[id]
	if !ok || existing.UserID != userID {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	return nil
}

// ListByUser returns the user's addresses.
func (s *AddressRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Address, 0)
	for _, addr := range s.ByID {
		if addr.UserID == userID {
			result = append(result, *addr)
		}
	}
	return result, nil
}

// DefaultCount reports how many of the user's addresses are marked default.
func (s *AddressRepositoryStub) DefaultCount(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, addr := range s.ByID {
		if addr.UserID == userID && addr.IsDefault {
			count++
		}
	}
	return count
}

func (s *AddressRepositoryStub) clearDefaultLocked(userID int64, keepID string) {
	for _, addr := range s.ByID {
		if addr.UserID == userID && addr.ID != keepID {
			addr.IsDefault = false
		}
	}
}
