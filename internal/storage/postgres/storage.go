package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/mkholodov/storefront/internal/domain/errors"
	"github.com/mkholodov/storefront/internal/domain/model"
	"github.com/mkholodov/storefront/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on; tests
// substitute a mock pool through it.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type addressRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Addresses() repository.AddressRepository {
	return &addressRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'customer',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            number TEXT UNIQUE NOT NULL,
            user_id BIGINT NOT NULL REFERENCES users(id),
            items JSONB NOT NULL,
            shipping_address JSONB NOT NULL,
            payment_method TEXT NOT NULL,
            payment_result JSONB,
            items_price DOUBLE PRECISION NOT NULL,
            shipping_price DOUBLE PRECISION NOT NULL,
            tax_price DOUBLE PRECISION NOT NULL,
            total_price DOUBLE PRECISION NOT NULL,
            is_paid BOOLEAN NOT NULL DEFAULT FALSE,
            paid_at TIMESTAMPTZ,
            is_delivered BOOLEAN NOT NULL DEFAULT FALSE,
            delivered_at TIMESTAMPTZ,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS addresses (
            id TEXT PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            street TEXT NOT NULL,
            city TEXT NOT NULL,
            state TEXT NOT NULL,
            zip_code TEXT NOT NULL,
            country TEXT NOT NULL,
            is_default BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_addresses_user ON addresses(user_id)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_addresses_single_default ON addresses(user_id) WHERE is_default`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, passwordHash, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if uniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, password_hash, role, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, password_hash, role, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, number, user_id, items, shipping_address, payment_method, payment_result,
        items_price, shipping_price, tax_price, total_price,
        is_paid, paid_at, is_delivered, delivered_at, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*model.Order, error) {
	var (
		o           model.Order
		itemsJSON   []byte
		addressJSON []byte
		paymentJSON []byte
	)
	err := row.Scan(
		&o.ID, &o.Number, &o.UserID, &itemsJSON, &addressJSON, &o.PaymentMethod, &paymentJSON,
		&o.ItemsPrice, &o.ShippingPrice, &o.TaxPrice, &o.TotalPrice,
		&o.IsPaid, &o.PaidAt, &o.IsDelivered, &o.DeliveredAt, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	if err := json.Unmarshal(addressJSON, &o.ShippingAddress); err != nil {
		return nil, fmt.Errorf("decode shipping address: %w", err)
	}
	if len(paymentJSON) > 0 {
		var result model.PaymentResult
		if err := json.Unmarshal(paymentJSON, &result); err != nil {
			return nil, fmt.Errorf("decode payment result: %w", err)
		}
		o.PaymentResult = &result
	}
	return &o, nil
}

func marshalPaymentResult(result *model.PaymentResult) ([]byte, error) {
	if result == nil {
		return nil, nil
	}
	return json.Marshal(result)
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}
	addressJSON, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return nil, fmt.Errorf("encode shipping address: %w", err)
	}

	const query = `INSERT INTO orders (id, number, user_id, items, shipping_address, payment_method,
                       items_price, shipping_price, tax_price, total_price, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
                   ON CONFLICT (number) DO NOTHING
                   RETURNING created_at, updated_at`

	stored := *order
	stored.ID = uuid.NewString()
	err = r.storage.pool.QueryRow(ctx, query,
		stored.ID, stored.Number, stored.UserID, itemsJSON, addressJSON, stored.PaymentMethod,
		stored.ItemsPrice, stored.ShippingPrice, stored.TaxPrice, stored.TotalPrice, stored.Status,
	).Scan(&stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order number %s taken: %w", stored.Number, domainErrors.ErrConflict)
		}
		return nil, err
	}
	return &stored, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Update(ctx context.Context, id string, fn func(*model.Order) error) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 FOR UPDATE`
		order, err := scanOrder(tx.QueryRow(ctx, query, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if err := fn(order); err != nil {
			return err
		}

		paymentJSON, err := marshalPaymentResult(order.PaymentResult)
		if err != nil {
			return fmt.Errorf("encode payment result: %w", err)
		}

		const update = `UPDATE orders
                        SET status=$1, is_paid=$2, paid_at=$3, is_delivered=$4, delivered_at=$5,
                            payment_result=$6, updated_at=NOW()
                        WHERE id=$7
                        RETURNING updated_at`
		if err := tx.QueryRow(ctx, update,
			order.Status, order.IsPaid, order.PaidAt, order.IsDelivered, order.DeliveredAt,
			paymentJSON, order.ID,
		).Scan(&order.UpdatedAt); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// --- AddressRepository implementation ---

const addressColumns = `id, user_id, street, city, state, zip_code, country, is_default, created_at, updated_at`

func scanAddress(row rowScanner) (*model.Address, error) {
	var a model.Address
	err := row.Scan(&a.ID, &a.UserID, &a.Street, &a.City, &a.State, &a.ZipCode, &a.Country,
		&a.IsDefault, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *addressRepository) Add(ctx context.Context, addr *model.Address) (*model.Address, error) {
	stored := *addr
	stored.ID = uuid.NewString()
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if stored.IsDefault {
			if err := clearDefault(ctx, tx, stored.UserID, ""); err != nil {
				return err
			}
		}
		const query = `INSERT INTO addresses (id, user_id, street, city, state, zip_code, country, is_default)
                       VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                       RETURNING created_at, updated_at`
		return tx.QueryRow(ctx, query,
			stored.ID, stored.UserID, stored.Street, stored.City, stored.State,
			stored.ZipCode, stored.Country, stored.IsDefault,
		).Scan(&stored.CreatedAt, &stored.UpdatedAt)
	})
	if err != nil {
		if uniqueViolation(err) {
			return nil, fmt.Errorf("default address taken: %w", domainErrors.ErrConflict)
		}
		return nil, err
	}
	return &stored, nil
}

func (r *addressRepository) Update(ctx context.Context, addr *model.Address) (*model.Address, error) {
	stored := *addr
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if stored.IsDefault {
			if err := clearDefault(ctx, tx, stored.UserID, stored.ID); err != nil {
				return err
			}
		}
		const query = `UPDATE addresses
                       SET street=$1, city=$2, state=$3, zip_code=$4, country=$5, is_default=$6, updated_at=NOW()
                       WHERE id=$7 AND user_id=$8
                       RETURNING created_at, updated_at`
		err := tx.QueryRow(ctx, query,
			stored.Street, stored.City, stored.State, stored.ZipCode, stored.Country,
			stored.IsDefault, stored.ID, stored.UserID,
		).Scan(&stored.CreatedAt, &stored.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	})
	if err != nil {
		if uniqueViolation(err) {
			return nil, fmt.Errorf("default address taken: %w", domainErrors.ErrConflict)
		}
		return nil, err
	}
	return &stored, nil
}

func (r *addressRepository) Delete(ctx context.Context, userID int64, id string) error {
	const query = `DELETE FROM addresses WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// uniqueViolation reports whether err is a PostgreSQL unique constraint
// violation, which is what a writer losing a race on the single-default
// index sees.
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// clearDefault removes the default mark from every address of the user
// except keepID. Runs inside the caller's transaction so the clear and the
// subsequent set appear atomic to concurrent readers.
func clearDefault(ctx context.Context, tx pgx.Tx, userID int64, keepID string) error {
	const query = `UPDATE addresses SET is_default=FALSE, updated_at=NOW() WHERE user_id=$1 AND is_default AND id<>$2`
	_, err := tx.Exec(ctx, query, userID, keepID)
	return err
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
