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

	"github.com/guitarshop/checkout/internal/config"
	domainErrors "github.com/guitarshop/checkout/internal/domain/errors"
	"github.com/guitarshop/checkout/internal/domain/model"
	"github.com/guitarshop/checkout/internal/domain/repository"
	"github.com/guitarshop/checkout/internal/pkg/retry"
)

// writeTimeout bounds a single durable write. The write context is detached
// from the request context so a client disconnect cannot abandon an insert
// mid-flight.
const writeTimeout = 5 * time.Second

// Pool is the subset of pgxpool.Pool used by the storage. Kept narrow so
// tests can substitute a mock pool.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

// New connects to PostgreSQL with a bounded retry loop and initializes the
// schema. Exhausting the retry budget is fatal for the service: it cannot
// accept checkouts without a durable store.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnIdleTime = cfg.DBIdleTimeout
	poolCfg.ConnConfig.ConnectTimeout = cfg.DBConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	err = retry.Do(ctx, logger, "postgres", cfg.ConnectAttempts, cfg.ConnectBackoff, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.DBConnectTimeout)
		defer cancel()
		return pool.Ping(pingCtx)
	})
	if err != nil {
		pool.Close()
		return nil, err
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to checkout db")
	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Orders returns the order repository bound to this storage.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS checkouts (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            customer_id VARCHAR(100) NOT NULL,
            email VARCHAR(255) NOT NULL,
            first_name VARCHAR(100),
            last_name VARCHAR(100),
            address TEXT,
            city VARCHAR(100),
            country VARCHAR(100),
            postal_code VARCHAR(20),
            items JSONB NOT NULL DEFAULT '[]',
            subtotal DECIMAL(10,2) NOT NULL,
            shipping_cost DECIMAL(10,2) NOT NULL DEFAULT 9.99,
            total DECIMAL(10,2) NOT NULL,
            status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_checkouts_customer ON checkouts(customer_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const orderColumns = `id, customer_id, email, first_name, last_name, address, city, country, postal_code,
                      items, subtotal, shipping_cost, total, status, created_at, updated_at`

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO checkouts
                       (id, customer_id, email, first_name, last_name, address, city, country, postal_code,
                        items, subtotal, shipping_cost, total, status)
                   VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
                   RETURNING created_at, updated_at`

	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	persisted := *order
	persisted.ID = uuid.NewString()

	err = r.storage.pool.QueryRow(writeCtx, query,
		persisted.ID, persisted.CustomerID, persisted.Email,
		persisted.FirstName, persisted.LastName, persisted.Address,
		persisted.City, persisted.Country, persisted.PostalCode,
		items, persisted.Subtotal, persisted.ShippingCost, persisted.Total, persisted.Status,
	).Scan(&persisted.CreatedAt, &persisted.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create checkout: %w", err)
	}

	return &persisted, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domainErrors.ErrNotFound
	}

	query := `SELECT ` + orderColumns + ` FROM checkouts WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string, limit int) ([]model.Order, error) {
	if limit <= 0 || limit > repository.DefaultListLimit {
		limit = repository.DefaultListLimit
	}

	query := `SELECT ` + orderColumns + ` FROM checkouts WHERE customer_id=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, customerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o     model.Order
		items []byte
	)
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.Email,
		&o.FirstName, &o.LastName, &o.Address,
		&o.City, &o.Country, &o.PostalCode,
		&items, &o.Subtotal, &o.ShippingCost, &o.Total, &o.Status,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
	}
	return &o, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
