package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lojadev/checkout-service/internal/domain/order"
)

const insertOrderSQL = `INSERT INTO orders
	(id, customer_id, customer_email, customer_tier, items, total, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at`

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL. It is the
// authority for order identifiers and statuses: every saved order gets a
// fresh UUID and the PROCESSED status.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Save persists a candidate order and returns the authoritative record.
// The cart items are serialized to JSON for storage in the JSONB column.
func (r *OrderRepository) Save(ctx context.Context, candidate order.Candidate) (*order.Order, error) {
	itemsJSON, err := json.Marshal(candidate.Cart.Items)
	if err != nil {
		return nil, fmt.Errorf("marshaling cart items: %w", err)
	}

	o := &order.Order{
		ID:     uuid.New().String(),
		Cart:   candidate.Cart,
		Total:  candidate.Total,
		Status: order.StatusProcessed,
	}

	var createdAt time.Time
	err = r.pool.QueryRow(ctx, insertOrderSQL,
		o.ID,
		candidate.Cart.User.ID,
		candidate.Cart.User.Email,
		string(candidate.Cart.User.Tier),
		itemsJSON,
		o.Total,
		string(o.Status),
	).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("saving order %q: %w", o.ID, err)
	}
	o.CreatedAt = createdAt

	return o, nil
}

// GetByID loads a persisted order without its cart contents; the cart only
// exists for the lifetime of the checkout call that produced the order.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	var (
		o      order.Order
		status string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, total, status, created_at FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.Total, &status, &o.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("loading order %q: %w", id, err)
	}
	o.Status = order.Status(status)

	return &o, nil
}
