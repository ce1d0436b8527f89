package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lojadev/checkout-service/internal/domain/cart"
)

// Status is the lifecycle state of a persisted order. The repository assigns
// it; the checkout flow passes it through without branching on it.
type Status string

// StatusProcessed marks an order whose payment was authorized and which was
// successfully persisted.
const StatusProcessed Status = "PROCESSED"

// Order is the authoritative record of a completed checkout. ID and Status
// come from the repository, never from the caller.
type Order struct {
	ID        string
	Cart      *cart.Cart
	Total     decimal.Decimal
	Status    Status
	CreatedAt time.Time
}

// Candidate is an order awaiting persistence: the cart it came from and the
// final charged total. The repository turns it into an Order.
type Candidate struct {
	Cart  *cart.Cart
	Total decimal.Decimal
}

// Repository defines persistence operations for orders.
type Repository interface {
	Save(ctx context.Context, candidate Candidate) (*Order, error)
}
