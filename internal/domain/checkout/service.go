package checkout

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/lojadev/checkout-service/internal/domain/cart"
	"github.com/lojadev/checkout-service/internal/domain/notification"
	"github.com/lojadev/checkout-service/internal/domain/order"
	"github.com/lojadev/checkout-service/internal/domain/payment"
)

// ConfirmationSubject is the fixed subject line of the confirmation message.
const ConfirmationSubject = "Pagamento confirmado!"

// Service sequences a checkout: price the cart, charge the gateway, and only
// on authorization persist the order and notify the customer. It holds no
// state of its own, so one instance serves concurrent checkouts.
type Service struct {
	gateway  payment.Gateway
	orders   order.Repository
	notifier notification.Notifier
}

// NewService creates a checkout Service with the required collaborators.
func NewService(
	gateway payment.Gateway,
	orders order.Repository,
	notifier notification.Notifier,
) *Service {
	return &Service{
		gateway:  gateway,
		orders:   orders,
		notifier: notifier,
	}
}

// ProcessOrder runs a single checkout. A declined charge returns (nil, nil):
// no order exists, and neither the repository nor the notifier is touched.
// Collaborator errors propagate to the caller unhandled; there is no retry
// and no refund path if persistence or notification fails after the charge.
func (s *Service) ProcessOrder(ctx context.Context, c *cart.Cart, paymentToken string) (*order.Order, error) {
	subtotal := c.Subtotal()
	finalTotal := applyDiscount(subtotal, c)

	result, err := s.gateway.Charge(ctx, finalTotal, paymentToken)
	if err != nil {
		return nil, errors.Wrap(err, "charge")
	}
	if !result.Authorized {
		return nil, nil
	}

	persisted, err := s.orders.Save(ctx, order.Candidate{
		Cart:  c,
		Total: finalTotal,
	})
	if err != nil {
		return nil, errors.Wrap(err, "save order")
	}

	body := confirmationBody(persisted)
	if err := s.notifier.Send(ctx, c.User.Email, ConfirmationSubject, body); err != nil {
		return nil, errors.Wrap(err, "send confirmation")
	}

	return persisted, nil
}

// applyDiscount reduces the subtotal by the rate of the cart owner's tier.
// The rate table is total over tiers, so unknown tiers pay full price.
func applyDiscount(subtotal decimal.Decimal, c *cart.Cart) decimal.Decimal {
	rate := c.User.Tier.DiscountRate()
	if rate.IsZero() {
		return subtotal
	}
	return subtotal.Sub(subtotal.Mul(rate))
}

// confirmationBody renders the confirmation message. The persisted order's id
// and final total must both appear verbatim in the text.
func confirmationBody(o *order.Order) string {
	return fmt.Sprintf("Seu pedido %s foi confirmado. Valor final: %s.", o.ID, o.Total.StringFixed(2))
}
