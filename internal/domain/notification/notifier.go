package notification

import "context"

// Notifier delivers a confirmation message to the customer. Delivery outcome
// is not inspected by the checkout flow; a non-nil error means the notifier
// itself faulted.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}
