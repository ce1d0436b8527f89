package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// ChargeResult is the gateway's verdict on an authorization attempt. Reason
// carries the provider's decline message; it is informational only and the
// checkout flow never branches on its content.
type ChargeResult struct {
	Authorized bool
	Reason     string
}

// Gateway requests payment authorization from the external provider.
// A declined charge is a normal result, not an error; errors are reserved for
// transport faults (the provider could not be asked at all).
type Gateway interface {
	Charge(ctx context.Context, amount decimal.Decimal, token string) (ChargeResult, error)
}
