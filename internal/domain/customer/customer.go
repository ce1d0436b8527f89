package customer

import "github.com/shopspring/decimal"

// Tier classifies a customer for discount eligibility.
type Tier string

const (
	// TierStandard is the default tier with no discount.
	TierStandard Tier = "STANDARD"
	// TierPremium grants a flat 10% discount on the cart subtotal.
	TierPremium Tier = "PREMIUM"
)

// discountRates maps each tier to its checkout discount rate. Tiers absent
// from the table get no discount, so adding a tier is a single entry here.
var discountRates = map[Tier]decimal.Decimal{
	TierStandard: decimal.Zero,
	TierPremium:  decimal.RequireFromString("0.1"),
}

// DiscountRate returns the discount rate for the tier, zero for unknown tiers.
func (t Tier) DiscountRate() decimal.Decimal {
	return discountRates[t]
}

// User identifies the customer placing an order. Immutable after construction;
// it lives for the duration of a single checkout call.
type User struct {
	ID    string
	Name  string
	Email string
	Tier  Tier
}
