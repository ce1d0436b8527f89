package customer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscountRate(t *testing.T) {
	tests := []struct {
		name string
		tier Tier
		want string
	}{
		{name: "standard has no discount", tier: TierStandard, want: "0"},
		{name: "premium gets 10 percent", tier: TierPremium, want: "0.1"},
		{name: "unknown tier defaults to no discount", tier: Tier("GOLD"), want: "0"},
		{name: "empty tier defaults to no discount", tier: Tier(""), want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.want).Equal(tt.tier.DiscountRate()))
		})
	}
}
