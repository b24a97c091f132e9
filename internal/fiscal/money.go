package fiscal

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts an amount in major currency units to kopiyky,
// rounding half away from zero: 50.005 -> 5001, -50.005 -> -5001.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromMinorUnits converts kopiyky back to major units: 5000 -> 50.00.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}
