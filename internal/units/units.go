// Package units converts between human-denominated prices and the chain's
// 18-decimal base units.
package units

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/hoofledger/hoofledger/internal/domain"
)

const secondsPerDay = 24 * 60 * 60

// ToBaseUnits converts a whole-unit amount into base units
func ToBaseUnits(amount decimal.Decimal) (*big.Int, error) {
	if amount.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative amount %s", domain.ErrInvalidAmount, amount.String())
	}
	shifted := amount.Shift(domain.BASE_UNIT_DECIMALS)
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("%w: %s has more than %d decimal places", domain.ErrInvalidAmount, amount.String(), domain.BASE_UNIT_DECIMALS)
	}
	return shifted.BigInt(), nil
}

// ParseToBaseUnits parses a decimal string and converts it into base units
func ParseToBaseUnits(amount string) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, amount)
	}
	return ToBaseUnits(d)
}

// FromBaseUnits converts base units into a whole-unit amount
func FromBaseUnits(v *big.Int) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, -domain.BASE_UNIT_DECIMALS)
}

// FormatBaseUnits renders base units as a whole-unit string without trailing zeros
func FormatBaseUnits(v *big.Int) string {
	return FromBaseUnits(v).String()
}

// DaysToSeconds converts an auction duration in days to seconds
func DaysToSeconds(days int) *big.Int {
	return new(big.Int).Mul(big.NewInt(int64(days)), big.NewInt(secondsPerDay))
}
