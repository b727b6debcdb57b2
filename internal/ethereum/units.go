package ethereum

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// StableDecimals is the fixed-point scale of every monetary amount the
// contract reports.
const StableDecimals = 6

func ToDecimal(raw *big.Int) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(raw, -StableDecimals)
}

func FromDecimal(d decimal.Decimal) *big.Int {
	return d.Shift(StableDecimals).BigInt()
}
