// Package units converts between ledger base units and decimal display units.
package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of fractional digits of one display unit.
const EtherDecimals int32 = 18

// maxAmountLen bounds the textual input; 78 digits already exceed uint256.
const maxAmountLen = 128

var (
	ErrEmptyAmount     = errors.New("amount is empty")
	ErrInvalidAmount   = errors.New("amount is not a decimal number")
	ErrNegativeAmount  = errors.New("amount is negative")
	ErrTooManyDecimals = errors.New("amount has more fractional digits than the ledger supports")
	ErrAmountTooLarge  = errors.New("amount exceeds the ledger maximum")
)

func ToBase(display string, decimals int32) (*big.Int, error) {
	display = strings.TrimSpace(display)
	if display == "" {
		return nil, ErrEmptyAmount
	}
	if len(display) > maxAmountLen {
		return nil, ErrAmountTooLarge
	}
	// Exponent notation would let a short string expand to an unbounded integer.
	if strings.ContainsAny(display, "eE") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}
	d, err := decimal.NewFromString(display)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}
	if d.Sign() < 0 {
		return nil, ErrNegativeAmount
	}
	shifted := d.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, ErrTooManyDecimals
	}
	base := shifted.BigInt()
	if base.Cmp(math.MaxBig256) > 0 {
		return nil, ErrAmountTooLarge
	}
	return base, nil
}

func ToDisplay(base *big.Int, decimals int32) string {
	if base == nil {
		return "0"
	}
	return decimal.NewFromBigInt(base, -decimals).String()
}

func Remaining(allocated, spent *big.Int) *big.Int {
	if allocated == nil {
		return new(big.Int)
	}
	if spent == nil {
		return new(big.Int).Set(allocated)
	}
	rest := new(big.Int).Sub(allocated, spent)
	if rest.Sign() < 0 {
		return new(big.Int)
	}
	return rest
}

// Utilization is spent/allocated in percent, rounded to one decimal place.
func Utilization(allocated, spent *big.Int) float64 {
	if allocated == nil || allocated.Sign() == 0 || spent == nil {
		return 0
	}
	pct := decimal.NewFromBigInt(spent, 0).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromBigInt(allocated, 0)).
		Round(1)
	return pct.InexactFloat64()
}
