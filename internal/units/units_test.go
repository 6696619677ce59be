package units

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxUint256 = "115792089237316195423570985008687907853269984665640564039457584007913129639935"

func TestToBase(t *testing.T) {
	tests := []struct {
		name     string
		display  string
		decimals int32
		expected string
		err      error
	}{
		{name: "Whole ether", display: "50", decimals: 18, expected: "50000000000000000000"},
		{name: "Fractional ether", display: "1.5", decimals: 18, expected: "1500000000000000000"},
		{name: "Smallest unit", display: "0.000000000000000001", decimals: 18, expected: "1"},
		{name: "Surrounding spaces", display: " 10 ", decimals: 18, expected: "10000000000000000000"},
		{name: "Two decimals", display: "12.34", decimals: 2, expected: "1234"},
		{name: "Empty", display: "", decimals: 18, err: ErrEmptyAmount},
		{name: "Not a number", display: "ten", decimals: 18, err: ErrInvalidAmount},
		{name: "Negative", display: "-1", decimals: 18, err: ErrNegativeAmount},
		{name: "Too precise", display: "0.001", decimals: 2, err: ErrTooManyDecimals},
		{name: "Exponent notation", display: "1e400000000", decimals: 18, err: ErrInvalidAmount},
		{name: "Upper case exponent", display: "5E3", decimals: 18, err: ErrInvalidAmount},
		{name: "Largest uint256", display: maxUint256, decimals: 0, expected: maxUint256},
		{name: "Above uint256", display: "115792089237316195423570985008687907853269984665640564039457584007913129639936", decimals: 0, err: ErrAmountTooLarge},
		{name: "Above uint256 after shift", display: "115792089237316195423570985008687907853269984665640564039458", decimals: 18, err: ErrAmountTooLarge},
		{name: "Overlong input", display: strings.Repeat("1", 200), decimals: 0, err: ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := ToBase(tt.display, tt.decimals)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, base.String())
		})
	}
}

func TestToDisplay(t *testing.T) {
	base, _ := new(big.Int).SetString("32500000000000000000", 10)
	assert.Equal(t, "32.5", ToDisplay(base, 18))
	assert.Equal(t, "0", ToDisplay(nil, 18))
	assert.Equal(t, "0", ToDisplay(new(big.Int), 18))
}

func TestRoundTrip(t *testing.T) {
	for _, display := range []string{"1.5", "50", "0.25", "1234.000001", "0.000000000000000001"} {
		base, err := ToBase(display, EtherDecimals)
		require.NoError(t, err)
		assert.Equal(t, display, ToDisplay(base, EtherDecimals))
	}
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, big.NewInt(40), Remaining(big.NewInt(50), big.NewInt(10)))
	assert.Equal(t, big.NewInt(0), Remaining(big.NewInt(5), big.NewInt(10)))
	assert.Equal(t, big.NewInt(7), Remaining(big.NewInt(7), nil))
	assert.Equal(t, big.NewInt(0), Remaining(nil, big.NewInt(1)))
}

func TestUtilization(t *testing.T) {
	assert.Equal(t, 20.0, Utilization(big.NewInt(50), big.NewInt(10)))
	assert.Equal(t, 33.3, Utilization(big.NewInt(3), big.NewInt(1)))
	assert.Equal(t, 0.0, Utilization(big.NewInt(0), big.NewInt(10)))
	assert.Equal(t, 0.0, Utilization(nil, nil))
}
