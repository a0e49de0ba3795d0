package units

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoofledger/hoofledger/internal/domain"
)

func TestToBaseUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
		wantErr  bool
	}{
		{name: "fractional", amount: "2.5", expected: "2500000000000000000"},
		{name: "whole", amount: "1", expected: "1000000000000000000"},
		{name: "zero", amount: "0", expected: "0"},
		{name: "one wei", amount: "0.000000000000000001", expected: "1"},
		{name: "large", amount: "123456789.123456789", expected: "123456789123456789000000000"},
		{name: "negative", amount: "-1", wantErr: true},
		{name: "too precise", amount: "0.0000000000000000001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ToBaseUnits(decimal.RequireFromString(tt.amount))
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.String())
		})
	}
}

func TestParseToBaseUnits(t *testing.T) {
	v, err := ParseToBaseUnits("0.1")
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000", v.String())

	_, err = ParseToBaseUnits("ten")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestBaseUnitsRoundTrip(t *testing.T) {
	for _, amount := range []string{"2.5", "0.75", "1000", "0.000000000000000001"} {
		t.Run(amount, func(t *testing.T) {
			v, err := ToBaseUnits(decimal.RequireFromString(amount))
			require.NoError(t, err)
			assert.Equal(t, amount, FormatBaseUnits(v))
			assert.True(t, FromBaseUnits(v).Equal(decimal.RequireFromString(amount)))
		})
	}
}

func TestFromBaseUnitsNil(t *testing.T) {
	assert.True(t, FromBaseUnits(nil).IsZero())
	assert.Equal(t, "0", FormatBaseUnits(nil))
}

func TestDaysToSeconds(t *testing.T) {
	assert.Equal(t, "86400", DaysToSeconds(1).String())
	assert.Equal(t, "604800", DaysToSeconds(7).String())
	assert.Equal(t, 0, DaysToSeconds(0).Sign())
}
