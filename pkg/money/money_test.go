package money

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		minor int64
		want  string
	}{
		{name: "Whole amount", minor: 70000, want: "700.00"},
		{name: "With cents", minor: 12345, want: "123.45"},
		{name: "Zero", minor: 0, want: "0.00"},
		{name: "Debit", minor: -30000, want: "-300.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.minor))
		})
	}
}

func TestToMinor(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		want        int64
		expectedErr error
	}{
		{name: "Whole amount", amount: "500", want: 50000},
		{name: "Two places", amount: "8.25", want: 825},
		{name: "Trailing zeros", amount: "1.500", want: 150},
		{name: "Too precise", amount: "0.125", expectedErr: ErrPrecision},
		{name: "Largest representable", amount: "92233720368547758.07", want: math.MaxInt64},
		{name: "Smallest representable", amount: "-92233720368547758.08", want: math.MinInt64},
		{name: "One cent above int64", amount: "92233720368547758.08", expectedErr: ErrOutOfRange},
		{name: "One cent below int64", amount: "-92233720368547758.09", expectedErr: ErrOutOfRange},
		{name: "Would wrap to a small amount", amount: "184467440737095521.16", expectedErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinor(decimal.RequireFromString(tt.amount))
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	got, err := ToMinor(FromMinor(987654))
	require.NoError(t, err)
	assert.Equal(t, int64(987654), got)
}
