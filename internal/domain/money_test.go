package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		want      string
		wantError bool
	}{
		{name: "dollars and cents: ok", in: "$34.99", want: "34.99"},
		{name: "whole dollars: ok", in: "$5", want: "5"},
		{name: "long fraction: ok", in: "$0.125", want: "0.125"},
		{name: "no symbol: error", in: "34.99", wantError: true},
		{name: "unknown symbol: error", in: "¥100", wantError: true},
		{name: "empty: error", in: "", wantError: true},
		{name: "symbol only: error", in: "$", wantError: true},
		{name: "trailing text: error", in: "$34.99 USD", wantError: true},
		{name: "negative: error", in: "$-3.00", wantError: true},
		{name: "exponent: error", in: "$1e3", wantError: true},
		{name: "space after symbol: error", in: "$ 3.00", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParsePrice(tt.in)
			if tt.wantError {
				require.ErrorIs(t, err, domain.ErrInvalidPriceFormat)
				return
			}
			require.NoError(t, err)

			assert.True(t, decimal.RequireFromString(tt.want).Equal(got.Amount))
			assert.Equal(t, currency.USD, got.Currency)
		})
	}
}

func TestMoneyString(t *testing.T) {
	m := domain.Money{Amount: decimal.RequireFromString("104.97"), Currency: currency.USD}
	assert.Equal(t, "$104.97", m.String())

	m = domain.Money{Amount: decimal.RequireFromString("3"), Currency: currency.EUR}
	assert.Equal(t, "EUR 3.00", m.String())
}

func TestMoneyAddCurrencyMismatch(t *testing.T) {
	_, err := domain.Zero(currency.USD).Add(domain.Zero(currency.EUR))
	require.ErrorIs(t, err, domain.ErrCurrencyMismatch)
}

func TestMoneyMul(t *testing.T) {
	price, err := domain.ParsePrice("$34.99")
	require.NoError(t, err)
	assert.Equal(t, "$104.97", price.Mul(3).String())
}

func TestKnownCurrency(t *testing.T) {
	assert.True(t, domain.KnownCurrency(currency.USD))
	assert.False(t, domain.KnownCurrency(currency.EUR))
	assert.False(t, domain.KnownCurrency(currency.GBP))
}
