package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// symbols maps the price prefixes used by the catalog to their currency.
var symbols = map[string]currency.Unit{
	"$": currency.USD,
}

var amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

func Zero(unit currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: unit}
}

// ParsePrice parses a catalog price such as "$34.99".
func ParsePrice(s string) (Money, error) {
	idx := strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	if idx <= 0 {
		return Money{}, fmt.Errorf("price[%s] is not valid: %w", s, ErrInvalidPriceFormat)
	}

	unit, ok := symbols[s[:idx]]
	if !ok {
		return Money{}, fmt.Errorf("price[%s] has unknown currency symbol: %w", s, ErrInvalidPriceFormat)
	}

	raw := s[idx:]
	if !amountPattern.MatchString(raw) {
		return Money{}, fmt.Errorf("price[%s] is not valid: %w", s, ErrInvalidPriceFormat)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, fmt.Errorf("price[%s] is not valid: %w", s, errors.Join(ErrInvalidPriceFormat, err))
	}

	return Money{Amount: amount, Currency: unit}, nil
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency[%s] does not match %s: %w", other.Currency, m.Currency, ErrCurrencyMismatch)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

func (m Money) Mul(quantity int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(quantity))), Currency: m.Currency}
}

// String renders the amount with its symbol and two decimals, e.g. "$104.97".
func (m Money) String() string {
	return Symbol(m.Currency) + m.Amount.StringFixed(2)
}

// KnownCurrency reports whether catalog prices can be written in unit.
func KnownCurrency(unit currency.Unit) bool {
	for _, u := range symbols {
		if u == unit {
			return true
		}
	}
	return false
}

// Symbol returns the display prefix for unit, falling back to the ISO code.
func Symbol(unit currency.Unit) string {
	for sym, u := range symbols {
		if u == unit {
			return sym
		}
	}
	return unit.String() + " "
}
