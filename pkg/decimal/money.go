package decimal

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rpgo/fincalc/internal/currency"
	"github.com/rpgo/fincalc/internal/format"
	"github.com/rpgo/fincalc/internal/numinput"
)

// ErrCurrencyMismatch is returned when combining amounts in different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
	Currency string
}

// NewMoney creates a new Money instance from a float64. An empty code means USD.
func NewMoney(value float64, code string) Money {
	return Money{decimal.NewFromFloat(value), normalizeCode(code)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal, code string) Money {
	return Money{d, normalizeCode(code)}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value, code string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d, normalizeCode(code)}, nil
}

// FromInput reads the text of an amount field; anything unparseable is zero.
func FromInput(raw, code string) Money {
	return Money{numinput.NormalizeDecimal(raw), normalizeCode(code)}
}

func normalizeCode(code string) string {
	if c := currency.NormalizeCode(code); c != "" {
		return c
	}
	return currency.DefaultCode
}

// decimals is the currency's fraction digits in reg, USD's for unknown codes.
func (m Money) decimals(reg *currency.Registry) int32 {
	if reg == nil {
		reg = currency.Builtin()
	}
	c, _ := reg.Resolve(m.Currency)
	return int32(c.Decimals)
}

// Round rounds the amount to the currency's minor unit, half away from zero
func (m Money) Round() Money {
	return m.RoundIn(nil)
}

// RoundIn is Round using the minor unit recorded in reg.
func (m Money) RoundIn(reg *currency.Registry) Money {
	return Money{m.Decimal.Round(m.decimals(reg)), m.Currency}
}

// Add adds another Money amount in the same currency
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{m.Decimal.Add(other.Decimal), m.Currency}, nil
}

// Sub subtracts another Money amount in the same currency
func (m Money) Sub(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{m.Decimal.Sub(other.Decimal), m.Currency}, nil
}

func (m Money) sameCurrency(other Money) error {
	if m.Currency != other.Currency {
		return fmt.Errorf("%w: cannot combine %s with %s", ErrCurrencyMismatch, other.Currency, m.Currency)
	}
	return nil
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor), m.Currency}
}

// Div divides by a decimal factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor), m.Currency}
}

// Equal checks amount and currency.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Decimal.Equal(other.Decimal)
}

// LessThan compares amounts only.
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// GreaterThan compares amounts only.
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// Zero returns a zero amount in code.
func Zero(code string) Money {
	return Money{decimal.Zero, normalizeCode(code)}
}

// String returns the amount fixed to the currency's minor unit, without symbol
func (m Money) String() string {
	return m.Decimal.StringFixed(m.decimals(nil))
}

// Format renders the amount with the built-in currency's symbol and separators.
func (m Money) Format(opts ...format.Option) string {
	return format.FormatDecimal(m.Decimal, m.Currency, opts...)
}

// FormatWith renders the amount through f, so currencies from f's registry apply.
func (m Money) FormatWith(f *format.Formatter, opts ...format.Option) string {
	return f.FormatDecimalCode(m.Decimal, m.Currency, opts...)
}

// EditString renders the amount for an input field; see numinput.FormatForEdit.
func (m Money) EditString(keepZero bool) string {
	return numinput.FormatDecimalForEdit(m.Decimal, keepZero)
}
