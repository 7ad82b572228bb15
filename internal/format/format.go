// Package format renders amounts for display according to a currency's
// conventions. Formatting never fails; bad input degrades to a default.
package format

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rpgo/fincalc/internal/currency"
	"github.com/rpgo/fincalc/internal/logging"
)

// Formatter formats amounts in the currency named by its Selection. The zero
// value formats against the built-in table in USD.
type Formatter struct {
	registry  *currency.Registry
	selection Selection
	logger    logging.Logger
}

// NewFormatter builds a Formatter. A nil registry means the built-in table,
// a nil selection means USD, and a nil logger discards warnings.
func NewFormatter(reg *currency.Registry, sel Selection, logger logging.Logger) *Formatter {
	if reg == nil {
		reg = currency.Builtin()
	}
	return &Formatter{registry: reg, selection: sel, logger: logging.OrNop(logger)}
}

var std = NewFormatter(nil, nil, nil)

// FormatCurrency formats amount in code using the built-in table. Unknown or
// empty codes fall back to USD.
func FormatCurrency(amount float64, code string, opts ...Option) string {
	return std.FormatCode(amount, code, opts...)
}

// FormatDecimal is FormatCurrency for an exact decimal amount.
func FormatDecimal(amount decimal.Decimal, code string, opts ...Option) string {
	return std.FormatDecimalCode(amount, code, opts...)
}

// Registry returns the formatter's currency table.
func (f *Formatter) Registry() *currency.Registry {
	if f.registry == nil {
		return currency.Builtin()
	}
	return f.registry
}

// WithSelection returns a copy bound to sel.
func (f *Formatter) WithSelection(sel Selection) *Formatter {
	cp := *f
	cp.selection = sel
	return &cp
}

// Selected returns the currency the formatter currently resolves to.
func (f *Formatter) Selected() currency.Currency {
	return f.resolve(f.selectedCode())
}

// Format formats amount in the selected currency.
func (f *Formatter) Format(amount float64, opts ...Option) string {
	return f.FormatCode(amount, f.selectedCode(), opts...)
}

// FormatCode formats amount in an explicit currency.
func (f *Formatter) FormatCode(amount float64, code string, opts ...Option) string {
	return render(fromFloat(amount), f.resolve(code), collect(opts))
}

// FormatDecimalCode formats an exact amount in an explicit currency.
func (f *Formatter) FormatDecimalCode(amount decimal.Decimal, code string, opts ...Option) string {
	return render(amount, f.resolve(code), collect(opts))
}

func (f *Formatter) selectedCode() string {
	if f.selection == nil {
		return ""
	}
	return f.selection.CurrencyCode()
}

func (f *Formatter) resolve(code string) currency.Currency {
	c, ok := f.Registry().Resolve(code)
	if !ok && strings.TrimSpace(code) != "" {
		logging.OrNop(f.logger).Warnf("unknown currency %q, formatting as %s", code, c.Code)
	}
	return c
}

// FormatNumber renders v with USD grouping and no symbol. Without options it
// shows up to three fraction digits.
func FormatNumber(v float64, opts ...Option) string {
	o := collect(opts)
	if o.MaximumFractionDigits == nil && (o.MinimumFractionDigits == nil || *o.MinimumFractionDigits <= 3) {
		three := 3
		o.MaximumFractionDigits = &three
	}
	plain := currency.Builtin().Default()
	plain.Decimals = 0
	hide := false
	o.ShowSymbol = &hide
	return render(fromFloat(v), plain, o)
}

// FormatPercent renders v as a percentage with a fixed number of digits.
// v is already in percent units: 12.345 renders as "12.35%" with digits 2.
func FormatPercent(v float64, digits int) string {
	return FormatNumber(v, WithFractionDigits(digits)) + "%"
}

func fromFloat(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// render rounds half away from zero, trims trailing zeros down to the minimum
// digits, groups the integer part and places the symbol.
func render(amount decimal.Decimal, c currency.Currency, o Options) string {
	minD, maxD := o.fractionBounds(c.Decimals)
	rounded := amount.Round(int32(maxD))

	intPart, frac, _ := strings.Cut(rounded.Abs().StringFixed(int32(maxD)), ".")
	for len(frac) > minD && strings.HasSuffix(frac, "0") {
		frac = frac[:len(frac)-1]
	}

	num := group(intPart, c.Grouping())
	if frac != "" {
		num += c.DecimalSeparator + frac
	}
	if o.showSymbol() {
		space := ""
		if c.SymbolSpacing {
			space = " "
		}
		if c.SymbolPosition == currency.SymbolSuffix {
			num = num + space + c.Symbol
		} else {
			num = c.Symbol + space + num
		}
	}
	if rounded.IsNegative() {
		return "-" + num
	}
	return num
}

func group(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
