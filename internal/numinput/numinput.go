// Package numinput converts between the text of a numeric input field and
// the number it holds. Every function is total: bad input becomes zero.
package numinput

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/rpgo/fincalc/internal/currency"
)

// Normalize parses raw field text. Only plain decimal and scientific
// notation is accepted ("12", "-3.5", ".5", "1e3"); empty, unparseable and
// non-finite input yields 0.
func Normalize(raw string) float64 {
	_, v, ok := parse(raw)
	if !ok {
		return 0
	}
	return v
}

// NormalizeDecimal is Normalize returning an exact decimal.
func NormalizeDecimal(raw string) decimal.Decimal {
	d, _, ok := parse(raw)
	if !ok {
		return decimal.Zero
	}
	return d
}

// parse requires the text to be valid for both decimal.NewFromString and
// strconv.ParseFloat. decimal rejects the Go-only forms ParseFloat takes
// (underscores, hex floats, "Inf"); ParseFloat rejects overflow.
func parse(raw string) (decimal.Decimal, float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, 0, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, 0, false
	}
	return d, v, true
}

// NormalizeLoose accepts pasted display strings such as "$1,234.50".
func NormalizeLoose(raw string) float64 {
	return Normalize(Sanitize(raw))
}

// Sanitize rewrites a display string from the built-in table as plain
// decimal text.
func Sanitize(raw string) string {
	return SanitizeWith(currency.Builtin(), raw)
}

// SanitizeWith strips a currency symbol known to reg, then removes that
// currency's thousands separator and rewrites its decimal separator as ".".
// Without a symbol the default currency's separators apply.
func SanitizeWith(reg *currency.Registry, raw string) string {
	s := strings.TrimSpace(raw)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = strings.TrimSpace(s[1:])
	}
	conv := reg.Default()
	for _, sym := range reg.Symbols() {
		matched := false
		if strings.HasPrefix(s, sym) {
			s, matched = s[len(sym):], true
		} else if strings.HasSuffix(s, sym) {
			s, matched = s[:len(s)-len(sym)], true
		}
		if matched {
			if c, ok := reg.BySymbol(sym); ok {
				conv = c
			}
			break
		}
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if g := conv.Grouping(); g != "" {
		s = strings.ReplaceAll(s, g, "")
	}
	if conv.DecimalSeparator != "." {
		s = strings.ReplaceAll(s, conv.DecimalSeparator, ".")
	}
	return sign + s
}

// NormalizeLooseWith is NormalizeLoose against a specific registry.
func NormalizeLooseWith(reg *currency.Registry, raw string) float64 {
	return Normalize(SanitizeWith(reg, raw))
}

// FormatForEdit renders v for an editable field. Zero renders as "" unless
// keepZero is set, so a user can clear the field without it snapping back
// to "0". Non-finite values are treated as zero.
func FormatForEdit(v float64, keepZero bool) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		if keepZero {
			return "0"
		}
		return ""
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		// "1.5e-07" -> "1.5e-7"
		mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDecimalForEdit is FormatForEdit for exact decimals.
func FormatDecimalForEdit(d decimal.Decimal, keepZero bool) string {
	if d.IsZero() {
		if keepZero {
			return "0"
		}
		return ""
	}
	return d.String()
}
