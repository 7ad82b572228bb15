package numinput

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/fincalc/internal/currency"
)

func TestNormalizeInvalidIsZero(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "12abc", "1,000", "--1", ".", "-", "NaN", "Inf", "-infinity", "1e400", "$5",
		"1_000", "1__0", "0x10", "0x1p4", "0x1.8p1", "0b101", "0o17", "5e", "e5", "1e+", "+-1", ".-5", "1.2.3"} {
		assert.Equal(t, 0.0, Normalize(in), "Normalize(%q)", in)
	}
}

func TestNormalizeValid(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"12", 12},
		{"-3.5", -3.5},
		{".5", 0.5},
		{"-.5", -0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"1E3", 1000},
		{"1e+2", 100},
		{"+4", 4},
		{"0.1", 0.1},
		{"123456789.125", 123456789.125},
		{"1e-7", 1e-7},
		{"  42  ", 42},
		{"007", 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalizeDecimal(t *testing.T) {
	assert.True(t, NormalizeDecimal("").IsZero())
	assert.True(t, NormalizeDecimal("junk").IsZero())
	assert.True(t, NormalizeDecimal("0.1").Equal(decimal.RequireFromString("0.1")))
	assert.True(t, NormalizeDecimal(" 1234.567 ").Equal(decimal.RequireFromString("1234.567")))
	assert.True(t, NormalizeDecimal("1.5e3").Equal(decimal.NewFromInt(1500)))
	assert.True(t, NormalizeDecimal("0x1p4").IsZero())
	assert.True(t, NormalizeDecimal("1_000").IsZero())
	assert.True(t, NormalizeDecimal("1e400").IsZero())
}

func TestSanitize(t *testing.T) {
	tests := map[string]string{
		"$1,234.50":    "1234.50",
		"-$1,234.50":   "-1234.50",
		"CA$ 9,000":    "9000",
		"1 000 000":    "1000000",
		"12,5 kr":      "125",
		"1_000":        "1_000",
		"":             "",
		"€ 7.25 ":      "7.25",
		"CHF 1,250.00": "1250.00",
		"kr 3,5":       "35",
		"plain":        "plain",
	}
	for in, want := range tests {
		assert.Equal(t, want, Sanitize(in), "Sanitize(%q)", in)
	}
}

func TestSanitizeWithCustomRegistry(t *testing.T) {
	reg, err := currency.Builtin().With(currency.Currency{Code: "PLN", Symbol: "zł", Decimals: 2, SymbolPosition: currency.SymbolSuffix})
	require.NoError(t, err)
	assert.Equal(t, "99.90", SanitizeWith(reg, "99.90 zł"))
	assert.Equal(t, 99.9, Normalize(SanitizeWith(reg, "99.90 zł")))
}

func TestSanitizeUsesMatchedCurrencySeparators(t *testing.T) {
	dot, space := ".", " "
	reg, err := currency.Builtin().With(
		currency.Currency{Code: "EUR", Symbol: "€", Decimals: 2, SymbolPosition: currency.SymbolSuffix, SymbolSpacing: true, ThousandSeparator: &dot, DecimalSeparator: ","},
		currency.Currency{Code: "PLN", Symbol: "zł", Decimals: 2, SymbolPosition: currency.SymbolSuffix, SymbolSpacing: true, ThousandSeparator: &space, DecimalSeparator: ","},
	)
	require.NoError(t, err)

	tests := map[string]float64{
		"1.234,50 €":      1234.5,
		"-1.234.567,89 €": -1234567.89,
		"1 234,50 zł":     1234.5,
		"0,99 zł":         0.99,
		"$1,234.50":       1234.5,
		"1,234.50":        1234.5,
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeLooseWith(reg, in), "NormalizeLooseWith(%q)", in)
	}
}

func TestNormalizeLoose(t *testing.T) {
	assert.Equal(t, 1234.5, NormalizeLoose("$1,234.50"))
	assert.Equal(t, -20.0, NormalizeLoose("-£20"))
	assert.Equal(t, 0.0, NormalizeLoose("$"))
	assert.Equal(t, 0.0, NormalizeLoose("twelve"))
}

func TestFormatForEditZero(t *testing.T) {
	assert.Equal(t, "", FormatForEdit(0, false))
	assert.Equal(t, "0", FormatForEdit(0, true))
	assert.Equal(t, "", FormatForEdit(math.Copysign(0, -1), false))
	assert.Equal(t, "0", FormatForEdit(math.Copysign(0, -1), true))
	assert.Equal(t, "", FormatForEdit(math.NaN(), false))
	assert.Equal(t, "0", FormatForEdit(math.Inf(1), true))
}

func TestFormatForEditNonZero(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{-1, "-1"},
		{1234.5, "1234.5"},
		{0.1, "0.1"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{-1.5e-7, "-1.5e-7"},
		{1e21, "1e+21"},
		{123456789012345680000, "123456789012345680000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatForEdit(tt.in, false), "FormatForEdit(%v)", tt.in)
		assert.Equal(t, FormatForEdit(tt.in, false), FormatForEdit(tt.in, true))
	}
}

func TestEditRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 0.1, 0.2 + 0.1, 1234.5, 1e-7, 1e21, 9007199254740993, math.SmallestNonzeroFloat64, math.MaxFloat64} {
		for _, keep := range []bool{false, true} {
			assert.Equal(t, v, Normalize(FormatForEdit(v, keep)), "round trip of %v keepZero=%v", v, keep)
		}
	}
}

func TestFormatDecimalForEdit(t *testing.T) {
	assert.Equal(t, "", FormatDecimalForEdit(decimal.Zero, false))
	assert.Equal(t, "0", FormatDecimalForEdit(decimal.Zero, true))
	assert.Equal(t, "12.5", FormatDecimalForEdit(decimal.RequireFromString("12.50"), false))
}
