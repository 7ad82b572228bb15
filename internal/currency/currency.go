// Package currency holds the static table of currency display conventions.
package currency

import (
	"fmt"
	"strings"
)

// SymbolPosition places the currency symbol relative to the number.
type SymbolPosition string

const (
	SymbolPrefix SymbolPosition = "prefix"
	SymbolSuffix SymbolPosition = "suffix"
)

// DefaultCode is used whenever no currency has been selected.
const DefaultCode = "USD"

// MaxDecimals bounds the fraction digits a currency record may declare.
const MaxDecimals = 8

// Currency describes how amounts in one currency are displayed.
type Currency struct {
	Code              string         `yaml:"code" json:"code"`
	Name              string         `yaml:"name" json:"name"`
	Symbol            string         `yaml:"symbol" json:"symbol"`
	Decimals          int            `yaml:"decimals" json:"decimals"`
	SymbolPosition    SymbolPosition `yaml:"symbol_position,omitempty" json:"symbol_position"`
	SymbolSpacing     bool           `yaml:"symbol_spacing,omitempty" json:"symbol_spacing"`
	ThousandSeparator *string        `yaml:"thousand_separator,omitempty" json:"thousand_separator,omitempty"`
	DecimalSeparator  string         `yaml:"decimal_separator,omitempty" json:"decimal_separator"`
}

// NormalizeCode trims and upper-cases a currency code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Grouping returns the thousands separator, "," unless the record overrides it.
// An explicit empty separator disables grouping.
func (c Currency) Grouping() string {
	if c.ThousandSeparator == nil {
		return ","
	}
	return *c.ThousandSeparator
}

// Validate checks the record is usable for formatting.
func (c Currency) Validate() error {
	if len(c.Code) != 3 {
		return fmt.Errorf("code %q must be 3 letters", c.Code)
	}
	for i := 0; i < 3; i++ {
		if c.Code[i] < 'A' || c.Code[i] > 'Z' {
			return fmt.Errorf("code %q must be upper-case ASCII letters", c.Code)
		}
	}
	if c.Symbol == "" {
		return fmt.Errorf("currency %s: symbol is required", c.Code)
	}
	if c.Decimals < 0 || c.Decimals > MaxDecimals {
		return fmt.Errorf("currency %s: decimals must be between 0 and %d", c.Code, MaxDecimals)
	}
	switch c.SymbolPosition {
	case SymbolPrefix, SymbolSuffix:
	default:
		return fmt.Errorf("currency %s: unknown symbol position %q", c.Code, c.SymbolPosition)
	}
	if c.DecimalSeparator == "" {
		return fmt.Errorf("currency %s: decimal separator is required", c.Code)
	}
	if c.DecimalSeparator == c.Grouping() {
		return fmt.Errorf("currency %s: decimal and thousand separators must differ", c.Code)
	}
	return nil
}

// withDefaults fills the optional fields left out of a table entry.
func (c Currency) withDefaults() Currency {
	c.Code = NormalizeCode(c.Code)
	if c.SymbolPosition == "" {
		c.SymbolPosition = SymbolPrefix
	}
	if c.DecimalSeparator == "" {
		c.DecimalSeparator = "."
	}
	return c
}

func (c Currency) String() string { return c.Code }
