package currency

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrUnknownCurrency is returned by Lookup for codes missing from the table.
var ErrUnknownCurrency = errors.New("unknown currency")

//go:embed currencies.yaml
var builtinTable []byte

var builtin = mustParseBuiltin()

func mustParseBuiltin() *Registry {
	list, err := ParseTable(builtinTable)
	if err != nil {
		panic(fmt.Sprintf("currency: built-in table: %v", err))
	}
	r, err := NewRegistry(list)
	if err != nil {
		panic(fmt.Sprintf("currency: built-in table: %v", err))
	}
	return r
}

// Builtin returns the registry parsed from the embedded table.
func Builtin() *Registry { return builtin }

// Table is the YAML document shape of a currency table.
type Table struct {
	Currencies []Currency `yaml:"currencies"`
}

// ParseTable decodes a YAML currency table.
func ParseTable(data []byte) ([]Currency, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse currency table: %w", err)
	}
	return t.Currencies, nil
}

// Registry is an immutable code -> Currency mapping. It always contains DefaultCode.
type Registry struct {
	byCode map[string]Currency
}

// NewRegistry validates the records and builds a registry. Later entries
// replace earlier ones with the same code.
func NewRegistry(list []Currency) (*Registry, error) {
	r := &Registry{byCode: make(map[string]Currency, len(list))}
	for _, c := range list {
		c = c.withDefaults()
		if err := c.Validate(); err != nil {
			return nil, err
		}
		r.byCode[c.Code] = c
	}
	if _, ok := r.byCode[DefaultCode]; !ok {
		return nil, fmt.Errorf("registry must define %s", DefaultCode)
	}
	return r, nil
}

// With returns a new registry holding r's records merged with extra.
func (r *Registry) With(extra ...Currency) (*Registry, error) {
	list := make([]Currency, 0, len(r.byCode)+len(extra))
	list = append(list, r.All()...)
	list = append(list, extra...)
	return NewRegistry(list)
}

// Lookup returns the record for code, or ErrUnknownCurrency.
func (r *Registry) Lookup(code string) (Currency, error) {
	c, ok := r.byCode[NormalizeCode(code)]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return c, nil
}

// MustLookup is Lookup for codes known to be present.
func (r *Registry) MustLookup(code string) Currency {
	c, err := r.Lookup(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Resolve returns the record for code, falling back to the default currency.
// The boolean reports whether code itself was found.
func (r *Registry) Resolve(code string) (Currency, bool) {
	if c, err := r.Lookup(code); err == nil {
		return c, true
	}
	return r.Default(), false
}

// Default returns the DefaultCode record.
func (r *Registry) Default() Currency { return r.byCode[DefaultCode] }

// Codes returns the sorted currency codes.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.byCode))
	for code := range r.byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// All returns the records sorted by code.
func (r *Registry) All() []Currency {
	out := make([]Currency, 0, len(r.byCode))
	for _, code := range r.Codes() {
		out = append(out, r.byCode[code])
	}
	return out
}

// Symbols returns every distinct symbol, longest first, for input sanitizing.
func (r *Registry) Symbols() []string {
	seen := make(map[string]bool, len(r.byCode))
	var out []string
	for _, c := range r.byCode {
		if !seen[c.Symbol] {
			seen[c.Symbol] = true
			out = append(out, c.Symbol)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// BySymbol returns the first record, in code order, that uses sym.
func (r *Registry) BySymbol(sym string) (Currency, bool) {
	for _, c := range r.All() {
		if c.Symbol == sym {
			return c, true
		}
	}
	return Currency{}, false
}
