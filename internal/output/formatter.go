package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rpgo/fincalc/internal/currency"
	"github.com/rpgo/fincalc/internal/format"
)

// ErrUnsupportedFormat is returned for output names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// DefaultSample is the amount rendered in each row's Sample column.
const DefaultSample = 1234567.891

// Row is one currency in a table listing. Its YAML form is a loadable
// currency record; Sample is ignored when the listing is read back.
type Row struct {
	Code              string `json:"code" yaml:"code"`
	Name              string `json:"name" yaml:"name"`
	Symbol            string `json:"symbol" yaml:"symbol"`
	Decimals          int    `json:"decimals" yaml:"decimals"`
	SymbolPosition    string `json:"symbol_position" yaml:"symbol_position"`
	SymbolSpacing     bool   `json:"symbol_spacing" yaml:"symbol_spacing"`
	ThousandSeparator string `json:"thousand_separator" yaml:"thousand_separator"`
	DecimalSeparator  string `json:"decimal_separator" yaml:"decimal_separator"`
	Sample            string `json:"sample" yaml:"sample"`
}

// BuildRows lists every currency in reg with sample rendered in it.
func BuildRows(reg *currency.Registry, sample float64) []Row {
	f := format.NewFormatter(reg, nil, nil)
	rows := make([]Row, 0, len(reg.Codes()))
	for _, c := range reg.All() {
		rows = append(rows, Row{
			Code:              c.Code,
			Name:              c.Name,
			Symbol:            c.Symbol,
			Decimals:          c.Decimals,
			SymbolPosition:    string(c.SymbolPosition),
			SymbolSpacing:     c.SymbolSpacing,
			ThousandSeparator: c.Grouping(),
			DecimalSeparator:  c.DecimalSeparator,
			Sample:            f.FormatCode(sample, c.Code),
		})
	}
	return rows
}

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(rows []Row) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func([]Row) ([]byte, error)
}

func (ff FormatterFunc) Format(rows []Row) ([]byte, error) { return ff.F(rows) }
func (ff FormatterFunc) Name() string                      { return ff.ID }

// WriteFormatted runs a formatter and writes its output to w.
func WriteFormatted(w io.Writer, f Formatter, rows []Row) error {
	data, err := f.Format(rows)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	YAMLFormatter{},
}

// GetFormatterByName fetches a registered formatter by name or alias.
func GetFormatterByName(name string) (Formatter, error) {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table": "console",
	"text":  "console",
	"txt":   "console",
	"yml":   "yaml",
	"":      "console",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
