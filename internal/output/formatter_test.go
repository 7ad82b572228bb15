package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rpgo/fincalc/internal/currency"
)

func buildTestRows() []Row {
	return BuildRows(currency.Builtin(), DefaultSample)
}

func TestBuildRows(t *testing.T) {
	rows := buildTestRows()
	if len(rows) != len(currency.Builtin().Codes()) {
		t.Fatalf("expected one row per currency, got %d", len(rows))
	}
	byCode := map[string]Row{}
	if rows[0].ThousandSeparator != "," || rows[0].DecimalSeparator != "." {
		t.Fatalf("separators missing from row: %+v", rows[0])
	}
	for i, r := range rows {
		if i > 0 && rows[i-1].Code >= r.Code {
			t.Fatalf("rows not sorted: %s before %s", rows[i-1].Code, r.Code)
		}
		byCode[r.Code] = r
	}
	want := map[string]string{
		"USD": "$1,234,567.89",
		"JPY": "¥1,234,568",
		"CHF": "CHF 1,234,567.89",
		"SEK": "1,234,567.89 kr",
		"KWD": "KD 1,234,567.891",
	}
	for code, sample := range want {
		if got := byCode[code].Sample; got != sample {
			t.Errorf("%s sample = %q, want %q", code, got, sample)
		}
	}
}

func TestCSVFormatterQuotesSamples(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestRows())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != len(buildTestRows())+1 {
		t.Fatalf("expected header plus one line per currency, got %d", len(lines))
	}
	if !strings.Contains(string(out), `USD,US Dollar,$,2,prefix,"$1,234,567.89"`) {
		t.Fatalf("USD row missing or unquoted: %s", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestRows())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rows []Row
	if err := json.Unmarshal(out, &rows); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if rows[0].Code != "AUD" {
		t.Fatalf("expected AUD first, got %s", rows[0].Code)
	}

	empty, err := JSONFormatter{}.Format(nil)
	if err != nil || strings.TrimSpace(string(empty)) != "[]" {
		t.Fatalf("nil rows should encode as [], got %q (%v)", empty, err)
	}
}

func TestYAMLFormatterRoundTripsThroughTable(t *testing.T) {
	empty, dot := "", "."
	custom, err := currency.Builtin().With(
		currency.Currency{Code: "EUR", Name: "Euro", Symbol: "€", Decimals: 2, SymbolPosition: currency.SymbolSuffix, SymbolSpacing: true, ThousandSeparator: &dot, DecimalSeparator: ","},
		currency.Currency{Code: "XOF", Name: "CFA Franc", Symbol: "F", Decimals: 0, SymbolSpacing: true, ThousandSeparator: &empty},
	)
	if err != nil {
		t.Fatalf("With: %v", err)
	}

	for name, reg := range map[string]*currency.Registry{"builtin": currency.Builtin(), "custom": custom} {
		before := BuildRows(reg, DefaultSample)
		out, err := YAMLFormatter{}.Format(before)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		list, err := currency.ParseTable(out)
		if err != nil {
			t.Fatalf("%s: ParseTable: %v", name, err)
		}
		reloaded, err := currency.NewRegistry(list)
		if err != nil {
			t.Fatalf("%s: listing is not a valid table: %v", name, err)
		}
		after := BuildRows(reloaded, DefaultSample)
		if diff := cmp.Diff(before, after); diff != "" {
			t.Fatalf("%s: reloaded table renders differently (-before +after):\n%s", name, diff)
		}
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestRows())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "US Dollar") || !strings.Contains(content, "$1,234,567.89") {
		t.Fatalf("expected USD row, got: %s", content)
	}
}

// Golden snapshot tests (prefix-based) ensure key headers remain stable.
func TestGoldenSnapshots(t *testing.T) {
	cases := []struct {
		name      string
		golden    string
		formatter Formatter
	}{
		{"console", "console.golden", ConsoleFormatter{}},
		{"csv", "csv.golden", CSVFormatter{}},
		{"yaml", "yaml.golden", YAMLFormatter{}},
	}

	rows := buildTestRows()
	for _, tc := range cases {
		out, err := tc.formatter.Format(rows)
		if err != nil {
			t.Fatalf("%s: format error: %v", tc.name, err)
		}
		data, err := os.ReadFile(filepath.Join("testdata", tc.golden))
		if err != nil {
			t.Fatalf("%s: read golden: %v", tc.name, err)
		}
		if !strings.HasPrefix(string(out), strings.TrimSpace(string(data))) {
			t.Fatalf("%s: output does not match golden prefix %q", tc.name, strings.TrimSpace(string(data)))
		}
	}
}

func TestGetFormatterByName(t *testing.T) {
	for name, want := range map[string]string{
		"json":   "json",
		" JSON ": "json",
		"yml":    "yaml",
		"table":  "console",
		"":       "console",
		"csv":    "csv",
	} {
		f, err := GetFormatterByName(name)
		if err != nil {
			t.Fatalf("GetFormatterByName(%q): %v", name, err)
		}
		if f.Name() != want {
			t.Errorf("GetFormatterByName(%q) = %s, want %s", name, f.Name(), want)
		}
	}

	_, err := GetFormatterByName("html")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "console, csv, json, yaml") {
		t.Fatalf("error should list formatters: %v", err)
	}
}

func TestAvailableFormatAliasesExcludesEmpty(t *testing.T) {
	for _, a := range AvailableFormatAliases() {
		if a == "" {
			t.Fatalf("empty alias exposed")
		}
	}
}

func TestWriteFormatted(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFormatted(&buf, CSVFormatter{}, buildTestRows()); err != nil {
		t.Fatalf("WriteFormatted: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Code,") {
		t.Fatalf("unexpected output: %q", buf.String())
	}

	boom := FormatterFunc{ID: "boom", F: func([]Row) ([]byte, error) { return nil, errors.New("kaput") }}
	err := WriteFormatted(&buf, boom, nil)
	if err == nil || !strings.Contains(err.Error(), "boom formatter: kaput") {
		t.Fatalf("expected wrapped formatter error, got %v", err)
	}
}
