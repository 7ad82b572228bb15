package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/fincalc/internal/currency"
	"github.com/rpgo/fincalc/internal/format"
	"github.com/rpgo/fincalc/internal/output"
)

// Environment variables that override settings file values.
const (
	EnvCurrency = "FINCALC_CURRENCY"
	EnvFormat   = "FINCALC_FORMAT"
	EnvKeepZero = "FINCALC_KEEP_ZERO"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Settings controls how the CLI formats values.
type Settings struct {
	DefaultCurrency string              `yaml:"default_currency"`
	KeepZero        bool                `yaml:"keep_zero"`
	OutputFormat    string              `yaml:"output_format"`
	Display         format.Options      `yaml:"display"`
	Currencies      []currency.Currency `yaml:"currencies"`

	registry *currency.Registry
}

// Default returns the settings used when no file is given.
func Default() *Settings {
	return &Settings{
		DefaultCurrency: currency.DefaultCode,
		OutputFormat:    "console",
		registry:        currency.Builtin(),
	}
}

// Registry returns the built-in table merged with the configured currencies.
// It is populated by ValidateConfiguration.
func (s *Settings) Registry() *currency.Registry {
	if s.registry == nil {
		return currency.Builtin()
	}
	return s.registry
}

// InputParser handles parsing of settings files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads settings from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML settings document. Omitted fields keep
// their defaults.
func (ip *InputParser) Parse(data []byte) (*Settings, error) {
	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(settings); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return settings, nil
}

// ApplyEnv loads envFile (if it exists) into the process environment and
// applies the FINCALC_* overrides, then revalidates.
func (ip *InputParser) ApplyEnv(settings *Settings, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}
	if v, ok := os.LookupEnv(EnvCurrency); ok && strings.TrimSpace(v) != "" {
		settings.DefaultCurrency = v
	}
	if v, ok := os.LookupEnv(EnvFormat); ok && strings.TrimSpace(v) != "" {
		settings.OutputFormat = v
	}
	if v, ok := os.LookupEnv(EnvKeepZero); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvKeepZero, v)
		}
		settings.KeepZero = b
	}
	return ip.ValidateConfiguration(settings)
}

// ValidateConfiguration validates the settings and builds their registry
func (ip *InputParser) ValidateConfiguration(settings *Settings) error {
	reg, err := currency.Builtin().With(settings.Currencies...)
	if err != nil {
		return fmt.Errorf("%w: currencies: %v", ErrInvalidConfig, err)
	}

	settings.DefaultCurrency = currency.NormalizeCode(settings.DefaultCurrency)
	if settings.DefaultCurrency == "" {
		settings.DefaultCurrency = currency.DefaultCode
	}
	if _, err := reg.Lookup(settings.DefaultCurrency); err != nil {
		return fmt.Errorf("%w: default_currency: %v", ErrInvalidConfig, err)
	}

	f, err := output.GetFormatterByName(settings.OutputFormat)
	if err != nil {
		return fmt.Errorf("%w: output_format: %v", ErrInvalidConfig, err)
	}
	settings.OutputFormat = f.Name()

	if err := validateDigits("minimum_fraction_digits", settings.Display.MinimumFractionDigits); err != nil {
		return err
	}
	if err := validateDigits("maximum_fraction_digits", settings.Display.MaximumFractionDigits); err != nil {
		return err
	}

	settings.registry = reg
	return nil
}

func validateDigits(field string, n *int) error {
	if n != nil && (*n < 0 || *n > format.MaxFractionDigits) {
		return fmt.Errorf("%w: display.%s must be between 0 and %d", ErrInvalidConfig, field, format.MaxFractionDigits)
	}
	return nil
}

// SaveConfiguration writes settings as YAML.
func SaveConfiguration(settings *Settings, filename string) error {
	b, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
