package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/kdnorth/salesreport/internal/importer"
	"github.com/kdnorth/salesreport/internal/report"
)

// FileName is the config file written by init and read by default.
const FileName = "salesreport.yaml"

// EnvPrefix prefixes every environment override. Field tags carry the
// full variable name so that only prefixed variables are read.
const EnvPrefix = "SALESREPORT"

// Config represents the top-level salesreport.yaml configuration. Each
// field can be overridden by the environment variable named in its
// envconfig tag.
type Config struct {
	Organization   string       `yaml:"organization" envconfig:"SALESREPORT_ORGANIZATION"`
	CurrencySuffix string       `yaml:"currency_suffix" envconfig:"SALESREPORT_CURRENCY_SUFFIX"`
	TopNDefault    int          `yaml:"top_n_default" envconfig:"SALESREPORT_TOP_N_DEFAULT"`
	Input          InputConfig  `yaml:"input"`
	Report         ReportConfig `yaml:"report"`
	Log            LogConfig    `yaml:"log"`
}

// InputConfig describes the sales files being loaded.
type InputConfig struct {
	Encoding string        `yaml:"encoding" envconfig:"SALESREPORT_INPUT_ENCODING"` // euc-kr, utf-8 or auto
	Columns  ColumnsConfig `yaml:"columns"`
}

// ColumnsConfig names the three required header cells.
type ColumnsConfig struct {
	Merchant  string `yaml:"merchant" envconfig:"SALESREPORT_INPUT_COLUMNS_MERCHANT"`
	YearMonth string `yaml:"year_month" envconfig:"SALESREPORT_INPUT_COLUMNS_YEAR_MONTH"`
	Amount    string `yaml:"amount" envconfig:"SALESREPORT_INPUT_COLUMNS_AMOUNT"`
}

// ReportConfig controls exported documents.
type ReportConfig struct {
	FontPath string  `yaml:"font_path" envconfig:"SALESREPORT_REPORT_FONT_PATH"` // empty: search known locations
	FontSize float64 `yaml:"font_size" envconfig:"SALESREPORT_REPORT_FONT_SIZE"`
}

// LogConfig sets the minimum level written to stderr.
type LogConfig struct {
	Level string `yaml:"level" envconfig:"SALESREPORT_LOG_LEVEL"`
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	cols := importer.DefaultColumns()
	return &Config{
		Organization:   report.DefaultOrganization,
		CurrencySuffix: report.DefaultCurrencySuffix,
		TopNDefault:    10,
		Input: InputConfig{
			Encoding: importer.EncodingEUCKR,
			Columns: ColumnsConfig{
				Merchant:  cols.Merchant,
				YearMonth: cols.YearMonth,
				Amount:    cols.Amount,
			},
		},
		Report: ReportConfig{FontSize: 12},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads a salesreport.yaml file from disk. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from SALESREPORT_* environment variables. Unset
// variables leave the current value alone.
func ApplyEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if c.TopNDefault <= 0 {
		errs = append(errs, fmt.Errorf("top_n_default must be positive, got %d", c.TopNDefault))
	}
	switch importer.NormalizeEncoding(c.Input.Encoding) {
	case importer.EncodingEUCKR, importer.EncodingUTF8, importer.EncodingAuto:
	default:
		errs = append(errs, fmt.Errorf("input.encoding %q is not one of euc-kr, utf-8, auto", c.Input.Encoding))
	}

	cols := map[string]string{
		"merchant":   c.Input.Columns.Merchant,
		"year_month": c.Input.Columns.YearMonth,
		"amount":     c.Input.Columns.Amount,
	}
	seen := make(map[string]string)
	for _, key := range []string{"merchant", "year_month", "amount"} {
		name := strings.TrimSpace(cols[key])
		if name == "" {
			errs = append(errs, fmt.Errorf("input.columns.%s is empty", key))
			continue
		}
		if prev, ok := seen[name]; ok {
			errs = append(errs, fmt.Errorf("input.columns.%s and input.columns.%s both name %q", prev, key, name))
		}
		seen[name] = key
	}

	if c.Report.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("report.font_size must be positive, got %g", c.Report.FontSize))
	}
	if lvl := strings.TrimSpace(c.Log.Level); lvl != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(lvl)); err != nil {
			errs = append(errs, fmt.Errorf("log.level %q is not a zerolog level", c.Log.Level))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ImportOptions converts the input section for the loader.
func (c *Config) ImportOptions() importer.Options {
	return importer.Options{
		Encoding: c.Input.Encoding,
		Columns: importer.Columns{
			Merchant:  strings.TrimSpace(c.Input.Columns.Merchant),
			YearMonth: strings.TrimSpace(c.Input.Columns.YearMonth),
			Amount:    strings.TrimSpace(c.Input.Columns.Amount),
		},
	}
}
