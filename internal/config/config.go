// Package config provides configuration management for the analytics pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidConfig           = errors.New("invalid configuration")
	ErrInvalidLogLevel         = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrUnsupportedOrdersFormat = errors.New("inputs.orders must be a .parquet or .csv file")
)

// Default file names.
const (
	DefaultDashboardFile = "dashboard.md"
	DefaultChartFile     = "top_days.svg"
	DefaultDailyChart    = "daily_revenue.svg"
	DefaultTopDays       = 5
	DefaultTitle         = "Book Store Analytics Dashboard"
)

// OrderFormats lists the order file extensions a loader exists for.
var OrderFormats = []string{".parquet", ".csv"}

// Config represents the complete pipeline configuration.
type Config struct {
	Inputs  InputsConfig  `yaml:"inputs"`
	Output  OutputConfig  `yaml:"output"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputsConfig locates the three source files.
type InputsConfig struct {
	BaseDir   string `yaml:"base_dir"`
	Customers string `yaml:"customers" validate:"required"`
	Catalog   string `yaml:"catalog" validate:"required"`
	Orders    string `yaml:"orders" validate:"required,orders_format"`
}

// OutputConfig defines where artifacts are written.
type OutputConfig struct {
	Dir         string `yaml:"dir" validate:"required"`
	Dashboard   string `yaml:"dashboard"`
	Chart       string `yaml:"chart"`
	DailyChart  string `yaml:"daily_chart"`
	ReportJSON  string `yaml:"report_json"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// ReportConfig tunes the dashboard content.
type ReportConfig struct {
	Title   string `yaml:"title"`
	TopDays int    `yaml:"top_days" validate:"gte=1"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a configuration reading users.csv, books.yaml and orders.parquet
// from the working directory.
func Default() *Config {
	cfg := &Config{
		Inputs: InputsConfig{
			Customers: "users.csv",
			Catalog:   "books.yaml",
			Orders:    "orders.parquet",
		},
		Output: OutputConfig{Dir: "output"},
	}
	cfg.ApplyDefaults()

	return cfg
}

// LoadConfig loads configuration from YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Inputs.BaseDir == "" {
		cfg.Inputs.BaseDir = filepath.Dir(path)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyDefaults fills omitted optional settings.
func (c *Config) ApplyDefaults() {
	if c.Output.Dashboard == "" {
		c.Output.Dashboard = DefaultDashboardFile
	}

	if c.Output.Chart == "" {
		c.Output.Chart = DefaultChartFile
	}

	if c.Output.DailyChart == "" {
		c.Output.DailyChart = DefaultDailyChart
	}

	if c.Report.TopDays == 0 {
		c.Report.TopDays = DefaultTopDays
	}

	if c.Report.Title == "" {
		c.Report.Title = DefaultTitle
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	if err := v.RegisterValidation("orders_format", validateOrdersFormat); err != nil {
		return fmt.Errorf("failed to register orders_format validator: %w", err)
	}

	if err := v.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if fe.Tag() == "orders_format" {
					return ErrUnsupportedOrdersFormat
				}
			}

			return fmt.Errorf("%w: %s", ErrInvalidConfig, describe(fieldErrs))
		}

		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

func validateOrdersFormat(fl validator.FieldLevel) bool {
	ext := strings.ToLower(filepath.Ext(fl.Field().String()))
	for _, f := range OrderFormats {
		if ext == f {
			return true
		}
	}

	return false
}

func describe(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}

	return strings.Join(msgs, "; ")
}

// ResolveInput returns p relative to the configured base directory.
func (c *Config) ResolveInput(p string) string {
	if filepath.IsAbs(p) || c.Inputs.BaseDir == "" {
		return p
	}

	return filepath.Join(c.Inputs.BaseDir, p)
}

// OutputPath returns the path of an artifact inside the output directory.
func (c *Config) OutputPath(name string) string {
	return filepath.Join(c.Output.Dir, name)
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Customers: %s, Catalog: %s, Orders: %s, Output: %s}",
		c.Inputs.Customers,
		c.Inputs.Catalog,
		c.Inputs.Orders,
		c.Output.Dir,
	)
}
