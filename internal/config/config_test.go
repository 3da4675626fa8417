package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// validConfigYAML is a minimal valid configuration.
const validConfigYAML = `
inputs:
  customers: "users.csv"
  catalog: "books.yaml"
  orders: "orders.parquet"
output:
  dir: "./out"
  report_json: "report.json"
report:
  top_days: 3
logging:
  level: "debug"
`

func TestLoadConfig_Valid(t *testing.T) {
	configPath := createTempConfigFile(t, validConfigYAML)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Report.TopDays != 3 {
		t.Errorf("Expected TopDays 3, got %d", cfg.Report.TopDays)
	}

	if cfg.Output.Dashboard != DefaultDashboardFile || cfg.Output.Chart != DefaultChartFile ||
		cfg.Output.DailyChart != DefaultDailyChart {
		t.Errorf("defaults not applied: %+v", cfg.Output)
	}

	want := filepath.Join(filepath.Dir(configPath), "users.csv")
	if got := cfg.ResolveInput(cfg.Inputs.Customers); got != want {
		t.Errorf("ResolveInput = %s, want %s", got, want)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("Expected error for nonexistent file, got nil")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := createTempConfigFile(t, "invalid: yaml: content: [}")

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid YAML, got nil")
	}
}

func TestConfig_Validate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
		wantMsg string
	}{
		{
			name:    "Missing customers",
			mutate:  func(c *Config) { c.Inputs.Customers = "" },
			wantErr: ErrInvalidConfig,
			wantMsg: "Customers",
		},
		{
			name:    "Unsupported orders format",
			mutate:  func(c *Config) { c.Inputs.Orders = "orders.xlsx" },
			wantErr: ErrUnsupportedOrdersFormat,
		},
		{
			name:    "Missing output dir",
			mutate:  func(c *Config) { c.Output.Dir = "" },
			wantErr: ErrInvalidConfig,
			wantMsg: "Dir",
		},
		{
			name:    "Negative top days",
			mutate:  func(c *Config) { c.Report.TopDays = -1 },
			wantErr: ErrInvalidConfig,
			wantMsg: "TopDays",
		},
		{
			name:    "Bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}

			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() = %v, want mention of %s", err, tt.wantMsg)
			}
		})
	}
}

func TestConfig_Default_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")

	cfg := Default()
	cfg.Inputs.Orders = "orders.csv"

	if err := cfg.SaveConfig(path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Inputs.Orders != "orders.csv" {
		t.Errorf("Orders = %s, want orders.csv", loaded.Inputs.Orders)
	}
}

func TestConfig_PathHelpers(t *testing.T) {
	cfg := Default()
	cfg.Inputs.BaseDir = "/data"

	if got := cfg.ResolveInput("/abs/users.csv"); got != "/abs/users.csv" {
		t.Errorf("absolute path rewritten: %s", got)
	}

	if got := cfg.ResolveInput("users.csv"); got != filepath.Join("/data", "users.csv") {
		t.Errorf("ResolveInput = %s", got)
	}

	if got := cfg.OutputPath("dashboard.md"); got != filepath.Join("output", "dashboard.md") {
		t.Errorf("OutputPath = %s", got)
	}

	if !strings.Contains(cfg.String(), "orders.parquet") {
		t.Errorf("String() = %s", cfg.String())
	}
}
