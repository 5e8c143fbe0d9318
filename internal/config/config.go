package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-larkreport/internal/fileutil"
	"github.com/alnah/go-larkreport/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength  = 100  // Header bar text
	MaxCafeLength   = 100  // Cafe name on receipts
	MaxPathLength   = 4096 // Directories and files
	MaxDateLength   = 30   // "auto:DD MMM YYYY" or "17 Oct 2026"
	MaxEngineLength = 10   // "native", "chrome"
	MaxAddrLength   = 255  // host:port
)

// Receipt tax bounds, in percent.
const (
	MinTaxPercent = 0
	MaxTaxPercent = 20
)

// Config holds all configuration for report export and the suite server.
type Config struct {
	Brand     BrandConfig     `yaml:"brand"`
	Fixtures  FixturesConfig  `yaml:"fixtures"`
	Report    ReportConfig    `yaml:"report"`
	Output    OutputConfig    `yaml:"output"`
	Receipt   ReceiptConfig   `yaml:"receipt"`
	Server    ServerConfig    `yaml:"server"`
	Inventory InventoryConfig `yaml:"inventory"`
}

// BrandConfig defines the names printed on exports and receipts.
type BrandConfig struct {
	Title string `yaml:"title"` // Report header (empty = "Lark Executive Report")
	Cafe  string `yaml:"cafe"`  // Receipt header
}

// FixturesConfig defines where demo data is read from.
type FixturesConfig struct {
	Dir string `yaml:"dir"` // Empty = embedded demo data
}

// ReportConfig defines export options.
type ReportConfig struct {
	Date    string `yaml:"date"`    // "", "auto", "auto:FORMAT" or a literal date
	Engine  string `yaml:"engine"`  // "native" (default) or "chrome"
	Timeout string `yaml:"timeout"` // Go duration, chrome engine only
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = current directory
}

// ReceiptConfig defines branded receipt options.
type ReceiptConfig struct {
	Tax           float64 `yaml:"tax"`           // Percent, 0 to 20
	ServiceCharge bool    `yaml:"serviceCharge"` // Flat AED 5.00
}

// ServerConfig defines the suite HTTP server.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	ReadTimeout  string `yaml:"readTimeout"`
	WriteTimeout string `yaml:"writeTimeout"`
}

// InventoryConfig defines the inventory spreadsheet location.
type InventoryConfig struct {
	Sheet string `yaml:"sheet"`
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"brand.title", c.Brand.Title, MaxTitleLength},
		{"brand.cafe", c.Brand.Cafe, MaxCafeLength},
		{"fixtures.dir", c.Fixtures.Dir, MaxPathLength},
		{"report.date", c.Report.Date, MaxDateLength},
		{"report.engine", c.Report.Engine, MaxEngineLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"server.addr", c.Server.Addr, MaxAddrLength},
		{"inventory.sheet", c.Inventory.Sheet, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Report.Engine) {
	case "", "native", "chrome":
	default:
		return fmt.Errorf("%w: report.engine %q (must be native or chrome)", ErrInvalidValue, c.Report.Engine)
	}

	if c.Receipt.Tax < MinTaxPercent || c.Receipt.Tax > MaxTaxPercent {
		return fmt.Errorf("%w: receipt.tax must be between %d and %d, got %.2f",
			ErrInvalidValue, MinTaxPercent, MaxTaxPercent, c.Receipt.Tax)
	}

	durations := []struct {
		name  string
		value string
	}{
		{"report.timeout", c.Report.Timeout},
		{"server.readTimeout", c.Server.ReadTimeout},
		{"server.writeTimeout", c.Server.WriteTimeout},
	}
	for _, d := range durations {
		if _, err := ParseDuration(d.value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, d.name, err)
		}
	}

	return nil
}

// ParseDuration parses a config duration. Empty means zero (use default).
func ParseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", s)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Brand:     BrandConfig{Title: "Lark Executive Report", Cafe: "Lark Cafe"},
		Report:    ReportConfig{Engine: "native", Timeout: "30s"},
		Receipt:   ReceiptConfig{Tax: 5, ServiceCharge: true},
		Server:    ServerConfig{Addr: "localhost:8501", ReadTimeout: "15s", WriteTimeout: "30s"},
		Inventory: InventoryConfig{Sheet: filepath.Join("data", "inventory.xlsx")},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values absent from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-larkreport", name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations:
// the current directory, then the user config directory.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
