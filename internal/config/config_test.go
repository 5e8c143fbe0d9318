package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Brand.Title != "Lark Executive Report" {
		t.Errorf("Brand.Title = %q, want %q", cfg.Brand.Title, "Lark Executive Report")
	}
	if cfg.Report.Engine != "native" {
		t.Errorf("Report.Engine = %q, want native", cfg.Report.Engine)
	}
	if cfg.Receipt.Tax != 5 {
		t.Errorf("Receipt.Tax = %v, want 5", cfg.Receipt.Tax)
	}
	if cfg.Fixtures.Dir != "" {
		t.Errorf("Fixtures.Dir = %q, want empty", cfg.Fixtures.Dir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{name: "empty value is valid", value: "", maxLength: 10},
		{name: "value at limit is valid", value: "1234567890", maxLength: 10},
		{name: "value over limit returns error", value: "12345678901", maxLength: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "chrome engine", mutate: func(c *Config) { c.Report.Engine = "chrome" }},
		{name: "empty engine", mutate: func(c *Config) { c.Report.Engine = "" }},
		{name: "zero tax", mutate: func(c *Config) { c.Receipt.Tax = 0 }},
		{name: "max tax", mutate: func(c *Config) { c.Receipt.Tax = 20 }},
		{
			name:    "title too long",
			mutate:  func(c *Config) { c.Brand.Title = strings.Repeat("x", MaxTitleLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "unknown engine",
			mutate:  func(c *Config) { c.Report.Engine = "pandoc" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "tax above range",
			mutate:  func(c *Config) { c.Receipt.Tax = 21 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative tax",
			mutate:  func(c *Config) { c.Receipt.Tax = -1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "bad timeout",
			mutate:  func(c *Config) { c.Report.Timeout = "soon" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative read timeout",
			mutate:  func(c *Config) { c.Server.ReadTimeout = "-1s" },
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "30s", want: 30 * time.Second},
		{in: "1m30s", want: 90 * time.Second},
		{in: "-5s", wantErr: true},
		{in: "later", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("file path merges over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lark.yaml")
		content := "brand:\n  cafe: Lark Marina\nreceipt:\n  tax: 10\n  serviceCharge: false\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Brand.Cafe != "Lark Marina" {
			t.Errorf("Brand.Cafe = %q, want %q", cfg.Brand.Cafe, "Lark Marina")
		}
		if cfg.Receipt.Tax != 10 || cfg.Receipt.ServiceCharge {
			t.Errorf("Receipt = %+v, want tax 10 without service charge", cfg.Receipt)
		}
		if cfg.Brand.Title != "Lark Executive Report" {
			t.Errorf("Brand.Title = %q, want default", cfg.Brand.Title)
		}
		if cfg.Server.Addr != "localhost:8501" {
			t.Errorf("Server.Addr = %q, want default", cfg.Server.Addr)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.yaml")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field fails strict parse", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("brand:\n  logo: lark.png\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tax.yaml")
		if err := os.WriteFile(path, []byte("receipt:\n  tax: 50\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("LoadConfig() = %v, want ErrInvalidValue", err)
		}
	})
}

func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	if err := os.WriteFile("lark.yml", []byte("report:\n  engine: chrome\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig("lark")
	if err != nil {
		t.Fatalf("LoadConfig(lark) error = %v", err)
	}
	if cfg.Report.Engine != "chrome" {
		t.Errorf("Report.Engine = %q, want chrome", cfg.Report.Engine)
	}

	_, err = LoadConfig("nothere")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadConfig(nothere) = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "nothere.yaml") {
		t.Errorf("error should list tried paths, got %v", err)
	}
}
