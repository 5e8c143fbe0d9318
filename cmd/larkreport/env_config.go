package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-larkreport/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // LARKREPORT_CONFIG: config file name or path
	FixturesDir string // LARKREPORT_FIXTURES_DIR: fixture directory
	OutputDir   string // LARKREPORT_OUTPUT_DIR: default output directory
	Date        string // LARKREPORT_DATE: report date
	Engine      string // LARKREPORT_ENGINE: native or chrome
	Timeout     string // LARKREPORT_TIMEOUT: chrome export timeout
	Addr        string // LARKREPORT_ADDR: server listen address
	Sheet       string // LARKREPORT_SHEET: inventory workbook
	Workers     int    // LARKREPORT_WORKERS: parallel exports
}

// knownEnvVars lists valid LARKREPORT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"LARKREPORT_CONFIG":       true,
	"LARKREPORT_FIXTURES_DIR": true,
	"LARKREPORT_OUTPUT_DIR":   true,
	"LARKREPORT_DATE":         true,
	"LARKREPORT_ENGINE":       true,
	"LARKREPORT_TIMEOUT":      true,
	"LARKREPORT_ADDR":         true,
	"LARKREPORT_SHEET":        true,
	"LARKREPORT_WORKERS":      true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:  os.Getenv("LARKREPORT_CONFIG"),
		FixturesDir: os.Getenv("LARKREPORT_FIXTURES_DIR"),
		OutputDir:   os.Getenv("LARKREPORT_OUTPUT_DIR"),
		Date:        os.Getenv("LARKREPORT_DATE"),
		Engine:      os.Getenv("LARKREPORT_ENGINE"),
		Addr:        os.Getenv("LARKREPORT_ADDR"),
		Sheet:       os.Getenv("LARKREPORT_SHEET"),
	}

	// Invalid durations are ignored, like invalid worker counts.
	if timeout := os.Getenv("LARKREPORT_TIMEOUT"); timeout != "" {
		if d, err := config.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = timeout
		}
	}

	if workers := os.Getenv("LARKREPORT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized LARKREPORT_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "LARKREPORT_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies set environment values over the config.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards by each command).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.FixturesDir != "" {
		cfg.Fixtures.Dir = env.FixturesDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Date != "" {
		cfg.Report.Date = env.Date
	}
	if env.Engine != "" {
		cfg.Report.Engine = env.Engine
	}
	if env.Timeout != "" {
		cfg.Report.Timeout = env.Timeout
	}
	if env.Addr != "" {
		cfg.Server.Addr = env.Addr
	}
	if env.Sheet != "" {
		cfg.Inventory.Sheet = env.Sheet
	}
}

// loadConfig resolves the config from --config, LARKREPORT_CONFIG or the
// defaults, then applies environment overrides.
func loadConfig(flagConfig string, env *Environment) (*config.Config, *envConfig, error) {
	envCfg := loadEnvConfig()

	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	env.configName = name

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, envCfg, nil
}
