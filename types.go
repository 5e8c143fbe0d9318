package larkreport

import (
	"fmt"
	"strings"
	"time"
)

// Engine selects how a report is turned into PDF bytes.
type Engine string

const (
	// EngineNative writes the PDF directly, no external process.
	EngineNative Engine = "native"
	// EngineChrome renders the HTML preview and prints it with headless Chrome.
	EngineChrome Engine = "chrome"
)

// ParseEngine maps a user-supplied name to an Engine (case-insensitive).
// An empty name selects EngineNative.
func ParseEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(EngineNative):
		return EngineNative, nil
	case string(EngineChrome):
		return EngineChrome, nil
	}
	return "", fmt.Errorf("%w: %q (must be native or chrome)", ErrInvalidEngine, name)
}

// Input contains export parameters.
type Input struct {
	Title   string // Header text (optional, default DefaultTitle)
	Section string // Section key, e.g. "profit_summary" (required)
	Date    string // Resolved date text (optional)
	Rows    []Row
	Engine  Engine // Optional, overrides the service default
}

// document converts the input to the Document the renderers share.
func (in Input) document() *Document {
	return &Document{
		Title:   in.Title,
		Section: in.Section,
		Date:    in.Date,
		Rows:    in.Rows,
	}
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	engine  Engine
}

// defaultTimeout bounds a Chrome export when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the Chrome export timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("larkreport: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithEngine sets the engine used when Input.Engine is empty.
func WithEngine(e Engine) Option {
	return func(s *Service) {
		s.cfg.engine = e
	}
}
