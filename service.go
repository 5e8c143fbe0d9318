package larkreport

import (
	"context"
	"fmt"
	"sync"
)

// Service exports report sections as PDF or HTML.
// The native engine is safe for concurrent use; Chrome exports are
// serialized per Service, use a ServicePool for parallel Chrome work.
type Service struct {
	cfg  serviceConfig
	html htmlRenderer

	mu     sync.Mutex
	pdf    pdfRenderer
	newPDF func(cfg serviceConfig) pdfRenderer
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:  serviceConfig{timeout: defaultTimeout, engine: EngineNative},
		html: newGoldmarkRenderer(),
		newPDF: func(cfg serviceConfig) pdfRenderer {
			return newChromeRenderer(cfg.timeout)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Export renders the input to PDF bytes with the selected engine.
func (s *Service) Export(ctx context.Context, in Input) ([]byte, error) {
	engine, err := s.validateInput(in)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := in.document()
	if engine == EngineNative {
		return doc.Bytes(), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	htmlContent, err := s.html.RenderHTML(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pdf == nil {
		s.pdf = s.newPDF(s.cfg)
	}
	out, err := s.pdf.RenderPDF(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("printing PDF: %w", err)
	}
	return out, nil
}

// Preview renders the input as a standalone HTML page.
func (s *Service) Preview(ctx context.Context, in Input) (string, error) {
	if in.Section == "" {
		return "", ErrEmptySection
	}
	return s.html.RenderHTML(ctx, in.document())
}

// Close releases the Chrome browser if one was started.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pdf != nil {
		err := s.pdf.Close()
		s.pdf = nil
		return err
	}
	return nil
}

// validateInput checks required fields and resolves the engine.
func (s *Service) validateInput(in Input) (Engine, error) {
	if in.Section == "" {
		return "", ErrEmptySection
	}
	engine := in.Engine
	if engine == "" {
		engine = s.cfg.engine
	}
	switch engine {
	case EngineNative, EngineChrome:
		return engine, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidEngine, engine)
}
