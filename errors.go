package larkreport

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptySection   = errors.New("report section cannot be empty")
	ErrInvalidEngine  = errors.New("invalid export engine")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrInvalidRow     = errors.New("report row must be an object")

	// Chrome engine errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
