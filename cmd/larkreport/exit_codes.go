package main

import (
	"errors"
	"os"

	larkreport "github.com/alnah/go-larkreport"
	"github.com/alnah/go-larkreport/internal/config"
	"github.com/alnah/go-larkreport/internal/dateutil"
	"github.com/alnah/go-larkreport/internal/fixtures"
	"github.com/alnah/go-larkreport/internal/sheet"
	"github.com/alnah/go-larkreport/internal/suite"
)

// Exit codes for the larkreport CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful command
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, larkreport.ErrBrowserConnect) ||
		errors.Is(err, larkreport.ErrPageCreate) ||
		errors.Is(err, larkreport.ErrPageLoad) ||
		errors.Is(err, larkreport.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fixtures.ErrFixtureNotFound) ||
		errors.Is(err, fixtures.ErrFixtureRead) ||
		errors.Is(err, fixtures.ErrInvalidDir) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, fixtures.ErrFixtureDecode) ||
		errors.Is(err, larkreport.ErrInvalidEngine) ||
		errors.Is(err, larkreport.ErrEmptySection) ||
		errors.Is(err, suite.ErrUnknownSection) ||
		errors.Is(err, suite.ErrInvalidTax) ||
		errors.Is(err, sheet.ErrEmptyName) ||
		errors.Is(err, sheet.ErrUnknownCategory) ||
		errors.Is(err, sheet.ErrNegativeQuantity) ||
		errors.Is(err, sheet.ErrMissingColumn) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
