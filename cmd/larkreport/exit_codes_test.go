package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	larkreport "github.com/alnah/go-larkreport"
	"github.com/alnah/go-larkreport/internal/config"
	"github.com/alnah/go-larkreport/internal/dateutil"
	"github.com/alnah/go-larkreport/internal/fixtures"
	"github.com/alnah/go-larkreport/internal/sheet"
	"github.com/alnah/go-larkreport/internal/suite"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", larkreport.ErrBrowserConnect, ExitBrowser},
		{"page create", larkreport.ErrPageCreate, ExitBrowser},
		{"page load", larkreport.ErrPageLoad, ExitBrowser},
		{"pdf generation", larkreport.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("printing PDF: %w", larkreport.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"fixture not found", fixtures.ErrFixtureNotFound, ExitIO},
		{"fixture read", fixtures.ErrFixtureRead, ExitIO},
		{"fixtures dir", fixtures.ErrInvalidDir, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"date format", dateutil.ErrInvalidDateFormat, ExitUsage},
		{"fixture decode", fixtures.ErrFixtureDecode, ExitUsage},
		{"invalid engine", larkreport.ErrInvalidEngine, ExitUsage},
		{"empty section", larkreport.ErrEmptySection, ExitUsage},
		{"unknown section", suite.ErrUnknownSection, ExitUsage},
		{"invalid tax", suite.ErrInvalidTax, ExitUsage},
		{"empty product name", sheet.ErrEmptyName, ExitUsage},
		{"unknown category", sheet.ErrUnknownCategory, ExitUsage},
		{"negative quantity", sheet.ErrNegativeQuantity, ExitUsage},
		{"missing column", sheet.ErrMissingColumn, ExitUsage},
		{"worker count", ErrInvalidWorkerCount, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"usage", ErrUsage, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},

		// Joined batch failures keep the most specific code found first.
		{"joined", fmt.Errorf("%w: %w", ErrExportFailed, errors.Join(ErrWriteOutput)), ExitIO},

		// General errors (exit 1)
		{"export failed", ErrExportFailed, ExitGeneral},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitBrowser}
	for i, c := range codes {
		if c != i {
			t.Errorf("exit code %d = %d, want %d", i, c, i)
		}
		if c >= 126 {
			t.Errorf("exit code %d is reserved by the shell", c)
		}
	}
}
