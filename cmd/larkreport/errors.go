package main

import (
	"context"
	"errors"

	larkreport "github.com/alnah/go-larkreport"
	"github.com/alnah/go-larkreport/internal/config"
	"github.com/alnah/go-larkreport/internal/fixtures"
	"github.com/alnah/go-larkreport/internal/hints"
	"github.com/alnah/go-larkreport/internal/sheet"
	"github.com/alnah/go-larkreport/internal/suite"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrUsage              = errors.New("invalid usage")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrExportFailed       = errors.New("export failed")
)

// formatError appends an actionable hint to the messages users hit most.
func formatError(err error, env *Environment) string {
	msg := err.Error()
	switch {
	case errors.Is(err, larkreport.ErrBrowserConnect):
		return msg + hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return msg + hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return msg + hints.ForConfigNotFound(config.SearchPaths(env.configName))
	case errors.Is(err, suite.ErrUnknownSection):
		return msg + hints.ForUnknownSection(suite.SectionKeys())
	case errors.Is(err, fixtures.ErrFixtureNotFound):
		return msg + hints.ForFixtureNotFound(env.fixturesDir)
	case errors.Is(err, sheet.ErrUnknownCategory):
		return msg + hints.ForCategory(sheet.Categories)
	case errors.Is(err, ErrWriteOutput):
		return msg + hints.ForOutputDirectory()
	}
	return msg
}
