package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	larkreport "github.com/alnah/go-larkreport"
	"github.com/alnah/go-larkreport/internal/config"
	"github.com/alnah/go-larkreport/internal/fixtures"
	"github.com/alnah/go-larkreport/internal/server"
	"github.com/alnah/go-larkreport/internal/suite"
)

// runServeCmd runs the suite server until the context is cancelled.
func runServeCmd(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	cfg, _, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	if flags.addr != "" {
		cfg.Server.Addr = flags.addr
	}

	srvCfg, exporter, err := serverSetup(&flags.report, cfg, env)
	if err != nil {
		return err
	}
	defer exporter.Close()

	store, err := fixtures.NewStore(cfg.Fixtures.Dir)
	if err != nil {
		return err
	}

	logger, err := newLogger(flags.common)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	srv := server.New(srvCfg, store, exporter, logger)
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Lark executive suite on http://%s\n", srv.Addr())
	}
	return srv.ListenAndServe(ctx)
}

// serverSetup validates the merged config and derives the server settings
// and its export service.
func serverSetup(f *reportFlags, cfg *config.Config, env *Environment) (server.Config, *larkreport.Service, error) {
	if err := mergeReportFlags(f, cfg); err != nil {
		return server.Config{}, nil, err
	}
	env.fixturesDir = cfg.Fixtures.Dir

	engine, err := larkreport.ParseEngine(cfg.Report.Engine)
	if err != nil {
		return server.Config{}, nil, err
	}
	// Resolved per request; checked once here so bad formats fail at start.
	if _, err := larkreport.ResolveDate(cfg.Report.Date, env.Now()); err != nil {
		return server.Config{}, nil, err
	}

	timeout, err := parseDurationField("report.timeout", cfg.Report.Timeout)
	if err != nil {
		return server.Config{}, nil, err
	}
	readTimeout, err := parseDurationField("server.readTimeout", cfg.Server.ReadTimeout)
	if err != nil {
		return server.Config{}, nil, err
	}
	writeTimeout, err := parseDurationField("server.writeTimeout", cfg.Server.WriteTimeout)
	if err != nil {
		return server.Config{}, nil, err
	}

	receipt := suite.ReceiptSettings{
		Cafe:          cfg.Brand.Cafe,
		TaxPercent:    cfg.Receipt.Tax,
		ServiceCharge: cfg.Receipt.ServiceCharge,
	}
	if err := receipt.Validate(); err != nil {
		return server.Config{}, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	opts := []larkreport.Option{larkreport.WithEngine(engine)}
	if timeout > 0 {
		opts = append(opts, larkreport.WithTimeout(timeout))
	}

	return server.Config{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Title:        cfg.Brand.Title,
		Date:         cfg.Report.Date,
		Receipt:      receipt,
		Now:          env.Now,
	}, larkreport.New(opts...), nil
}

func parseDurationField(name, value string) (time.Duration, error) {
	d, err := config.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrUsage, name, err)
	}
	return d, nil
}

// newLogger builds the production zap logger, at debug level when verbose
// and error level when quiet.
func newLogger(common commonFlags) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	switch {
	case common.verbose:
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case common.quiet:
		zc.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
