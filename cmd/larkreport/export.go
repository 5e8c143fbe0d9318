package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	larkreport "github.com/alnah/go-larkreport"
	"github.com/alnah/go-larkreport/internal/config"
	"github.com/alnah/go-larkreport/internal/fileutil"
	"github.com/alnah/go-larkreport/internal/fixtures"
	"github.com/alnah/go-larkreport/internal/suite"
)

// singleReportName is the download name of a one-section export.
const singleReportName = "lark_executive_report.pdf"

// Exporter is the interface for the export service.
type Exporter interface {
	Export(ctx context.Context, in larkreport.Input) ([]byte, error)
}

// Compile-time interface implementation check.
var _ Exporter = (*larkreport.Service)(nil)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() Exporter
	Release(Exporter)
	Size() int
}

// poolAdapter exposes a *larkreport.ServicePool as a Pool.
type poolAdapter struct {
	pool *larkreport.ServicePool
}

func (a *poolAdapter) Acquire() Exporter { return a.pool.Acquire() }

// Release panics on a foreign Exporter: only pool services come back.
func (a *poolAdapter) Release(e Exporter) {
	svc, ok := e.(*larkreport.Service)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", e))
	}
	a.pool.Release(svc)
}

func (a *poolAdapter) Size() int { return a.pool.Size() }

// exportJob is a single section to write.
type exportJob struct {
	Section    suite.Section
	OutputPath string
}

// exportResult holds the outcome of a single export.
type exportResult struct {
	OutputPath string
	Err        error
	Duration   time.Duration
}

// reportSettings is the resolved, config-derived state shared by every job.
type reportSettings struct {
	title   string
	date    string
	engine  larkreport.Engine
	timeout time.Duration
	reports fixtures.Reports
}

// runExportCmd parses flags, builds a pool and exports.
func runExportCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseExportFlags("export", args, env.Stderr)
	if err != nil {
		return err
	}
	cfg, envCfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	if flags.workers == 0 {
		flags.workers = envCfg.Workers
	}
	if flags.workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, flags.workers)
	}

	settings, err := resolveReport(&flags.report, cfg, env)
	if err != nil {
		return err
	}

	var opts []larkreport.Option
	opts = append(opts, larkreport.WithEngine(settings.engine))
	if settings.timeout > 0 {
		opts = append(opts, larkreport.WithTimeout(settings.timeout))
	}
	size := larkreport.ResolvePoolSize(flags.workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", size)
	}
	pool := larkreport.NewServicePool(size, opts...)
	defer pool.Close()

	return runExport(ctx, positional, flags, cfg, settings, &poolAdapter{pool: pool}, env)
}

// resolveReport merges report flags and loads the fixtures every export needs.
func resolveReport(f *reportFlags, cfg *config.Config, env *Environment) (*reportSettings, error) {
	if err := mergeReportFlags(f, cfg); err != nil {
		return nil, err
	}
	env.fixturesDir = cfg.Fixtures.Dir

	engine, err := larkreport.ParseEngine(cfg.Report.Engine)
	if err != nil {
		return nil, err
	}
	timeout, err := parseDurationField("report.timeout", cfg.Report.Timeout)
	if err != nil {
		return nil, err
	}
	date, err := larkreport.ResolveDate(cfg.Report.Date, env.Now())
	if err != nil {
		return nil, err
	}

	store, err := fixtures.NewStore(cfg.Fixtures.Dir)
	if err != nil {
		return nil, err
	}
	reports, err := store.Reports()
	if err != nil {
		return nil, err
	}

	return &reportSettings{
		title:   cfg.Brand.Title,
		date:    date,
		engine:  engine,
		timeout: timeout,
		reports: reports,
	}, nil
}

// runExport resolves the jobs and runs them across the pool.
func runExport(ctx context.Context, positional []string, flags *exportFlags, cfg *config.Config, s *reportSettings, pool Pool, env *Environment) error {
	keys := positional
	if flags.all {
		keys = suite.SectionKeys()
	}
	if len(keys) == 0 {
		keys = []string{suite.DefaultSection}
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	jobs := make([]exportJob, 0, len(keys))
	for _, key := range keys {
		section, err := suite.LookupSection(key)
		if err != nil {
			return err
		}
		jobs = append(jobs, exportJob{Section: section, OutputPath: outputPathFor(section, outputDir, len(keys) == 1)})
	}

	results := exportBatch(ctx, jobs, s, pool)
	return reportResults(results, flags.common, env)
}

// outputPathFor names the PDF: a ".pdf" output is used as is for a single
// section, otherwise files land in the directory named after the section.
func outputPathFor(section suite.Section, output string, single bool) string {
	if single {
		if strings.EqualFold(filepath.Ext(output), ".pdf") {
			return output
		}
		return filepath.Join(output, singleReportName)
	}
	if strings.EqualFold(filepath.Ext(output), ".pdf") {
		output = filepath.Dir(output)
	}
	return filepath.Join(output, section.Key+".pdf")
}

// exportBatch processes jobs concurrently using the service pool.
func exportBatch(ctx context.Context, jobs []exportJob, s *reportSettings, pool Pool) []exportResult {
	if len(jobs) == 0 {
		return nil
	}

	workers := min(pool.Size(), len(jobs))
	jobsCh := make(chan int, len(jobs))
	results := make([]exportResult, len(jobs))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc := pool.Acquire()
			defer pool.Release(svc)
			for i := range jobsCh {
				results[i] = exportOne(ctx, jobs[i], s, svc)
			}
		}()
	}

	for i := range jobs {
		jobsCh <- i
	}
	close(jobsCh)
	wg.Wait()

	return results
}

// exportOne renders and writes a single section.
func exportOne(ctx context.Context, job exportJob, s *reportSettings, svc Exporter) exportResult {
	start := time.Now()
	result := exportResult{OutputPath: job.OutputPath}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	pdf, err := svc.Export(ctx, larkreport.Input{
		Title:   s.title,
		Section: job.Section.Key,
		Date:    s.date,
		Rows:    s.reports[job.Section.Key],
	})
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", job.Section.Key, err)
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFile(job.OutputPath, pdf); err != nil {
		result.Err = fmt.Errorf("%w: %s: %v", ErrWriteOutput, job.OutputPath, err)
	}
	result.Duration = time.Since(start)
	return result
}

// reportResults prints each outcome and joins the failures.
func reportResults(results []exportResult, common commonFlags, env *Environment) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.OutputPath, r.Err)
			continue
		}
		if common.quiet {
			continue
		}
		if common.verbose {
			fmt.Fprintf(env.Stdout, "%s (%v)\n", r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintln(env.Stdout, r.OutputPath)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	if len(results) == 1 {
		return errs[0]
	}
	return fmt.Errorf("%w: %d of %d sections: %w", ErrExportFailed, len(errs), len(results), errors.Join(errs...))
}

// runPreviewCmd renders one section as HTML to --output or stdout.
func runPreviewCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseExportFlags("preview", args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: preview takes one section", ErrUsage)
	}
	cfg, _, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	s, err := resolveReport(&flags.report, cfg, env)
	if err != nil {
		return err
	}

	key := ""
	if len(positional) == 1 {
		key = positional[0]
	}
	section, err := suite.LookupSection(key)
	if err != nil {
		return err
	}

	page, err := larkreport.New().Preview(ctx, larkreport.Input{
		Title:   s.title,
		Section: section.Key,
		Date:    s.date,
		Rows:    s.reports[section.Key],
	})
	if err != nil {
		return err
	}

	if flags.output == "" {
		_, err = fmt.Fprint(env.Stdout, page)
		return err
	}
	if err := fileutil.WriteFile(flags.output, []byte(page)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, flags.output, err)
	}
	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, flags.output)
	}
	return nil
}
