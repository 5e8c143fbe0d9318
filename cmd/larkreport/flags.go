package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-larkreport/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// reportFlags holds flags that shape a rendered report.
type reportFlags struct {
	title    string
	date     string
	engine   string
	timeout  string
	fixtures string
}

// exportFlags holds all flags for the export and preview commands.
type exportFlags struct {
	common  commonFlags
	report  reportFlags
	output  string
	workers int
	all     bool
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	common commonFlags
	report reportFlags
	addr   string
}

// inventoryFlags holds flags for the inventory add command.
type inventoryFlags struct {
	common   commonFlags
	sheet    string
	name     string
	category string
	stock    int
	min      int
	cost     float64
	supplier string
	image    string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addReportFlags adds report rendering flags to a FlagSet.
func addReportFlags(fs *flag.FlagSet, f *reportFlags) {
	fs.StringVar(&f.title, "title", "", "header bar text")
	fs.StringVar(&f.date, "date", "", "report date (\"auto\" = today)")
	fs.StringVarP(&f.engine, "engine", "e", "", "PDF engine: native, chrome")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "chrome export timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.fixtures, "fixtures", "", "fixture directory (empty = built-in demo data)")
}

// mergeReportFlags applies set flags over the config (CLI wins) and
// validates the result.
func mergeReportFlags(f *reportFlags, cfg *config.Config) error {
	if f.title != "" {
		cfg.Brand.Title = f.title
	}
	if f.date != "" {
		cfg.Report.Date = f.date
	}
	if f.engine != "" {
		cfg.Report.Engine = f.engine
	}
	if f.timeout != "" {
		cfg.Report.Timeout = f.timeout
	}
	if f.fixtures != "" {
		cfg.Fixtures.Dir = f.fixtures
	}
	return cfg.Validate()
}

// newFlagSet creates a FlagSet whose usage goes to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parse wraps flag errors in ErrUsage, leaving flag.ErrHelp intact.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// parseExportFlags parses export/preview flags and returns positional args.
func parseExportFlags(name string, args []string, w io.Writer) (*exportFlags, []string, error) {
	usage := printExportUsage
	if name == "preview" {
		usage = printPreviewUsage
	}
	fs := newFlagSet(name, w, usage)
	f := &exportFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	if name == "export" {
		fs.IntVarP(&f.workers, "workers", "w", 0, "parallel exports (0 = auto)")
		fs.BoolVarP(&f.all, "all", "a", false, "export every report section")
	}
	addCommonFlags(fs, &f.common)
	addReportFlags(fs, &f.report)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve flags.
func parseServeFlags(args []string, w io.Writer) (*serveFlags, error) {
	fs := newFlagSet("serve", w, printServeUsage)
	f := &serveFlags{}

	fs.StringVar(&f.addr, "addr", "", "listen address (host:port)")
	addCommonFlags(fs, &f.common)
	addReportFlags(fs, &f.report)

	if err := parse(fs, args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: serve takes no arguments", ErrUsage)
	}
	return f, nil
}

// parseInventoryFlags parses inventory add flags.
func parseInventoryFlags(args []string, w io.Writer) (*inventoryFlags, []string, error) {
	fs := newFlagSet("inventory add", w, printInventoryUsage)
	f := &inventoryFlags{}

	fs.StringVar(&f.sheet, "sheet", "", "inventory workbook path")
	fs.StringVarP(&f.name, "name", "n", "", "product name")
	fs.StringVar(&f.category, "category", "Other", "product category")
	fs.IntVar(&f.stock, "stock", 0, "stock quantity")
	fs.IntVar(&f.min, "min", 0, "minimum stock")
	fs.Float64Var(&f.cost, "cost", 0, "unit cost (AED)")
	fs.StringVar(&f.supplier, "supplier", "", "supplier name")
	fs.StringVar(&f.image, "image", "", "image file name")
	addCommonFlags(fs, &f.common)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
