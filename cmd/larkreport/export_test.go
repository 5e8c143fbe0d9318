package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	larkreport "github.com/alnah/go-larkreport"
	"github.com/alnah/go-larkreport/internal/config"
	"github.com/alnah/go-larkreport/internal/suite"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Mock pool
// ---------------------------------------------------------------------------

type stubExporter struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (s *stubExporter) Export(_ context.Context, in larkreport.Input) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, in.Section)
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-1.4 " + in.Section), nil
}

type stubPool struct {
	exporter *stubExporter
	size     int
}

func (p *stubPool) Acquire() Exporter { return p.exporter }
func (p *stubPool) Release(Exporter)  {}
func (p *stubPool) Size() int         { return p.size }

func testSettings(t *testing.T) *reportSettings {
	t.Helper()
	s, err := resolveReport(&reportFlags{date: "auto"}, config.DefaultConfig(), testEnv())
	if err != nil {
		t.Fatalf("resolveReport() error = %v", err)
	}
	return s
}

// ---------------------------------------------------------------------------
// TestOutputPathFor
// ---------------------------------------------------------------------------

func TestOutputPathFor(t *testing.T) {
	t.Parallel()

	waste := suite.Section{Key: "waste_report"}
	tests := []struct {
		name   string
		output string
		single bool
		want   string
	}{
		{"single default", "", true, singleReportName},
		{"single into dir", "out", true, filepath.Join("out", singleReportName)},
		{"single explicit file", "out/q3.pdf", true, "out/q3.pdf"},
		{"single uppercase ext", "Q3.PDF", true, "Q3.PDF"},
		{"batch into dir", "out", false, filepath.Join("out", "waste_report.pdf")},
		{"batch with file output", "out/q3.pdf", false, filepath.Join("out", "waste_report.pdf")},
		{"batch default", "", false, "waste_report.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := outputPathFor(waste, tt.output, tt.single); got != tt.want {
				t.Errorf("outputPathFor(%q, %v) = %q, want %q", tt.output, tt.single, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveReport
// ---------------------------------------------------------------------------

func TestResolveReport(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	env := testEnv()
	s, err := resolveReport(&reportFlags{title: "Marina", date: "auto:iso", engine: "CHROME", timeout: "1m"}, cfg, env)
	if err != nil {
		t.Fatalf("resolveReport() error = %v", err)
	}
	if s.title != "Marina" || s.date != "2026-10-17" || s.engine != larkreport.EngineChrome {
		t.Errorf("settings = %+v", s)
	}
	if len(s.reports["profit_summary"]) != 5 {
		t.Errorf("profit_summary rows = %d, want 5", len(s.reports["profit_summary"]))
	}
}

func TestResolveReport_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		flags   reportFlags
		wantErr error
	}{
		{"engine", reportFlags{engine: "latex"}, config.ErrInvalidValue},
		{"timeout", reportFlags{timeout: "soon"}, config.ErrInvalidValue},
		{"title", reportFlags{title: strings.Repeat("x", config.MaxTitleLength+1)}, config.ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := resolveReport(&tt.flags, config.DefaultConfig(), testEnv())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("resolveReport() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunExport
// ---------------------------------------------------------------------------

func TestRunExport_Batch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stub := &stubExporter{}
	env, stdout, _ := newTestEnv()
	flags := &exportFlags{output: dir, all: true}

	err := runExport(context.Background(), nil, flags, config.DefaultConfig(), testSettings(t), &stubPool{exporter: stub, size: 2}, env)
	if err != nil {
		t.Fatalf("runExport() error = %v", err)
	}
	if len(stub.calls) != 3 {
		t.Errorf("Export called %d times, want 3", len(stub.calls))
	}
	data, err := os.ReadFile(filepath.Join(dir, "category_performance.pdf"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "%PDF-1.4 category_performance" {
		t.Errorf("output = %q", data)
	}
	if got := strings.Count(stdout.String(), "\n"); got != 3 {
		t.Errorf("stdout lines = %d, want 3", got)
	}
}

func TestRunExport_DefaultSectionQuiet(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "report.pdf")
	stub := &stubExporter{}
	env, stdout, _ := newTestEnv()
	flags := &exportFlags{output: out, common: commonFlags{quiet: true}}

	if err := runExport(context.Background(), nil, flags, config.DefaultConfig(), testSettings(t), &stubPool{exporter: stub, size: 1}, env); err != nil {
		t.Fatalf("runExport() error = %v", err)
	}
	if len(stub.calls) != 1 || stub.calls[0] != suite.DefaultSection {
		t.Errorf("calls = %v, want [%s]", stub.calls, suite.DefaultSection)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet export wrote %q", stdout.String())
	}
}

func TestRunExport_Failures(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	stub := &stubExporter{err: boom}
	env, _, stderr := newTestEnv()
	flags := &exportFlags{output: t.TempDir(), all: true}

	err := runExport(context.Background(), nil, flags, config.DefaultConfig(), testSettings(t), &stubPool{exporter: stub, size: 3}, env)
	if !errors.Is(err, ErrExportFailed) || !errors.Is(err, boom) {
		t.Errorf("runExport() error = %v, want ErrExportFailed wrapping boom", err)
	}
	if strings.Count(stderr.String(), "FAILED") != 3 {
		t.Errorf("stderr = %q, want three failures", stderr.String())
	}
}

func TestRunExport_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stub := &stubExporter{}
	flags := &exportFlags{output: t.TempDir()}
	err := runExport(ctx, []string{"waste_report"}, flags, config.DefaultConfig(), testSettings(t), &stubPool{exporter: stub, size: 1}, testEnv())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("runExport() error = %v, want context.Canceled", err)
	}
	if len(stub.calls) != 0 {
		t.Errorf("cancelled export still called Export %d times", len(stub.calls))
	}
}

func TestRunExport_UnknownSection(t *testing.T) {
	t.Parallel()

	err := runExport(context.Background(), []string{"cash_flow"}, &exportFlags{}, config.DefaultConfig(), testSettings(t), &stubPool{exporter: &stubExporter{}, size: 1}, testEnv())
	if !errors.Is(err, suite.ErrUnknownSection) {
		t.Errorf("runExport() error = %v, want ErrUnknownSection", err)
	}
}

// ---------------------------------------------------------------------------
// TestPoolAdapter
// ---------------------------------------------------------------------------

func TestPoolAdapter(t *testing.T) {
	t.Parallel()

	pool := larkreport.NewServicePool(2)
	defer pool.Close()
	adapter := &poolAdapter{pool: pool}

	if adapter.Size() != 2 {
		t.Errorf("Size() = %d, want 2", adapter.Size())
	}
	svc := adapter.Acquire()
	adapter.Release(svc)
}

func TestPoolAdapter_Release_WrongType(t *testing.T) {
	t.Parallel()

	pool := larkreport.NewServicePool(1)
	defer pool.Close()
	adapter := &poolAdapter{pool: pool}

	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "unexpected type") {
			t.Errorf("recover() = %v, want unexpected type panic", r)
		}
	}()
	adapter.Release(&stubExporter{})
}

// ---------------------------------------------------------------------------
// TestPreview
// ---------------------------------------------------------------------------

func TestRunPreviewCmd(t *testing.T) {
	t.Parallel()

	t.Run("stdout", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := newTestEnv()
		if err := runPreviewCmd(context.Background(), []string{"waste_report", "--title", "Marina"}, env); err != nil {
			t.Fatalf("runPreviewCmd() error = %v", err)
		}
		out := stdout.String()
		if !strings.HasPrefix(out, "<!DOCTYPE html>") || !strings.Contains(out, "<title>Marina</title>") {
			t.Errorf("preview = %q", out)
		}
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "preview.html")
		if err := runPreviewCmd(context.Background(), []string{"-o", path, "-q"}, testEnv()); err != nil {
			t.Fatalf("runPreviewCmd() error = %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading preview: %v", err)
		}
		if !bytes.Contains(data, []byte("Revenue")) {
			t.Error("preview of the default section should list Revenue")
		}
	})

	t.Run("too many sections", func(t *testing.T) {
		t.Parallel()

		err := runPreviewCmd(context.Background(), []string{"waste_report", "profit_summary"}, testEnv())
		if !errors.Is(err, ErrUsage) {
			t.Errorf("runPreviewCmd() error = %v, want ErrUsage", err)
		}
	})
}
