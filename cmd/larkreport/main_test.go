package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

var testNow = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)

func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{
		Now:    func() time.Time { return testNow },
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

func testEnv() *Environment {
	env, _, _ := newTestEnv()
	return env
}

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no command", []string{"larkreport"}, ExitUsage, "", "Usage: larkreport"},
		{"unknown command", []string{"larkreport", "frobnicate"}, ExitUsage, "", "unknown command: frobnicate"},
		{"version", []string{"larkreport", "version"}, ExitSuccess, "larkreport dev", ""},
		{"help", []string{"larkreport", "help"}, ExitSuccess, "Commands:", ""},
		{"help export", []string{"larkreport", "help", "export"}, ExitSuccess, "--all", ""},
		{"export help flag", []string{"larkreport", "export", "--help"}, ExitSuccess, "", "Usage: larkreport export"},
		{"bad flag", []string{"larkreport", "export", "--bogus"}, ExitUsage, "", "unknown flag"},
		{"unknown section", []string{"larkreport", "export", "cash_flow"}, ExitUsage, "", "hint: available: profit_summary"},
		{"bad engine", []string{"larkreport", "export", "--engine", "latex"}, ExitUsage, "", "invalid"},
		{"bad date", []string{"larkreport", "export", "--date", "auto:"}, ExitUsage, "", "date"},
		{"missing fixtures", []string{"larkreport", "preview", "--fixtures", "/does/not/exist"}, ExitIO, "", "error:"},
		{"inventory without subcommand", []string{"larkreport", "inventory"}, ExitUsage, "", "subcommand"},
		{"serve with args", []string{"larkreport", "serve", "extra"}, ExitUsage, "", "no arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want substring %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want substring %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunMain_ExportAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env, stdout, stderr := newTestEnv()
	code := runMain([]string{"larkreport", "export", "--all", "-o", dir, "--date", "auto"}, env)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr: %s", code, stderr.String())
	}

	for _, key := range []string{"profit_summary", "waste_report", "category_performance"} {
		path := filepath.Join(dir, key+".pdf")
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("reading %s: %v", path, err)
			continue
		}
		if !bytes.HasPrefix(data, []byte("%PDF-1.4\n")) {
			t.Errorf("%s is not a PDF", path)
		}
		if !bytes.Contains(data, []byte("(Date: 17 Oct 2026) Tj")) {
			t.Errorf("%s misses the resolved date", path)
		}
		if !strings.Contains(stdout.String(), path) {
			t.Errorf("stdout should list %s, got %q", path, stdout.String())
		}
	}
}
