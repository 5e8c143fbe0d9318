//go:build integration

package larkreport

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestChromeEngine_Export(t *testing.T) {
	svc := New(WithEngine(EngineChrome), WithTimeout(time.Minute))
	defer svc.Close()

	pdf, err := svc.Export(context.Background(), Input{
		Section: "profit_summary",
		Date:    "17 Oct 2026",
		Rows:    profitRows(),
	})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Errorf("output is not a PDF: %q", pdf[:min(len(pdf), 16)])
	}
}

func TestChromeEngine_ReusesBrowser(t *testing.T) {
	svc := New(WithEngine(EngineChrome))
	defer svc.Close()

	for range 2 {
		if _, err := svc.Export(context.Background(), Input{Section: "waste_report"}); err != nil {
			t.Fatalf("Export() error = %v", err)
		}
	}
	r, ok := svc.pdf.(*chromeRenderer)
	if !ok || r.browser == nil {
		t.Error("browser should stay connected between exports")
	}
}

func TestChromeRenderer_DeadlineExceeded(t *testing.T) {
	r := newChromeRenderer(time.Minute)
	defer r.Close()

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	if _, err := r.RenderPDF(ctx, "<html></html>"); err == nil {
		t.Error("expired context should fail")
	}
}
