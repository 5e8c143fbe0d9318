package larkreport

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestReportMarkdown(t *testing.T) {
	t.Parallel()

	doc := &Document{Section: "waste_report", Date: "17 Oct 2026", Rows: []Row{
		{{Label: "Item", Value: "Milk"}, {Label: "Value", Value: 240.0}},
		{{Label: "Item", Value: "Syrup | Vanilla"}, {Label: "Note", Value: "expired"}},
	}}
	want := strings.Join([]string{
		"# Lark Executive Report",
		"",
		"**Section:** waste\\_report",
		"",
		"**Date:** 17 Oct 2026",
		"",
		"| Item | Value | Note |",
		"| --- | --- | --- |",
		"| Milk | AED 240.00 |  |",
		"| Syrup \\| Vanilla |  | expired |",
		"",
	}, "\n")

	if got := ReportMarkdown(doc); got != want {
		t.Errorf("ReportMarkdown() =\n%s\nwant\n%s", got, want)
	}
}

func TestReportMarkdown_NoRows(t *testing.T) {
	t.Parallel()

	got := ReportMarkdown(&Document{Section: "profit_summary"})
	if !strings.Contains(got, "_No data available in the selected report._") {
		t.Errorf("ReportMarkdown() = %q, want empty notice", got)
	}
	if strings.Contains(got, "**Date:**") {
		t.Error("date line should be omitted when empty")
	}
}

func TestGoldmarkRenderer_RenderHTML(t *testing.T) {
	t.Parallel()

	r := newGoldmarkRenderer()
	doc := &Document{Title: "Lark <Marina>", Section: "profit_summary", Rows: []Row{
		{{Label: "Metric", Value: "<script>alert(1)</script>"}, {Label: "Value", Value: 3450.0}},
	}}

	got, err := r.RenderHTML(context.Background(), doc)
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Lark &lt;Marina&gt;</title>",
		"<table>",
		"<th>Metric</th>",
		"<td>AED 3,450.00</td>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
	if strings.Contains(got, "<script>") {
		t.Error("cell markup must be escaped")
	}
}

func TestGoldmarkRenderer_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newGoldmarkRenderer().RenderHTML(ctx, &Document{Section: "x"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RenderHTML() error = %v, want context.Canceled", err)
	}
}
