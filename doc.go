// Package larkreport exports Lark Cafe executive report sections as
// single-page PDF documents.
//
// # Quick Start
//
// Generate is pure and needs no setup:
//
//	rows := []larkreport.Row{
//	    {{Label: "Metric", Value: "Revenue"}, {Label: "Value", Value: 3450.0}},
//	}
//	pdf := larkreport.Generate("profit_summary", rows)
//	os.WriteFile("lark_executive_report.pdf", pdf, 0644)
//
// The output is a complete PDF 1.4 file: one Letter page, a black header
// band with a gold rule, the report title, the section name and one text
// line per row. Numeric values are printed as "AED 3,450.00".
//
// # File Layout
//
// Five objects are written in a fixed order and never change identity:
//
//	1 Catalog → 2 Pages → 3 Page → 4 Font (Helvetica) → 5 Content stream
//
// The content stream length is measured on the final Latin-1 bytes and the
// cross-reference table records the byte offset of each object, so the
// file opens in any conforming reader without repair.
//
// # Service
//
// Service adds validation, context handling and a second engine that
// prints the HTML preview through headless Chrome:
//
//	svc := larkreport.New(larkreport.WithEngine(larkreport.EngineChrome))
//	defer svc.Close()
//
//	pdf, err := svc.Export(ctx, larkreport.Input{
//	    Section: "waste_report",
//	    Date:    "17 Oct 2026",
//	    Rows:    rows,
//	})
//
// Preview returns the same report as an HTML page rendered with goldmark.
//
// # Browser Requirements
//
// Only EngineChrome needs Chrome/Chromium. go-rod downloads a managed
// Chromium on first use; set ROD_BROWSER_BIN to use an installed binary
// and ROD_NO_SANDBOX=1 in containers.
package larkreport
