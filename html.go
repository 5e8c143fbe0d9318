package larkreport

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// previewTemplate wraps goldmark's fragment output in a printable page
// styled like the PDF export: black header band with a gold rule.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
@page { size: letter; margin: 0.5in; }
body { font-family: Helvetica, Arial, sans-serif; color: #111; margin: 0; }
h1 { background: #000; color: #fff; margin: 0; padding: 18px 24px; border-bottom: 3px solid #e0b455; font-size: 20px; }
p { margin: 8px 24px; }
table { border-collapse: collapse; margin: 12px 24px; }
th, td { border-bottom: 1px solid #ddd; padding: 6px 12px; text-align: left; }
th { color: #555; font-weight: 600; }
</style>
</head>
<body>
%s
</body>
</html>`

// htmlRenderer abstracts report-to-HTML conversion.
type htmlRenderer interface {
	RenderHTML(ctx context.Context, doc *Document) (string, error)
}

// goldmarkRenderer renders reports through a Markdown table with goldmark.
type goldmarkRenderer struct {
	md goldmark.Markdown
}

var _ htmlRenderer = (*goldmarkRenderer)(nil)

func newGoldmarkRenderer() *goldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Table),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Raw HTML stays escaped; fixture text is not trusted markup.
		),
	)
	return &goldmarkRenderer{md: md}
}

// RenderHTML converts the document to a standalone HTML page.
// Goldmark has no context support, so conversion runs in a goroutine and
// the call returns early when ctx is done.
func (g *goldmarkRenderer) RenderHTML(ctx context.Context, doc *Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := g.md.Convert([]byte(ReportMarkdown(doc)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		title := doc.Title
		if title == "" {
			title = DefaultTitle
		}
		done <- result{html: fmt.Sprintf(previewTemplate, escapeHTMLTitle(title), buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// ReportMarkdown renders the document as Markdown: a heading, the section
// and date lines, and a GFM table whose columns are every label in order
// of first appearance.
func ReportMarkdown(doc *Document) string {
	title := doc.Title
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(title))
	fmt.Fprintf(&b, "**Section:** %s\n\n", escapeMarkdown(doc.Section))
	if doc.Date != "" {
		fmt.Fprintf(&b, "**Date:** %s\n\n", escapeMarkdown(doc.Date))
	}

	columns := columnsOf(doc.Rows)
	if len(columns) == 0 {
		b.WriteString("_No data available in the selected report._\n")
		return b.String()
	}

	b.WriteString("|")
	for _, c := range columns {
		b.WriteString(" " + escapeCell(c) + " |")
	}
	b.WriteString("\n|")
	for range columns {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range doc.Rows {
		b.WriteString("|")
		for _, c := range columns {
			cell := ""
			if v, ok := row.Get(c); ok {
				cell = FormatValue(v)
			}
			b.WriteString(" " + escapeCell(cell) + " |")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// columnsOf collects labels across rows, first appearance wins.
func columnsOf(rows []Row) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, row := range rows {
		for _, f := range row {
			if !seen[f.Label] {
				seen[f.Label] = true
				cols = append(cols, f.Label)
			}
		}
	}
	return cols
}

var (
	markdownEscaper = strings.NewReplacer(
		`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "[", `\[`, "]", `\]`,
		"<", `\<`, ">", `\>`, "#", `\#`, "|", `\|`,
	)
	titleEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// escapeCell escapes inline markup and keeps the cell on one line.
func escapeCell(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\n", " ").Replace(s)
	return escapeMarkdown(s)
}

func escapeHTMLTitle(s string) string {
	return titleEscaper.Replace(s)
}
