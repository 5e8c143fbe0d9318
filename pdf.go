package larkreport

import (
	"bytes"
	"fmt"
	"strings"
)

// DefaultTitle is the heading printed in the header bar of every export.
const DefaultTitle = "Lark Executive Report"

// Page geometry in PDF points (US Letter).
const (
	pageWidth    = 612
	pageHeight   = 792
	headerHeight = 60
	accentHeight = 3
)

// Text placement.
const (
	textLeft       = 50
	textTop        = 760
	titleFontSize  = 20
	bodyFontSize   = 12
	sectionLeading = 22
	rowLeading     = 18
)

const (
	pdfHeader  = "%PDF-1.4\n"
	pdfTrailer = "%%EOF"

	// objectCount is Catalog, Pages, Page, Font and ContentStream.
	objectCount = 5

	// rowIndent and fieldSeparator are what remains of the bullet and
	// dash separators once the line is reduced to Latin-1.
	rowIndent      = "  "
	fieldSeparator = "  "
)

// Document describes a single-page report export.
type Document struct {
	Title   string // Header text (empty = DefaultTitle)
	Section string // Section name printed below the title
	Date    string // Optional date line; omitted when empty
	Rows    []Row
}

// Generate builds a single-page PDF listing rows under the given section.
// The output is deterministic: identical input yields identical bytes.
func Generate(section string, rows []Row) []byte {
	doc := Document{Section: section, Rows: rows}
	return doc.Bytes()
}

// Bytes renders the document as a complete PDF file.
func (d *Document) Bytes() []byte {
	return serialize(d.Content())
}

// Content returns the Latin-1 encoded content stream: header bar, accent
// bar, title, section, optional date and one text line per row.
func (d *Document) Content() []byte {
	title := d.Title
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	barY := pageHeight - headerHeight
	line("q")
	line("0 0 0 rg")
	line("0 %d %d %d re f", barY, pageWidth, headerHeight)
	line("0.878 0.705 0.333 rg")
	line("0 %d %d %d re f", barY, pageWidth, accentHeight)
	line("Q")
	line("BT")
	line("1 1 1 rg")
	line("/F1 %d Tf", titleFontSize)
	line("%d %d Td", textLeft, textTop)
	line("(%s) Tj", EscapeText(title))
	line("/F1 %d Tf", bodyFontSize)
	line("0 -%d Td", sectionLeading)
	line("(%s) Tj", EscapeText("Section: "+d.Section))
	if d.Date != "" {
		line("0 -%d Td", rowLeading)
		line("(%s) Tj", EscapeText("Date: "+d.Date))
	}
	line("0 0 0 rg")
	for _, row := range d.Rows {
		line("0 -%d Td", rowLeading)
		line("(%s) Tj", EscapeText(rowText(row)))
	}
	line("ET")

	return encodeLatin1(b.String())
}

// rowText joins every field of the row as "label: value".
func rowText(row Row) string {
	parts := make([]string, len(row))
	for i, f := range row {
		parts[i] = f.Label + ": " + FormatValue(f.Value)
	}
	return rowIndent + strings.Join(parts, fieldSeparator)
}

// objectWriter appends numbered indirect objects and records the byte
// offset at which each one starts.
type objectWriter struct {
	buf     bytes.Buffer
	offsets []int
}

// object appends the next object; its number is its position, from 1.
func (w *objectWriter) object(body []byte) {
	w.offsets = append(w.offsets, w.buf.Len())
	fmt.Fprintf(&w.buf, "%d 0 obj\n", len(w.offsets))
	w.buf.Write(body)
	w.buf.WriteString("\nendobj\n")
}

// serialize wraps the content stream in the five fixed objects, the
// cross-reference table and the trailer.
func serialize(content []byte) []byte {
	var w objectWriter
	w.buf.Grow(len(content) + 768)
	w.buf.WriteString(pdfHeader)

	w.object([]byte("<< /Type /Catalog /Pages 2 0 R >>"))
	w.object([]byte("<< /Type /Pages /Count 1 /Kids [3 0 R] >>"))
	w.object([]byte(fmt.Sprintf(
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		pageWidth, pageHeight)))
	w.object([]byte("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"))

	// The length is taken from the encoded bytes; content always ends
	// with a newline, so nothing sits between it and "endstream".
	stream := make([]byte, 0, len(content)+48)
	stream = fmt.Appendf(stream, "<< /Length %d >>\nstream\n", len(content))
	stream = append(stream, content...)
	stream = append(stream, "endstream"...)
	w.object(stream)

	xrefStart := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n", objectCount+1)
	w.buf.WriteString("0000000000 65535 f \n")
	for _, off := range w.offsets {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&w.buf, "trailer\n<< /Size %d /Root 1 0 R >>\n", objectCount+1)
	fmt.Fprintf(&w.buf, "startxref\n%d\n", xrefStart)
	w.buf.WriteString(pdfTrailer)

	return w.buf.Bytes()
}
