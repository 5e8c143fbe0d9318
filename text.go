package larkreport

import (
	"math"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyPrefix precedes every rendered amount.
const CurrencyPrefix = "AED"

// pdfEscaper escapes the characters that delimit PDF literal strings.
// strings.Replacer works in a single pass, so an inserted backslash is
// never escaped a second time.
var pdfEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

// EscapeText prefixes each backslash and parenthesis with a backslash so
// the text can be placed inside a "( ) Tj" operand.
func EscapeText(s string) string {
	return pdfEscaper.Replace(s)
}

// FormatAmount formats v with thousands grouping and the given number of
// decimals, e.g. FormatAmount(3450, 2) == "3,450.00". NaN and infinities
// print as "nan", "inf" and "-inf".
func FormatAmount(v float64, decimals int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	p := message.NewPrinter(language.English)
	switch decimals {
	case 0:
		return p.Sprintf("%.0f", v)
	case 1:
		return p.Sprintf("%.1f", v)
	default:
		return p.Sprintf("%.2f", v)
	}
}

// FormatAED renders v as a currency amount: "AED 3,450.00".
func FormatAED(v float64, decimals int) string {
	return CurrencyPrefix + " " + FormatAmount(v, decimals)
}

// encodeLatin1 converts s to ISO 8859-1. Runes without a Latin-1 byte
// are dropped rather than replaced.
func encodeLatin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if b, ok := charmap.ISO8859_1.EncodeRune(r); ok {
			out = append(out, b)
		}
	}
	return out
}
