package suite

import "strings"

// Severity ranks an AI alert.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
	SeverityNote     Severity = "note"
)

// Keyword groups, checked in order; the first group with a match wins.
var severityKeywords = []struct {
	severity Severity
	words    []string
}{
	{SeverityCritical, []string{"low", "down", "below", "risk"}},
	{SeverityWarning, []string{"increase", "spike", "up"}},
	{SeverityInfo, []string{"good", "strong", "healthy"}},
}

// ClassifyAlert picks a severity from keywords in the alert text.
// Matching is case-insensitive and by substring.
func ClassifyAlert(text string) Severity {
	lower := strings.ToLower(text)
	for _, group := range severityKeywords {
		for _, w := range group.words {
			if strings.Contains(lower, w) {
				return group.severity
			}
		}
	}
	return SeverityNote
}

// Alert is an AI alert with its severity.
type Alert struct {
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// Alerts classifies each alert in order.
func Alerts(texts []string) []Alert {
	out := make([]Alert, len(texts))
	for i, t := range texts {
		out[i] = Alert{Text: t, Severity: ClassifyAlert(t)}
	}
	return out
}
