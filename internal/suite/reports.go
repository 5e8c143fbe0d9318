package suite

import (
	"fmt"

	larkreport "github.com/alnah/go-larkreport"
	"github.com/alnah/go-larkreport/internal/fixtures"
)

// Section is a selectable executive report.
type Section struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// DefaultSection is selected when none is chosen.
const DefaultSection = "profit_summary"

// Sections lists the reports in tab order.
var Sections = []Section{
	{Key: "profit_summary", Label: "Profit Summary"},
	{Key: "waste_report", Label: "Waste Report"},
	{Key: "category_performance", Label: "Category Performance"},
}

// SectionKeys returns the keys of Sections in order.
func SectionKeys() []string {
	keys := make([]string, len(Sections))
	for i, s := range Sections {
		keys[i] = s.Key
	}
	return keys
}

// LookupSection returns the section for key, or DefaultSection when key
// is empty.
func LookupSection(key string) (Section, error) {
	if key == "" {
		key = DefaultSection
	}
	for _, s := range Sections {
		if s.Key == key {
			return s, nil
		}
	}
	return Section{}, fmt.Errorf("%w: %q", ErrUnknownSection, key)
}

// SectionRows returns the fixture rows of a known section. A known section
// absent from the fixture has no rows.
func SectionRows(reports fixtures.Reports, key string) (Section, []larkreport.Row, error) {
	s, err := LookupSection(key)
	if err != nil {
		return Section{}, nil, err
	}
	return s, reports[s.Key], nil
}

// PendingInsight is shown for metrics without a canned insight.
const PendingInsight = "AI reviewing…"

var insights = map[string]string{
	"Revenue":      "↑ Strong — 12% above weekly average",
	"Gross Profit": "Stable margin",
	"Net Profit":   "Healthy net margin at 34%",
}

// Insight returns the AI commentary for a metric name.
func Insight(metric string) string {
	if s, ok := insights[metric]; ok {
		return s
	}
	return PendingInsight
}

// ReportLine is one row of the detailed report table.
type ReportLine struct {
	Metric  string `json:"metric"`
	Value   string `json:"value"`
	Insight string `json:"insight"`
}

// ReportTable projects rows onto Metric, Value and AI insight columns:
// the first field names the metric and the second holds its value.
func ReportTable(rows []larkreport.Row) []ReportLine {
	lines := make([]ReportLine, 0, len(rows))
	for _, row := range rows {
		var line ReportLine
		if len(row) > 0 {
			line.Metric = larkreport.FormatValue(row[0].Value)
		}
		if len(row) > 1 {
			line.Value = TableValue(row[1].Value)
		}
		line.Insight = Insight(line.Metric)
		lines = append(lines, line)
	}
	return lines
}

// TableValue formats numbers as whole AED amounts ("AED 3,450") and
// leaves everything else as the export would print it.
func TableValue(v any) string {
	switch n := v.(type) {
	case float64:
		return larkreport.FormatAED(n, 0)
	case int:
		return larkreport.FormatAED(float64(n), 0)
	}
	return larkreport.FormatValue(v)
}

// Tile is a headline card of the executive snapshot.
type Tile struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Snapshot is the AI summary shown above the report table.
type Snapshot struct {
	Summary string `json:"summary"`
	Tiles   []Tile `json:"tiles"`
}

// ExecutiveSnapshot summarises the day's trading.
func ExecutiveSnapshot(sales fixtures.Sales) Snapshot {
	return Snapshot{
		Summary: fmt.Sprintf("Your profitability today is healthy. Revenue reached %s "+
			"with solid cost control and strong product mix performance.",
			larkreport.FormatAED(sales.TodaySales, 0)),
		Tiles: []Tile{
			{Title: "Trend", Text: "↗ Upward momentum"},
			{Title: "Efficiency", Text: "High margin day"},
			{Title: "Risk", Text: "Milk stock low — monitor closely"},
		},
	}
}
