package suite

import (
	"regexp"
	"strings"
	"time"

	"github.com/alnah/go-larkreport/internal/dateutil"
	"github.com/alnah/go-larkreport/internal/fixtures"
)

// Status is the stock level of an item relative to its minimum.
type Status string

const (
	StatusCritical Status = "Critical"
	StatusLow      Status = "Low"
	StatusOK       Status = "OK"
)

// Remaining percentage bounds for the stock gauge.
const (
	minRemainingPct = 0
	maxRemainingPct = 150
)

// StockStatus classifies stock against min. A zero minimum counts as
// exactly at minimum.
func StockStatus(stock, minimum int) Status {
	ratio := 1.0
	if minimum != 0 {
		ratio = float64(stock) / float64(minimum)
	}
	switch {
	case ratio < 1:
		return StatusCritical
	case ratio == 1:
		return StatusLow
	default:
		return StatusOK
	}
}

// RemainingPercent returns stock as a percentage of min, clamped to
// [0, 150]. A zero minimum reads 100.
func RemainingPercent(stock, minimum int) int {
	if minimum == 0 {
		return 100
	}
	pct := int(float64(stock) / float64(minimum) * 100)
	return max(minRemainingPct, min(pct, maxRemainingPct))
}

// defaultStockNote is shown for items under threshold without a specific alert.
const defaultStockNote = "Demand trending up — reorder suggested."

// StockView is an inventory card.
type StockView struct {
	Name    string `json:"name"`
	Stock   int    `json:"stock"`
	Min     int    `json:"min"`
	Status  Status `json:"status"`
	Percent int    `json:"percent"`
	Note    string `json:"note,omitempty"`
}

// InventoryView builds one card per item. Items below OK carry a note;
// milk items use the second AI alert when there is one.
func InventoryView(inv fixtures.Inventory, ai fixtures.AI) []StockView {
	out := make([]StockView, len(inv.Items))
	for i, item := range inv.Items {
		v := StockView{
			Name:    item.Name,
			Stock:   item.Stock,
			Min:     item.Min,
			Status:  StockStatus(item.Stock, item.Min),
			Percent: RemainingPercent(item.Stock, item.Min),
		}
		if v.Status != StatusOK {
			v.Note = defaultStockNote
			if strings.Contains(strings.ToLower(item.Name), "milk") && len(ai.Alerts) > 1 {
				v.Note = ai.Alerts[1]
			}
		}
		out[i] = v
	}
	return out
}

// Risks splits the items needing attention by status.
func Risks(views []StockView) (critical, low []StockView) {
	for _, v := range views {
		switch v.Status {
		case StatusCritical:
			critical = append(critical, v)
		case StatusLow:
			low = append(low, v)
		}
	}
	return critical, low
}

// Reorder is a structured supplier order line.
type Reorder struct {
	Item   string `json:"item"`
	Amount string `json:"amount"`
	Reason string `json:"reason"`
}

const (
	reorderReason  = "Projected to run out by 6 PM due to evening peak."
	unknownAmount  = "Check"
	reorderHeading = "Supplier Reorder List"
)

var (
	reorderAmount = regexp.MustCompile(`Order\s+(\d+)`)
	reorderPrefix = regexp.MustCompile(`(?i)Order\s+\d+\s+of\s+`)
)

// ParseReorder turns "Order 12 of Milk 2L" into item "Milk 2L" and amount
// "12". Text without an amount keeps its item and reads "Check".
func ParseReorder(text string) Reorder {
	amount := unknownAmount
	if m := reorderAmount.FindStringSubmatch(text); m != nil {
		amount = m[1]
	}
	return Reorder{
		Item:   strings.TrimSpace(reorderPrefix.ReplaceAllString(text, "")),
		Amount: amount,
		Reason: reorderReason,
	}
}

// ReorderList parses every suggestion in order.
func ReorderList(suggestions []string) []Reorder {
	out := make([]Reorder, len(suggestions))
	for i, s := range suggestions {
		out[i] = ParseReorder(s)
	}
	return out
}

// ReorderText renders the supplier list as plain text dated t.
func ReorderText(list []Reorder, t time.Time) string {
	lines := []string{
		reorderHeading,
		"Date: " + dateutil.FormatReport(t),
		"",
	}
	for _, r := range list {
		lines = append(lines, r.Item+" — Order "+r.Amount+" — "+r.Reason)
	}
	return strings.Join(lines, "\n")
}
