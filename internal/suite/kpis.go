package suite

import (
	"fmt"

	larkreport "github.com/alnah/go-larkreport"
	"github.com/alnah/go-larkreport/internal/fixtures"
)

// KPI is a labelled headline figure.
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// HomeKPIs returns the four home page metrics.
func HomeKPIs(s fixtures.Sales) []KPI {
	return []KPI{
		{Label: "Today Revenue (AED)", Value: larkreport.FormatAmount(s.TodaySales, 0)},
		{Label: "Orders Today", Value: larkreport.FormatAmount(float64(s.OrdersToday), 0)},
		{Label: "Avg Ticket (AED)", Value: larkreport.FormatAmount(s.AvgTicket, 2)},
		{Label: "Profit Margin (%)", Value: fmt.Sprintf("%.1f%%", s.ProfitMargin*100)},
	}
}
