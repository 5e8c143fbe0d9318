package suite

import (
	"fmt"
	"strings"
	"time"

	larkreport "github.com/alnah/go-larkreport"
	"github.com/alnah/go-larkreport/internal/dateutil"
)

// ServiceChargeAED is the flat service charge added when enabled.
const ServiceChargeAED = 5.0

// Tax bounds in percent.
const (
	MinTaxPercent = 0
	MaxTaxPercent = 20
)

// ReceiptSettings brands and prices a receipt.
type ReceiptSettings struct {
	Cafe          string
	TaxPercent    float64
	ServiceCharge bool
}

// Validate checks the tax range.
func (s ReceiptSettings) Validate() error {
	if s.TaxPercent < MinTaxPercent || s.TaxPercent > MaxTaxPercent {
		return fmt.Errorf("%w: %.2f (must be %d-%d)", ErrInvalidTax, s.TaxPercent, MinTaxPercent, MaxTaxPercent)
	}
	return nil
}

// Bill is a priced receipt total.
type Bill struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Service  float64 `json:"service"`
	Total    float64 `json:"total"`
}

// Bill applies tax and service charge to subtotal.
func (s ReceiptSettings) Bill(subtotal float64) Bill {
	b := Bill{Subtotal: subtotal, Tax: subtotal * s.TaxPercent / 100}
	if s.ServiceCharge {
		b.Service = ServiceChargeAED
	}
	b.Total = b.Subtotal + b.Tax + b.Service
	return b
}

// FormatReceipt renders a branded plain-text receipt dated t.
func FormatReceipt(s ReceiptSettings, r *Receipt, t time.Time) string {
	var b strings.Builder
	if s.Cafe != "" {
		b.WriteString(s.Cafe + "\n")
	}
	fmt.Fprintf(&b, "Receipt %s\n", r.ID)
	fmt.Fprintf(&b, "%s\n\n", dateutil.FormatReport(t))

	for _, l := range r.Items {
		fmt.Fprintf(&b, "%d × %s — %s\n", l.Qty, l.Item, larkreport.FormatAED(l.Amount(), 2))
	}

	bill := s.Bill(r.Total)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", larkreport.FormatAED(bill.Subtotal, 2))
	fmt.Fprintf(&b, "Tax (%.2f%%): %s\n", s.TaxPercent, larkreport.FormatAED(bill.Tax, 2))
	if s.ServiceCharge {
		fmt.Fprintf(&b, "Service Charge: %s\n", larkreport.FormatAED(bill.Service, 2))
	}
	fmt.Fprintf(&b, "Total: %s\n", larkreport.FormatAED(bill.Total, 2))
	return b.String()
}
