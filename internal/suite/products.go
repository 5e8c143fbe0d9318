package suite

import (
	"fmt"

	"github.com/alnah/go-larkreport/internal/fixtures"
)

// Band groups products by margin.
type Band string

const (
	BandHigh Band = "high" // above 40%
	BandMid  Band = "mid"  // 20% to 40% inclusive
	BandLow  Band = "low"
)

// ProductMargin is a product with its computed margin.
type ProductMargin struct {
	Name      string  `json:"name"`
	Cost      float64 `json:"cost"`
	Price     float64 `json:"price"`
	MarginPct float64 `json:"marginPct"`
	Band      Band    `json:"band"`
}

// MarginPercent returns (price-cost)/price as a percentage.
// A non-positive price has no meaningful margin and yields 0.
func MarginPercent(cost, price float64) float64 {
	if price <= 0 {
		return 0
	}
	return (price - cost) / price * 100
}

// BandFor classifies a margin percentage.
func BandFor(pct float64) Band {
	switch {
	case pct > 40:
		return BandHigh
	case pct >= 20:
		return BandMid
	default:
		return BandLow
	}
}

// ProductMargins computes margins in fixture order.
func ProductMargins(products []fixtures.Product) []ProductMargin {
	out := make([]ProductMargin, len(products))
	for i, p := range products {
		pct := MarginPercent(p.Cost, p.Price)
		out[i] = ProductMargin{Name: p.Name, Cost: p.Cost, Price: p.Price, MarginPct: pct, Band: BandFor(pct)}
	}
	return out
}

// FindProduct returns the product with the given name.
func FindProduct(products []fixtures.Product, name string) (fixtures.Product, error) {
	for _, p := range products {
		if p.Name == name {
			return p, nil
		}
	}
	return fixtures.Product{}, fmt.Errorf("%w: %q", ErrUnknownProduct, name)
}
