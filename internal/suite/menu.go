package suite

import (
	"sort"
	"strings"

	"github.com/alnah/go-larkreport/internal/fixtures"
)

// Menu category names.
const (
	CategoryColdDrinks = "Cold Drinks"
	CategoryCoffee     = "Coffee"
	CategoryFeatured   = "Featured"
)

// Categorize assigns a QR menu category from the product name.
func Categorize(name string) string {
	switch {
	case strings.Contains(name, "Cold"):
		return CategoryColdDrinks
	case strings.Contains(name, "Latte"):
		return CategoryCoffee
	default:
		return CategoryFeatured
	}
}

// MenuCategory is a tab of the QR menu.
type MenuCategory struct {
	Name  string             `json:"name"`
	Items []fixtures.Product `json:"items"`
}

// Menu groups products by category, categories sorted by name and items
// in fixture order.
func Menu(products []fixtures.Product) []MenuCategory {
	byName := make(map[string]*MenuCategory)
	for _, p := range products {
		cat := Categorize(p.Name)
		mc, ok := byName[cat]
		if !ok {
			mc = &MenuCategory{Name: cat}
			byName[cat] = mc
		}
		mc.Items = append(mc.Items, p)
	}

	out := make([]MenuCategory, 0, len(byName))
	for _, mc := range byName {
		out = append(out, *mc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
