package fixtures

import (
	larkreport "github.com/alnah/go-larkreport"
)

// Fixture names.
const (
	NameSales     = "sales"
	NameReports   = "reports"
	NameProducts  = "products"
	NameInventory = "inventory"
	NameAI        = "ai"
)

// Sales is today's headline trading figures.
type Sales struct {
	TodaySales   float64 `json:"today_sales" yaml:"today_sales"`
	OrdersToday  int     `json:"orders_today" yaml:"orders_today"`
	AvgTicket    float64 `json:"avg_ticket" yaml:"avg_ticket"`
	ProfitMargin float64 `json:"profit_margin" yaml:"profit_margin"` // Fraction, 0.34 = 34%
}

// Reports maps a section key to its rows.
type Reports map[string][]larkreport.Row

// Product is a menu item with its unit cost and selling price in AED.
type Product struct {
	Name  string  `json:"name" yaml:"name"`
	Cost  float64 `json:"cost" yaml:"cost"`
	Price float64 `json:"price" yaml:"price"`
}

// StockItem is one tracked ingredient or consumable.
type StockItem struct {
	Name  string `json:"name" yaml:"name"`
	Stock int    `json:"stock" yaml:"stock"`
	Min   int    `json:"min" yaml:"min"`
}

// WasteEntry is the weekly waste cost of one item.
type WasteEntry struct {
	Item string  `json:"item" yaml:"item"`
	Cost float64 `json:"cost" yaml:"cost"`
}

// Inventory holds stock levels, waste and free-text reorder suggestions
// such as "Order 12 of Milk 2L".
type Inventory struct {
	Items              []StockItem  `json:"items" yaml:"items"`
	WasteChart         []WasteEntry `json:"waste_chart" yaml:"waste_chart"`
	ReorderSuggestions []string     `json:"reorder_suggestions" yaml:"reorder_suggestions"`
}

// ProfitDriver is a product with its margin as a fraction.
type ProfitDriver struct {
	Item   string  `json:"item" yaml:"item"`
	Margin float64 `json:"margin" yaml:"margin"`
}

// FastMover is a product selling faster than average.
type FastMover struct {
	Item string `json:"item" yaml:"item"`
	Rate string `json:"rate,omitempty" yaml:"rate"`
}

// SlowMover is a product that has not sold recently.
type SlowMover struct {
	Item       string `json:"item" yaml:"item"`
	DaysNoSale int    `json:"days_no_sale" yaml:"days_no_sale"`
}

// Prediction is the demand forecast for the rest of the day.
type Prediction struct {
	NextBusyHour   string `json:"next_busy_hour" yaml:"next_busy_hour"`
	ExpectedOrders int    `json:"expected_orders" yaml:"expected_orders"`
}

// AI is the assistant output shown on the intelligence page.
type AI struct {
	Alerts        []string       `json:"alerts" yaml:"alerts"`
	Insights      []string       `json:"insights" yaml:"insights"`
	ProfitDrivers []ProfitDriver `json:"profit_drivers" yaml:"profit_drivers"`
	FastMovers    []FastMover    `json:"fast_movers" yaml:"fast_movers"`
	SlowMovers    []SlowMover    `json:"slow_movers" yaml:"slow_movers"`
	Prediction    Prediction     `json:"prediction" yaml:"prediction"`
}

// Store reads typed fixtures through a Loader.
type Store struct {
	loader Loader
}

// NewStore creates a Store reading from dir, falling back to the embedded
// demo data. An empty dir uses embedded data only.
func NewStore(dir string) (*Store, error) {
	r, err := NewResolver(dir)
	if err != nil {
		return nil, err
	}
	return &Store{loader: r}, nil
}

// Sales loads sales.json.
func (s *Store) Sales() (Sales, error) {
	return load[Sales](s.loader, NameSales)
}

// Reports loads reports.json.
func (s *Store) Reports() (Reports, error) {
	return load[Reports](s.loader, NameReports)
}

// Products loads products.json.
func (s *Store) Products() ([]Product, error) {
	return load[[]Product](s.loader, NameProducts)
}

// Inventory loads inventory.json.
func (s *Store) Inventory() (Inventory, error) {
	return load[Inventory](s.loader, NameInventory)
}

// AI loads ai.json.
func (s *Store) AI() (AI, error) {
	return load[AI](s.loader, NameAI)
}

func load[T any](l Loader, name string) (T, error) {
	src, err := l.Load(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](src)
}
