package suite

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Quantity bounds for a single cart line.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// receiptIDLength is the number of UUID characters kept for a receipt ID.
const receiptIDLength = 8

// Line is a cart entry.
type Line struct {
	Item  string  `json:"item"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// Amount returns qty × price.
func (l Line) Amount() float64 {
	return float64(l.Qty) * l.Price
}

// Receipt records a charged cart.
type Receipt struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
	Items []Line  `json:"items"`
}

// Cart is a POS basket. It is not safe for concurrent use; callers
// serialise access per session.
type Cart struct {
	lines []Line
}

// Add appends a line. Quantity must be between MinQuantity and MaxQuantity.
func (c *Cart) Add(item string, qty int, price float64) error {
	if qty < MinQuantity || qty > MaxQuantity {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidQuantity, qty, MinQuantity, MaxQuantity)
	}
	c.lines = append(c.lines, Line{Item: item, Qty: qty, Price: price})
	return nil
}

// Lines returns a copy of the cart lines.
func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Total returns the sum of line amounts.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Amount()
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Charge turns the cart into a receipt and empties it.
func (c *Cart) Charge() (*Receipt, error) {
	if len(c.lines) == 0 {
		return nil, ErrEmptyCart
	}
	r := &Receipt{
		ID:    NewReceiptID(),
		Total: c.Total(),
		Items: c.Lines(),
	}
	c.Clear()
	return r, nil
}

// NewReceiptID returns the first eight characters of a random UUID in
// upper case, e.g. "3F2A9C1B".
func NewReceiptID() string {
	return strings.ToUpper(uuid.NewString()[:receiptIDLength])
}
