// Package sheet keeps the inventory spreadsheet that staff add products to.
// The workbook holds one table whose first row is Header.
package sheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sentinel errors for spreadsheet operations.
var (
	ErrEmptyName        = errors.New("product name is required")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrMissingColumn    = errors.New("missing column")
)

// Categories lists the menu sections a product may belong to.
var Categories = []string{
	"Coffee", "Desserts", "Pasta", "French Toast", "Fresh Juice & Soft Drink",
	"Mojitos & Mocktails", "Appetizers", "Sliders And Burgers", "Main Course & Rice pots",
	"Soup", "Salad", "Other",
}

// Column names, in sheet order.
const (
	ColName     = "Product Name"
	ColCategory = "Category"
	ColStock    = "Stock Quantity"
	ColMin      = "Minimum Stock"
	ColCost     = "Unit Cost"
	ColSupplier = "Supplier"
	ColImage    = "Image Name"
)

// Header is the first row of a new workbook.
var Header = []string{ColName, ColCategory, ColStock, ColMin, ColCost, ColSupplier, ColImage}

// Product is one inventory row.
type Product struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Stock     int     `json:"stock"`
	Min       int     `json:"min"`
	UnitCost  float64 `json:"unitCost"`
	Supplier  string  `json:"supplier"`
	ImageName string  `json:"imageName,omitempty"`
}

// Validate checks the name, category and quantities.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if !slices.Contains(Categories, p.Category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, p.Category)
	}
	if p.Stock < 0 || p.Min < 0 || p.UnitCost < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

func (p Product) cells() []any {
	return []any{p.Name, p.Category, p.Stock, p.Min, p.UnitCost, p.Supplier, p.ImageName}
}

// Upsert writes p to the workbook at path, creating the file when missing.
// Rows whose product name equals p.Name are replaced; otherwise p is
// appended. Reports whether a new row was added.
func Upsert(path string, p Product) (added bool, err error) {
	if err := p.Validate(); err != nil {
		return false, err
	}

	f, sheet, err := open(path)
	if err != nil {
		return false, err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		if err := setRow(f, sheet, 1, toAny(Header)); err != nil {
			return false, err
		}
		rows = [][]string{Header}
	}

	cols, err := columnIndex(rows[0])
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}

	replaced := false
	for i, row := range rows[1:] {
		if cell(row, cols[ColName]) == p.Name {
			if err := setRow(f, sheet, i+2, p.cells()); err != nil {
				return false, err
			}
			replaced = true
		}
	}
	if !replaced {
		if err := setRow(f, sheet, len(rows)+1, p.cells()); err != nil {
			return false, err
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return false, fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return false, fmt.Errorf("saving %s: %w", path, err)
	}
	return !replaced, nil
}

// Read returns every product row of the workbook at path.
func Read(path string) ([]Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	cols, err := columnIndex(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	products := make([]Product, 0, len(rows)-1)
	for n, row := range rows[1:] {
		p := Product{
			Name:      cell(row, cols[ColName]),
			Category:  cell(row, cols[ColCategory]),
			Supplier:  cell(row, cols[ColSupplier]),
			ImageName: cell(row, cols[ColImage]),
		}
		if p.Stock, err = atoi(cell(row, cols[ColStock])); err != nil {
			return nil, fmt.Errorf("%s row %d: %s: %w", path, n+2, ColStock, err)
		}
		if p.Min, err = atoi(cell(row, cols[ColMin])); err != nil {
			return nil, fmt.Errorf("%s row %d: %s: %w", path, n+2, ColMin, err)
		}
		if p.UnitCost, err = atof(cell(row, cols[ColCost])); err != nil {
			return nil, fmt.Errorf("%s row %d: %s: %w", path, n+2, ColCost, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// open loads an existing workbook or starts a new one.
func open(path string) (*excelize.File, string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		f := excelize.NewFile()
		return f, f.GetSheetName(0), nil
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening %s: %w", path, err)
	}
	return f, f.GetSheetName(0), nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	ref, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, ref, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}

// columnIndex maps header names to positions. Product Name is required;
// other columns may be absent and read as empty.
func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(Header))
	for _, name := range Header {
		cols[name] = -1
	}
	for i, h := range header {
		if _, ok := cols[h]; ok {
			cols[h] = i
		}
	}
	if cols[ColName] < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColName)
	}
	return cols, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func atoi(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func atof(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
