package larkreport

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alnah/go-larkreport/internal/yamlutil"
)

// Field is one labeled value of a report row.
// Value holds a float64 for numbers, a string for text, or whatever the
// fixture decoder produced for anything else.
type Field struct {
	Label string
	Value any
}

// Row is an ordered mapping from metric label to value.
// Field order is the order the fixture declared them in.
type Row []Field

// Get returns the value stored under label.
func (r Row) Get(label string) (any, bool) {
	for _, f := range r {
		if f.Label == label {
			return f.Value, true
		}
	}
	return nil, false
}

// Labels returns the field labels in order.
func (r Row) Labels() []string {
	labels := make([]string, len(r))
	for i, f := range r {
		labels[i] = f.Label
	}
	return labels
}

// UnmarshalJSON decodes a JSON object while keeping key order.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: got %v", ErrInvalidRow, tok)
	}

	row := Row{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: non-string key %v", ErrInvalidRow, tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return err
		}
		row = append(row, Field{Label: label, Value: normalizeValue(v)})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = row
	return nil
}

// MarshalJSON encodes the row as a JSON object in field order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a YAML mapping while keeping key order.
func (r *Row) UnmarshalYAML(unmarshal func(any) error) error {
	var m yamlutil.OrderedMap
	if err := unmarshal(&m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRow, err)
	}
	row := make(Row, 0, len(m))
	for _, item := range m {
		row = append(row, Field{Label: fmt.Sprint(item.Key), Value: normalizeValue(item.Value)})
	}
	*r = row
	return nil
}

// normalizeValue collapses decoder-specific number types to float64.
func normalizeValue(v any) any {
	if f, ok := numericValue(v); ok {
		return f
	}
	return v
}

// numericValue reports whether v is a number and returns it as float64.
// Booleans are not numbers.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// FormatValue renders a field value the way it appears in an export:
// numbers as two-decimal AED amounts, text verbatim, null as "null".
func FormatValue(v any) string {
	if f, ok := numericValue(v); ok {
		return FormatAED(f, 2)
	}
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
