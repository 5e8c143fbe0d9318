package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/alnah/go-larkreport/internal/yamlutil"
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

// textDecoding converts raw file bytes to UTF-8 text.
type textDecoding struct {
	name   string
	decode func([]byte) ([]byte, error)
}

// decodings are tried in order until one yields a valid document.
// Latin-1 maps every byte, so it only fails when the syntax is wrong.
var decodings = []textDecoding{
	{name: "utf-8", decode: func(b []byte) ([]byte, error) {
		if !utf8.Valid(b) {
			return nil, errInvalidUTF8
		}
		return b, nil
	}},
	{name: "utf-8 with BOM", decode: func(b []byte) ([]byte, error) {
		if !utf8.Valid(b) {
			return nil, errInvalidUTF8
		}
		return unicode.UTF8BOM.NewDecoder().Bytes(b)
	}},
	{name: "windows-1252", decode: func(b []byte) ([]byte, error) {
		return charmap.Windows1252.NewDecoder().Bytes(b)
	}},
	{name: "latin-1", decode: func(b []byte) ([]byte, error) {
		return charmap.ISO8859_1.NewDecoder().Bytes(b)
	}},
}

// Decode parses src into a new T, trying each supported text encoding.
// If every attempt fails, the last error is returned wrapped in
// ErrFixtureDecode.
func Decode[T any](src *Source) (T, error) {
	var lastErr error
	for _, d := range decodings {
		text, err := d.decode(src.Data)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", d.name, err)
			continue
		}

		var v T
		if err := unmarshal(src.Format, text, &v); err != nil {
			lastErr = fmt.Errorf("%s: %w", d.name, err)
			continue
		}
		return v, nil
	}

	var zero T
	return zero, fmt.Errorf("%w: %s: %v", ErrFixtureDecode, src.Name, lastErr)
}

func unmarshal(format Format, data []byte, v any) error {
	if format == FormatYAML {
		return yamlutil.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}
