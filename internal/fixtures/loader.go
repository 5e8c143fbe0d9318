package fixtures

import (
	"fmt"
	"strings"
)

// Format is the document syntax of a fixture file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Source is a fixture file as read from its loader, before decoding.
type Source struct {
	Name   string
	Format Format
	Data   []byte
}

// Loader defines the contract for reading fixture files.
type Loader interface {
	// Load reads the named fixture (without extension).
	// Returns ErrFixtureNotFound if no file exists for the name.
	// Returns ErrInvalidName if the name contains invalid characters.
	Load(name string) (*Source, error)
}

// extensions lists the file suffixes tried, in order.
var extensions = []struct {
	ext    string
	format Format
}{
	{".json", FormatJSON},
	{".yaml", FormatYAML},
	{".yml", FormatYAML},
}

// ValidateName checks that a fixture name is safe for use as a filename.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
