package fixtures

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed demo_data/*
var demoData embed.FS

// EmbeddedLoader loads the demo data compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Load reads demo_data/{name}.json.
func (e *EmbeddedLoader) Load(name string) (*Source, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	for _, x := range extensions {
		data, err := demoData.ReadFile("demo_data/" + name + x.ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFixtureRead, err)
		}
		return &Source{Name: name, Format: x.format, Data: data}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrFixtureNotFound, name)
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
