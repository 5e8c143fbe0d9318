package fixtures

import "errors"

// Resolver combines a custom directory with the embedded demo data.
// A fixture missing from the directory falls back to the embedded copy;
// decode and I/O errors do not.
type Resolver struct {
	custom   *FilesystemLoader // nil if no directory configured
	embedded Loader
}

// NewResolver creates a Resolver. An empty dir uses embedded data only.
// Returns an error if dir is set but invalid.
func NewResolver(dir string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}
	if dir != "" {
		fsLoader, err := NewFilesystemLoader(dir)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}
	return r, nil
}

// Load reads the fixture, trying the custom directory first.
func (r *Resolver) Load(name string) (*Source, error) {
	if r.custom == nil {
		return r.embedded.Load(name)
	}
	src, err := r.custom.Load(name)
	if err == nil {
		return src, nil
	}
	if !errors.Is(err, ErrFixtureNotFound) {
		return nil, err
	}
	return r.embedded.Load(name)
}

// Dir returns the custom directory, or "" when only embedded data is used.
func (r *Resolver) Dir() string {
	if r.custom == nil {
		return ""
	}
	return r.custom.Dir()
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
