package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads fixtures from a directory on disk.
type FilesystemLoader struct {
	dir string
}

// NewFilesystemLoader creates a FilesystemLoader for dir.
// Returns ErrInvalidDir if the path is not a readable directory.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidDir)
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDir, err)
	}
	// Resolve symlinks so containment checks compare real paths.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidDir, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidDir, absPath)
	}
	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidDir, err)
	}

	return &FilesystemLoader{dir: absPath}, nil
}

// Dir returns the resolved fixtures directory.
func (f *FilesystemLoader) Dir() string {
	return f.dir
}

// Load reads {dir}/{name}.json, .yaml or .yml, first match wins.
func (f *FilesystemLoader) Load(name string) (*Source, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	for _, x := range extensions {
		path := filepath.Join(f.dir, name+x.ext)
		if err := f.verifyPathContainment(path); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path) // #nosec G304 -- path validated above
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFixtureRead, err)
		}
		return &Source{Name: name, Format: x.format, Data: data}, nil
	}
	return nil, fmt.Errorf("%w: %q in %s", ErrFixtureNotFound, name, f.dir)
}

// verifyPathContainment ensures the resolved path stays inside dir,
// following symlinks.
func (f *FilesystemLoader) verifyPathContainment(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}
	// A missing file fails to open later; the prefix check still applies.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}
	if !strings.HasPrefix(absPath, f.dir+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes fixtures directory", ErrPathTraversal)
	}
	return nil
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
