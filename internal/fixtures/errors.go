package fixtures

import "errors"

// Sentinel errors for fixture operations.
var (
	// ErrFixtureNotFound indicates no file exists for the fixture name.
	ErrFixtureNotFound = errors.New("fixture not found")

	// ErrFixtureDecode indicates the file could not be decoded in any
	// supported encoding.
	ErrFixtureDecode = errors.New("failed to decode fixture")

	// ErrInvalidName indicates the fixture name contains path separators
	// or dots.
	ErrInvalidName = errors.New("invalid fixture name")

	// ErrInvalidDir indicates the configured fixtures directory is not a
	// readable directory.
	ErrInvalidDir = errors.New("invalid fixtures directory")

	// ErrFixtureRead indicates an I/O error while reading a fixture.
	ErrFixtureRead = errors.New("failed to read fixture")

	// ErrPathTraversal indicates an attempt to read outside the directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
