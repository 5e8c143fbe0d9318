// Package fixtures loads the demo data behind the executive suite.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - demo_data compiled into the binary
//	    ├── FilesystemLoader  - a fixtures directory on disk
//	    └── Resolver          - custom directory first, embedded fallback
//
// A fixture is addressed by name without extension ("sales", "reports").
// FilesystemLoader tries name.json, name.yaml and name.yml in that order.
// Files may be UTF-8 (with or without BOM), Windows-1252 or Latin-1; the
// first encoding that yields a valid document wins.
//
// Store wraps a Loader with typed accessors for each fixture.
package fixtures
