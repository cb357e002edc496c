// Package store provides persistence for tael program sources.
package store

// Store is the interface for program persistence. Sources are the
// serialized program documents the ast package decodes.
type Store interface {
	// Get retrieves a program source by name. Returns "" if not found.
	Get(name string) (string, error)
	// Put stores a program source by name, overwriting if it exists.
	Put(name, source string) error
	// Delete removes a program by name.
	Delete(name string) error
	// Close releases resources.
	Close() error
}

// MetadataStore extends Store with metadata operations.
type MetadataStore interface {
	Store
	GetMetadata(key string) (string, error)
	SetMetadata(key, value string) error
}
