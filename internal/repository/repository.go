package repository

import (
	"bookmark-server/internal/domain"
)

// BookmarkRepository defines the interface for mapping storage
// This is the "Repository Pattern" - it abstracts how mappings are held
//
// WHY USE AN INTERFACE?
// 1. Testability: We can create mock implementations for testing
// 2. Flexibility: The service layer never learns how entries are stored
//
// In Go, interfaces are satisfied implicitly - any type that implements these methods
// automatically satisfies the interface (no "implements" keyword needed)
type BookmarkRepository interface {
	// Put stores a mapping from short name to long URI
	// Overwrites any existing entry for that short name (last write wins)
	// Empty strings are permitted; Put cannot fail
	Put(shortName, longURI string)

	// Get returns the current long URI for a short name
	// The boolean reports whether the short name was ever registered
	Get(shortName string) (string, bool)

	// List returns a snapshot of all mappings, sorted by short name ascending
	// The snapshot is a consistent moment-in-time view; it never contains
	// two entries with the same short name
	List() []domain.Bookmark
}
