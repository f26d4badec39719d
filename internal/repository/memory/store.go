package memory

import (
	"sort"
	"sync"
	"time"

	"bookmark-server/internal/domain"
	"bookmark-server/internal/metrics"
	"bookmark-server/internal/repository"
)

// entry is what we hold per short name
type entry struct {
	longURI   string
	createdAt time.Time
}

// bookmarkRepository is the in-memory implementation of repository.BookmarkRepository
// The lowercase name means it's private to this package
// We return it as the interface type (repository.BookmarkRepository) for abstraction
//
// CONCURRENCY:
// A single reader/writer lock guards the whole map. Put takes exclusive access,
// Get and List take shared access. Entry-level locking isn't worth it for the
// expected access pattern (reads dominate, the map stays small).
type bookmarkRepository struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewBookmarkRepository creates a new in-memory bookmark repository
// The map lives for the process's lifetime and is never persisted
func NewBookmarkRepository() repository.BookmarkRepository {
	return &bookmarkRepository{
		entries: make(map[string]entry),
	}
}

// Put stores or overwrites the mapping for shortName
// A put is atomic with respect to concurrent reads: no reader ever
// observes a partially written entry
func (r *bookmarkRepository) Put(shortName, longURI string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[shortName] = entry{
		longURI:   longURI,
		createdAt: time.Now(),
	}

	metrics.BookmarkCount.Set(float64(len(r.entries)))
}

// Get returns the long URI registered for shortName
func (r *bookmarkRepository) Get(shortName string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[shortName]
	return e.longURI, ok
}

// List returns a moment-in-time snapshot of all mappings, sorted by short name
// The copy is taken under the read lock; sorting happens on the copy so the
// lock is held only briefly
func (r *bookmarkRepository) List() []domain.Bookmark {
	r.mu.RLock()
	bookmarks := make([]domain.Bookmark, 0, len(r.entries))
	for name, e := range r.entries {
		bookmarks = append(bookmarks, domain.Bookmark{
			ShortName: name,
			LongURI:   e.longURI,
			CreatedAt: e.createdAt,
		})
	}
	r.mu.RUnlock()

	sort.Slice(bookmarks, func(i, j int) bool {
		return bookmarks[i].ShortName < bookmarks[j].ShortName
	})

	return bookmarks
}
