package domain

import (
	"net/url"
	"time"
)

// Bookmark represents one short-name-to-URI mapping in our system
// This is our "domain model" - the short name is the unique key,
// the long URI is the destination we redirect to
type Bookmark struct {
	ShortName string    // User-chosen lookup token (e.g., "golang")
	LongURI   string    // Normalized destination URI
	CreatedAt time.Time // When the mapping was registered
}

// NewBookmark is a constructor function that creates a new Bookmark
// In Go, we use constructor functions instead of class constructors
func NewBookmark(shortName, longURI string) *Bookmark {
	return &Bookmark{
		ShortName: shortName,
		LongURI:   longURI,
		CreatedAt: time.Now(),
	}
}

// Normalize guarantees the returned URI string carries an explicit scheme,
// defaulting to https when the raw input has none.
//
// It is a pure string transformation with no I/O, and it is idempotent:
// Normalize(Normalize(u)) == Normalize(u). Whether the result actually
// points somewhere reachable is the liveness probe's job, not ours.
func Normalize(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		// No scheme (or not even parseable) - prepend the default.
		// The probe will classify garbage input as dead anyway.
		return "https://" + raw
	}
	return raw
}
