package service

import (
	"context"

	"bookmark-server/internal/domain"
	"bookmark-server/internal/metrics"
	"bookmark-server/internal/probe"
	"bookmark-server/internal/repository"
)

// RegistrationResult is the outcome of one registration attempt
// Rejection is a normal outcome variant, not an error: the only failure a
// caller can see is "the URI did not answer with a 200", and that is a
// business answer, not a fault
type RegistrationResult struct {
	Accepted bool   // Whether the mapping was committed
	URI      string // The normalized URI the decision was made about
}

// BookmarkService handles business logic for bookmark operations
// This is the SERVICE LAYER - it sits between HTTP handlers and the repository
// and owns the verify-then-commit flow for registrations
type BookmarkService struct {
	repo   repository.BookmarkRepository
	prober probe.Prober
}

// NewBookmarkService creates a new bookmark service
func NewBookmarkService(repo repository.BookmarkRepository, prober probe.Prober) *BookmarkService {
	return &BookmarkService{
		repo:   repo,
		prober: prober,
	}
}

// Register normalizes rawLongURI, probes it, and commits the mapping if the
// probe reports live.
//
// The flow is strictly normalize -> probe -> commit: the probe (the only
// blocking I/O in the system) finishes before the store's write lock is ever
// taken, so a slow target stalls only its own request. Exactly one store
// mutation happens on the live path and zero on the dead path; a prior mapping
// for shortName survives a rejected attempt untouched.
//
// Repeating an identical registration re-probes and re-commits - each attempt
// is independent, there is no retry and no intermediate state.
func (s *BookmarkService) Register(ctx context.Context, shortName, rawLongURI string) RegistrationResult {
	uri := domain.Normalize(rawLongURI)

	if !s.prober.Probe(ctx, uri) {
		metrics.RecordRejected()
		return RegistrationResult{Accepted: false, URI: uri}
	}

	s.repo.Put(shortName, uri)
	metrics.RecordAccepted()

	return RegistrationResult{Accepted: true, URI: uri}
}

// Resolve returns the long URI registered for shortName
// No liveness re-check happens here: a previously accepted mapping is trusted
// until overwritten
func (s *BookmarkService) Resolve(shortName string) (string, bool) {
	uri, ok := s.repo.Get(shortName)
	if !ok {
		metrics.RecordLookupMiss()
	}
	return uri, ok
}

// ListAll returns all known mappings sorted by short name
func (s *BookmarkService) ListAll() []domain.Bookmark {
	return s.repo.List()
}
