package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bookmark-server/internal/domain"
	"bookmark-server/internal/metrics"
	"bookmark-server/internal/service"
	"bookmark-server/pkg/validator"
)

// BookmarkService interface defines the service methods needed by the handler
// Using an interface instead of concrete type allows for easy mocking in tests
type BookmarkService interface {
	Register(ctx context.Context, shortName, rawLongURI string) service.RegistrationResult
	Resolve(shortName string) (string, bool)
	ListAll() []domain.Bookmark
}

// Handler holds dependencies for HTTP handlers
// Dependencies come in through the constructor instead of globals,
// which keeps the handlers testable
type Handler struct {
	bookmarks BookmarkService
	logger    *slog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(bookmarks BookmarkService, logger *slog.Logger) *Handler {
	return &Handler{
		bookmarks: bookmarks,
		logger:    logger,
	}
}

// Request/Response DTOs (Data Transfer Objects)
// These are separate from domain models so the API contract stays stable
// even if the domain types change

type RegisterRequest struct {
	ShortName string `json:"short_name"`
	LongURI   string `json:"long_uri"`
}

type BookmarkResponse struct {
	ShortName string    `json:"short_name"`
	LongURI   string    `json:"long_uri"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Root dispatches requests hitting "/" and everything below it:
// the form page, form submissions, and short name redirects
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/" && r.Method == http.MethodGet:
		h.Index(w, r)
	case r.URL.Path == "/" && r.Method == http.MethodPost:
		h.SubmitForm(w, r)
	case r.Method == http.MethodGet:
		h.Redirect(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// Index handles GET / - the registration form plus the listing of all
// known short name pairs
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	renderForm(w, h.bookmarks.ListAll())
}

// SubmitForm handles POST / with form-encoded "shortname" and "longuri" fields
//
// A missing field is a 400 before the service is ever invoked. A URI the probe
// rejects is a 404 naming the URI. Success redirects back to the form with
// 303 See Other so a browser refresh doesn't resubmit
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondPlainText(w, http.StatusBadRequest, "Could not parse form data.")
		return
	}

	shortName := r.PostFormValue("shortname")
	longURI := r.PostFormValue("longuri")

	if err := validator.ValidateRegistration(shortName, longURI); err != nil {
		respondPlainText(w, http.StatusBadRequest, fmt.Sprintf("Missing form field: %v.", err))
		return
	}

	result := h.bookmarks.Register(r.Context(), shortName, longURI)
	if !result.Accepted {
		h.logger.Warn("registration rejected", "short_name", shortName, "uri", result.URI)
		respondPlainText(w, http.StatusNotFound, fmt.Sprintf("Couldn't fetch URI %q. Sorry!", result.URI))
		return
	}

	h.logger.Info("bookmark registered", "short_name", shortName, "uri", result.URI)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Redirect handles GET /{shortName}
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	shortName := strings.TrimPrefix(r.URL.Path, "/")

	uri, ok := h.bookmarks.Resolve(shortName)
	if !ok {
		h.logger.Warn("short name not found", "short_name", shortName)
		respondPlainText(w, http.StatusNotFound, fmt.Sprintf("I don't know %q.", shortName))
		return
	}

	metrics.RecordRedirect()

	// 303 See Other, matching the registration redirect; the mapping may be
	// overwritten later so a permanent redirect would be wrong
	http.Redirect(w, r, uri, http.StatusSeeOther)
}

// APIBookmarks dispatches /api/v1/bookmarks by method
func (h *Handler) APIBookmarks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateBookmark(w, r)
	case http.MethodGet:
		h.ListBookmarks(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// CreateBookmark handles POST /api/v1/bookmarks
func (h *Handler) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	defer r.Body.Close()

	if err := validator.ValidateRegistration(req.ShortName, req.LongURI); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := h.bookmarks.Register(r.Context(), req.ShortName, req.LongURI)
	if !result.Accepted {
		h.logger.Warn("registration rejected", "short_name", req.ShortName, "uri", result.URI)
		respondError(w, http.StatusUnprocessableEntity, fmt.Sprintf("URI is not reachable: %s", result.URI))
		return
	}

	h.logger.Info("bookmark registered", "short_name", req.ShortName, "uri", result.URI)

	respondSuccess(w, http.StatusCreated, BookmarkResponse{
		ShortName: req.ShortName,
		LongURI:   result.URI,
	}, "Bookmark created successfully")
}

// ListBookmarks handles GET /api/v1/bookmarks
func (h *Handler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	bookmarks := h.bookmarks.ListAll()

	response := make([]BookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		response = append(response, BookmarkResponse{
			ShortName: b.ShortName,
			LongURI:   b.LongURI,
			CreatedAt: b.CreatedAt,
		})
	}

	respondSuccess(w, http.StatusOK, response, "")
}

// HealthCheck handles GET /health/live
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
