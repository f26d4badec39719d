package probe

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"bookmark-server/internal/metrics"
)

// Prober decides whether a URI is live
// Using an interface allows the registration service to swap in a mock for testing
type Prober interface {
	// Probe issues a GET request to uri and reports whether it is live.
	// Live means exactly one thing: a response came back with HTTP 200.
	// Any other status, a timeout, a DNS failure, a refused connection or a
	// malformed target all classify as dead. Probe never returns an error -
	// the binary classification is the whole contract.
	Probe(ctx context.Context, uri string) bool
}

// HTTPProber probes URIs with a plain HTTP client
// The client's timeout bounds the whole round trip so a slow target can only
// stall the one request that is registering it
type HTTPProber struct {
	client *http.Client
	logger *slog.Logger
}

// NewHTTPProber creates a prober whose requests are bounded by timeout
func NewHTTPProber(timeout time.Duration, logger *slog.Logger) *HTTPProber {
	return &HTTPProber{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Probe reports whether uri currently answers a GET with HTTP 200
// Redirects are followed (the client's default), so a 301 chain that lands on
// a 200 still counts as live; a terminal 3xx/4xx/5xx does not
func (p *HTTPProber) Probe(ctx context.Context, uri string) bool {
	start := time.Now()

	live := p.fetch(ctx, uri)

	outcome := "dead"
	if live {
		outcome = "live"
	}
	metrics.RecordProbe(outcome, time.Since(start).Seconds())

	return live
}

func (p *HTTPProber) fetch(ctx context.Context, uri string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		// Malformed target - dead, not an error
		p.logger.Debug("probe target malformed", "uri", uri, "error", err)
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		// Timeout, DNS failure, connection refused - all dead
		p.logger.Debug("probe failed", "uri", uri, "error", err)
		return false
	}
	defer resp.Body.Close()

	// Drain the body so the underlying connection can be reused
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}
