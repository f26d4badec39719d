package probe

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestProbe_StatusOK_IsLive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	prober := NewHTTPProber(2*time.Second, testLogger())

	assert.True(t, prober.Probe(context.Background(), server.URL))
}

func TestProbe_NonOKStatus_IsDead(t *testing.T) {
	// A success is exactly 200; everything else is dead, including other
	// 2xx codes and terminal redirects
	statuses := []int{http.StatusNoContent, http.StatusCreated, http.StatusNotFound, http.StatusInternalServerError, http.StatusTeapot}

	for _, status := range statuses {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		prober := NewHTTPProber(2*time.Second, testLogger())
		assert.False(t, prober.Probe(context.Background(), server.URL), "status %d must classify as dead", status)

		server.Close()
	}
}

func TestProbe_RedirectChainEndingIn200_IsLive(t *testing.T) {
	// The client follows redirects, so a 302 that lands on a 200 is live
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusFound)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	prober := NewHTTPProber(2*time.Second, testLogger())

	assert.True(t, prober.Probe(context.Background(), server.URL+"/start"))
}

func TestProbe_ConnectionRefused_IsDead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := server.URL
	server.Close() // nothing is listening there anymore

	prober := NewHTTPProber(2*time.Second, testLogger())

	assert.False(t, prober.Probe(context.Background(), target))
}

func TestProbe_Timeout_IsDead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// A target slower than the timeout classifies as dead, it does not error
	prober := NewHTTPProber(50*time.Millisecond, testLogger())

	assert.False(t, prober.Probe(context.Background(), server.URL))
}

func TestProbe_MalformedTarget_IsDead(t *testing.T) {
	prober := NewHTTPProber(2*time.Second, testLogger())

	assert.False(t, prober.Probe(context.Background(), "https://http://[::1:bad"))
	assert.False(t, prober.Probe(context.Background(), "https://"))
}

func TestProbe_CanceledContext_IsDead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prober := NewHTTPProber(2*time.Second, testLogger())

	assert.False(t, prober.Probe(ctx, server.URL))
}
