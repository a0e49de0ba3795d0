package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHTTPClient() *RealHTTPClient {
	return &RealHTTPClient{
		client:         &http.Client{Timeout: 5 * time.Second},
		maxElapsedTime: 10 * time.Second,
	}
}

func TestHTTPClientPostRetriesWithSameBody(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "payload", string(body))
		assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	resp, err := newTestHTTPClient().Post(context.Background(), srv.URL, "text/plain", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, "ok", string(resp))
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPClientPermanentError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestHTTPClient().Post(context.Background(), srv.URL, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code 400")
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPClientGetDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Mimosa"}`))
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, newTestHTTPClient().Get(context.Background(), srv.URL, &out))
	assert.Equal(t, "Mimosa", out.Name)
}
