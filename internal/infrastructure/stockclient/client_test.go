package stockclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuantitySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/inventory/p1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"productId":"p1","quantity":17}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	assert.Equal(t, 17, c.Quantity(context.Background(), "p1"))
}

func TestQuantityAbsentEntryIsZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"productId":"p1","quantity":0}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	assert.Equal(t, 0, c.Quantity(context.Background(), "p1"))
}

func TestQuantityNon200IsZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	assert.Equal(t, 0, c.Quantity(context.Background(), "p1"))
}

func TestQuantityMalformedBodyIsZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"quantity": "lots"`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	assert.Equal(t, 0, c.Quantity(context.Background(), "p1"))
}

func TestQuantityNegativeBodyIsZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"productId":"p1","quantity":-3}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	assert.Equal(t, 0, c.Quantity(context.Background(), "p1"))
}

func TestQuantityUnreachableTargetIsZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listens any more

	c := New(srv.URL, time.Second, nil)
	assert.Equal(t, 0, c.Quantity(context.Background(), "p1"))
}

func TestQuantityTimeoutIsZero(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := New(srv.URL, 50*time.Millisecond, nil)
	start := time.Now()
	assert.Equal(t, 0, c.Quantity(context.Background(), "p1"))
	assert.Less(t, time.Since(start), time.Second, "lookup must give up at its own deadline")
}

func TestQuantityEscapesProductID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"productId":"a/b","quantity":1}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	assert.Equal(t, 1, c.Quantity(context.Background(), "a/b"))
	assert.Equal(t, "/api/inventory/a%2Fb", gotPath)
}
