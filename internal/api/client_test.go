package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(srv *httptest.Server) *Client {
	return New(srv.URL, 5*time.Second, testLogger())
}

func TestDecodeEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"name":"Paracetamol"},"message":"ok"}`))
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}
	err := newTestClient(srv).Get(context.Background(), "/products/1", &out)
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol", out.Name)
}

func TestDecodeBareBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":42,"total":20000}`))
	}))
	defer srv.Close()

	var out struct {
		ID    int64   `json:"id"`
		Total float64 `json:"total"`
	}
	err := newTestClient(srv).Get(context.Background(), "/orders/42", &out)
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.ID)
	assert.Equal(t, 20000.0, out.Total)
}

func TestDecodeBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1},{"id":2}]`))
	}))
	defer srv.Close()

	var out []struct {
		ID int64 `json:"id"`
	}
	err := newTestClient(srv).Get(context.Background(), "/orders/history", &out)
	require.NoError(t, err)
	require.Len(t, out, 2)
}

func TestBearerHeaderInjected(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	c.SetTokenSource(func() string { return "tok-123" })

	require.NoError(t, c.Get(context.Background(), "/users/profile", nil))
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestUnauthorizedFiresSessionHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	fired := 0
	c.OnSessionExpired(func() { fired++ })

	err := c.Get(context.Background(), "/users/profile", nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, fired)
}

func TestServerMessageSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"cart is empty"}`))
	}))
	defer srv.Close()

	err := newTestClient(srv).Post(context.Background(), "/orders", map[string]string{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart is empty")
}

func TestNotFoundWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"order not found"}`))
	}))
	defer srv.Close()

	err := newTestClient(srv).Get(context.Background(), "/orders/999", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExtraHeadersSent(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		w.Write([]byte(`{"id":1}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	headers := map[string]string{"Idempotency-Key": "attempt-1"}
	require.NoError(t, c.Do(context.Background(), http.MethodPost, "/orders", headers, map[string]int{"x": 1}, nil))
	assert.Equal(t, "attempt-1", gotKey)
}
