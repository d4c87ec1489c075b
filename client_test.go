package space_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	space "github.com/pgmarc/space-go"
)

// newTestClient points a client at the given test server.
func newTestClient(t *testing.T, handler http.Handler, opts ...space.Option) *space.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, portStr, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	client, err := space.New(space.Config{
		APIKey:      "test-key",
		Host:        host,
		Port:        port,
		Scheme:      "http",
		BasePath:    "api/v1",
		HTTPTimeout: 5 * time.Second,
	}, opts...)
	require.NoError(t, err)
	return client
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := space.New(space.Config{Host: "localhost", Port: 5403, Scheme: "http"})
	require.ErrorIs(t, err, space.ErrMissingAPIKey)
}

func TestClient_RequestHeaders(t *testing.T) {
	t.Parallel()

	var captured http.Header
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		w.Write([]byte(subscriptionDocJSON))
	}))

	_, err := client.Contracts().GetByUserID(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "test-key", captured.Get("x-api-key"))
	assert.Equal(t, "application/json", captured.Get("Accept"))
	_, err = uuid.Parse(captured.Get("X-Request-ID"))
	assert.NoError(t, err, "every request carries a request id")
	assert.Empty(t, captured.Get("Content-Type"), "no content type without a body")
}
