package brokerage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a client at a local test server with the rate
// limiter effectively disabled.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...ClientOption) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]ClientOption{
		WithBaseURL(srv.URL),
		WithRateLimit(1000),
	}, opts...)
	return NewClient(opts...)
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}, WithTokenSource(func() string { return "tok-123" }))

	err := client.do(context.Background(), http.MethodGet, "/anything", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientOmitsAuthorizationWhenAnonymous(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	})

	err := client.do(context.Background(), http.MethodGet, "/anything", nil, nil)
	require.NoError(t, err)
	assert.False(t, hasAuth, "anonymous request must carry no Authorization header, got %q", gotAuth)
}

func TestClientReadsTokenSourceFreshPerRequest(t *testing.T) {
	token := "first"
	var seen []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}, WithTokenSource(func() string { return token }))

	require.NoError(t, client.do(context.Background(), http.MethodGet, "/a", nil, nil))
	token = ""
	require.NoError(t, client.do(context.Background(), http.MethodGet, "/a", nil, nil))

	require.Len(t, seen, 2)
	assert.Equal(t, "Bearer first", seen[0])
	assert.Empty(t, seen[1], "cleared token must not be re-sent")
}

func TestClientRequestHeaders(t *testing.T) {
	var contentType, requestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		requestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	})

	body := map[string]string{"symbol": "AAPL"}
	err := client.do(context.Background(), http.MethodPost, "/anything", body, nil)
	require.NoError(t, err)

	assert.Equal(t, "application/json", contentType)
	assert.Len(t, requestID, 8, "correlation id is the short uuid prefix")
}

func TestClientOmitsContentTypeWithoutBody(t *testing.T) {
	var contentType string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	})

	err := client.do(context.Background(), http.MethodGet, "/anything", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, contentType)
}

func TestClientErrorUsesServerMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Insufficient funds"})
	})

	err := client.do(context.Background(), http.MethodPost, "/wallet/withdrawal", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Insufficient funds", apiErr.Message)
	assert.Equal(t, "Insufficient funds", err.Error(), "server message must reach the caller verbatim")
}

func TestClientErrorFallsBackToGenericMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})

	err := client.do(context.Background(), http.MethodGet, "/stock/popular", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "API error: 502", apiErr.Message)
}

func TestClientToleratesEmptySuccessBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	var result struct {
		Message string `json:"message"`
	}
	err := client.do(context.Background(), http.MethodPost, "/auth/logout", nil, &result)
	require.NoError(t, err)
	assert.Empty(t, result.Message, "result must be left untouched")
}

func TestClientToleratesNonJSONSuccessBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	var result struct {
		Message string `json:"message"`
	}
	err := client.do(context.Background(), http.MethodPost, "/auth/logout", nil, &result)
	require.NoError(t, err)
	assert.Empty(t, result.Message)
}
