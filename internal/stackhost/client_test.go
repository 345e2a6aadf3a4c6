package stackhost

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredentials() Credentials {
	return Credentials{
		APIKey:      "general123",
		OAuthKey:    "oauth456",
		CombinedKey: "general123+oauth456",
	}
}

func TestClientSendsBearerAndContentNegotiation(t *testing.T) {
	var gotAuth, gotAccept, gotContentType string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer backend.Close()

	client := NewClient(testCredentials(), WithBaseURL(backend.URL))
	result, err := client.Get(context.Background(), "/package")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"ok": true}, result)

	expectedToken := base64.StdEncoding.EncodeToString([]byte("general123"))
	assert.Equal(t, "Bearer "+expectedToken, gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClientHTMLResponseIsClassified(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"html on 200", http.StatusOK},
		{"html on 403", http.StatusForbidden},
		{"html on 502", http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(tt.status)
				w.Write([]byte("<html><body><h1>Access denied</h1></body></html>"))
			}))
			defer backend.Close()

			client := NewClient(testCredentials(), WithBaseURL(backend.URL))
			_, err := client.Get(context.Background(), "/package")
			require.Error(t, err)

			var htmlErr *HTMLResponseError
			require.ErrorAs(t, err, &htmlErr)
			assert.Equal(t, tt.status, htmlErr.StatusCode)
			assert.Contains(t, htmlErr.Preview, "Access denied")
			assert.NotContains(t, htmlErr.Preview, "<h1>")
			assert.Contains(t, htmlErr.Error(), "403", "error message carries the status")
		})
	}
}

func TestClientHTMLErrorMessageContainsStatus(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("<html><body>not here</body></html>"))
	}))
	defer backend.Close()

	client := NewClient(testCredentials(), WithBaseURL(backend.URL))
	_, err := client.Get(context.Background(), "/nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestClientUpstreamErrorPreservesStatusAndMessage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"message":"domain already registered"}}`))
	}))
	defer backend.Close()

	client := NewClient(testCredentials(), WithBaseURL(backend.URL))
	_, err := client.Post(context.Background(), "/domain", map[string]interface{}{"name": "example.com"})
	require.Error(t, err)

	var upstreamErr *UpstreamAPIError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusConflict, upstreamErr.StatusCode)
	assert.Equal(t, "domain already registered", upstreamErr.Message)
	assert.Equal(t, http.MethodPost, upstreamErr.Method)
	assert.Equal(t, "/domain", upstreamErr.Path)
}

func TestClientUpstreamErrorFlatMessage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"missing field: name"}`))
	}))
	defer backend.Close()

	client := NewClient(testCredentials(), WithBaseURL(backend.URL))
	_, err := client.Get(context.Background(), "/domain")

	var upstreamErr *UpstreamAPIError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "missing field: name", upstreamErr.Message)
}

func TestClientNetworkFailureIsTransportError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // connection refused from here on

	client := NewClient(testCredentials(), WithBaseURL(backend.URL))
	_, err := client.Get(context.Background(), "/package")
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.MethodGet, transportErr.Method)
	assert.Equal(t, "/package", transportErr.Path)
}

func TestClientEmptyBodyNormalizesToEmptyObject(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer backend.Close()

	client := NewClient(testCredentials(), WithBaseURL(backend.URL))
	result, err := client.Delete(context.Background(), "/package/p1")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{}, result)
}
