package stackhost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const testAccountID = "0af25dd8-9f45-4ea2-b2c8-75b1c1f2a0de"

func TestAccountIDFromObjectShape(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reseller", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"` + testAccountID + `","name":"acme"}`))
	}))
	defer backend.Close()

	client := NewClient(testCredentials(), WithBaseURL(backend.URL))
	id, err := client.AccountID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testAccountID, id)
}

func TestAccountIDFromBareStringShape(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Observed backend quirk: the identifier comes back with no
		// enclosing object and no JSON quoting.
		w.Write([]byte(testAccountID))
	}))
	defer backend.Close()

	client := NewClient(testCredentials(), WithBaseURL(backend.URL))
	id, err := client.AccountID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testAccountID, id)
}

func TestAccountIDRejectsNonIdentifierString(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`maintenance in progress`))
	}))
	defer backend.Close()

	client := NewClient(testCredentials(), WithBaseURL(backend.URL))
	_, err := client.AccountID(context.Background())
	require.Error(t, err)

	var ctxErr *ContextResolutionError
	assert.ErrorAs(t, err, &ctxErr)
}

func TestAccountIDSingleFlight(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"` + testAccountID + `"}`))
	}))
	defer backend.Close()

	client := NewClient(testCredentials(), WithBaseURL(backend.URL))

	var group errgroup.Group
	for i := 0; i < 8; i++ {
		group.Go(func() error {
			id, err := client.AccountID(context.Background())
			if err != nil {
				return err
			}
			assert.Equal(t, testAccountID, id)
			return nil
		})
	}

	// Let the concurrent callers pile up on the in-flight resolution
	// before the backend answers.
	time.Sleep(50 * time.Millisecond)
	close(release)
	require.NoError(t, group.Wait())

	assert.Equal(t, int32(1), calls.Load(), "concurrent callers must share one network call")
}

func TestAccountIDFailureIsNotCached(t *testing.T) {
	var calls atomic.Int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"temporarily unavailable"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"` + testAccountID + `"}`))
	}))
	defer backend.Close()

	client := NewClient(testCredentials(), WithBaseURL(backend.URL))

	_, err := client.AccountID(context.Background())
	require.Error(t, err)

	var ctxErr *ContextResolutionError
	require.ErrorAs(t, err, &ctxErr)

	id, err := client.AccountID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testAccountID, id)
	assert.Equal(t, int32(2), calls.Load())
}

func TestAccountIDMemoized(t *testing.T) {
	var calls atomic.Int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"` + testAccountID + `"}`))
	}))
	defer backend.Close()

	client := NewClient(testCredentials(), WithBaseURL(backend.URL))

	for i := 0; i < 5; i++ {
		id, err := client.AccountID(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testAccountID, id)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestExtractAccountID(t *testing.T) {
	tests := []struct {
		name     string
		body     interface{}
		expected string
		wantErr  bool
	}{
		{"id field", map[string]interface{}{"id": "abc"}, "abc", false},
		{"accountId field", map[string]interface{}{"accountId": "def"}, "def", false},
		{"snake case field", map[string]interface{}{"account_id": "ghi"}, "ghi", false},
		{"bare uuid", testAccountID, testAccountID, false},
		{"bare non-uuid", "not-an-id", "", true},
		{"no identifier field", map[string]interface{}{"name": "acme"}, "", true},
		{"unexpected shape", []interface{}{"x"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := extractAccountID(tt.body)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}
