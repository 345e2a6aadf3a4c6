package billing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stackmcp/internal/stackhost"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccountID = "0af25dd8-9f45-4ea2-b2c8-75b1c1f2a0de"

// newBillingServer serves the account-info endpoint and lets the test control
// the balance endpoint's response.
func newBillingServer(t *testing.T, balanceStatus int, balanceBody string) *stackhost.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/reseller":
			w.Write([]byte(`{"id": "` + testAccountID + `"}`))
		case "/reseller/" + testAccountID + "/balance":
			w.WriteHeader(balanceStatus)
			w.Write([]byte(balanceBody))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "not found"}`))
		}
	}))
	t.Cleanup(srv.Close)

	return stackhost.NewClient(
		stackhost.Credentials{APIKey: "key", OAuthKey: "oauth", CombinedKey: "key+oauth"},
		stackhost.WithBaseURL(srv.URL),
	)
}

func TestBalanceReturnsUpstreamPayload(t *testing.T) {
	client := newBillingServer(t, http.StatusOK, `{"balance": 42.5, "currency": "EUR"}`)
	handler := Module(client).Handlers["billing_balance"]

	result, err := handler(context.Background(), map[string]interface{}{})
	require.NoError(t, err)

	payload, ok := result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 42.5, payload["balance"])
	assert.Equal(t, "EUR", payload["currency"])
}

func TestBalanceDowngrades404ToUnavailable(t *testing.T) {
	client := newBillingServer(t, http.StatusNotFound, `{"error": "no billing for this account"}`)
	handler := Module(client).Handlers["billing_balance"]

	result, err := handler(context.Background(), map[string]interface{}{})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"balance":  0,
		"currency": "USD",
		"status":   "unavailable",
	}, result)
}

func TestBalanceDowngrades403ToUnavailable(t *testing.T) {
	client := newBillingServer(t, http.StatusForbidden, `{"error": "forbidden"}`)
	handler := Module(client).Handlers["billing_balance"]

	result, err := handler(context.Background(), map[string]interface{}{})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"balance":  0,
		"currency": "USD",
		"status":   "unavailable",
	}, result)
}

func TestBalancePropagatesOtherUpstreamFailures(t *testing.T) {
	client := newBillingServer(t, http.StatusInternalServerError, `{"error": "database down"}`)
	handler := Module(client).Handlers["billing_balance"]

	_, err := handler(context.Background(), map[string]interface{}{})
	require.Error(t, err)

	var upstreamErr *stackhost.UpstreamAPIError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusInternalServerError, upstreamErr.StatusCode)
	assert.Contains(t, upstreamErr.Message, "database down")
}

func TestInvoiceToolsAreAccountScoped(t *testing.T) {
	var invoicePath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/reseller" {
			w.Write([]byte(`"` + testAccountID + `"`))
			return
		}
		invoicePath = r.URL.Path
		w.Write([]byte(`{"invoices": []}`))
	}))
	t.Cleanup(srv.Close)

	client := stackhost.NewClient(
		stackhost.Credentials{APIKey: "key", OAuthKey: "oauth", CombinedKey: "key+oauth"},
		stackhost.WithBaseURL(srv.URL),
	)

	module := Module(client)

	_, err := module.Handlers["billing_invoices"](context.Background(), map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "/reseller/"+testAccountID+"/invoice", invoicePath)

	_, err = module.Handlers["billing_invoice_info"](context.Background(), map[string]interface{}{"invoice_id": "inv-7"})
	require.NoError(t, err)
	assert.Equal(t, "/reseller/"+testAccountID+"/invoice/inv-7", invoicePath)
}
