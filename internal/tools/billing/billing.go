// Package billing exposes account balance and invoice tools.
//
// The balance handler carries a narrow policy: when the upstream rejects the
// lookup with a 404 or 403 the handler reports an unavailable balance instead
// of failing, because some account tiers have no billing endpoint at all. No
// other handler in this package downgrades upstream failures.
package billing

import (
	"context"
	"errors"
	"fmt"

	"stackmcp/internal/registry"
	"stackmcp/internal/stackhost"
)

// Module contributes the billing tools.
func Module(client *stackhost.Client) registry.Module {
	return registry.Module{
		Name: "billing",
		Tools: []registry.Descriptor{
			{
				Name:        "billing_balance",
				Description: "Retrieve the current account balance",
				Args:        []registry.Arg{},
			},
			{
				Name:        "billing_invoices",
				Description: "List invoices issued for the account",
				Args:        []registry.Arg{},
			},
			{
				Name:        "billing_invoice_info",
				Description: "Retrieve a single invoice by identifier",
				Args: []registry.Arg{
					{Name: "invoice_id", Type: "string", Description: "Invoice identifier", Required: true},
				},
			},
		},
		Handlers: map[string]registry.Handler{
			"billing_balance":      balance(client),
			"billing_invoices":     invoices(client),
			"billing_invoice_info": invoiceInfo(client),
		},
	}
}

func balance(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		accountID, err := client.AccountID(ctx)
		if err != nil {
			return nil, err
		}
		result, err := client.Get(ctx, fmt.Sprintf("/reseller/%s/balance", accountID))
		if err != nil {
			var upstreamErr *stackhost.UpstreamAPIError
			if errors.As(err, &upstreamErr) && (upstreamErr.StatusCode == 404 || upstreamErr.StatusCode == 403) {
				return map[string]interface{}{
					"balance":  0,
					"currency": "USD",
					"status":   "unavailable",
				}, nil
			}
			return nil, err
		}
		return result, nil
	}
}

func invoices(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		accountID, err := client.AccountID(ctx)
		if err != nil {
			return nil, err
		}
		return client.Get(ctx, fmt.Sprintf("/reseller/%s/invoice", accountID))
	}
}

func invoiceInfo(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		accountID, err := client.AccountID(ctx)
		if err != nil {
			return nil, err
		}
		return client.Get(ctx, fmt.Sprintf("/reseller/%s/invoice/%s", accountID, registry.StringArg(args, "invoice_id")))
	}
}
