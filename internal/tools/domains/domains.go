// Package domains exposes domain portfolio operations: listing, lookups,
// registration, transfer, renewal, contacts and nameserver management.
package domains

import (
	"context"
	"fmt"

	"stackmcp/internal/registry"
	"stackmcp/internal/stackhost"
)

// Module contributes the domain management tools.
func Module(client *stackhost.Client) registry.Module {
	return registry.Module{
		Name: "domains",
		Tools: []registry.Descriptor{
			{
				Name:        "domain_list",
				Description: "List all domains on the account",
			},
			{
				Name:        "domain_info",
				Description: "Get detailed information about a domain",
				Args: []registry.Arg{
					{Name: "domain_id", Type: "string", Description: "Domain identifier", Required: true},
				},
			},
			{
				Name:        "domain_register",
				Description: "Register a new domain name",
				Args: []registry.Arg{
					{Name: "name", Type: "string", Description: "Fully qualified domain name to register", Required: true},
					{Name: "years", Type: "number", Description: "Registration period in years (default 1)"},
					{Name: "contact", Type: "object", Description: "Registrant contact details"},
					{Name: "privacy", Type: "boolean", Description: "Enable WHOIS privacy"},
				},
			},
			{
				Name:        "domain_renew",
				Description: "Renew an existing domain registration",
				Args: []registry.Arg{
					{Name: "domain_id", Type: "string", Description: "Domain identifier", Required: true},
					{Name: "years", Type: "number", Description: "Renewal period in years (default 1)"},
				},
			},
			{
				Name:        "domain_transfer",
				Description: "Start an inbound transfer of a domain to this account",
				Args: []registry.Arg{
					{Name: "name", Type: "string", Description: "Fully qualified domain name to transfer", Required: true},
					{Name: "auth_code", Type: "string", Description: "Transfer authorization (EPP) code", Required: true},
					{Name: "contact", Type: "object", Description: "Registrant contact details"},
				},
			},
			{
				Name:        "domain_contacts_update",
				Description: "Replace the registrant contact details of a domain",
				Args: []registry.Arg{
					{Name: "domain_id", Type: "string", Description: "Domain identifier", Required: true},
					{Name: "contact", Type: "object", Description: "New registrant contact details", Required: true},
				},
			},
			{
				Name:        "domain_whois",
				Description: "Fetch the live WHOIS record for a domain",
				Args: []registry.Arg{
					{Name: "domain_id", Type: "string", Description: "Domain identifier", Required: true},
				},
			},
			{
				Name:        "domain_nameservers_update",
				Description: "Replace the nameservers of a domain",
				Args: []registry.Arg{
					{Name: "domain_id", Type: "string", Description: "Domain identifier", Required: true},
					{Name: "nameservers", Type: "array", Description: "New nameserver hostnames", Required: true},
				},
			},
		},
		Handlers: map[string]registry.Handler{
			"domain_list":               listDomains(client),
			"domain_info":               domainInfo(client),
			"domain_register":           registerDomain(client),
			"domain_renew":              renewDomain(client),
			"domain_transfer":           transferDomain(client),
			"domain_contacts_update":    updateContacts(client),
			"domain_whois":              domainWhois(client),
			"domain_nameservers_update": updateNameservers(client),
		},
	}
}

func listDomains(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, "/domain")
	}
}

func domainInfo(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, "/domain/"+registry.StringArg(args, "domain_id"))
	}
}

func registerDomain(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		accountID, err := client.AccountID(ctx)
		if err != nil {
			return nil, err
		}

		body := map[string]interface{}{
			"name":  registry.StringArg(args, "name"),
			"years": orDefaultYears(args),
		}
		if contact := registry.ObjectArg(args, "contact"); contact != nil {
			body["contact"] = contact
		}
		if registry.BoolArg(args, "privacy") {
			body["privacyService"] = true
		}

		return client.Post(ctx, fmt.Sprintf("/reseller/%s/addDomain", accountID), body)
	}
}

func renewDomain(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		accountID, err := client.AccountID(ctx)
		if err != nil {
			return nil, err
		}

		return client.Post(ctx, fmt.Sprintf("/reseller/%s/renewDomain", accountID), map[string]interface{}{
			"id":    registry.StringArg(args, "domain_id"),
			"years": orDefaultYears(args),
		})
	}
}

func transferDomain(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		accountID, err := client.AccountID(ctx)
		if err != nil {
			return nil, err
		}

		body := map[string]interface{}{
			"name":     registry.StringArg(args, "name"),
			"authCode": registry.StringArg(args, "auth_code"),
		}
		if contact := registry.ObjectArg(args, "contact"); contact != nil {
			body["contact"] = contact
		}

		return client.Post(ctx, fmt.Sprintf("/reseller/%s/transferDomain", accountID), body)
	}
}

func updateContacts(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, "/domain/"+registry.StringArg(args, "domain_id")+"/contacts", map[string]interface{}{
			"contact": registry.ObjectArg(args, "contact"),
		})
	}
}

func domainWhois(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, "/domain/"+registry.StringArg(args, "domain_id")+"/whois")
	}
}

func updateNameservers(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, "/domain/"+registry.StringArg(args, "domain_id")+"/nameservers", map[string]interface{}{
			"ns": registry.ArrayArg(args, "nameservers"),
		})
	}
}

func orDefaultYears(args map[string]interface{}) int {
	if years := registry.IntArg(args, "years"); years > 0 {
		return years
	}
	return 1
}
