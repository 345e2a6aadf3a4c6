// Package dns exposes DNS zone record management for domains on the
// account.
package dns

import (
	"context"
	"fmt"

	"stackmcp/internal/registry"
	"stackmcp/internal/stackhost"
)

var recordArgs = []registry.Arg{
	{Name: "domain_id", Type: "string", Description: "Domain identifier", Required: true},
	{Name: "type", Type: "string", Description: "Record type (A, AAAA, CNAME, MX, TXT, SRV, NS)", Required: true},
	{Name: "host", Type: "string", Description: "Record host, relative to the zone apex", Required: true},
	{Name: "value", Type: "string", Description: "Record value", Required: true},
	{Name: "ttl", Type: "number", Description: "Time to live in seconds (default 3600)"},
	{Name: "priority", Type: "number", Description: "Priority for MX and SRV records"},
}

// Module contributes the DNS record tools.
func Module(client *stackhost.Client) registry.Module {
	return registry.Module{
		Name: "dns",
		Tools: []registry.Descriptor{
			{
				Name:        "dns_records_list",
				Description: "List all DNS records of a domain's zone",
				Args: []registry.Arg{
					{Name: "domain_id", Type: "string", Description: "Domain identifier", Required: true},
				},
			},
			{
				Name:        "dns_record_add",
				Description: "Add a DNS record to a domain's zone",
				Args:        recordArgs,
			},
			{
				Name:        "dns_record_update",
				Description: "Update an existing DNS record",
				Args: append([]registry.Arg{
					{Name: "record_id", Type: "string", Description: "Record identifier", Required: true},
				}, recordArgs...),
			},
			{
				Name:        "dns_record_remove",
				Description: "Remove a DNS record from a domain's zone",
				Args: []registry.Arg{
					{Name: "domain_id", Type: "string", Description: "Domain identifier", Required: true},
					{Name: "record_id", Type: "string", Description: "Record identifier", Required: true},
				},
			},
		},
		Handlers: map[string]registry.Handler{
			"dns_records_list":  listRecords(client),
			"dns_record_add":    addRecord(client),
			"dns_record_update": updateRecord(client),
			"dns_record_remove": removeRecord(client),
		},
	}
}

func listRecords(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, "/domain/"+registry.StringArg(args, "domain_id")+"/dns")
	}
}

func addRecord(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, "/domain/"+registry.StringArg(args, "domain_id")+"/dns", recordBody(args))
	}
}

func updateRecord(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		path := fmt.Sprintf("/domain/%s/dns/%s",
			registry.StringArg(args, "domain_id"), registry.StringArg(args, "record_id"))
		return client.Post(ctx, path, recordBody(args))
	}
}

func removeRecord(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		path := fmt.Sprintf("/domain/%s/dns/%s",
			registry.StringArg(args, "domain_id"), registry.StringArg(args, "record_id"))
		return client.Delete(ctx, path)
	}
}

func recordBody(args map[string]interface{}) map[string]interface{} {
	body := map[string]interface{}{
		"type":  registry.StringArg(args, "type"),
		"host":  registry.StringArg(args, "host"),
		"value": registry.StringArg(args, "value"),
	}
	if ttl := registry.IntArg(args, "ttl"); ttl > 0 {
		body["ttl"] = ttl
	}
	if priority := registry.IntArg(args, "priority"); priority > 0 {
		body["priority"] = priority
	}
	return body
}
