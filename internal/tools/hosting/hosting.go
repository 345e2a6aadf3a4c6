// Package hosting exposes web hosting package lifecycle and usage
// reporting.
package hosting

import (
	"context"
	"fmt"

	"stackmcp/internal/registry"
	"stackmcp/internal/stackhost"
)

// Module contributes the hosting package tools.
func Module(client *stackhost.Client) registry.Module {
	return registry.Module{
		Name: "hosting",
		Tools: []registry.Descriptor{
			{
				Name:        "package_list",
				Description: "List all hosting packages on the account",
			},
			{
				Name:        "package_info",
				Description: "Get configuration and state of a hosting package",
				Args: []registry.Arg{
					{Name: "package_id", Type: "string", Description: "Package identifier", Required: true},
				},
			},
			{
				Name:        "package_create",
				Description: "Create a new hosting package",
				Args: []registry.Arg{
					{Name: "domain_name", Type: "string", Description: "Primary domain for the package", Required: true},
					{Name: "type", Type: "string", Description: "Package type identifier", Required: true},
					{Name: "extra_domain_names", Type: "array", Description: "Additional domains to attach"},
					{Name: "label", Type: "string", Description: "Display label"},
				},
			},
			{
				Name:        "package_delete",
				Description: "Delete a hosting package and all its data",
				Args: []registry.Arg{
					{Name: "package_id", Type: "string", Description: "Package identifier", Required: true},
				},
			},
			{
				Name:        "package_usage",
				Description: "Get disk and bandwidth usage of a hosting package",
				Args: []registry.Arg{
					{Name: "package_id", Type: "string", Description: "Package identifier", Required: true},
				},
			},
			{
				Name:        "package_limits",
				Description: "Get resource limits of a hosting package",
				Args: []registry.Arg{
					{Name: "package_id", Type: "string", Description: "Package identifier", Required: true},
				},
			},
		},
		Handlers: map[string]registry.Handler{
			"package_list":   listPackages(client),
			"package_info":   packageInfo(client),
			"package_create": createPackage(client),
			"package_delete": deletePackage(client),
			"package_usage":  packageUsage(client),
			"package_limits": packageLimits(client),
		},
	}
}

func listPackages(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, "/package")
	}
}

func packageInfo(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, "/package/"+registry.StringArg(args, "package_id"))
	}
}

func createPackage(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		accountID, err := client.AccountID(ctx)
		if err != nil {
			return nil, err
		}

		body := map[string]interface{}{
			"domain_name": registry.StringArg(args, "domain_name"),
			"type":        registry.StringArg(args, "type"),
		}
		if extra := registry.ArrayArg(args, "extra_domain_names"); extra != nil {
			body["extra_domain_names"] = extra
		}
		if label := registry.StringArg(args, "label"); label != "" {
			body["label"] = label
		}

		return client.Post(ctx, fmt.Sprintf("/reseller/%s/addWeb", accountID), body)
	}
}

func deletePackage(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		accountID, err := client.AccountID(ctx)
		if err != nil {
			return nil, err
		}

		return client.Post(ctx, fmt.Sprintf("/reseller/%s/deleteWeb", accountID), map[string]interface{}{
			"delete-id": []interface{}{registry.StringArg(args, "package_id")},
		})
	}
}

func packageUsage(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, "/package/"+registry.StringArg(args, "package_id")+"/web/usage")
	}
}

func packageLimits(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, "/package/"+registry.StringArg(args, "package_id")+"/limits")
	}
}
