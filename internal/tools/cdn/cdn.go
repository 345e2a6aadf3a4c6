// Package cdn exposes CDN toggling, edge options and cache management for
// hosting packages.
package cdn

import (
	"context"
	"fmt"

	"stackmcp/internal/registry"
	"stackmcp/internal/stackhost"
)

func packageArg() registry.Arg {
	return registry.Arg{Name: "package_id", Type: "string", Description: "Package identifier", Required: true}
}

// Module contributes the CDN tools.
func Module(client *stackhost.Client) registry.Module {
	return registry.Module{
		Name: "cdn",
		Tools: []registry.Descriptor{
			{
				Name:        "cdn_status",
				Description: "Get the CDN state of a hosting package",
				Args:        []registry.Arg{packageArg()},
			},
			{
				Name:        "cdn_enable",
				Description: "Enable the CDN for a hosting package",
				Args:        []registry.Arg{packageArg()},
			},
			{
				Name:        "cdn_disable",
				Description: "Disable the CDN for a hosting package",
				Args:        []registry.Arg{packageArg()},
			},
			{
				Name:        "cdn_purge_cache",
				Description: "Purge cached content from the CDN edge",
				Args: []registry.Arg{
					packageArg(),
					{Name: "paths", Type: "array", Description: "Paths to purge; omit to purge everything"},
				},
			},
			{
				Name:        "cdn_options_update",
				Description: "Update CDN edge options for a hosting package",
				Args: []registry.Arg{
					packageArg(),
					{Name: "options", Type: "object", Description: "Edge options to set, e.g. cache TTL or compression", Required: true},
				},
			},
		},
		Handlers: map[string]registry.Handler{
			"cdn_status":         status(client),
			"cdn_enable":         setEnabled(client, true),
			"cdn_disable":        setEnabled(client, false),
			"cdn_purge_cache":    purgeCache(client),
			"cdn_options_update": updateOptions(client),
		},
	}
}

func cdnPath(args map[string]interface{}, suffix string) string {
	return fmt.Sprintf("/package/%s/web/cdn%s", registry.StringArg(args, "package_id"), suffix)
}

func status(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, cdnPath(args, ""))
	}
}

func setEnabled(client *stackhost.Client, enabled bool) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, cdnPath(args, ""), map[string]interface{}{"enabled": enabled})
	}
}

func updateOptions(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, cdnPath(args, "/options"), map[string]interface{}{
			"options": registry.ObjectArg(args, "options"),
		})
	}
}

func purgeCache(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		body := map[string]interface{}{}
		if paths := registry.ArrayArg(args, "paths"); paths != nil {
			body["paths"] = paths
		}
		return client.Post(ctx, cdnPath(args, "/purge"), body)
	}
}
