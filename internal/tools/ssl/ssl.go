// Package ssl exposes certificate management and HTTPS enforcement for
// hosting packages.
package ssl

import (
	"context"
	"fmt"

	"stackmcp/internal/registry"
	"stackmcp/internal/stackhost"
)

func packageArg() registry.Arg {
	return registry.Arg{Name: "package_id", Type: "string", Description: "Package identifier", Required: true}
}

// Module contributes the SSL tools.
func Module(client *stackhost.Client) registry.Module {
	return registry.Module{
		Name: "ssl",
		Tools: []registry.Descriptor{
			{
				Name:        "ssl_list",
				Description: "List certificates installed on a hosting package",
				Args:        []registry.Arg{packageArg()},
			},
			{
				Name:        "ssl_order",
				Description: "Order and provision a certificate for a domain on the package",
				Args: []registry.Arg{
					packageArg(),
					{Name: "domain_name", Type: "string", Description: "Domain to secure", Required: true},
				},
			},
			{
				Name:        "ssl_install",
				Description: "Install an externally issued certificate on the package",
				Args: []registry.Arg{
					packageArg(),
					{Name: "certificate", Type: "string", Description: "PEM encoded certificate", Required: true},
					{Name: "private_key", Type: "string", Description: "PEM encoded private key", Required: true},
					{Name: "chain", Type: "string", Description: "PEM encoded intermediate chain", Required: false},
				},
			},
			{
				Name:        "ssl_force_https",
				Description: "Enable or disable forced HTTPS redirects for a package",
				Args: []registry.Arg{
					packageArg(),
					{Name: "enabled", Type: "boolean", Description: "Desired redirect state", Required: true},
				},
			},
		},
		Handlers: map[string]registry.Handler{
			"ssl_list":        list(client),
			"ssl_order":       order(client),
			"ssl_install":     install(client),
			"ssl_force_https": forceHTTPS(client),
		},
	}
}

func sslPath(args map[string]interface{}, suffix string) string {
	return fmt.Sprintf("/package/%s/web/ssl%s", registry.StringArg(args, "package_id"), suffix)
}

func list(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, sslPath(args, ""))
	}
}

func order(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, sslPath(args, ""), map[string]interface{}{
			"domain_name": registry.StringArg(args, "domain_name"),
		})
	}
}

func install(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		body := map[string]interface{}{
			"certificate": registry.StringArg(args, "certificate"),
			"private_key": registry.StringArg(args, "private_key"),
		}
		if chain := registry.StringArg(args, "chain"); chain != "" {
			body["chain"] = chain
		}
		return client.Post(ctx, sslPath(args, "/install"), body)
	}
}

func forceHTTPS(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, sslPath(args, "/force-https"), map[string]interface{}{
			"enabled": registry.BoolArg(args, "enabled"),
		})
	}
}
