// Package vps exposes managed VPS operations. All paths are scoped under
// the resolved account identifier.
package vps

import (
	"context"
	"fmt"

	"stackmcp/internal/registry"
	"stackmcp/internal/stackhost"
)

func serverArg() registry.Arg {
	return registry.Arg{Name: "server_id", Type: "string", Description: "VPS identifier", Required: true}
}

// Module contributes the VPS management tools.
func Module(client *stackhost.Client) registry.Module {
	return registry.Module{
		Name: "vps",
		Tools: []registry.Descriptor{
			{
				Name:        "vps_list",
				Description: "List all VPS instances on the account",
			},
			{
				Name:        "vps_info",
				Description: "Get configuration and state of a VPS",
				Args:        []registry.Arg{serverArg()},
			},
			{
				Name:        "vps_start",
				Description: "Start a stopped VPS",
				Args:        []registry.Arg{serverArg()},
			},
			{
				Name:        "vps_stop",
				Description: "Stop a running VPS",
				Args:        []registry.Arg{serverArg()},
			},
			{
				Name:        "vps_reboot",
				Description: "Reboot a VPS",
				Args:        []registry.Arg{serverArg()},
			},
			{
				Name:        "vps_rebuild",
				Description: "Rebuild a VPS from an operating system image; destroys all data",
				Args: []registry.Arg{
					serverArg(),
					{Name: "image", Type: "string", Description: "Operating system image identifier", Required: true},
				},
			},
		},
		Handlers: map[string]registry.Handler{
			"vps_list":    list(client),
			"vps_info":    info(client),
			"vps_start":   powerAction(client, "start"),
			"vps_stop":    powerAction(client, "stop"),
			"vps_reboot":  powerAction(client, "reboot"),
			"vps_rebuild": rebuild(client),
		},
	}
}

func list(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		accountID, err := client.AccountID(ctx)
		if err != nil {
			return nil, err
		}
		return client.Get(ctx, fmt.Sprintf("/reseller/%s/vps", accountID))
	}
}

func info(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		accountID, err := client.AccountID(ctx)
		if err != nil {
			return nil, err
		}
		return client.Get(ctx, fmt.Sprintf("/reseller/%s/vps/%s", accountID, registry.StringArg(args, "server_id")))
	}
}

func powerAction(client *stackhost.Client, action string) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		accountID, err := client.AccountID(ctx)
		if err != nil {
			return nil, err
		}
		path := fmt.Sprintf("/reseller/%s/vps/%s/power", accountID, registry.StringArg(args, "server_id"))
		return client.Post(ctx, path, map[string]interface{}{"action": action})
	}
}

func rebuild(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		accountID, err := client.AccountID(ctx)
		if err != nil {
			return nil, err
		}
		path := fmt.Sprintf("/reseller/%s/vps/%s/rebuild", accountID, registry.StringArg(args, "server_id"))
		return client.Post(ctx, path, map[string]interface{}{
			"image": registry.StringArg(args, "image"),
		})
	}
}
