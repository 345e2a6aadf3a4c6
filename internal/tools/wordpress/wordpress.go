// Package wordpress exposes managed WordPress operations on hosting
// packages: installation, users, plugins, themes and staging.
package wordpress

import (
	"context"
	"fmt"

	"stackmcp/internal/registry"
	"stackmcp/internal/stackhost"
)

func packageArg() registry.Arg {
	return registry.Arg{Name: "package_id", Type: "string", Description: "Package identifier", Required: true}
}

// Module contributes the WordPress management tools.
func Module(client *stackhost.Client) registry.Module {
	return registry.Module{
		Name: "wordpress",
		Tools: []registry.Descriptor{
			{
				Name:        "wordpress_install",
				Description: "Install WordPress on a hosting package",
				Args: []registry.Arg{
					packageArg(),
					{Name: "site_title", Type: "string", Description: "Site title", Required: true},
					{Name: "admin_user", Type: "string", Description: "Administrator username", Required: true},
					{Name: "admin_email", Type: "string", Description: "Administrator email address", Required: true},
				},
			},
			{
				Name:        "wordpress_version",
				Description: "Get the installed WordPress version on a package",
				Args:        []registry.Arg{packageArg()},
			},
			{
				Name:        "wordpress_users_list",
				Description: "List WordPress users of an installation",
				Args:        []registry.Arg{packageArg()},
			},
			{
				Name:        "wordpress_plugins_list",
				Description: "List installed WordPress plugins",
				Args:        []registry.Arg{packageArg()},
			},
			{
				Name:        "wordpress_plugin_toggle",
				Description: "Activate or deactivate a WordPress plugin",
				Args: []registry.Arg{
					packageArg(),
					{Name: "plugin", Type: "string", Description: "Plugin slug", Required: true},
					{Name: "active", Type: "boolean", Description: "Desired activation state", Required: true},
				},
			},
			{
				Name:        "wordpress_themes_list",
				Description: "List installed WordPress themes",
				Args:        []registry.Arg{packageArg()},
			},
			{
				Name:        "wordpress_theme_activate",
				Description: "Activate an installed WordPress theme",
				Args: []registry.Arg{
					packageArg(),
					{Name: "theme", Type: "string", Description: "Theme slug", Required: true},
				},
			},
			{
				Name:        "wordpress_staging_clone",
				Description: "Clone a WordPress site between live and staging",
				Args: []registry.Arg{
					packageArg(),
					{Name: "direction", Type: "string", Description: "Either live-to-staging or staging-to-live", Required: true},
				},
			},
		},
		Handlers: map[string]registry.Handler{
			"wordpress_install":        install(client),
			"wordpress_version":        version(client),
			"wordpress_users_list":     listUsers(client),
			"wordpress_plugins_list":   listPlugins(client),
			"wordpress_plugin_toggle":  togglePlugin(client),
			"wordpress_themes_list":    listThemes(client),
			"wordpress_theme_activate": activateTheme(client),
			"wordpress_staging_clone":  cloneStaging(client),
		},
	}
}

func wpPath(args map[string]interface{}, suffix string) string {
	return fmt.Sprintf("/package/%s/web/wordpress%s", registry.StringArg(args, "package_id"), suffix)
}

func install(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, wpPath(args, ""), map[string]interface{}{
			"title":       registry.StringArg(args, "site_title"),
			"admin_user":  registry.StringArg(args, "admin_user"),
			"admin_email": registry.StringArg(args, "admin_email"),
		})
	}
}

func version(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, wpPath(args, "/version"))
	}
}

func listUsers(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, wpPath(args, "/users"))
	}
}

func listPlugins(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, wpPath(args, "/plugins"))
	}
}

func togglePlugin(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		action := "deactivate"
		if registry.BoolArg(args, "active") {
			action = "activate"
		}
		return client.Post(ctx, wpPath(args, "/plugins"), map[string]interface{}{
			"name":   registry.StringArg(args, "plugin"),
			"action": action,
		})
	}
}

func listThemes(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, wpPath(args, "/themes"))
	}
}

func activateTheme(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, wpPath(args, "/themes"), map[string]interface{}{
			"name":   registry.StringArg(args, "theme"),
			"action": "activate",
		})
	}
}

func cloneStaging(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, wpPath(args, "/staging"), map[string]interface{}{
			"direction": registry.StringArg(args, "direction"),
		})
	}
}
