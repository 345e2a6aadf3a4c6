// Package database exposes MySQL database and database-user management on
// hosting packages.
package database

import (
	"context"
	"fmt"

	"stackmcp/internal/registry"
	"stackmcp/internal/stackhost"
)

func packageArg() registry.Arg {
	return registry.Arg{Name: "package_id", Type: "string", Description: "Package identifier", Required: true}
}

// Module contributes the database tools.
func Module(client *stackhost.Client) registry.Module {
	return registry.Module{
		Name: "database",
		Tools: []registry.Descriptor{
			{
				Name:        "database_list",
				Description: "List MySQL databases on a hosting package",
				Args:        []registry.Arg{packageArg()},
			},
			{
				Name:        "database_create",
				Description: "Create a MySQL database",
				Args: []registry.Arg{
					packageArg(),
					{Name: "name", Type: "string", Description: "Database name", Required: true},
				},
			},
			{
				Name:        "database_delete",
				Description: "Drop a MySQL database and all its data",
				Args: []registry.Arg{
					packageArg(),
					{Name: "name", Type: "string", Description: "Database name", Required: true},
				},
			},
			{
				Name:        "database_user_create",
				Description: "Create a MySQL user and grant it access to a database",
				Args: []registry.Arg{
					packageArg(),
					{Name: "database", Type: "string", Description: "Database name", Required: true},
					{Name: "username", Type: "string", Description: "New username", Required: true},
					{Name: "password", Type: "string", Description: "New user's password", Required: true},
				},
			},
		},
		Handlers: map[string]registry.Handler{
			"database_list":        list(client),
			"database_create":      create(client),
			"database_delete":      remove(client),
			"database_user_create": createUser(client),
		},
	}
}

func dbPath(args map[string]interface{}, suffix string) string {
	return fmt.Sprintf("/package/%s/web/mysql%s", registry.StringArg(args, "package_id"), suffix)
}

func list(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, dbPath(args, "/databases"))
	}
}

func create(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, dbPath(args, "/databases"), map[string]interface{}{
			"name": registry.StringArg(args, "name"),
		})
	}
}

func remove(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Delete(ctx, dbPath(args, "/databases/"+registry.StringArg(args, "name")))
	}
}

func createUser(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, dbPath(args, "/users"), map[string]interface{}{
			"database": registry.StringArg(args, "database"),
			"username": registry.StringArg(args, "username"),
			"password": registry.StringArg(args, "password"),
		})
	}
}
