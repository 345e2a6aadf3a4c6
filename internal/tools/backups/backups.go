// Package backups exposes backup listing, restoration and scheduling for
// hosting packages.
package backups

import (
	"context"
	"fmt"

	"stackmcp/internal/registry"
	"stackmcp/internal/stackhost"
)

func packageArg() registry.Arg {
	return registry.Arg{Name: "package_id", Type: "string", Description: "Package identifier", Required: true}
}

// Module contributes the backup tools.
func Module(client *stackhost.Client) registry.Module {
	return registry.Module{
		Name: "backups",
		Tools: []registry.Descriptor{
			{
				Name:        "backup_list",
				Description: "List available backups of a hosting package",
				Args:        []registry.Arg{packageArg()},
			},
			{
				Name:        "backup_take",
				Description: "Take an on-demand backup of a hosting package",
				Args:        []registry.Arg{packageArg()},
			},
			{
				Name:        "backup_restore",
				Description: "Restore a hosting package from a backup; overwrites current data",
				Args: []registry.Arg{
					packageArg(),
					{Name: "backup_id", Type: "string", Description: "Backup identifier", Required: true},
					{Name: "scope", Type: "string", Description: "What to restore: files, databases or full (default full)"},
				},
			},
			{
				Name:        "backup_schedule_set",
				Description: "Set the automatic backup schedule of a package",
				Args: []registry.Arg{
					packageArg(),
					{Name: "frequency", Type: "string", Description: "Schedule frequency: daily or weekly", Required: true},
					{Name: "retention_days", Type: "number", Description: "How many days to retain backups"},
				},
			},
		},
		Handlers: map[string]registry.Handler{
			"backup_list":         list(client),
			"backup_take":         take(client),
			"backup_restore":      restore(client),
			"backup_schedule_set": setSchedule(client),
		},
	}
}

func backupPath(args map[string]interface{}, suffix string) string {
	return fmt.Sprintf("/package/%s/web/timeline%s", registry.StringArg(args, "package_id"), suffix)
}

func list(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, backupPath(args, ""))
	}
}

func take(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, backupPath(args, ""), map[string]interface{}{})
	}
}

func restore(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, backupPath(args, "/restore"), map[string]interface{}{
			"backup_id": registry.StringArg(args, "backup_id"),
			"scope":     registry.StringArgOr(args, "scope", "full"),
		})
	}
}

func setSchedule(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		body := map[string]interface{}{
			"frequency": registry.StringArg(args, "frequency"),
		}
		if retention := registry.IntArg(args, "retention_days"); retention > 0 {
			body["retention_days"] = retention
		}
		return client.Post(ctx, backupPath(args, "/schedule"), body)
	}
}
