// Package email exposes mailbox, forwarder and spam policy management on
// hosting packages.
package email

import (
	"context"
	"fmt"

	"stackmcp/internal/registry"
	"stackmcp/internal/stackhost"
)

func packageArg() registry.Arg {
	return registry.Arg{Name: "package_id", Type: "string", Description: "Package identifier", Required: true}
}

// Module contributes the email management tools.
func Module(client *stackhost.Client) registry.Module {
	return registry.Module{
		Name: "email",
		Tools: []registry.Descriptor{
			{
				Name:        "email_accounts_list",
				Description: "List mailboxes on a hosting package",
				Args:        []registry.Arg{packageArg()},
			},
			{
				Name:        "email_account_create",
				Description: "Create a mailbox on a hosting package",
				Args: []registry.Arg{
					packageArg(),
					{Name: "address", Type: "string", Description: "Full email address", Required: true},
					{Name: "password", Type: "string", Description: "Mailbox password", Required: true},
					{Name: "quota_mb", Type: "number", Description: "Mailbox quota in megabytes"},
				},
			},
			{
				Name:        "email_account_delete",
				Description: "Delete a mailbox and all stored mail",
				Args: []registry.Arg{
					packageArg(),
					{Name: "address", Type: "string", Description: "Full email address", Required: true},
				},
			},
			{
				Name:        "email_forwarder_create",
				Description: "Create an email forwarder",
				Args: []registry.Arg{
					packageArg(),
					{Name: "source", Type: "string", Description: "Source address", Required: true},
					{Name: "destinations", Type: "array", Description: "Destination addresses", Required: true},
				},
			},
			{
				Name:        "email_spam_policy_set",
				Description: "Set the spam filtering policy of a package",
				Args: []registry.Arg{
					packageArg(),
					{Name: "level", Type: "string", Description: "Policy level: off, tag or reject", Required: true},
				},
			},
		},
		Handlers: map[string]registry.Handler{
			"email_accounts_list":    listAccounts(client),
			"email_account_create":   createAccount(client),
			"email_account_delete":   deleteAccount(client),
			"email_forwarder_create": createForwarder(client),
			"email_spam_policy_set":  setSpamPolicy(client),
		},
	}
}

func emailPath(args map[string]interface{}, suffix string) string {
	return fmt.Sprintf("/package/%s/email%s", registry.StringArg(args, "package_id"), suffix)
}

func listAccounts(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Get(ctx, emailPath(args, "/mailbox"))
	}
}

func createAccount(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		body := map[string]interface{}{
			"address":  registry.StringArg(args, "address"),
			"password": registry.StringArg(args, "password"),
		}
		if quota := registry.IntArg(args, "quota_mb"); quota > 0 {
			body["quota"] = quota
		}
		return client.Post(ctx, emailPath(args, "/mailbox"), body)
	}
}

func deleteAccount(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Delete(ctx, emailPath(args, "/mailbox/"+registry.StringArg(args, "address")))
	}
}

func createForwarder(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, emailPath(args, "/forwarder"), map[string]interface{}{
			"source":       registry.StringArg(args, "source"),
			"destinations": registry.ArrayArg(args, "destinations"),
		})
	}
}

func setSpamPolicy(client *stackhost.Client) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return client.Post(ctx, emailPath(args, "/spam-policy"), map[string]interface{}{
			"level": registry.StringArg(args, "level"),
		})
	}
}
