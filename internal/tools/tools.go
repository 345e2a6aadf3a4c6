// Package tools assembles the domain modules exposed by stackmcp. Each
// subpackage wraps one functional area of the StackHost API and contributes
// its tool descriptors and handlers; this package only wires them together
// for the process root.
package tools

import (
	"stackmcp/internal/registry"
	"stackmcp/internal/stackhost"
	"stackmcp/internal/tools/backups"
	"stackmcp/internal/tools/billing"
	"stackmcp/internal/tools/cdn"
	"stackmcp/internal/tools/database"
	"stackmcp/internal/tools/dns"
	"stackmcp/internal/tools/domains"
	"stackmcp/internal/tools/email"
	"stackmcp/internal/tools/hosting"
	"stackmcp/internal/tools/ssl"
	"stackmcp/internal/tools/vps"
	"stackmcp/internal/tools/wordpress"
)

// All returns every domain module, in the order they appear in the tool
// catalog.
func All(client *stackhost.Client) []registry.Module {
	return []registry.Module{
		domains.Module(client),
		dns.Module(client),
		hosting.Module(client),
		wordpress.Module(client),
		vps.Module(client),
		email.Module(client),
		cdn.Module(client),
		backups.Module(client),
		database.Module(client),
		ssl.Module(client),
		billing.Module(client),
	}
}
