// Package logging provides subsystem-tagged structured logging for stackmcp.
//
// It is a thin wrapper around log/slog that attaches a subsystem attribute to
// every entry so log output can be filtered per component (Transport,
// Registry, Server, ...). The package is initialized once at startup via
// Init; log calls before initialization are silently dropped.
//
// Credential material must never be passed to any log call. The credential
// resolver and transport client only log the source of credentials and
// request metadata (method, path, status), never header or token values.
package logging
