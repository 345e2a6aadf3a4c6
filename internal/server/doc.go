// Package server hosts the MCP serving surface of stackmcp.
//
// It binds the tool registry to an MCP server instance and runs it on one
// of three transports: streamable-http, SSE or stdio. The server carries no
// per-session state; everything a tool call needs travels in the call
// itself or lives in the shared stackhost client.
package server
