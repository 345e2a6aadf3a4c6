// Package registry binds every domain module's tool descriptors and
// handlers to one dispatch surface with uniform validation and error
// semantics.
//
// Registration happens once at startup; duplicate tool names across modules
// fail construction rather than surfacing at call time. Dispatch is a
// stateless request/response cycle: argument presence and primitive types
// are validated against the declared schema before the handler runs, so
// validation always precedes I/O. The MCP binding in mcp.go is the single
// place that converts dispatch failures into protocol error results.
package registry
