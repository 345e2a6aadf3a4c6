package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// ServerTools converts every registered tool into an MCP server tool,
// applying the configured exposure prefix. The handler wraps Dispatch and
// is the single place where classified errors become protocol error
// results; handlers and lower layers below this point throw freely.
func (r *Registry) ServerTools(prefix string) []mcpserver.ServerTool {
	descriptors := r.Tools()

	tools := make([]mcpserver.ServerTool, 0, len(descriptors))
	for _, descriptor := range descriptors {
		tools = append(tools, mcpserver.ServerTool{
			Tool: mcp.Tool{
				Name:        prefix + descriptor.Name,
				Description: descriptor.Description,
				InputSchema: toInputSchema(descriptor.Args),
			},
			Handler: r.createToolHandler(descriptor.Name),
		})
	}
	return tools
}

// createToolHandler wraps Dispatch for one tool in an MCP-compatible
// handler function.
func (r *Registry) createToolHandler(name string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]interface{}{}
		if req.Params.Arguments != nil {
			if argsMap, ok := req.Params.Arguments.(map[string]interface{}); ok {
				args = argsMap
			}
		}

		result, err := r.Dispatch(ctx, name, args)
		if err != nil {
			return mcp.NewToolResultError(classifyDispatchError(err)), nil
		}

		return toMCPResult(result)
	}
}

// classifyDispatchError renders a dispatch failure as the message exposed
// to the calling agent: request defects keep their descriptive message,
// everything else (including propagated transport and context errors)
// becomes a single internal error carrying the original cause. No stack
// structure ever leaks.
func classifyDispatchError(err error) string {
	var unknownErr *UnknownToolError
	var missingErr *MissingArgumentsError
	var validationErr *ValidationError

	switch {
	case errors.As(err, &unknownErr), errors.As(err, &missingErr), errors.As(err, &validationErr):
		return err.Error()
	default:
		return fmt.Sprintf("internal error: %v", err)
	}
}

// toMCPResult wraps a successful payload as the protocol's content
// envelope: the structured payload serialized as the single content item.
func toMCPResult(result *Result) (*mcp.CallToolResult, error) {
	encoded, err := json.MarshalIndent(result.Payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("internal error: encoding result: %v", err)), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(encoded))},
	}, nil
}

// toInputSchema converts declared args to the JSON Schema shape MCP
// clients expect.
func toInputSchema(args []Arg) mcp.ToolInputSchema {
	properties := make(map[string]interface{})
	required := []string{}

	for _, arg := range args {
		properties[arg.Name] = map[string]interface{}{
			"type":        arg.Type,
			"description": arg.Description,
		}
		if arg.Required {
			required = append(required, arg.Name)
		}
	}

	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}
