// Package agent provides an interactive MCP client for a running stackmcp
// server. It is a debugging companion: it connects over the same transports
// the server speaks, lists the exposed tools and lets an operator call them
// from a REPL.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// TransportType selects the wire transport used to reach the server.
type TransportType string

const (
	TransportSSE            TransportType = "sse"
	TransportStreamableHTTP TransportType = "streamable-http"
)

const requestTimeout = 30 * time.Second

// Client wraps an MCP client session against a stackmcp server.
type Client struct {
	endpoint  string
	transport TransportType
	version   string

	mcpClient client.MCPClient

	mu        sync.RWMutex
	toolCache []mcp.Tool
}

// NewClient creates a client for the given endpoint. Version is reported as
// the client version during the MCP handshake.
func NewClient(endpoint string, transport TransportType, version string) *Client {
	return &Client{
		endpoint:  endpoint,
		transport: transport,
		version:   version,
	}
}

// Connect establishes the transport, performs the MCP handshake and loads
// the initial tool list.
func (c *Client) Connect(ctx context.Context) error {
	var mcpClient client.MCPClient
	switch c.transport {
	case TransportSSE:
		sseClient, err := client.NewSSEMCPClient(c.endpoint)
		if err != nil {
			return fmt.Errorf("creating SSE client: %w", err)
		}
		if err := sseClient.Start(ctx); err != nil {
			return fmt.Errorf("starting SSE client: %w", err)
		}
		mcpClient = sseClient

	case TransportStreamableHTTP:
		httpClient, err := client.NewStreamableHttpClient(c.endpoint)
		if err != nil {
			return fmt.Errorf("creating streamable-http client: %w", err)
		}
		if err := httpClient.Start(ctx); err != nil {
			return fmt.Errorf("starting streamable-http client: %w", err)
		}
		mcpClient = httpClient

	default:
		return fmt.Errorf("unsupported transport type: %s", c.transport)
	}

	c.mcpClient = mcpClient

	if err := c.initialize(ctx); err != nil {
		c.mcpClient.Close()
		c.mcpClient = nil
		return fmt.Errorf("initialization failed: %w", err)
	}

	return c.refreshTools(ctx)
}

// Close tears down the transport.
func (c *Client) Close() error {
	if c.mcpClient == nil {
		return nil
	}
	return c.mcpClient.Close()
}

func (c *Client) initialize(ctx context.Context) error {
	req := mcp.InitializeRequest{
		Params: struct {
			ProtocolVersion string                 `json:"protocolVersion"`
			Capabilities    mcp.ClientCapabilities `json:"capabilities"`
			ClientInfo      mcp.Implementation     `json:"clientInfo"`
		}{
			ProtocolVersion: "2024-11-05",
			ClientInfo: mcp.Implementation{
				Name:    "stackmcp-agent",
				Version: c.version,
			},
			Capabilities: mcp.ClientCapabilities{},
		},
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	_, err := c.mcpClient.Initialize(timeoutCtx, req)
	return err
}

func (c *Client) refreshTools(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	result, err := c.mcpClient.ListTools(timeoutCtx, mcp.ListToolsRequest{})
	if err != nil {
		return fmt.Errorf("listing tools: %w", err)
	}

	tools := make([]mcp.Tool, len(result.Tools))
	copy(tools, result.Tools)
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })

	c.mu.Lock()
	c.toolCache = tools
	c.mu.Unlock()
	return nil
}

// Tools returns the cached tool list from the last refresh.
func (c *Client) Tools() []mcp.Tool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tools := make([]mcp.Tool, len(c.toolCache))
	copy(tools, c.toolCache)
	return tools
}

// FindTool returns the cached tool with the given name, or nil.
func (c *Client) FindTool(name string) *mcp.Tool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.toolCache {
		if c.toolCache[i].Name == name {
			return &c.toolCache[i]
		}
	}
	return nil
}

// CallTool executes a tool and returns the raw MCP result.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	if c.mcpClient == nil {
		return nil, fmt.Errorf("client not connected")
	}

	req := mcp.CallToolRequest{
		Params: struct {
			Name      string    `json:"name"`
			Arguments any       `json:"arguments,omitempty"`
			Meta      *mcp.Meta `json:"_meta,omitempty"`
		}{
			Name:      name,
			Arguments: args,
		},
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	result, err := c.mcpClient.CallTool(timeoutCtx, req)
	if err != nil {
		return nil, fmt.Errorf("tool call failed: %w", err)
	}
	return result, nil
}

// CallToolText executes a tool and returns the first text content item.
// A tool-level error result is surfaced as a Go error.
func (c *Client) CallToolText(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	result, err := c.CallTool(ctx, name, args)
	if err != nil {
		return "", err
	}

	text := ""
	for _, content := range result.Content {
		if textContent, ok := mcp.AsTextContent(content); ok {
			text = textContent.Text
			break
		}
	}

	if result.IsError {
		return "", fmt.Errorf("tool error: %s", text)
	}
	return text, nil
}

// prettyJSON reformats a JSON document for terminal display. Non-JSON text
// is returned unchanged.
func prettyJSON(text string) string {
	var parsed interface{}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return text
	}
	pretty, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return text
	}
	return string(pretty)
}
