package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"stackmcp/internal/config"
	"stackmcp/internal/registry"
	"stackmcp/pkg/logging"

	"github.com/coreos/go-systemd/v22/daemon"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Server exposes the tool registry over MCP on one of the supported
// transports. Each inbound tool call is a stateless request/response
// cycle; the only cross-call state lives in the stackhost client the
// handlers share.
type Server struct {
	cfg      config.ServerConfig
	registry *registry.Registry
	version  string

	server               *mcpserver.MCPServer
	sseServer            *mcpserver.SSEServer
	streamableHTTPServer *mcpserver.StreamableHTTPServer
	stdioServer          *mcpserver.StdioServer

	ctx        context.Context
	cancelFunc context.CancelFunc
	mu         sync.RWMutex
}

// New creates a server for the given registry. Start must be called before
// the server accepts connections.
func New(cfg config.ServerConfig, reg *registry.Registry, version string) *Server {
	return &Server{
		cfg:      cfg,
		registry: reg,
		version:  version,
	}
}

// Start registers all tools with a fresh MCP server and launches the
// configured transport. The tool set is static for the process lifetime;
// there is no dynamic capability refresh.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.server != nil {
		s.mu.Unlock()
		return fmt.Errorf("server already started")
	}

	s.ctx, s.cancelFunc = context.WithCancel(ctx)

	mcpServer := mcpserver.NewMCPServer(
		"stackmcp",
		s.version,
		mcpserver.WithToolCapabilities(false),
	)
	s.server = mcpServer

	tools := s.registry.ServerTools(s.cfg.ToolPrefix)
	mcpServer.AddTools(tools...)
	logging.Info("Server", "Registered %d tools with prefix %q", len(tools), s.cfg.ToolPrefix)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	switch s.cfg.Transport {
	case config.TransportSSE:
		logging.Info("Server", "Starting MCP server with SSE transport on %s", addr)
		baseURL := fmt.Sprintf("http://%s", addr)
		s.sseServer = mcpserver.NewSSEServer(
			s.server,
			mcpserver.WithBaseURL(baseURL),
			mcpserver.WithSSEEndpoint("/sse"),
			mcpserver.WithMessageEndpoint("/message"),
			mcpserver.WithKeepAlive(true),
			mcpserver.WithKeepAliveInterval(30*time.Second),
		)
		sseServer := s.sseServer
		go func() {
			if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("Server", err, "SSE server error")
			}
		}()

	case config.TransportStdio:
		logging.Info("Server", "Starting MCP server with stdio transport")
		s.stdioServer = mcpserver.NewStdioServer(s.server)
		stdioServer := s.stdioServer
		serveCtx := s.ctx
		go func() {
			if err := stdioServer.Listen(serveCtx, os.Stdin, os.Stdout); err != nil {
				logging.Error("Server", err, "Stdio server error")
			}
		}()

	case config.TransportStreamableHTTP:
		fallthrough
	default:
		logging.Info("Server", "Starting MCP server with streamable-http transport on %s", addr)
		s.streamableHTTPServer = mcpserver.NewStreamableHTTPServer(s.server)
		streamableServer := s.streamableHTTPServer
		go func() {
			if err := streamableServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("Server", err, "Streamable HTTP server error")
			}
		}()
	}

	s.mu.Unlock()

	// Under systemd, report readiness once the transport goroutine is
	// launched. Outside systemd this is a no-op.
	if sent, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		logging.Warn("Server", "sd_notify failed: %v", err)
	} else if sent {
		logging.Debug("Server", "Notified systemd of readiness")
	}

	return nil
}

// Stop shuts the transport down and releases the MCP server.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.server == nil {
		s.mu.Unlock()
		return fmt.Errorf("server not started")
	}

	logging.Info("Server", "Stopping MCP server")

	cancelFunc := s.cancelFunc
	sseServer := s.sseServer
	streamableServer := s.streamableHTTPServer
	s.mu.Unlock()

	if cancelFunc != nil {
		cancelFunc()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if sseServer != nil {
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down SSE server")
		}
	}

	if streamableServer != nil {
		if err := streamableServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down streamable HTTP server")
		}
	}

	// The stdio server stops on context cancellation.

	s.mu.Lock()
	s.server = nil
	s.sseServer = nil
	s.streamableHTTPServer = nil
	s.stdioServer = nil
	s.mu.Unlock()

	return nil
}

// Endpoint returns the server's endpoint URL for the configured transport.
func (s *Server) Endpoint() string {
	switch s.cfg.Transport {
	case config.TransportSSE:
		return fmt.Sprintf("http://%s:%d/sse", s.cfg.Host, s.cfg.Port)
	case config.TransportStdio:
		return "stdio"
	default:
		return fmt.Sprintf("http://%s:%d/mcp", s.cfg.Host, s.cfg.Port)
	}
}
