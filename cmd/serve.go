package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stackmcp/internal/config"
	"stackmcp/internal/registry"
	"stackmcp/internal/server"
	"stackmcp/internal/stackhost"
	"stackmcp/internal/tools"
	"stackmcp/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	serveHost       string
	servePort       int
	serveTransport  string
	serveConfigPath string
	serveDebug      bool
)

// serveCmd starts the MCP server. This is the main command of stackmcp.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stackmcp MCP server",
	Long: `Starts the MCP server exposing the StackHost API as tools.

Credentials are resolved once at startup, from the STACKHOST_API_KEY,
STACKHOST_OAUTH_KEY and STACKHOST_COMBINED_KEY environment variables, or
from a stackhost-keys.txt file in the working directory when the
environment is incomplete. Startup fails when neither source yields a
complete credential set.

The server supports three transports: streamable-http (default), sse and
stdio. With stdio the server speaks MCP on standard input and output,
which is what most AI assistant integrations expect.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logLevel := logging.LevelInfo
	if serveDebug {
		logLevel = logging.LevelDebug
	}
	// On stdio the terminal channel carries the protocol, so logs must go
	// to stderr regardless of transport. stderr is safe for all three.
	logging.Init(logLevel, os.Stderr)

	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}
	if cmd.Flags().Changed("transport") {
		cfg.Server.Transport = serveTransport
	}

	creds, err := stackhost.ResolveCredentials()
	if err != nil {
		return err
	}

	clientOpts := []stackhost.Option{}
	if cfg.Server.BaseURL != "" {
		clientOpts = append(clientOpts, stackhost.WithBaseURL(cfg.Server.BaseURL))
	}
	client := stackhost.NewClient(creds, clientOpts...)

	reg := registry.New()
	for _, module := range tools.All(client) {
		if err := reg.Register(module); err != nil {
			return fmt.Errorf("registering %s tools: %w", module.Name, err)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	srv := server.New(cfg.Server, reg, GetVersion())
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}

	logging.Info("Serve", "stackmcp %s serving %d tools at %s", GetVersion(), len(reg.Tools()), srv.Endpoint())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logging.Info("Serve", "Received %s, shutting down", sig)
	case <-ctx.Done():
	}

	return srv.Stop(context.Background())
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to bind the server to")
	serveCmd.Flags().IntVar(&servePort, "port", 8587, "Port to bind the server to")
	serveCmd.Flags().StringVar(&serveTransport, "transport", config.TransportStreamableHTTP, "Transport to serve on (streamable-http, sse, stdio)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Path to a yaml configuration file")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
}
