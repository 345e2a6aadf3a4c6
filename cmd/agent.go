package cmd

import (
	"context"
	"fmt"

	"stackmcp/internal/agent"

	"github.com/spf13/cobra"
)

var (
	agentEndpoint  string
	agentTransport string
)

// agentCmd connects an interactive REPL to a running stackmcp server.
var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Interactively call tools on a running stackmcp server",
	Long: `Connects to a running stackmcp server over MCP and opens an
interactive shell for listing, inspecting and calling tools. Useful for
exercising the server the way an AI assistant would, without one.`,
	Args: cobra.NoArgs,
	RunE: runAgent,
}

func runAgent(cmd *cobra.Command, args []string) error {
	transport := agent.TransportType(agentTransport)
	if transport != agent.TransportSSE && transport != agent.TransportStreamableHTTP {
		return fmt.Errorf("unsupported transport %q (use sse or streamable-http)", agentTransport)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client := agent.NewClient(agentEndpoint, transport, GetVersion())
	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("connecting to %s: %w", agentEndpoint, err)
	}
	defer client.Close()

	return agent.NewREPL(client).Run(ctx)
}

func init() {
	rootCmd.AddCommand(agentCmd)

	agentCmd.Flags().StringVar(&agentEndpoint, "endpoint", "http://localhost:8587/mcp", "Endpoint of the running stackmcp server")
	agentCmd.Flags().StringVar(&agentTransport, "transport", "streamable-http", "Transport to connect with (streamable-http, sse)")
}
