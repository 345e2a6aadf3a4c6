package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/chzyer/readline"
	"github.com/mark3labs/mcp-go/mcp"
)

// REPL is an interactive shell over a connected Client.
type REPL struct {
	client *Client
	rl     *readline.Instance
}

// NewREPL creates a REPL for an already connected client.
func NewREPL(client *Client) *REPL {
	return &REPL{client: client}
}

// Run enters the interactive loop until EOF or an exit command.
func (r *REPL) Run(ctx context.Context) error {
	config := &readline.Config{
		Prompt:          "stackmcp> ",
		HistoryFile:     filepath.Join("/tmp", ".stackmcp_agent_history"),
		AutoComplete:    r.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()
	r.rl = rl

	fmt.Printf("Connected. %d tools available. Type 'help' for commands.\n", len(r.client.Tools()))

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		if err := r.execute(ctx, line); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func (r *REPL) completer() *readline.PrefixCompleter {
	toolNames := func(string) []string {
		tools := r.client.Tools()
		names := make([]string, len(tools))
		for i, tool := range tools {
			names[i] = tool.Name
		}
		return names
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("list"),
		readline.PcItem("describe", readline.PcItemDynamic(toolNames)),
		readline.PcItem("call", readline.PcItemDynamic(toolNames)),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

func (r *REPL) execute(ctx context.Context, line string) error {
	parts := strings.SplitN(line, " ", 3)
	switch parts[0] {
	case "help":
		r.printHelp()
		return nil
	case "list":
		r.printTools()
		return nil
	case "describe":
		if len(parts) < 2 {
			return fmt.Errorf("usage: describe <tool>")
		}
		return r.describeTool(parts[1])
	case "call":
		if len(parts) < 2 {
			return fmt.Errorf("usage: call <tool> [json-args]")
		}
		rawArgs := "{}"
		if len(parts) == 3 {
			rawArgs = parts[2]
		}
		return r.callTool(ctx, parts[1], rawArgs)
	default:
		return fmt.Errorf("unknown command %q, type 'help'", parts[0])
	}
}

func (r *REPL) printHelp() {
	fmt.Println(`Commands:
  list                     List available tools
  describe <tool>          Show a tool's arguments
  call <tool> [json-args]  Call a tool, e.g. call stackhost_domain_list
  help                     Show this help
  exit                     Leave the agent`)
}

func (r *REPL) printTools() {
	for _, tool := range r.client.Tools() {
		fmt.Printf("  %-40s %s\n", tool.Name, tool.Description)
	}
}

func (r *REPL) describeTool(name string) error {
	tool := r.client.FindTool(name)
	if tool == nil {
		return fmt.Errorf("unknown tool %q", name)
	}

	fmt.Printf("%s\n  %s\n", tool.Name, tool.Description)
	printSchema(tool.InputSchema)
	return nil
}

func printSchema(schema mcp.ToolInputSchema) {
	if len(schema.Properties) == 0 {
		fmt.Println("  No arguments.")
		return
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	fmt.Println("  Arguments:")
	for name, raw := range schema.Properties {
		prop, _ := raw.(map[string]interface{})
		propType, _ := prop["type"].(string)
		description, _ := prop["description"].(string)
		marker := ""
		if required[name] {
			marker = " (required)"
		}
		fmt.Printf("    %-24s %s%s  %s\n", name, propType, marker, description)
	}
}

func (r *REPL) callTool(ctx context.Context, name, rawArgs string) error {
	var args map[string]interface{}
	if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
		return fmt.Errorf("arguments must be a JSON object: %w", err)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Calling %s...", name)
	s.Start()

	text, err := r.client.CallToolText(ctx, name, args)
	s.Stop()
	if err != nil {
		return err
	}

	fmt.Println(prettyJSON(text))
	return nil
}
