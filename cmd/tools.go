package cmd

import (
	"sort"

	"stackmcp/internal/registry"
	"stackmcp/internal/tools"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var toolsModuleFilter string

// toolsCmd prints the static tool catalog. It needs no credentials and no
// running server: the catalog is fixed at build time.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools stackmcp exposes",
	Long: `Prints the full catalog of MCP tools this build of stackmcp serves,
grouped by module. Tool names shown here are unprefixed; a running server
prepends its configured tool prefix (default "stackhost_").`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	modules := tools.All(nil)
	sort.Slice(modules, func(i, j int) bool { return modules[i].Name < modules[j].Name })

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Module", "Tool", "Required Args", "Description"})

	for _, module := range modules {
		if toolsModuleFilter != "" && module.Name != toolsModuleFilter {
			continue
		}
		for _, tool := range module.Tools {
			t.AppendRow(table.Row{module.Name, tool.Name, requiredArgs(tool), tool.Description})
		}
	}

	t.Render()
	return nil
}

func requiredArgs(tool registry.Descriptor) string {
	names := ""
	for _, arg := range tool.Args {
		if !arg.Required {
			continue
		}
		if names != "" {
			names += ", "
		}
		names += arg.Name
	}
	return names
}

func init() {
	rootCmd.AddCommand(toolsCmd)

	toolsCmd.Flags().StringVar(&toolsModuleFilter, "module", "", "Only show tools from this module")
}
