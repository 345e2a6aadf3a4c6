package cmd

import (
	"errors"
	"os"

	"stackmcp/internal/stackhost"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeCredentials indicates no complete credential source was found.
	ExitCodeCredentials = 2
)

// rootCmd represents the base command for the stackmcp application.
var rootCmd = &cobra.Command{
	Use:   "stackmcp",
	Short: "Expose the StackHost hosting API as MCP tools",
	Long: `stackmcp serves the StackHost hosting provider's REST API as a set of
MCP tools, so AI assistants can manage domains, DNS, hosting packages,
VPS instances, email, certificates and billing on a StackHost account.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command. Called from the main
// package to inject the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "stackmcp version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode maps an error to a semantic exit code for scripting.
func getExitCode(err error) int {
	if isCredentialError(err) {
		return ExitCodeCredentials
	}
	return ExitCodeError
}

func isCredentialError(err error) bool {
	var credErr *stackhost.CredentialError
	return errors.As(err, &credErr)
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
