package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"stackmcp/internal/stackhost"
)

func TestSetAndGetVersion(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	SetVersion("9.9.9")
	if GetVersion() != "9.9.9" {
		t.Errorf("Expected version 9.9.9, got %s", GetVersion())
	}
}

func TestGetExitCode(t *testing.T) {
	if code := getExitCode(errors.New("boom")); code != ExitCodeError {
		t.Errorf("Expected exit code %d for generic error, got %d", ExitCodeError, code)
	}

	credErr := fmt.Errorf("startup: %w", &stackhost.CredentialError{Reason: "no source"})
	if code := getExitCode(credErr); code != ExitCodeCredentials {
		t.Errorf("Expected exit code %d for credential error, got %d", ExitCodeCredentials, code)
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	expected := []string{"serve", "tools", "agent", "version", "self-update"}
	for _, name := range expected {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected subcommand %q to be registered", name)
		}
	}
}

func TestToolsCommandOutput(t *testing.T) {
	var buf bytes.Buffer
	toolsCmd.SetOut(&buf)
	defer toolsCmd.SetOut(nil)

	if err := runTools(toolsCmd, nil); err != nil {
		t.Fatalf("tools command failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"domain_list", "vps_list", "billing_balance"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected tools output to mention %q", want)
		}
	}
}
