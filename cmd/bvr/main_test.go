package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRootCommand(t *testing.T) {
	cmd := rootCmd

	if cmd == nil {
		t.Fatal("Expected root command to be created")
	}

	if cmd.Use != "bvr" {
		t.Errorf("Expected root command use to be 'bvr', got %s", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("Expected root command to have a short description")
	}

	if cmd.Long == "" {
		t.Error("Expected root command to have a long description")
	}
}

func TestRootCommand_Execute(t *testing.T) {
	// Test that the root command can be executed without arguments
	cmd := rootCmd
	cmd.SetArgs([]string{})

	// Capture output
	var buf bytes.Buffer
	cmd.SetOutput(&buf)

	// Execute the command
	err := cmd.Execute()

	// Should show help/usage
	if err != nil {
		t.Errorf("Expected no error for root command execution, got %v", err)
	}

	// Check that help is shown
	output := buf.String()
	if output == "" {
		t.Error("Expected root command to show help/usage")
	}
}

func TestRootCommand_Help(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	cmd.SetOutput(&buf)

	err := cmd.Execute()

	if err != nil {
		t.Errorf("Expected no error for help command, got %v", err)
	}

	output := buf.String()
	if output == "" {
		t.Error("Expected help command to show help text")
	}
}

func TestCommandSubcommands(t *testing.T) {
	// Test that all expected commands are registered
	expectedCommands := []string{
		"calculate",
		"validate",
		"compare",
		"breakeven",
		"sweep",
		"version",
	}

	cmd := rootCmd.Commands()
	for _, expectedCmd := range expectedCommands {
		found := false
		for _, c := range cmd {
			if c.Name() == expectedCmd {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected command '%s' to be registered with root command", expectedCmd)
		}
	}
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	if err := os.WriteFile(path, []byte("scenarios: []\n"), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	if !fileExists(path) {
		t.Errorf("Expected %s to exist", path)
	}

	if fileExists(filepath.Join(t.TempDir(), "missing.yaml")) {
		t.Error("Expected missing.yaml to not exist")
	}
}

func TestResolveInput_Defaults(t *testing.T) {
	input, err := resolveInput("", "")
	if err != nil {
		t.Fatalf("Expected defaults when no file is given, got error: %v", err)
	}
	if input == nil {
		t.Fatal("Expected a non-nil input")
	}
	if input.HomePrice.IsZero() {
		t.Error("Expected default input to have a home price")
	}
}

func TestResolveInput_ScenarioWithoutFile(t *testing.T) {
	if _, err := resolveInput("", "Baseline"); err == nil {
		t.Error("Expected an error when --scenario is given without a file")
	}
}

func TestResolveInput_FromFile(t *testing.T) {
	content := `scenarios:
  - name: Starter Home
    home_price: 350000
  - name: Bigger House
    home_price: 650000
`
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	// First scenario by default
	input, err := resolveInput(path, "")
	if err != nil {
		t.Fatalf("Expected first scenario, got error: %v", err)
	}
	if got := input.HomePrice.IntPart(); got != 350000 {
		t.Errorf("Expected default scenario home price 350000, got %d", got)
	}

	// Named scenario
	input, err = resolveInput(path, "Bigger House")
	if err != nil {
		t.Fatalf("Expected named scenario, got error: %v", err)
	}
	if got := input.HomePrice.IntPart(); got != 650000 {
		t.Errorf("Expected named scenario home price 650000, got %d", got)
	}

	// Unknown scenario
	if _, err := resolveInput(path, "Castle"); err == nil {
		t.Error("Expected an error for an unknown scenario name")
	}
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := loadConfiguration("")
	if err != nil {
		t.Fatalf("Expected synthesized configuration, got error: %v", err)
	}
	if len(cfg.Scenarios) != 1 {
		t.Fatalf("Expected exactly one synthesized scenario, got %d", len(cfg.Scenarios))
	}
	if cfg.Scenarios[0].Name != "Defaults" {
		t.Errorf("Expected synthesized scenario to be named 'Defaults', got %s", cfg.Scenarios[0].Name)
	}
}

func TestRootCommandFlags(t *testing.T) {
	cmd := rootCmd

	// Test help flag (should exist by default in cobra)
	helpFlag := cmd.Flag("help")
	if helpFlag == nil {
		t.Error("Expected help flag to exist on root command")
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"invalid-command"})

	var buf bytes.Buffer
	cmd.SetOutput(&buf)

	err := cmd.Execute()

	// Should show error for invalid command
	if err == nil {
		t.Error("Expected error for invalid command")
	}
}

func TestRootCommand_InvalidFlag(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"--invalid-flag"})

	var buf bytes.Buffer
	cmd.SetOutput(&buf)

	err := cmd.Execute()

	// Should show error for invalid flag
	if err == nil {
		t.Error("Expected error for invalid flag")
	}
}
