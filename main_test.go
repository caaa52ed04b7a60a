package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCmd 执行命令行并返回标准输出
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, verbose = "", false

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"window", "term", "config"} {
		if sub, _, err := cmd.Find([]string{name}); err != nil || sub.Name() != name {
			t.Errorf("subcommand %q not found", name)
		}
	}
}

func TestConfigCommandDefault(t *testing.T) {
	out, err := runCmd(t, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	for _, want := range []string{"returnSpeed: 500", "idleRewind: tick", "purrOnsetSeconds: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommandOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet.yaml")
	if err := os.WriteFile(path, []byte("supplies:\n  returnSpeed: 250\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runCmd(t, "--config", path, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "returnSpeed: 250") {
		t.Errorf("override not applied:\n%s", out)
	}
}

func TestConfigCommandInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet.yaml")
	if err := os.WriteFile(path, []byte("animation:\n  fps: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCmd(t, "--config", path, "config"); err == nil {
		t.Fatal("expected error for negative fps")
	}
}

func TestConfigCommandMissingFile(t *testing.T) {
	if _, err := runCmd(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "config"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
