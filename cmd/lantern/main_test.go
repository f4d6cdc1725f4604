package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LANTERN_LOG", "")

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLevelsDefaultThreshold(t *testing.T) {
	out, err := runCommand(t, "--config", filepath.Join(t.TempDir(), "config.toml"), "levels")
	if err != nil {
		t.Fatalf("levels returned error: %v", err)
	}
	if !strings.Contains(out, "Resolved threshold: warn") {
		t.Fatalf("expected warn threshold in release build, got:\n%s", out)
	}
}

func TestLevelsVerboseFlags(t *testing.T) {
	out, err := runCommand(t, "--config", filepath.Join(t.TempDir(), "config.toml"), "-vv", "levels")
	if err != nil {
		t.Fatalf("levels returned error: %v", err)
	}
	if !strings.Contains(out, "Resolved threshold: debug") {
		t.Fatalf("expected -vv to resolve debug, got:\n%s", out)
	}
	if !strings.Contains(out, "(none)") {
		t.Fatalf("expected flag table, got:\n%s", out)
	}
}

func TestLevelsQuietFlags(t *testing.T) {
	out, err := runCommand(t, "--config", filepath.Join(t.TempDir(), "config.toml"), "-qq", "levels")
	if err != nil {
		t.Fatalf("levels returned error: %v", err)
	}
	if !strings.Contains(out, "Resolved threshold: off") {
		t.Fatalf("expected -qq to silence output, got:\n%s", out)
	}
}

func TestLevelsExplicitFilter(t *testing.T) {
	out, err := runCommand(t, "--config", filepath.Join(t.TempDir(), "config.toml"), "-l", "app=trace", "levels")
	if err != nil {
		t.Fatalf("levels returned error: %v", err)
	}
	if !strings.Contains(out, "Explicit filter overrides the threshold: app=trace") {
		t.Fatalf("expected filter passthrough, got:\n%s", out)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("config init returned error: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Fatalf("unexpected init output:\n%s", out)
	}

	out, err = runCommand(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show returned error: %v", err)
	}
	if !strings.Contains(out, "root_module") {
		t.Fatalf("expected effective config, got:\n%s", out)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if _, err := runCommand(t, "--config", path, "config", "init"); err != nil {
		t.Fatalf("first init returned error: %v", err)
	}
	if _, err := runCommand(t, "--config", path, "config", "init"); err == nil {
		t.Fatal("expected second init to refuse overwriting")
	}
}

func TestDemoRunsSilenced(t *testing.T) {
	if _, err := runCommand(t, "--config", filepath.Join(t.TempDir(), "config.toml"), "-qqqqq", "demo"); err != nil {
		t.Fatalf("demo returned error: %v", err)
	}
}

func TestRejectsUnknownColor(t *testing.T) {
	_, err := runCommand(t, "--config", filepath.Join(t.TempDir(), "config.toml"), "--color", "rainbow", "demo")
	if err == nil || !strings.Contains(err.Error(), "color") {
		t.Fatalf("expected color flag error, got %v", err)
	}
}
