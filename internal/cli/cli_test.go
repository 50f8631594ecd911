package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestCLI() *CLI {
	return New(io.Discard, log.ErrorLevel)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	want := []string{"generate", "validate", "serve", "cleanup", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestGenerateRequiresFlags(t *testing.T) {
	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error when required flags are missing")
	}
}

func TestGenerateWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{
		"generate",
		"--direction", "north",
		"--width", "12",
		"--length", "15",
		"--output", dir,
		"--no-cache",
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var artifacts []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".png" {
			artifacts = append(artifacts, e.Name())
		}
	}
	if len(artifacts) != 1 {
		t.Fatalf("got %d png artifacts, want 1", len(artifacts))
	}
}

func TestValidateRunsWithoutRendering(t *testing.T) {
	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{
		"validate",
		"--direction", "south",
		"--width", "8",
		"--length", "20",
		"--shape", "l_shaped",
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestCleanupMissingDirIsNoop(t *testing.T) {
	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{
		"cleanup",
		"--output", filepath.Join(t.TempDir(), "missing"),
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}

func TestCacheDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-test", appName) {
		t.Errorf("cacheDir = %q", dir)
	}
}
