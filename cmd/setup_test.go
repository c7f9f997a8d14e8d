package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	mocks "github.com/moodriver/encore/internal/testing"
)

func TestSetupConfig(t *testing.T) {
	wd := mocks.MustGetwd(t)
	mocks.MustChdir(t, t.TempDir())
	defer mocks.MustChdir(t, wd)

	var buf bytes.Buffer
	runner := NewRunner(RunnerOpts{Output: &buf})
	app := &cli.Command{Name: "encore", Commands: runner.register()}

	t.Run("Writes Starter Config", func(t *testing.T) {
		if err := app.Run(context.Background(), []string{"encore", "setup", "config"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		mocks.AssertFileExists(t, "config.toml")

		content := mocks.MustReadFile(t, "config.toml")
		if !strings.Contains(content, "[credentials.spotify]") {
			t.Error("starter config should carry the spotify section")
		}
		if !strings.Contains(content, "[credentials.llm]") {
			t.Error("starter config should carry the llm section")
		}

		if !strings.Contains(buf.String(), "✓ Config written to config.toml") {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("Refuses To Overwrite", func(t *testing.T) {
		if err := app.Run(context.Background(), []string{"encore", "setup", "config"}); err == nil {
			t.Error("expected error when config already exists")
		}
	})
}
