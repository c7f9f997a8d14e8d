package shared

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateState(t *testing.T) {
	first := GenerateState()
	second := GenerateState()

	if first == "" {
		t.Fatal("expected non-empty state")
	}
	if first == second {
		t.Error("expected unique state tokens")
	}
	if len(first) != 36 {
		t.Errorf("expected UUID-shaped state, got %q", first)
	}
}

func TestMarshalJSON(t *testing.T) {
	data := map[string]string{"key": "value"}

	t.Run("Compact", func(t *testing.T) {
		out, err := MarshalJSON(data, false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(out) != `{"key":"value"}` {
			t.Errorf("unexpected output %s", out)
		}
	})

	t.Run("Pretty", func(t *testing.T) {
		out, err := MarshalJSON(data, true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(string(out), "\n") {
			t.Error("pretty output should be indented")
		}
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf)
	logger.Info("hello")

	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected log output, got %q", buf.String())
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	logger.Info("to file")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file should exist: %v", err)
	}
	if !strings.Contains(string(content), "to file") {
		t.Errorf("expected log line in file, got %q", content)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf)
	child := WithLogger(logger, "component", "test")
	child.Info("tagged")

	out := buf.String()
	if !strings.Contains(out, "component") || !strings.Contains(out, "tagged") {
		t.Errorf("expected tagged output, got %q", out)
	}
}
