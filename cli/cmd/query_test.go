package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "manifest.set")

	err := os.WriteFile(path, []byte(src), 0o600)
	if err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	return path
}

func TestQuery_Arithmetic(t *testing.T) {
	path := writeManifest(t, "set retries = 0o3 set backoff = 0o12")

	cmd := Query{Expr: "retries * backoff", Source: path}

	err := cmd.Run(t.Context())
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
}

func TestQuery_BadExpression(t *testing.T) {
	path := writeManifest(t, "set a = 0o1")

	cmd := Query{Expr: "a +* 1", Source: path}

	err := cmd.Run(t.Context())
	if err == nil {
		t.Fatal("expected expression compile error")
	}
}

func TestQuery_CompileErrorPropagates(t *testing.T) {
	path := writeManifest(t, "set a = b")

	cmd := Query{Expr: "a", Source: path}

	err := cmd.Run(t.Context())
	if err == nil {
		t.Fatal("expected compile error")
	}
}

func TestFormatResult(t *testing.T) {
	if got := formatResult("plain"); got != "plain" {
		t.Errorf("expected bare string, got %q", got)
	}

	if got := formatResult(int64(42)); got != "42" {
		t.Errorf("expected 42, got %q", got)
	}

	if got := formatResult([]any{int64(1), "x"}); got != "[1 x]" {
		t.Errorf("expected [1 x], got %q", got)
	}
}
