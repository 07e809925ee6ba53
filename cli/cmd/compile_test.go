package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/setcomp/lang"
)

func TestCompile_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "manifest.set")
	output := filepath.Join(dir, "out.yaml")

	src := `
%{ device manifest %}
set name  = @"gadget"
set port  = 0o50
set hosts = (list @"alpha" @"beta")
`

	err := os.WriteFile(input, []byte(src), 0o600)
	if err != nil {
		t.Fatalf("write input: %v", err)
	}

	cmd := Compile{Input: input, Output: output, Format: "yaml", Indent: 2}

	err = cmd.Run(t.Context())
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	want := "name: gadget\nport: 40\nhosts:\n- alpha\n- beta\n"
	if string(data) != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, data)
	}
}

func TestCompile_JSONFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "manifest.set")
	output := filepath.Join(dir, "out.json")

	err := os.WriteFile(input, []byte("set z = 0o1 set a = 0o2"), 0o600)
	if err != nil {
		t.Fatalf("write input: %v", err)
	}

	cmd := Compile{Input: input, Output: output, Format: "json", Indent: 0}

	err = cmd.Run(t.Context())
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	if strings.TrimSpace(string(data)) != `{"z":1,"a":2}` {
		t.Errorf("unexpected output: %s", data)
	}
}

func TestCompile_ParseErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.set")

	err := os.WriteFile(input, []byte("set a 0o1"), 0o600)
	if err != nil {
		t.Fatalf("write input: %v", err)
	}

	cmd := Compile{
		Input:  input,
		Output: filepath.Join(dir, "out.yaml"),
		Format: "yaml",
		Indent: 2,
	}

	err = cmd.Run(t.Context())
	if err == nil {
		t.Fatal("expected parse error")
	}

	pe := &lang.ParseError{}
	if !strings.Contains(err.Error(), "parse error") {
		t.Errorf("unexpected error: %v (%T, want %T)", err, err, pe)
	}

	// No output file may exist after a failed compilation.
	if _, statErr := os.Stat(cmd.Output); statErr == nil {
		t.Error("expected no output file after failure")
	}
}

func TestCompile_MissingInput(t *testing.T) {
	cmd := Compile{
		Input:  filepath.Join(t.TempDir(), "absent.set"),
		Output: "-",
		Format: "yaml",
		Indent: 2,
	}

	err := cmd.Run(t.Context())
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}
