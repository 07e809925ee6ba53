package lang

import (
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

const marshalInput = `
set name    = @"gadget"
set port    = 0o50
set aliases = (list @"g" @"gdt")
set primary = name
`

func TestFormatYAML(t *testing.T) {
	doc := compile(t, marshalInput)

	var b strings.Builder

	err := doc.FormatYAML(t.Context(), &b, 2)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}

	want := "name: gadget\nport: 40\naliases:\n- g\n- gdt\nprimary: gadget\n"
	if b.String() != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, b.String())
	}
}

func TestFormatYAML_PreservesOrder(t *testing.T) {
	// Declaration order must survive serialization, including a
	// redeclared name moving to its final position.
	doc := compile(t, "set z = 0o1 set a = 0o2 set z = 0o3")

	var b strings.Builder

	err := doc.FormatYAML(t.Context(), &b, 2)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}

	if b.String() != "a: 2\nz: 3\n" {
		t.Errorf("unexpected output:\n%s", b.String())
	}
}

func TestFormatYAML_RoundTrip(t *testing.T) {
	doc := compile(t, marshalInput)

	var b strings.Builder

	err := doc.FormatYAML(t.Context(), &b, 2)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}

	var m map[string]any

	err = yaml.Unmarshal([]byte(b.String()), &m)
	if err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if m["name"] != "gadget" {
		t.Errorf("expected name=gadget, got %v", m["name"])
	}

	if m["port"] != uint64(40) && m["port"] != int64(40) && m["port"] != 40 {
		t.Errorf("expected port=40, got %v (%T)", m["port"], m["port"])
	}
}

func TestFormatJSON(t *testing.T) {
	doc := compile(t, "set z = 0o1 set a = 0o2")

	var b strings.Builder

	err := doc.FormatJSON(t.Context(), &b, 0)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}

	if strings.TrimSpace(b.String()) != `{"z":1,"a":2}` {
		t.Errorf("unexpected output: %s", b.String())
	}
}

func TestFormatJSON_Indent(t *testing.T) {
	doc := compile(t, "set a = 0o1")

	var b strings.Builder

	err := doc.FormatJSON(t.Context(), &b, 2)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}

	if strings.TrimSpace(b.String()) != "{\n  \"a\": 1\n}" {
		t.Errorf("unexpected output: %s", b.String())
	}
}

func TestFormatJSON_EscapedString(t *testing.T) {
	doc := compile(t, `set s = @"a\b"`)

	var b strings.Builder

	err := doc.FormatJSON(t.Context(), &b, 0)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}

	if strings.TrimSpace(b.String()) != `{"s":"a\\b"}` {
		t.Errorf("unexpected output: %s", b.String())
	}
}
