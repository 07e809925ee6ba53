package repl

import (
	"slices"
	"testing"

	"github.com/ardnew/setcomp/lang"
)

func TestDiffBindings(t *testing.T) {
	prev, err := lang.CompileString(t.Context(), "set a = 0o1 set b = 0o2")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	next, err := lang.CompileString(t.Context(),
		"set a = 0o1 set b = 0o3 set c = 0o4")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	changed := diffBindings(prev, next)

	if !slices.Equal(changed, []string{"b", "c"}) {
		t.Errorf("expected [b c], got %v", changed)
	}
}

func TestDiffBindings_NoChange(t *testing.T) {
	doc, err := lang.CompileString(t.Context(), "set a = 0o1")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	if changed := diffBindings(doc, doc); len(changed) != 0 {
		t.Errorf("expected no changes, got %v", changed)
	}
}
