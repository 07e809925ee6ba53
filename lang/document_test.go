package lang

import (
	"testing"
)

func TestDocument_Order(t *testing.T) {
	doc := NewDocument()
	doc.bind("a", NewInt(1))
	doc.bind("b", NewInt(2))
	doc.bind("c", NewInt(3))

	names := doc.Names()
	if len(names) != 3 ||
		names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("expected [a b c], got %v", names)
	}
}

func TestDocument_RebindMovesToEnd(t *testing.T) {
	doc := NewDocument()
	doc.bind("a", NewInt(1))
	doc.bind("b", NewInt(2))
	doc.bind("a", NewInt(3))

	names := doc.Names()
	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Errorf("expected [b a], got %v", names)
	}

	v, ok := doc.Get("a")
	if !ok || !v.Equal(NewInt(3)) {
		t.Errorf("expected a=3, got %v", v)
	}

	if doc.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", doc.Len())
	}
}

func TestDocument_GetUndefined(t *testing.T) {
	doc := NewDocument()

	if _, ok := doc.Get("missing"); ok {
		t.Error("expected missing name to be undefined")
	}
}

func TestDocument_AllStopsEarly(t *testing.T) {
	doc := NewDocument()
	doc.bind("a", NewInt(1))
	doc.bind("b", NewInt(2))

	count := 0
	for range doc.All() {
		count++

		break
	}

	if count != 1 {
		t.Errorf("expected iteration to stop after 1, got %d", count)
	}
}

func TestDocument_ToMap(t *testing.T) {
	doc := NewDocument()
	doc.bind("s", NewString("x"))
	doc.bind("n", NewInt(7))
	doc.bind("l", NewList(NewInt(1), NewString("y")))

	m := doc.ToMap()

	if m["s"] != "x" {
		t.Errorf("expected s=x, got %v", m["s"])
	}

	if m["n"] != int64(7) {
		t.Errorf("expected n=7, got %v (%T)", m["n"], m["n"])
	}

	l, ok := m["l"].([]any)
	if !ok || len(l) != 2 || l[0] != int64(1) || l[1] != "y" {
		t.Errorf("expected l=[1 y], got %v", m["l"])
	}
}

func TestValue_String(t *testing.T) {
	v := NewList(NewString("x"), NewInt(5), NewList(NewInt(1)))

	if got := v.String(); got != `["x", 5, [1]]` {
		t.Errorf("expected %q, got %q", `["x", 5, [1]]`, got)
	}
}

func TestValue_EqualKindMismatch(t *testing.T) {
	if NewInt(1).Equal(NewString("1")) {
		t.Error("expected int and string to differ")
	}

	if NewList().Equal(NewList(NewInt(1))) {
		t.Error("expected lists of different length to differ")
	}
}
