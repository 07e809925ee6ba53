package repl

import (
	"testing"
)

func TestWordBounds(t *testing.T) {
	cases := []struct {
		input  string
		cursor int
		word   string
		start  int
		end    int
	}{
		{"set port = na", 13, "na", 11, 13},
		{"set port = na", 6, "port", 4, 8},
		{"set port = ", 11, "", 11, 11},
		{"", 0, "", 0, 0},
		{"^{ ret", 6, "ret", 3, 6},
		{"(list al", 8, "al", 6, 8},
	}

	for _, c := range cases {
		word, start, end := wordBounds(c.input, c.cursor)
		if word != c.word || start != c.start || end != c.end {
			t.Errorf("wordBounds(%q, %d): expected (%q, %d, %d), got (%q, %d, %d)",
				c.input, c.cursor, c.word, c.start, c.end, word, start, end)
		}
	}
}

func TestWordBounds_CursorPastEnd(t *testing.T) {
	word, start, end := wordBounds("abc", 10)
	if word != "abc" || start != 0 || end != 3 {
		t.Errorf("expected (abc, 0, 3), got (%q, %d, %d)", word, start, end)
	}
}

func TestIsWordBoundary(t *testing.T) {
	for _, r := range " \t(){}=^@\"%+-*/" {
		if !isWordBoundary(r) {
			t.Errorf("expected %q to be a boundary", r)
		}
	}

	for _, r := range "abcXYZ_" {
		if isWordBoundary(r) {
			t.Errorf("expected %q not to be a boundary", r)
		}
	}
}

func TestHistory_WriteDeduplicates(t *testing.T) {
	h := NewHistory("")

	h.Write("set a = 0o1")
	h.Write("set b = 0o2")
	h.Write("set a = 0o1")

	if h.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", h.Len())
	}

	if h.At(0) != "set b = 0o2" || h.At(1) != "set a = 0o1" {
		t.Errorf("unexpected order: %q, %q", h.At(0), h.At(1))
	}
}

func TestHistory_AtOutOfRange(t *testing.T) {
	h := NewHistory("")

	if h.At(0) != "" || h.At(-1) != "" {
		t.Error("expected empty string for out-of-range index")
	}
}

func TestHistory_LoadMissingFile(t *testing.T) {
	h := NewHistory("/nonexistent/history.utf8")

	if err := h.Load(); err != nil {
		t.Errorf("expected missing file to be ignored, got %v", err)
	}
}
