package log

import (
	"slices"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, c := range cases {
		if got := ParseLevel(c.in); got != c.want {
			t.Errorf("ParseLevel(%q): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{" JSON ", FormatJSON},
		{"bogus", DefaultFormat},
	}

	for _, c := range cases {
		if got := ParseFormat(c.in); got != c.want {
			t.Errorf("ParseFormat(%q): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestLevelString(t *testing.T) {
	if LevelTrace.String() != "trace" {
		t.Errorf("expected trace, got %q", LevelTrace.String())
	}

	if Level(2).String() != "Level(2)" {
		t.Errorf("expected Level(2), got %q", Level(2).String())
	}
}

func TestLevels(t *testing.T) {
	got := slices.Collect(Levels())

	want := []string{"trace", "debug", "info", "warn", "error"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFormats(t *testing.T) {
	got := slices.Collect(Formats())

	want := []string{"text", "json"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	if got := makeFormatTimeFunc("RFC3339")(ts); got != "2024-03-01T12:30:00Z" {
		t.Errorf("unexpected RFC3339 output: %q", got)
	}

	if got := makeFormatTimeFunc("none")(ts); got != "" {
		t.Errorf("expected empty output for none, got %q", got)
	}

	if got := makeFormatTimeFunc("")(ts); got != "" {
		t.Errorf("expected empty output for empty layout, got %q", got)
	}

	// Custom layouts pass through verbatim.
	if got := makeFormatTimeFunc("2006-01")(ts); got != "2024-03" {
		t.Errorf("unexpected custom layout output: %q", got)
	}
}
