package log

import (
	"strings"
	"testing"
)

func TestDefaultLoggerConfig(t *testing.T) {
	saved := defaultLog

	t.Cleanup(func() { defaultLog = saved })

	var b strings.Builder

	Config(
		WithOutput(&b),
		WithTimeLayout("none"),
		WithLevel(LevelDebug),
	)

	Debug("routed")

	if !strings.Contains(b.String(), "routed") {
		t.Errorf("expected message on configured writer: %q", b.String())
	}

	if Default().Level() != LevelDebug {
		t.Errorf("expected debug level, got %v", Default().Level())
	}
}
