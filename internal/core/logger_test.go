package core

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   LogLevelDebug,
		"INFO":    LogLevelInfo,
		"warning": LogLevelWarn,
		"warn":    LogLevelWarn,
		"Error":   LogLevelError,
		"":        LogLevelInfo,
		"loud":    LogLevelInfo,
	}
	for in, want := range cases {
		if got := ParseLogLevel(in); got != want {
			t.Fatalf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestStdLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("warn")
	l.out = log.New(&buf, "", 0)

	l.Debugf("tick %d", 1)
	l.Infof("tick %d", 2)
	l.Warnf("slow tick %d", 3)
	l.Errorf("bad scenario %q", "x")

	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{"[WARN] slow tick 3", `[ERROR] bad scenario "x"`}
	if len(got) != len(want) {
		t.Fatalf("unexpected output %q", buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
