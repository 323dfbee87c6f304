package daylog

import (
	"strings"
	"testing"
	"time"
)

func testRecord(level Level) *Record {
	return &Record{
		Time:    time.Date(2026, 8, 29, 17, 5, 32, 123_000_000, time.UTC),
		Name:    "app",
		Path:    "~/main.go",
		Message: "hello",
		Line:    42,
		Level:   level,
	}
}

func TestLineFormatter_FieldOrder(t *testing.T) {
	f := NewLineFormatter(DefaultTimeLayout)
	got := f.Render(testRecord(LevelInfo))

	const expected = "[2026-08-29 17:05:32.123] | app | ~/main.go:42 | INFO | hello"
	if !strings.Contains(got, expected) {
		t.Errorf("expected rendered line to contain %q, got %q", expected, got)
	}
}

func TestLineFormatter_Deterministic(t *testing.T) {
	f := NewLineFormatter(DefaultTimeLayout)

	for level := range Levels() {
		rec := testRecord(ParseLevel(level))

		first := f.Render(rec)
		second := f.Render(rec)

		if first != second {
			t.Errorf(
				"rendering not deterministic at %s: %q then %q",
				level,
				first,
				second,
			)
		}
	}
}

func TestLineFormatter_ColorsEveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warning", LevelWarning},
		{"error", LevelError},
		{"critical", LevelCritical},
	}

	f := NewLineFormatter(DefaultTimeLayout)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Render(testRecord(tt.level))

			if !strings.Contains(got, tt.level.String()) {
				t.Errorf(
					"expected line to contain severity %q, got %q",
					tt.level.String(),
					got,
				)
			}
			if !strings.HasPrefix(got, "\x1b[") {
				t.Errorf("expected line to start with an escape code, got %q", got)
			}
			if !strings.HasSuffix(got, "\x1b[0m") {
				t.Errorf("expected line to end with a reset code, got %q", got)
			}
		})
	}
}

func TestLineFormatter_DegenerateRecords(t *testing.T) {
	f := NewLineFormatter(DefaultTimeLayout)

	rec := &Record{Level: LevelDebug}
	got := f.Render(rec)

	if !strings.Contains(got, ":0 | DEBUG | ") {
		t.Errorf(
			"expected well-formed line for empty record, got %q",
			got,
		)
	}
}

func TestLineFormatter_TimeLayouts(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		contains string
	}{
		{"rfc3339 named", "RFC3339", "[2026-08-29T17:05:32Z]"},
		{"none omits time", "none", "[] | "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewLineFormatter(tt.layout)
			got := f.Render(testRecord(LevelInfo))

			if !strings.Contains(got, tt.contains) {
				t.Errorf(
					"expected line to contain %q, got %q",
					tt.contains,
					got,
				)
			}
		})
	}
}

func TestLineFormatter_ZeroValue_UsesDefaultLayout(t *testing.T) {
	var f LineFormatter

	got := f.Render(testRecord(LevelInfo))
	if !strings.Contains(got, "[2026-08-29 17:05:32.123]") {
		t.Errorf("expected zero value formatter to use default layout, got %q", got)
	}
}
