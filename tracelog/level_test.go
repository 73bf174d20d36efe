package tracelog

import "testing"

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelAll, "all"},
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarning, "warning"},
		{LevelError, "error"},
		{LevelFatal, "fatal"},
		{LevelNone, "none"},
		{Level(42), "unknown(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Level
		wantErr  bool
	}{
		{name: "all", input: "all", expected: LevelAll},
		{name: "trace", input: "trace", expected: LevelTrace},
		{name: "debug", input: "debug", expected: LevelDebug},
		{name: "info", input: "info", expected: LevelInfo},
		{name: "warning", input: "warning", expected: LevelWarning},
		{name: "warn alias", input: "warn", expected: LevelWarning},
		{name: "error", input: "error", expected: LevelError},
		{name: "fatal", input: "fatal", expected: LevelFatal},
		{name: "none", input: "none", expected: LevelNone},
		{name: "case insensitive", input: "DEBUG", expected: LevelDebug},
		{name: "surrounding space", input: "  info  ", expected: LevelInfo},
		{name: "unknown", input: "verbose", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseLevel(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseLevelRoundTrip(t *testing.T) {
	levels := []Level{LevelAll, LevelTrace, LevelDebug, LevelInfo, LevelWarning, LevelError, LevelFatal, LevelNone}
	for _, level := range levels {
		got, err := ParseLevel(level.String())
		if err != nil {
			t.Fatalf("ParseLevel(%q) unexpected error: %v", level.String(), err)
		}
		if got != level {
			t.Errorf("ParseLevel(%q) = %v, want %v", level.String(), got, level)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	// Threshold comparisons rely on this ordering
	ordered := []Level{LevelAll, LevelTrace, LevelDebug, LevelInfo, LevelWarning, LevelError, LevelFatal, LevelNone}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("%v should be less than %v", ordered[i-1], ordered[i])
		}
	}
}

func TestMessagePrefixes(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelTrace, "TRACE: "},
		{LevelDebug, "DEBUG: "},
		{LevelInfo, "INFO: "},
		{LevelWarning, "WARNING: "},
		{LevelError, "ERROR: "},
		{LevelFatal, "FATAL: "},
		{LevelAll, ""},
		{LevelNone, ""},
		{Level(99), ""},
	}

	for _, tt := range tests {
		if got := tt.level.prefix(); got != tt.expected {
			t.Errorf("prefix(%v) = %q, want %q", tt.level, got, tt.expected)
		}
	}
}
