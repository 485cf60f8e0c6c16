package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		pretty bool
	}{
		{name: "pretty debug", level: "debug", pretty: true},
		{name: "prod info", level: "info", pretty: false},
		{name: "prod warn", level: "warn", pretty: false},
		{name: "prod error", level: "error", pretty: false},
		{name: "unknown level keeps config default", level: "verbose", pretty: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.level, tt.pretty)
			if l == nil {
				t.Fatal("New() = nil, want a Logger")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zapcore.Level
		known bool
	}{
		{name: "debug", level: "debug", want: zapcore.DebugLevel, known: true},
		{name: "info", level: "info", want: zapcore.InfoLevel, known: true},
		{name: "warn", level: "warn", want: zapcore.WarnLevel, known: true},
		{name: "error", level: "error", want: zapcore.ErrorLevel, known: true},
		{name: "unknown level", level: "verbose"},
		{name: "empty level", level: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseLevel(tt.level)
			if tt.known != (got != nil) {
				t.Fatalf("parseLevel(%q) recognized = %v, want %v", tt.level, got != nil, tt.known)
			}
			if tt.known && *got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.level, *got, tt.want)
			}
		})
	}
}

func TestLevelSuppression(t *testing.T) {
	// At error level every call below it must be swallowed without panicking.
	l := New("error", false)

	l.Debug("boot", String("step", "init"))
	l.Info("boot", Int("patterns", 4))
	l.Warn("boot", Error(nil))
	l.Debugf("boot %s", "debug")
	l.Infof("boot %s", "info")
	l.Warnf("boot %s", "warn")
}
