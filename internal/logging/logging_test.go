package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestZapLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := (Config{Level: tt.level}).zapLevel(); got != tt.want {
			t.Errorf("zapLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %q", cfg.Level)
	}
	if cfg.File == "" {
		t.Error("expected default log file path")
	}
	if cfg.MaxSize == 0 || cfg.MaxBackups == 0 || cfg.MaxAge == 0 {
		t.Error("expected rotation limits to be defaulted")
	}

	// Explicit values survive
	cfg = Config{Level: "debug", File: "custom.log"}
	cfg.applyDefaults()
	if cfg.Level != "debug" || cfg.File != "custom.log" {
		t.Errorf("explicit values overwritten: %+v", cfg)
	}
}

func TestNewWritesLogFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.log")

	logger := New(Config{File: file})
	logger.Info("hello from the test")
	if err := logger.Sync(); err != nil {
		t.Logf("sync: %v", err) // stdout sync may fail on some platforms
	}

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Errorf("log file does not contain the message: %q", data)
	}
	if !strings.Contains(string(data), "INFO") {
		t.Errorf("log file does not contain the level: %q", data)
	}
}
