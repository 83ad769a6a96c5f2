package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) failed: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel should reject unknown levels")
	}
}

func TestNewWritesFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "commerce.log")

	logger, err := New(Config{Level: "info", Filename: logFile})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Infow("template created", "id", 7)
	logger.Debugw("dropped below level")
	_ = logger.Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `"msg":"template created"`) {
		t.Errorf("Expected JSON entry in log file, got %q", content)
	}
	if strings.Contains(content, "dropped below level") {
		t.Error("Debug entry should be filtered at info level")
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New(Config{Level: "verbose"}); err == nil {
		t.Error("New should fail on an invalid level")
	}
}
