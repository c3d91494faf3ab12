package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func initTest(t *testing.T, verbose bool) (*bytes.Buffer, string) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "datasheet-log-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	logPath := filepath.Join(tmpDir, "logs", "test.log")
	consoleBuffer := &bytes.Buffer{}

	if err := Init(consoleBuffer, logPath, verbose); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	t.Cleanup(Close)

	return consoleBuffer, logPath
}

func readLog(t *testing.T, logPath string) string {
	t.Helper()
	_ = globalLogger.base.Sync()
	logContent, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(logContent)
}

func TestLoggerInit(t *testing.T) {
	consoleBuffer, logPath := initTest(t, false)

	// Test that log file was created
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}

	Info("Test info message")
	consoleOutput := consoleBuffer.String()
	if consoleOutput != "Test info message\n" {
		t.Errorf("Console INFO should be clean, got %q", consoleOutput)
	}

	logStr := readLog(t, logPath)
	if !strings.Contains(logStr, `"level":"INFO"`) {
		t.Error("Log file missing INFO level")
	}
	if !strings.Contains(logStr, "Test info message") {
		t.Error("Log file missing info message")
	}
}

func TestLoggerLevels(t *testing.T) {
	consoleBuffer, logPath := initTest(t, false)

	Debug("Debug message")
	Info("Info message")
	Warn("Warn message %d", 400)
	Error("Error message")

	logStr := readLog(t, logPath)

	// File should contain all levels
	for _, level := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
		if !strings.Contains(logStr, `"level":"`+level+`"`) {
			t.Errorf("Log file missing %s level", level)
		}
	}
	if !strings.Contains(logStr, "Warn message 400") {
		t.Error("Log file missing formatted warning")
	}

	// Console should NOT contain DEBUG (verbose=false)
	consoleStr := consoleBuffer.String()
	if strings.Contains(consoleStr, "[DEBUG]") || strings.Contains(consoleStr, "Debug message") {
		t.Error("Console should not show DEBUG when verbose=false")
	}
	if !strings.Contains(consoleStr, "⚠️  Warn message 400") {
		t.Errorf("Console missing warning marker: %q", consoleStr)
	}
	if !strings.Contains(consoleStr, "❌ Error message") {
		t.Errorf("Console missing error marker: %q", consoleStr)
	}
}

func TestLoggerVerbose(t *testing.T) {
	consoleBuffer, _ := initTest(t, true)

	Debug("Debug message")

	consoleStr := consoleBuffer.String()
	if !strings.Contains(consoleStr, "[DEBUG]") {
		t.Error("Console should show DEBUG when verbose=true")
	}
	if !strings.Contains(consoleStr, "Debug message") {
		t.Error("Console missing debug message content")
	}
}

func TestLoggerFields(t *testing.T) {
	consoleBuffer, logPath := initTest(t, false)

	Infow("datasheet generated", "part", "246.40", "pages", 2)

	logStr := readLog(t, logPath)
	if !strings.Contains(logStr, `"part":"246.40"`) || !strings.Contains(logStr, `"pages":2`) {
		t.Errorf("Log file missing fields: %s", logStr)
	}
	if !strings.Contains(consoleBuffer.String(), "datasheet generated") {
		t.Error("Console missing message")
	}
}

func TestLoggerLookupError(t *testing.T) {
	consoleBuffer, logPath := initTest(t, false)

	LogLookupError("SEW_Masterfile.xlsx", errors.New(`key "246.99" not found`), "sheet KSY HD")

	logStr := readLog(t, logPath)
	if !strings.Contains(logStr, "LOOKUP_ERROR") {
		t.Error("Log file missing LOOKUP_ERROR marker")
	}
	if !strings.Contains(logStr, "SEW_Masterfile.xlsx") {
		t.Error("Log file missing location")
	}
	if !strings.Contains(logStr, "sheet KSY HD") {
		t.Error("Log file missing context")
	}

	// Console should NOT show lookup error details
	if strings.Contains(consoleBuffer.String(), "LOOKUP_ERROR") {
		t.Error("Console should not show detailed lookup errors")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(9), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("Level.String() = %s, expected %s", result, tt.expected)
		}
	}
}

func TestGetLogFilePath(t *testing.T) {
	_, logPath := initTest(t, false)

	retrievedPath := GetLogFilePath()
	if retrievedPath != logPath {
		t.Errorf("GetLogFilePath() = %s, expected %s", retrievedPath, logPath)
	}
}

func TestIsVerbose(t *testing.T) {
	initTest(t, false)
	if IsVerbose() {
		t.Error("IsVerbose() should return false when initialized with verbose=false")
	}

	initTest(t, true)
	if !IsVerbose() {
		t.Error("IsVerbose() should return true when initialized with verbose=true")
	}
}
