package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestDebug_DisabledInProduction(t *testing.T) {
	var buf bytes.Buffer

	logger := log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(log.DebugLevel)

	appLogger := &AppLogger{
		logger: logger,
		debug:  false, // Production mode
	}

	appLogger.Debug("debug message that should not appear")

	output := buf.String()
	if strings.Contains(output, "debug message that should not appear") {
		t.Errorf("Expected debug message to be suppressed in production mode, got: %s", output)
	}
}

func TestDebug_EnabledWithFlag(t *testing.T) {
	logger, buf := NewTestLogger()

	logger.Debug("command constructed", "args", "issue list")

	output := buf.String()
	if !strings.Contains(output, "command constructed") {
		t.Errorf("Expected debug output to contain the message, got: %s", output)
	}
	if !strings.Contains(output, "issue list") {
		t.Errorf("Expected debug output to contain keyvals, got: %s", output)
	}
}

func TestNewAppLogger_NeverWritesToStdout(t *testing.T) {
	// Capture stdout during logger creation and use. Anything written there
	// would corrupt the JSON-RPC stream.
	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	logger := NewAppLogger(true)
	logger.Info("startup message")
	logger.Error("failure message")
	logger.Debug("debug message")

	w.Close()
	var captured bytes.Buffer
	if _, err := captured.ReadFrom(r); err != nil {
		t.Fatalf("Failed to read captured stdout: %v", err)
	}

	if captured.Len() != 0 {
		t.Errorf("Expected no bytes on stdout, got: %q", captured.String())
	}
}

func TestStandardLog(t *testing.T) {
	logger, buf := NewTestLogger()

	std := logger.StandardLog()
	std.Print("stdio transport error")

	output := buf.String()
	if !strings.Contains(output, "stdio transport error") {
		t.Errorf("Expected standard log adapter output in buffer, got: %s", output)
	}
}

func TestLogPerformance(t *testing.T) {
	logger, buf := NewTestLogger()

	start := time.Now()
	time.Sleep(1 * time.Millisecond) // Small delay for measurable duration
	logger.LogPerformance("jira_command", start)

	output := buf.String()
	if !strings.Contains(output, "Performance") {
		t.Errorf("Expected log output to contain 'Performance', got: %s", output)
	}
	if !strings.Contains(output, "jira_command") {
		t.Errorf("Expected log output to contain operation name, got: %s", output)
	}
	if !strings.Contains(output, "duration") {
		t.Errorf("Expected log output to contain duration, got: %s", output)
	}
}

// Benchmark tests
func BenchmarkInfo(b *testing.B) {
	logger, _ := NewTestLogger()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", "iteration", i)
	}
}

func BenchmarkDebug(b *testing.B) {
	logger, _ := NewTestLogger()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("benchmark debug message", "iteration", i)
	}
}
