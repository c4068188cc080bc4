package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger("test-component")
	if logger == nil {
		t.Fatal("Expected logger to be created")
	}

	if logger.Data["component"] != "test-component" {
		t.Errorf("Expected component to be 'test-component', got %v", logger.Data["component"])
	}
}

func TestNewLoggerReturnsSameInstance(t *testing.T) {
	first := NewLogger("singleton-test")
	second := NewLogger("singleton-test")

	if first != second {
		t.Error("Expected the same logger instance for the same component")
	}
}

func TestFormatterOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{}})

	entry := logger.WithField("component", "test")
	entry.WithField("path", "/tmp/x").Info("Test message")

	output := buf.String()

	if !strings.Contains(output, "[INFO]") {
		t.Errorf("Expected output to contain [INFO], got: %s", output)
	}
	if !strings.Contains(output, "[test]") {
		t.Errorf("Expected output to contain [test], got: %s", output)
	}
	if !strings.Contains(output, "Test message") {
		t.Errorf("Expected output to contain 'Test message', got: %s", output)
	}
	if !strings.Contains(output, "path=/tmp/x") {
		t.Errorf("Expected output to contain the extra field, got: %s", output)
	}
}

func TestFormatterWarnLevelShortened(t *testing.T) {
	var buf bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{}})

	logger.Warn("careful")

	if !strings.Contains(buf.String(), "[WARN]") {
		t.Errorf("Expected [WARN], got: %s", buf.String())
	}
}

func TestFormatterDisableTimestamp(t *testing.T) {
	var buf bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{DisableTimestamp: true}})

	logger.Info("no clock")

	if !strings.HasPrefix(buf.String(), "[INFO]") {
		t.Errorf("Expected output to start with [INFO], got: %s", buf.String())
	}
}

func TestPrettyLoggerWritesToWriter(t *testing.T) {
	var buf bytes.Buffer

	p := NewPrettyLogger().WithWriter(&buf)
	p.Success("cloned dotfiles")
	p.Skip("exists already")

	output := buf.String()
	if !strings.Contains(output, "cloned dotfiles") {
		t.Errorf("Expected success message in output, got: %s", output)
	}
	if !strings.Contains(output, "exists already") {
		t.Errorf("Expected skip message in output, got: %s", output)
	}
}
