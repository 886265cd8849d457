package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/TiVo/hxcache/internal/adapters/logger"
)

func capture(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()

	lg, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("New() did not return *logger.Logger")
	}
	var buf bytes.Buffer
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := capture(t)

	lg.Info("resolved classpath")

	out := buf.String()
	if !strings.Contains(out, "resolved classpath") {
		t.Errorf("expected output to contain the message, got: %s", out)
	}
	if !strings.Contains(out, "INFO") {
		t.Errorf("expected output to contain INFO, got: %s", out)
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := capture(t)

	lg.Warn("duplicate cache write")

	out := buf.String()
	if !strings.Contains(out, "duplicate cache write") {
		t.Errorf("expected output to contain the message, got: %s", out)
	}
	if !strings.Contains(out, "WARN") {
		t.Errorf("expected output to contain WARN, got: %s", out)
	}
}

func TestLogger_Error(t *testing.T) {
	lg, buf := capture(t)

	lg.Error(errors.New("haxelib exploded"))

	out := buf.String()
	if !strings.Contains(out, "haxelib exploded") {
		t.Errorf("expected output to contain the error, got: %s", out)
	}
	if !strings.Contains(out, "ERROR") {
		t.Errorf("expected output to contain ERROR, got: %s", out)
	}
}

func TestNew(t *testing.T) {
	if logger.New() == nil {
		t.Fatal("Expected New() to return a non-nil logger")
	}
}
