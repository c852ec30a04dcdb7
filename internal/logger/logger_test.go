package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/oggyb/campus-connect/internal/config"
)

// captureOutput redirects stdout to a buffer during f()
func captureOutput(t *testing.T, f func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	_ = r.Close()

	return buf.String()
}

func testConfig(level, format, component string, source bool) *config.Config {
	c := &config.Config{}
	c.Log.Level = level
	c.Log.Format = format
	c.Log.Component = component
	c.Log.Source = source
	return c
}

func TestLogger_TextFormat(t *testing.T) {
	out := captureOutput(t, func() {
		InitFromConfig(testConfig("debug", "text", "test", false))
		Info("hello campus", "key", "value")
	})

	if !strings.Contains(out, "hello campus") {
		t.Errorf("expected message, got: %s", out)
	}
	if !strings.Contains(out, "component=test") {
		t.Errorf("expected component field, got: %s", out)
	}
	if !strings.Contains(out, "key=value") {
		t.Errorf("expected structured field, got: %s", out)
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	out := captureOutput(t, func() {
		InitFromConfig(testConfig("info", "json", "json_test", false))
		Info("json log", "foo", "bar")
	})

	if !strings.Contains(out, `"msg":"json log"`) {
		t.Errorf("expected JSON message, got: %s", out)
	}
	if !strings.Contains(out, `"component":"json_test"`) {
		t.Errorf("expected component in JSON, got: %s", out)
	}
	if !strings.Contains(out, `"foo":"bar"`) {
		t.Errorf("expected structured field in JSON, got: %s", out)
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	out := captureOutput(t, func() {
		InitFromConfig(testConfig("error", "text", "", false))
		Info("should not appear")
		Error("should appear")
	})

	if strings.Contains(out, "should not appear") {
		t.Errorf("info log should not appear, got: %s", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("error log should appear, got: %s", out)
	}
}

func TestLogger_WithAddsFields(t *testing.T) {
	out := captureOutput(t, func() {
		InitFromConfig(testConfig("debug", "text", "", false))
		log := With("match_id", "123")
		log.Info("processing request")
	})

	if !strings.Contains(out, "match_id=123") {
		t.Errorf("expected match_id field, got: %s", out)
	}
}

func TestLogger_ExplicitOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(&Config{Level: "debug", Format: FormatJSON, Component: "cfg_test", Output: &buf})
	Debug("cfg-based log")

	if !strings.Contains(buf.String(), `"msg":"cfg-based log"`) {
		t.Errorf("expected JSON log in buffer, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"component":"cfg_test"`) {
		t.Errorf("expected component from config, got: %s", buf.String())
	}
	Init(&Config{Level: "info", Format: FormatText})
}

func TestMultiHandler_FansOutByLevel(t *testing.T) {
	var debugBuf, errBuf bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h).With("user_id", "u1")

	log.Info("routine")
	log.Error("broken")

	if !strings.Contains(debugBuf.String(), "routine") || !strings.Contains(debugBuf.String(), "broken") {
		t.Errorf("debug handler should see both records, got: %s", debugBuf.String())
	}
	if strings.Contains(errBuf.String(), "routine") {
		t.Errorf("error handler should drop info records, got: %s", errBuf.String())
	}
	if !strings.Contains(errBuf.String(), "user_id=u1") {
		t.Errorf("attrs should propagate to every handler, got: %s", errBuf.String())
	}
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("multi handler should be enabled when any child is")
	}
}
