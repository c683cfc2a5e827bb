package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tc := range testCases {
		got, err := ParseLevel(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, %v, want %v", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("ParseLevel(loud) succeeded")
	}
}

func TestNewService(t *testing.T) {
	var buf bytes.Buffer
	log := NewService(slog.LevelInfo, &buf)
	log.Debug("hidden")
	log.Warn("snapshot not found", "store", "file:drip.json")

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("expected one JSON record, got %q: %v", buf.String(), err)
	}
	if got["severity"] != "WARNING" || got["message"] != "snapshot not found" || got["store"] != "file:drip.json" {
		t.Errorf("unexpected record %v", got)
	}
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	if FromContext(ctx) != slog.Default() {
		t.Errorf("FromContext() without logger is not the default logger")
	}

	var buf bytes.Buffer
	ctx = ToContext(ctx, New(slog.LevelDebug, &buf))
	if !IsDebugEnabled(ctx) {
		t.Errorf("IsDebugEnabled() = false")
	}
	log, ctx := With(ctx, "op", "expense")
	log.Info("saved")
	FromContext(ctx).Info("again")
	if n := strings.Count(buf.String(), "op=expense"); n != 2 {
		t.Errorf("got %d records with the op attribute, want 2:\n%s", n, buf.String())
	}

	quiet := ToContext(context.Background(), slog.New(NewTestHandler(slog.LevelInfo)))
	if IsDebugEnabled(quiet) {
		t.Errorf("IsDebugEnabled() = true for an info logger")
	}
}
