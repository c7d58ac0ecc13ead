//go:build !integration

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"unicode/utf8"

	"hospitalrun-locale/internal/config"
)

func TestWith_AttachesContextFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter(&buf, config.LogConfig{Level: "debug", Format: "json"}, false)

	ctx := WithUserName(WithTraceID(context.Background(), "trace-1"), "hradmin")
	With(ctx, base).Info().Msg("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not json: %v (%s)", err, buf.String())
	}
	if line["trace_id"] != "trace-1" {
		t.Errorf("trace_id = %v", line["trace_id"])
	}
	if line["user"] != "hradmin" {
		t.Errorf("user = %v", line["user"])
	}
	if TraceID(ctx) != "trace-1" {
		t.Errorf("TraceID = %q", TraceID(ctx))
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, config.LogConfig{Level: "warn"}, false)
	l.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	l.Warn().Msg("kept")
	if buf.Len() == 0 {
		t.Fatal("warn should be logged")
	}
}

func TestRedact(t *testing.T) {
	cases := map[string]string{
		"abc":              "***",
		"testuser@test.ts": "test...ts",
		"مرحبا@x":          "***",
		"مرحبا@test.ts":    "مرحب...ts",
	}
	for in, want := range cases {
		got := Redact(in, false)
		if got != want {
			t.Errorf("Redact(%q) = %q, want %q", in, got, want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("Redact(%q) produced invalid UTF-8", in)
		}
	}
	if got := Redact("abc", true); got != "abc" {
		t.Errorf("dev mode should not redact, got %q", got)
	}
}
