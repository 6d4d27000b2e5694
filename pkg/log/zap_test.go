package log

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved() (*zapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &zapLogger{sugar: zap.New(core).Sugar()}, logs
}

func TestLogger_KeyValueFields(t *testing.T) {
	l, logs := newObserved()

	l.Info(context.Background(), "LLM generation successful", "provider", "groq", "input_tokens", 12)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "LLM generation successful" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
	fields := entries[0].ContextMap()
	if fields["provider"] != "groq" || fields["input_tokens"] != int64(12) {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestLogger_PlainArgs(t *testing.T) {
	l, logs := newObserved()

	l.Error(context.Background(), "Failed to run server: ", "boom")

	entries := logs.All()
	if len(entries) != 1 || entries[0].Message != "Failed to run server: boom" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if len(entries[0].Context) != 0 {
		t.Errorf("expected no fields, got %v", entries[0].Context)
	}
}

func TestLogger_RequestID(t *testing.T) {
	l, logs := newObserved()
	ctx := WithRequestID(context.Background(), "req-1")

	l.Warnf(ctx, "slow %s", "provider")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()[requestIDField]; got != "req-1" {
		t.Errorf("request_id = %v, want req-1", got)
	}
	if entries[0].Message != "slow provider" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	if id := RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
}

func TestInit_UnknownLevel(t *testing.T) {
	l := Init(ZapConfig{Level: "loud", Mode: ModeProduction, Encoding: EncodingJSON})
	if l == nil {
		t.Fatal("Init returned nil")
	}
}
