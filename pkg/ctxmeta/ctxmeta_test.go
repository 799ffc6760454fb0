package ctxmeta_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"

	"github.com/Gunvolt24/streets_etl/pkg/ctxmeta"
)

func TestWithRequestID_PutAndGet(t *testing.T) {
	parent := context.Background()

	ctx := ctxmeta.WithRequestID(parent, "req-123")
	got, ok := ctxmeta.RequestIDFromContext(ctx)
	if !ok || got != "req-123" {
		t.Fatalf("want ok=true, id=req-123; got ok=%v id=%q", ok, got)
	}
	if _, parentOk := ctxmeta.RequestIDFromContext(parent); parentOk {
		t.Fatalf("parent context must not contain request_id")
	}
}

func TestWithMessageID_IndependentOfRequestID(t *testing.T) {
	ctx := ctxmeta.WithMessageID(context.Background(), "msg-7")

	if id, ok := ctxmeta.MessageIDFromContext(ctx); !ok || id != "msg-7" {
		t.Fatalf("want msg-7, got %q ok=%v", id, ok)
	}
	if _, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		t.Fatalf("message id must not leak into request id")
	}
}

func TestWithValue_EmptyID_NoChange(t *testing.T) {
	parent := context.Background()
	if ctx := ctxmeta.WithRequestID(parent, ""); ctx != parent {
		t.Fatalf("WithRequestID with empty id must return the same ctx")
	}
	if ctx := ctxmeta.WithMessageID(parent, ""); ctx != parent {
		t.Fatalf("WithMessageID with empty id must return the same ctx")
	}
}

func TestWithRequestID_NilCtx(t *testing.T) {
	var nilCtx context.Context
	if ctx := ctxmeta.WithRequestID(nilCtx, "req-1"); ctx != nil {
		t.Fatalf("WithRequestID(nil, ...) must return nil")
	}
	if id, ok := ctxmeta.RequestIDFromContext(nilCtx); ok || id != "" {
		t.Fatalf("RequestIDFromContext(nil) must be empty/false, got id=%q ok=%v", id, ok)
	}
}

func TestRequestIDFromContext_EmptyStoredValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxmeta.KeyRequestID, "")
	if id, ok := ctxmeta.RequestIDFromContext(ctx); ok || id != "" {
		t.Fatalf("empty stored value must be treated as absent, got id=%q ok=%v", id, ok)
	}
}

func TestTraceIDFromContext(t *testing.T) {
	if _, ok := ctxmeta.TraceIDFromContext(context.Background()); ok {
		t.Fatalf("no span: trace id must be absent")
	}

	tid, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	sid, _ := trace.SpanIDFromHex("0102030405060708")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: tid, SpanID: sid, TraceFlags: trace.FlagsSampled})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	if got, ok := ctxmeta.TraceIDFromContext(ctx); !ok || got != tid.String() {
		t.Fatalf("trace id: want %s, got %q ok=%v", tid, got, ok)
	}
	if got, ok := ctxmeta.SpanIDFromContext(ctx); !ok || got != sid.String() {
		t.Fatalf("span id: want %s, got %q ok=%v", sid, got, ok)
	}
}
