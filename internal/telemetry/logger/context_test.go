package logger

import (
	"context"
	"encoding/json"
	"testing"
)

func TestWithLogger_FromContext(t *testing.T) {
	l := NewNop()
	ctx := WithLogger(context.Background(), l)

	if got := FromContext(ctx); got != l {
		t.Error("FromContext() did not return the stored logger")
	}
	if FromContext(context.Background()) == nil {
		t.Error("FromContext() without logger should return the default")
	}
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "01HZX3")
	if got := RequestIDFromContext(ctx); got != "01HZX3" {
		t.Errorf("RequestIDFromContext() = %q", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext() on empty = %q", got)
	}
}

func TestL_WithRequestID(t *testing.T) {
	l, buf := newBufferLogger(t, "info", "json")

	ctx := WithLogger(context.Background(), l)
	ctx = WithRequestID(ctx, "01HZX3")
	L(ctx).Info("sent")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["request_id"] != "01HZX3" {
		t.Errorf("request_id = %v", entry["request_id"])
	}
}
