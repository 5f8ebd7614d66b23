package ctxutil

import (
	"context"
	"testing"
)

func TestSessionIDContext(t *testing.T) {
	t.Parallel()

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		if sessionID := GetSessionID(ctx); sessionID != "" {
			t.Errorf("Expected empty string, got %s", sessionID)
		}
	})

	t.Run("with session ID", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		expectedSessionID := "sess-1234567890"
		ctx = WithSessionID(ctx, expectedSessionID)
		sessionID := GetSessionID(ctx)
		if sessionID != expectedSessionID {
			t.Errorf("Expected sessionID %s, got %s", expectedSessionID, sessionID)
		}
	})

	t.Run("must get session ID", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		expectedSessionID := "sess-1234567890"
		ctx = WithSessionID(ctx, expectedSessionID)
		sessionID := MustGetSessionID(ctx)
		if sessionID != expectedSessionID {
			t.Errorf("Expected sessionID %s, got %s", expectedSessionID, sessionID)
		}
	})
}

func TestMustGetSessionID_Panic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected MustGetSessionID to panic on empty context")
		}
	}()

	MustGetSessionID(ctx)
}

func TestRequestIDContext(t *testing.T) {
	t.Parallel()

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		if requestID, ok := GetRequestID(ctx); ok || requestID != "" {
			t.Error("Expected GetRequestID to return empty string and false for empty context")
		}
	})

	t.Run("with request ID", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		expectedRequestID := "req-12345"
		ctx = WithRequestID(ctx, expectedRequestID)
		requestID, ok := GetRequestID(ctx)
		if !ok {
			t.Error("Expected GetRequestID to return true")
		}
		if requestID != expectedRequestID {
			t.Errorf("Expected requestID %s, got %s", expectedRequestID, requestID)
		}
	})
}

func TestContextChaining(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ctx = WithSessionID(ctx, "sess-123")
	ctx = WithRequestID(ctx, "req-789")

	if sessionID := GetSessionID(ctx); sessionID != "sess-123" {
		t.Error("SessionID not preserved in chained context")
	}
	if requestID, ok := GetRequestID(ctx); !ok || requestID != "req-789" {
		t.Error("RequestID not preserved in chained context")
	}
}

func TestPreserveTracing(t *testing.T) {
	t.Parallel()
	t.Run("preserves all tracing values", func(t *testing.T) {
		t.Parallel()
		parentCtx := context.Background()
		parentCtx = WithSessionID(parentCtx, "sess-123")
		parentCtx = WithRequestID(parentCtx, "req789")

		detachedCtx := PreserveTracing(parentCtx)

		if sessionID := GetSessionID(detachedCtx); sessionID != "sess-123" {
			t.Errorf("Expected sessionID 'sess-123', got %q", sessionID)
		}
		if requestID, ok := GetRequestID(detachedCtx); !ok || requestID != "req789" {
			t.Errorf("Expected requestID 'req789', got %q (ok=%v)", requestID, ok)
		}
	})

	t.Run("handles partial values", func(t *testing.T) {
		t.Parallel()
		partialCtx := context.Background()
		partialCtx = WithSessionID(partialCtx, "sess-only")
		detachedPartial := PreserveTracing(partialCtx)

		if sessionID := GetSessionID(detachedPartial); sessionID != "sess-only" {
			t.Errorf("Expected sessionID 'sess-only', got %q", sessionID)
		}
		if requestID, ok := GetRequestID(detachedPartial); ok || requestID != "" {
			t.Errorf("Expected empty requestID, got %q", requestID)
		}
	})

	t.Run("handles empty context", func(t *testing.T) {
		t.Parallel()
		emptyDetached := PreserveTracing(context.Background())

		if sessionID := GetSessionID(emptyDetached); sessionID != "" {
			t.Errorf("Expected empty sessionID, got %q", sessionID)
		}
		if requestID, ok := GetRequestID(emptyDetached); ok || requestID != "" {
			t.Errorf("Expected empty requestID, got %q (ok=%v)", requestID, ok)
		}
	})

	t.Run("creates independent context (cancellation)", func(t *testing.T) {
		t.Parallel()
		cancelCtx, cancel := context.WithCancel(WithSessionID(context.Background(), "sess-cancel"))
		detachedCancel := PreserveTracing(cancelCtx)

		cancel() // Cancel parent

		if err := cancelCtx.Err(); err == nil {
			t.Error("Expected parent context to be canceled")
		}

		if err := detachedCancel.Err(); err != nil {
			t.Errorf("Expected detached context to be active, got error: %v", err)
		}

		if sessionID := GetSessionID(detachedCancel); sessionID != "sess-cancel" {
			t.Errorf("Expected sessionID 'sess-cancel', got %q", sessionID)
		}
	})
}
