package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultRunTimeout bounds a single program run in tests.
const DefaultRunTimeout = 10 * time.Second

// ContextWithTimeout creates a context with the specified timeout.
// This is a convenience wrapper that logs the timeout for debugging.
func ContextWithTimeout(t *testing.T, timeout time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()
	t.Logf("Context timeout: %v", timeout)
	return context.WithTimeout(context.Background(), timeout)
}

// RunContext returns a context bounded by DefaultRunTimeout, or by the test
// deadline if that comes first. The context is cancelled on test cleanup.
func RunContext(t *testing.T) context.Context {
	t.Helper()

	timeout := DefaultRunTimeout
	if deadline, ok := t.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
