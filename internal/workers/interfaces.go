// Package workers runs background jobs next to the HTTP server.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block; it launches the worker's goroutine, which exits when
// ctx is cancelled or Stop is called. Stop blocks until that goroutine has
// returned and is safe to call on a worker that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Drainer processes one batch of pending queue jobs and reports how many it
// handled.
type Drainer interface {
	ProcessPending(ctx context.Context) (int, error)
}
