package usecase

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"wardrobe/internal/wardrobe/repository"
	"wardrobe/pkg/log"
)

// snapshotWriter performs the durable writes off the mutation path. Mutators
// enqueue the full serialized snapshot and return immediately; a single
// goroutine writes the latest enqueued snapshot, so a burst of mutations
// collapses into one write. The limiter paces how often the store is hit.
type snapshotWriter struct {
	store   repository.Store
	key     string
	limiter *rate.Limiter
	l       log.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	pending *string
	queued  uint64
	written uint64
	lastErr error
	closed  bool
}

func newSnapshotWriter(store repository.Store, key string, interval time.Duration, l log.Logger) *snapshotWriter {
	w := &snapshotWriter{
		store:   store,
		key:     key,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		l:       l,
	}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

// enqueue replaces any not-yet-written snapshot with data (latest wins).
func (w *snapshotWriter) enqueue(data string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.pending = &data
	w.queued++
	w.cond.Broadcast()
}

func (w *snapshotWriter) run() {
	ctx := context.Background()
	for {
		w.mu.Lock()
		for w.pending == nil && !w.closed {
			w.cond.Wait()
		}
		if w.pending == nil && w.closed {
			w.mu.Unlock()
			return
		}
		data := *w.pending
		seq := w.queued
		w.pending = nil
		w.mu.Unlock()

		if err := w.limiter.Wait(ctx); err != nil {
			w.l.Errorf(ctx, "snapshot writer: limiter: %v", err)
		}
		err := w.store.Set(ctx, w.key, data)
		if err != nil {
			w.l.Errorf(ctx, "snapshot writer: persisting %q: %v", w.key, err)
		}

		w.mu.Lock()
		w.written = seq
		w.lastErr = err
		w.cond.Broadcast()
		w.mu.Unlock()
	}
}

// flush blocks until everything enqueued before the call has been written,
// then reports the most recent write error. This is the durability barrier:
// mutators never wait for the store, callers that need confirmation do.
func (w *snapshotWriter) flush(ctx context.Context) error {
	w.mu.Lock()
	target := w.queued
	w.mu.Unlock()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			w.cond.Broadcast()
		case <-done:
		}
	}()

	w.mu.Lock()
	defer w.mu.Unlock()
	for w.written < target {
		if err := ctx.Err(); err != nil {
			return err
		}
		if w.closed {
			break
		}
		w.cond.Wait()
	}
	return w.lastErr
}

// close drains outstanding writes and stops the goroutine.
func (w *snapshotWriter) close(ctx context.Context) error {
	err := w.flush(ctx)
	w.mu.Lock()
	w.closed = true
	w.cond.Broadcast()
	w.mu.Unlock()
	return err
}
