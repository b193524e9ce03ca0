package services

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ViewCounter records article reads as a best-effort side effect. An
// increment is dispatched after the detail page's primary fetch
// succeeds and never blocks or fails the response: errors are logged
// and dropped, and there are no retries, so a failed or timed-out
// attempt costs at most one count.
type ViewCounter struct {
	store   Store
	log     *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewViewCounter(store Store, log *slog.Logger) *ViewCounter {
	return &ViewCounter{store: store, log: log, timeout: 5 * time.Second}
}

// Record fires an asynchronous view increment for the article. The
// caller gets no result; repeated views from the same client all count.
func (v *ViewCounter) Record(id string) {
	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
		defer cancel()
		if err := v.store.IncrementViews(ctx, id); err != nil {
			v.log.Warn("view increment dropped", "article", id, "error", err)
		}
	}()
}

// Wait blocks until in-flight increments finish. Called on shutdown so
// a stopping server does not abandon dispatched counts.
func (v *ViewCounter) Wait() {
	v.wg.Wait()
}
