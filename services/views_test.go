package services

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestViewCounterSequential(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	counter := NewViewCounter(store, discardLogger())

	const k = 10
	for i := 0; i < k; i++ {
		counter.Record("article-1")
	}
	counter.Wait()

	assert.Equal(t, k, store.incrementsFor("article-1"))
}

func TestViewCounterConcurrent(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	counter := NewViewCounter(store, discardLogger())

	const k = 50
	var wg sync.WaitGroup
	for i := 0; i < k; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counter.Record("article-1")
		}()
	}
	wg.Wait()
	counter.Wait()

	assert.Equal(t, k, store.incrementsFor("article-1"))
}

// A failing increment is logged and dropped: no retry, no propagation.
func TestViewCounterSwallowsFailure(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.incErr = errors.New("store unavailable")
	counter := NewViewCounter(store, discardLogger())

	counter.Record("article-1")
	counter.Wait()

	assert.Zero(t, store.incrementsFor("article-1"))
}
