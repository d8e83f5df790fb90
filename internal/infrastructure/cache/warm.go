package cache

import (
	"context"
	"sync"
	"sync/atomic"
)

// Warm caches expensive initialized handles keyed by identifier with
// initialize-once semantics: the first caller for a key runs the load,
// concurrent callers for the same key block and share its outcome. The
// supported key set is small and fixed, so there is no eviction.
type Warm struct {
	mu      sync.Mutex
	entries map[string]*warmEntry
	loads   atomic.Int64
}

type warmEntry struct {
	once  sync.Once
	value any
	err   error
}

// NewWarm creates an empty warm-handle cache
func NewWarm() *Warm {
	return &Warm{
		entries: make(map[string]*warmEntry),
	}
}

// GetOrLoad returns the cached handle for key, running load exactly once per
// key across concurrent callers. A failed load is not cached, so a later
// invocation may attempt initialization again.
func (w *Warm) GetOrLoad(ctx context.Context, key string, load func(context.Context) (any, error)) (any, error) {
	w.mu.Lock()
	entry, ok := w.entries[key]
	if !ok {
		entry = &warmEntry{}
		w.entries[key] = entry
	}
	w.mu.Unlock()

	entry.once.Do(func() {
		w.loads.Add(1)
		entry.value, entry.err = load(ctx)
		if entry.err != nil {
			w.mu.Lock()
			// Drop the failed entry only if it is still the current one.
			if w.entries[key] == entry {
				delete(w.entries, key)
			}
			w.mu.Unlock()
		}
	})

	return entry.value, entry.err
}

// Loads reports how many initializations have actually run. Tests use this
// to verify that concurrent requests for one key share a single load.
func (w *Warm) Loads() int64 {
	return w.loads.Load()
}
