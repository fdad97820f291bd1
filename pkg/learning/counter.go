package learning

import (
	"context"
	"sync"
)

// TokenCounter accumulates corpus-wide token occurrence counts for one vocabulary build
type TokenCounter interface {
	// Add merges partial counts. Safe for concurrent use.
	Add(ctx context.Context, counts map[string]int) error
	// Counts returns the merged totals
	Counts(ctx context.Context) (map[string]int, error)
	// Release frees whatever the counter holds
	Release(ctx context.Context) error
}

// CounterFactory creates a fresh counter for each vocabulary build
type CounterFactory func(ctx context.Context) (TokenCounter, error)

// MemoryCounter keeps counts in process memory
type MemoryCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewMemoryCounter creates an empty in-memory counter
func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{counts: make(map[string]int)}
}

// MemoryCounterFactory is the default CounterFactory
func MemoryCounterFactory(ctx context.Context) (TokenCounter, error) {
	return NewMemoryCounter(), nil
}

func (mc *MemoryCounter) Add(ctx context.Context, counts map[string]int) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for token, n := range counts {
		mc.counts[token] += n
	}
	return nil
}

func (mc *MemoryCounter) Counts(ctx context.Context) (map[string]int, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	out := make(map[string]int, len(mc.counts))
	for token, n := range mc.counts {
		out[token] = n
	}
	return out, nil
}

func (mc *MemoryCounter) Release(ctx context.Context) error {
	mc.mu.Lock()
	mc.counts = make(map[string]int)
	mc.mu.Unlock()
	return nil
}

// Ensure both implementations satisfy the interface
var _ TokenCounter = (*MemoryCounter)(nil) // In-process implementation
var _ TokenCounter = (*RedisCounter)(nil)  // Redis implementation
