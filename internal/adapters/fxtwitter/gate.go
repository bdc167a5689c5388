package fxtwitter

import "context"

// Gate bounds the number of in-flight requests to the status API.
// Callers over the limit block until a slot frees up or their context ends.
type Gate struct {
	slots chan struct{}
}

// NewGate creates a gate allowing n concurrent requests. n below 1 is
// treated as 1.
func NewGate(n int) *Gate {
	if n < 1 {
		n = 1
	}
	return &Gate{slots: make(chan struct{}, n)}
}

// Do runs fn while holding a slot. The slot is released when fn returns,
// including on panic. ctx is passed to fn unchanged.
func (g *Gate) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	select {
	case g.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-g.slots }()

	return fn(ctx)
}

// Cap returns the number of slots.
func (g *Gate) Cap() int {
	return cap(g.slots)
}
