package txlock

import (
	"context"
	"sync"
)

// Manager serializes critical sections for stores that live in-process.
// It plays the role a serializable database transaction plays for a SQL
// repository: the availability recheck and the appending write run as one
// unit, so two concurrent bookings cannot both observe a slot as free.
type Manager struct {
	mu sync.Mutex
}

// NewManager creates a transaction manager.
func NewManager() *Manager {
	return &Manager{}
}

// Do runs fn while holding the commit lock. The context is checked before
// entering the critical section; fn itself is synchronous and short-lived.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
