// Package lock narrows the booking race window by serializing the
// check-then-insert sequence per slot. The store's unique index remains
// the hard guarantee; the lock just turns most races into clean
// conflicts before the insert.
package lock

import "context"

// Locker guards a critical section keyed by a slot identifier.
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type noopLocker struct{}

// NewNoop returns a pass-through locker for single-instance deployments
// without Redis.
func NewNoop() Locker {
	return noopLocker{}
}

func (noopLocker) WithLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
