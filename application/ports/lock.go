package ports

import (
	"context"
	"time"
)

// LockHandle is a held lock that must be released by its owner
type LockHandle interface {
	Release(ctx context.Context) error
}

// ResourceLock serializes mutations of a single resource across processes.
// Acquire fails when another owner currently holds the resource.
type ResourceLock interface {
	Acquire(ctx context.Context, resource, owner string, ttl time.Duration) (LockHandle, error)
}
