package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pressroom-backend/application/ports"
)

// LocalLock is an in-process implementation of ports.ResourceLock
type LocalLock struct {
	mu    sync.Mutex
	held  map[string]localLockEntry
	clock func() time.Time
}

type localLockEntry struct {
	owner     string
	expiresAt time.Time
}

// NewLocalLock creates a new in-process resource lock
func NewLocalLock() *LocalLock {
	return &LocalLock{
		held:  make(map[string]localLockEntry),
		clock: time.Now,
	}
}

// Acquire takes the lock for a resource unless another owner holds it
func (l *LocalLock) Acquire(ctx context.Context, resource, owner string, ttl time.Duration) (ports.LockHandle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if entry, exists := l.held[resource]; exists && entry.expiresAt.After(now) {
		return nil, fmt.Errorf("lock already held: %s", resource)
	}

	l.held[resource] = localLockEntry{
		owner:     owner,
		expiresAt: now.Add(ttl),
	}

	return &localLockHandle{lock: l, resource: resource, owner: owner}, nil
}

type localLockHandle struct {
	lock     *LocalLock
	resource string
	owner    string
}

// Release frees the lock if this handle still owns it
func (h *localLockHandle) Release(ctx context.Context) error {
	h.lock.mu.Lock()
	defer h.lock.mu.Unlock()

	if entry, exists := h.lock.held[h.resource]; exists && entry.owner == h.owner {
		delete(h.lock.held, h.resource)
	}
	return nil
}
