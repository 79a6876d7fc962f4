// Package concurrency holds small synchronisation helpers.
package concurrency

import "sync"

// LockManager hands out one mutex per key. Locks are never freed, which is
// fine for a key space the size of the player base.
type LockManager struct {
	locks sync.Map // string -> *sync.Mutex
}

func NewLockManager() *LockManager {
	return &LockManager{}
}

// Lock blocks until key is held and returns the matching unlock.
func (lm *LockManager) Lock(key string) (unlock func()) {
	v, _ := lm.locks.LoadOrStore(key, new(sync.Mutex))
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
