// Package lock provides keyed locking for player-state mutations.
// The ledger key serializes economy writes; the spin key guards against
// overlapping spins on the same player record.
package lock

import "sync"

// Well-known keys.
const (
	KeyLedger = "ledger"
	KeySpin   = "spin"
	KeyDaily  = "daily"
)

// keyMutex counts holders plus waiters so an idle key can be dropped.
type keyMutex struct {
	mu       sync.Mutex
	refCount int
}

// KeyLock provides per-key locking. Entries exist only while a key is
// held or awaited.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*keyMutex
	pool  sync.Pool
}

// NewKeyLock creates a new KeyLock instance.
func NewKeyLock() *KeyLock {
	return &KeyLock{
		locks: make(map[string]*keyMutex),
		pool: sync.Pool{
			New: func() any {
				return &keyMutex{}
			},
		},
	}
}

// acquire returns the entry for key with its refCount incremented.
// Callers must hold kl.mu.
func (kl *KeyLock) acquire(key string) *keyMutex {
	l, ok := kl.locks[key]
	if !ok {
		l = kl.pool.Get().(*keyMutex)
		l.refCount = 0
		kl.locks[key] = l
	}
	l.refCount++
	return l
}

// release drops one reference and recycles the entry once it is idle.
// Callers must hold kl.mu.
func (kl *KeyLock) release(key string, l *keyMutex) {
	l.refCount--
	if l.refCount == 0 {
		delete(kl.locks, key)
		kl.pool.Put(l)
	}
}

// Lock acquires the lock for a key.
func (kl *KeyLock) Lock(key string) {
	kl.mu.Lock()
	l := kl.acquire(key)
	kl.mu.Unlock()

	l.mu.Lock()
}

// Unlock releases the lock for a key. Unlocking a key that is not held
// is a no-op.
func (kl *KeyLock) Unlock(key string) {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	l, ok := kl.locks[key]
	if !ok {
		return
	}
	l.mu.Unlock()
	kl.release(key, l)
}

// TryLock attempts to acquire the lock without blocking.
// Returns true if the lock was acquired, false otherwise.
func (kl *KeyLock) TryLock(key string) bool {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	l := kl.acquire(key)
	if l.mu.TryLock() {
		return true
	}
	kl.release(key, l)
	return false
}

// WithLock executes fn while holding the key's lock.
func (kl *KeyLock) WithLock(key string, fn func() error) error {
	kl.Lock(key)
	defer kl.Unlock(key)
	return fn()
}

// IsLocked checks if a key is currently held.
// This is a point-in-time check and may change immediately after.
func (kl *KeyLock) IsLocked(key string) bool {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	_, ok := kl.locks[key]
	return ok
}

// size reports how many keys currently have an entry.
func (kl *KeyLock) size() int {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	return len(kl.locks)
}
