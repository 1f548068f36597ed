package easel

// Lock is a non-blocking reentrancy guard. It never suspends: TryLock fails
// immediately when the lock is already held. Lock is not safe for concurrent
// use; scene graphs are driven from a single goroutine.
type Lock struct {
	held bool
}

// TryLock acquires the lock and reports whether it was free.
func (l *Lock) TryLock() bool {
	if l.held {
		return false
	}
	l.held = true
	return true
}

// Unlock releases the lock. Unlocking a free lock is a no-op.
func (l *Lock) Unlock() {
	l.held = false
}

// IsLocked reports whether the lock is held.
func (l *Lock) IsLocked() bool {
	return l.held
}
