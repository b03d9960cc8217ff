package bstset

import (
	"sync/atomic"
)

// DefaultSpinLimit is the number of failed test-and-set attempts after
// which SpinLock starts yielding the processor between attempts.
const DefaultSpinLimit = 58

// SpinLock is a binary test-and-set spin lock.
//
// It is meant for short, rarely contended critical sections such as the
// single writer role of a Set. Waiters first pause in a tight loop; once
// the spin limit is exceeded they call runtime.Gosched before every
// further attempt so a preempted holder can make progress.
//
// SpinLock is neither fair nor reentrant. The zero value is an unlocked
// lock using DefaultSpinLimit.
type SpinLock struct {
	_     noCopy
	state atomic.Uint32
	limit int32
}

// NewSpinLock returns an unlocked SpinLock that yields after limit failed
// attempts. A limit <= 0 selects DefaultSpinLimit.
func NewSpinLock(limit int) *SpinLock {
	l := &SpinLock{}
	l.setLimit(limit)
	return l
}

func (l *SpinLock) setLimit(limit int) {
	if limit <= 0 {
		limit = DefaultSpinLimit
	}
	l.limit = int32(min(limit, int(^uint32(0)>>1)))
}

// Lock acquires the lock, spinning until it is available.
func (l *SpinLock) Lock() {
	if l.state.Swap(1) == 0 {
		return
	}
	l.lockSlow()
}

func (l *SpinLock) lockSlow() {
	limit := int(l.limit)
	if limit <= 0 {
		limit = DefaultSpinLimit
	}
	var attempts int
	for {
		// Test before test-and-set to keep the cache line shared while
		// the holder is busy.
		if l.state.Load() == 0 && l.state.Swap(1) == 0 {
			return
		}
		backoff(&attempts, limit)
	}
}

// TryLock tries to acquire the lock without spinning and reports whether
// it succeeded.
func (l *SpinLock) TryLock() bool {
	return l.state.Load() == 0 && l.state.Swap(1) == 0
}

// Unlock releases the lock.
// It is a run-time error if l is not locked on entry to Unlock.
func (l *SpinLock) Unlock() {
	if l.state.Swap(0) == 0 {
		panic("bstset: unlock of unlocked SpinLock")
	}
}
