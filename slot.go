package bstset

import (
	"sync/atomic"
)

// Slot is a cell holding a shared pointer to a T that can be loaded,
// stored, exchanged and compare-and-swapped atomically.
// The zero value of a Slot is an empty slot (nil).
//
// Only fully constructed values may be handed to Store, Swap or the
// CompareAndSwap variants; a reader that Loads a pointer sees everything
// written to the pointee before it was published.
//
// Reclamation is left to the garbage collector: a value unlinked from
// every Slot stays alive while a reader still holds the pointer returned
// by Load.
type Slot[T any] struct {
	_ noCopy
	p atomic.Pointer[T]
}

// Load returns the current pointer, or nil if the slot is empty.
func (s *Slot[T]) Load() *T {
	return s.p.Load()
}

// Store unconditionally publishes p.
func (s *Slot[T]) Store(p *T) {
	s.p.Store(p)
}

// Swap publishes p and returns the previous pointer.
func (s *Slot[T]) Swap(p *T) (old *T) {
	return s.p.Swap(p)
}

// CompareAndSwap publishes new only if the slot still holds old.
// It fails only when the slot holds a different pointer.
func (s *Slot[T]) CompareAndSwap(old, new *T) (swapped bool) {
	return s.p.CompareAndSwap(old, new)
}

// CompareAndSwapWeak is like CompareAndSwap but is allowed to fail even
// when the slot holds old. Callers must retry in a loop.
//
// The Go memory model offers no spurious-failure CAS, so the current
// implementation never fails spuriously; the loop contract still holds.
func (s *Slot[T]) CompareAndSwapWeak(old, new *T) (swapped bool) {
	return s.p.CompareAndSwap(old, new)
}

// publish replaces old with new, retrying spurious failures.
// It reports false only if the slot no longer holds old.
func (s *Slot[T]) publish(old, new *T) bool {
	if old == new {
		return s.p.Load() == old
	}
	for !s.CompareAndSwapWeak(old, new) {
		if s.p.Load() != old {
			return false
		}
	}
	return true
}
