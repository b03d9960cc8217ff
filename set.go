package bstset

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
	"unsafe"

	"github.com/llxisdsh/bstset/internal/opt"
)

// Set is a concurrent ordered set backed by an unbalanced binary search
// tree.
//
// Core properties:
//   - Lock-free reads: Search, Size, Empty, Iterate and friends descend a
//     snapshot of the tree without taking any lock
//   - Serialized writes: Insert, Remove, Clear and MoveFrom hold a single
//     set-wide SpinLock, so at most one structural change is in flight
//   - Atomic publication: every child link is a Slot, and a new or
//     replacement node is fully built before the CAS that links it
//
// A reader that starts after a writer returns observes that write in
// full. A reader running alongside a writer sees the tree as it was
// before or after each individual publication, never a half-linked node.
//
// The tree is not balanced. Inserting values in sorted order produces a
// list-shaped tree with linear-time operations.
//
// Notes:
//   - Sets must be created with New, NewOf or NewFunc. The zero value has
//     no ordering, and Insert, Remove and Search on it panic
//   - Set must not be copied after first use; use MoveFrom to transfer
//     contents between sets.
type Set[T any] struct {
	_    noCopy
	root Slot[node[T]]
	// Keep the root, loaded by every reader, off the writer's lock word.
	_ [(opt.CacheLineSize_ - unsafe.Sizeof(uintptr(0))%opt.CacheLineSize_) %
		opt.CacheLineSize_ * opt.PaddingMult_]byte
	mu     SpinLock
	less   LessFunc[T]
	equal  EqualFunc[T]
	format func(any) string
}

// New returns an empty set of a built-in ordered type.
func New[T cmp.Ordered](opts ...func(*SetConfig)) *Set[T] {
	return newSet[T](orderedLess[T], orderedEqual[T], opts)
}

// NewOf returns an empty set of a type that orders itself through its
// Less and Equal methods.
func NewOf[T Element[T]](opts ...func(*SetConfig)) *Set[T] {
	return newSet[T](elementLess[T], elementEqual[T], opts)
}

// NewFunc returns an empty set ordered by less and identified by equal.
// Both functions are required; NewFunc panics if either is nil.
func NewFunc[T any](
	less LessFunc[T],
	equal EqualFunc[T],
	opts ...func(*SetConfig),
) *Set[T] {
	if less == nil || equal == nil {
		panic("bstset: nil comparison function")
	}
	return newSet(less, equal, opts)
}

func newSet[T any](
	less LessFunc[T],
	equal EqualFunc[T],
	opts []func(*SetConfig),
) *Set[T] {
	c := newSetConfig(opts)
	s := &Set[T]{
		less:   less,
		equal:  equal,
		format: c.format,
	}
	s.mu.setLimit(c.spinLimit)
	return s
}

// Insert adds v to the set. It reports whether v was added, that is,
// false if an equal value was already present.
func (s *Set[T]) Insert(v T) (added bool) {
	s.mustBeOrdered()
	s.mu.Lock()
	defer s.mu.Unlock()

	root := s.root.Load()
	next, added := s.insert(root, v)
	mustPublish(&s.root, root, next)
	return added
}

// insert returns the subtree that replaces n once v is in it. Each level
// republishes its child against the pointer it observed on the way down.
func (s *Set[T]) insert(n *node[T], v T) (*node[T], bool) {
	if n == nil {
		return newNode(v), true
	}
	var added bool
	switch {
	case s.less(v, n.value):
		l := n.left.Load()
		var nl *node[T]
		nl, added = s.insert(l, v)
		mustPublish(&n.left, l, nl)
	case !s.equal(v, n.value):
		r := n.right.Load()
		var nr *node[T]
		nr, added = s.insert(r, v)
		mustPublish(&n.right, r, nr)
	}
	return n, added
}

// Remove deletes v from the set. It reports whether an equal value was
// present.
func (s *Set[T]) Remove(v T) (removed bool) {
	s.mustBeOrdered()
	s.mu.Lock()
	defer s.mu.Unlock()

	root := s.root.Load()
	next, removed := s.remove(root, v)
	mustPublish(&s.root, root, next)
	return removed
}

// remove returns the subtree that replaces n once v is gone from it.
func (s *Set[T]) remove(n *node[T], v T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	switch {
	case s.less(v, n.value):
		l := n.left.Load()
		nl, removed := s.remove(l, v)
		mustPublish(&n.left, l, nl)
		return n, removed
	case !s.equal(v, n.value):
		r := n.right.Load()
		nr, removed := s.remove(r, v)
		mustPublish(&n.right, r, nr)
		return n, removed
	}

	l, r := n.left.Load(), n.right.Load()
	switch {
	case l == nil:
		return r, true
	case r == nil:
		return l, true
	}
	// Two children: n is replaced, not edited, by a node holding its
	// in-order predecessor. The parent links the replacement with one CAS,
	// so readers see either n with its full left subtree or the
	// replacement, and never a tree missing the predecessor.
	rest, pred := l.withoutMax()
	return withChildren(pred, rest, r), true
}

// Search reports whether v is in the set.
func (s *Set[T]) Search(v T) bool {
	s.mustBeOrdered()
	n := s.root.Load()
	for n != nil {
		switch {
		case s.less(v, n.value):
			n = n.left.Load()
		case !s.equal(v, n.value):
			n = n.right.Load()
		default:
			return true
		}
	}
	return false
}

// Size returns the number of values in the set.
//
// The count is taken without locking. Under concurrent writes each
// subtree is counted as it was when its link was loaded, so the result
// need not match the set at any single instant.
func (s *Set[T]) Size() int {
	return s.root.Load().size()
}

// Empty reports whether the set holds no values.
func (s *Set[T]) Empty() bool {
	return s.root.Load() == nil
}

// Clear removes all values from the set.
func (s *Set[T]) Clear() {
	s.mu.Lock()
	s.root.Store(nil)
	s.mu.Unlock()
}

// Iterate calls visit for every value in ascending order.
// It takes no lock and gives no isolation from concurrent writes.
func (s *Set[T]) Iterate(visit func(v T)) {
	s.root.Load().walk(func(v T) bool {
		visit(v)
		return true
	})
}

// All returns an iterator over the values of the set in ascending order.
// Iteration stops early if the loop body breaks. Like Iterate, it takes
// no lock.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.root.Load().walk(yield)
	}
}

// Values returns the values of the set in ascending order.
func (s *Set[T]) Values() []T {
	var out []T
	s.root.Load().walk(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Min returns the smallest value in the set. ok is false if the set is
// empty.
func (s *Set[T]) Min() (v T, ok bool) {
	n := s.root.Load()
	if n == nil {
		return v, false
	}
	return n.leftmost().value, true
}

// Max returns the largest value in the set. ok is false if the set is
// empty.
func (s *Set[T]) Max() (v T, ok bool) {
	n := s.root.Load()
	if n == nil {
		return v, false
	}
	return n.rightmost().value, true
}

// Height returns the number of nodes on the longest root-to-leaf path,
// or 0 for an empty set.
func (s *Set[T]) Height() int {
	return s.root.Load().height()
}

// MoveFrom replaces the contents of s with those of src and leaves src
// empty.
//
// The tree is moved as is and is not re-sorted. If s and src were built
// with different comparison functions, s ends up violating its own
// ordering and Search, Insert and Remove on it give wrong answers. Only
// move between sets created by the same constructor with the same less
// and equal.
//
// src is detached under its own lock, then published into s under s's
// lock; the two locks are never held together.
func (s *Set[T]) MoveFrom(src *Set[T]) {
	if src == nil || src == s {
		return
	}
	s.mustBeOrdered()
	src.mu.Lock()
	root := src.root.Swap(nil)
	src.mu.Unlock()

	s.mu.Lock()
	s.root.Store(root)
	s.mu.Unlock()
}

// String returns the values of the set in ascending order, formatted as
// {a b c}.
func (s *Set[T]) String() string {
	format := s.format
	if format == nil {
		format = func(v any) string { return fmt.Sprint(v) }
	}
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.root.Load().walk(func(v T) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(format(v))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

func (s *Set[T]) mustBeOrdered() {
	if s.less == nil {
		panic("bstset: Set not created with New")
	}
}

// mustPublish links new in place of old. Writers are serialized, so a
// mismatch means the tree was changed behind the writer lock.
func mustPublish[T any](slot *Slot[T], old, new *T) {
	if !slot.publish(old, new) {
		panic("bstset: concurrent structural mutation")
	}
}
