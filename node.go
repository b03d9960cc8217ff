package bstset

// node is a tree node. value is written once, before the node is first
// published, and never again; children change only through publish on
// left and right, and only by the set's single active writer.
type node[T any] struct {
	value T
	left  Slot[node[T]]
	right Slot[node[T]]
}

func newNode[T any](v T) *node[T] {
	return &node[T]{value: v}
}

// withChildren returns a fresh, unpublished node holding v and the given
// children.
func withChildren[T any](v T, left, right *node[T]) *node[T] {
	n := &node[T]{value: v}
	n.left.Store(left)
	n.right.Store(right)
	return n
}

// leftmost returns the node holding the smallest value under n.
// n must not be nil.
func (n *node[T]) leftmost() *node[T] {
	for {
		l := n.left.Load()
		if l == nil {
			return n
		}
		n = l
	}
}

// rightmost returns the node holding the largest value under n.
// n must not be nil.
func (n *node[T]) rightmost() *node[T] {
	for {
		r := n.right.Load()
		if r == nil {
			return n
		}
		n = r
	}
}

// withoutMax returns a replacement for the subtree rooted at n with its
// largest value detached, and that value. The right spine leading to the
// maximum is copied; every other subtree is shared with n. Nothing
// reachable from n is modified.
func (n *node[T]) withoutMax() (rest *node[T], maxValue T) {
	r := n.right.Load()
	if r == nil {
		return n.left.Load(), n.value
	}
	rest, maxValue = r.withoutMax()
	return withChildren(n.value, n.left.Load(), rest), maxValue
}

func (n *node[T]) size() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.Load().size() + n.right.Load().size()
}

func (n *node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.Load().height(), n.right.Load().height())
}

// walk visits the values under n in order and stops as soon as yield
// returns false. It reports whether the walk ran to completion.
func (n *node[T]) walk(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return n.left.Load().walk(yield) &&
		yield(n.value) &&
		n.right.Load().walk(yield)
}
