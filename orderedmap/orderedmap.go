// Package orderedmap provides a single balanced ordered-map abstraction used
// everywhere the line-intersection subsystem needs sorted traversal with
// O(log n) predecessor/successor lookups from a cursor: the sweep engine's
// Schedule (keyed by an exact point comparator) and its SweepLine (keyed by
// a comparator whose ordering mutates with sweep progress), as well as the
// brute-force intersector's crossing accumulator.
//
// It is a thin generic wrapper around github.com/emirpasic/gods's red-black
// tree: Floor/Ceiling-based neighbor lookup and an IteratorAt-based cursor
// walk, made reusable instead of duplicated per ordered structure.
//
// The wrapped comparator may be stateful — it is free to close over mutable
// data the caller updates between operations (a position table, a slope
// table). The tree itself caches nothing across calls: every comparison
// re-invokes the comparator, so external state changes are observed
// immediately.
package orderedmap

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// Comparator orders two keys of type K. A negative result means a sorts
// before b, positive means after, zero means equal.
type Comparator[K any] func(a, b K) int

// Tree is a balanced ordered map from K to V.
type Tree[K any, V any] struct {
	t *rbt.Tree
}

// New creates an empty Tree ordered by cmp.
func New[K any, V any](cmp Comparator[K]) *Tree[K, V] {
	return &Tree[K, V]{
		t: rbt.NewWith(func(a, b interface{}) int {
			return cmp(a.(K), b.(K))
		}),
	}
}

// Node is a handle into a Tree, returned by TryAdd/Floor/Ceiling/Min/Max,
// from which the caller can walk to the predecessor or successor in
// O(log n) without re-searching from the root.
type Node[K any, V any] struct {
	tree *Tree[K, V]
	raw  *rbt.Node
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K {
	return n.raw.Key.(K)
}

// Value returns the node's value.
func (n *Node[K, V]) Value() V {
	return n.raw.Value.(V)
}

// SetValue overwrites the node's value in place.
func (n *Node[K, V]) SetValue(v V) {
	n.raw.Value = v
}

// Next returns n's in-order successor, or nil if n is the last node.
func (n *Node[K, V]) Next() *Node[K, V] {
	it := n.tree.t.IteratorAt(n.raw)
	if !it.Next() {
		return nil
	}
	return n.tree.wrap(it.Node())
}

// Prev returns n's in-order predecessor, or nil if n is the first node.
func (n *Node[K, V]) Prev() *Node[K, V] {
	it := n.tree.t.IteratorAt(n.raw)
	if !it.Prev() {
		return nil
	}
	return n.tree.wrap(it.Node())
}

func (t *Tree[K, V]) wrap(raw *rbt.Node) *Node[K, V] {
	if raw == nil {
		return nil
	}
	return &Node[K, V]{tree: t, raw: raw}
}

// TryAdd inserts key/value if key is not already present under the
// comparator's current state, returning the resulting node and whether an
// insertion actually happened. Idempotent on key presence.
func (t *Tree[K, V]) TryAdd(key K, value V) (*Node[K, V], bool) {
	if existing := t.t.GetNode(key); existing != nil {
		return t.wrap(existing), false
	}
	t.t.Put(key, value)
	return t.wrap(t.t.GetNode(key)), true
}

// Put inserts key/value, overwriting any existing value for key.
func (t *Tree[K, V]) Put(key K, value V) {
	t.t.Put(key, value)
}

// Get retrieves the value stored for key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	v, found := t.t.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	_, found := t.t.Get(key)
	return found
}

// Remove deletes key, if present.
func (t *Tree[K, V]) Remove(key K) {
	t.t.Remove(key)
}

// Len reports the number of entries.
func (t *Tree[K, V]) Len() int {
	return t.t.Size()
}

// Empty reports whether the tree holds no entries.
func (t *Tree[K, V]) Empty() bool {
	return t.t.Empty()
}

// Min returns the node with the smallest key, or nil if the tree is empty.
func (t *Tree[K, V]) Min() *Node[K, V] {
	return t.wrap(t.t.Left())
}

// Max returns the node with the largest key, or nil if the tree is empty.
func (t *Tree[K, V]) Max() *Node[K, V] {
	return t.wrap(t.t.Right())
}

// Floor returns the node with the largest key ≤ key under the comparator's
// current state, or nil if none.
func (t *Tree[K, V]) Floor(key K) *Node[K, V] {
	n, found := t.t.Floor(key)
	if !found {
		return nil
	}
	return t.wrap(n)
}

// Ceiling returns the node with the smallest key ≥ key under the
// comparator's current state, or nil if none.
func (t *Tree[K, V]) Ceiling(key K) *Node[K, V] {
	n, found := t.t.Ceiling(key)
	if !found {
		return nil
	}
	return t.wrap(n)
}

// NodeAt re-resolves key to its live node handle. Useful after the
// comparator's external state has changed, when a previously held handle
// may no longer sort where it was found.
func (t *Tree[K, V]) NodeAt(key K) *Node[K, V] {
	return t.wrap(t.t.GetNode(key))
}

// Keys returns every key in ascending order.
func (t *Tree[K, V]) Keys() []K {
	raw := t.t.Keys()
	out := make([]K, len(raw))
	for i, k := range raw {
		out[i] = k.(K)
	}
	return out
}
