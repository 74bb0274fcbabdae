package tree

import "iter"

// advanceFunc computes the node after current for one traversal strategy, or
// nil once the traversal is exhausted. bound is the node the iterator was
// constructed from; no strategy may escape its subtree.
type advanceFunc[T any] func(current, bound *Node[T]) *Node[T]

// Iterator is a forward-only cursor over nodes. All four traversal kinds
// share this one type; only the advance strategy differs between them. A nil
// current node is the past-the-end sentinel.
type Iterator[T any] struct {
	current *Node[T]
	bound   *Node[T]
	advance advanceFunc[T]
}

// NewPreOrderIterator returns an iterator that visits a node before any of
// its children, starting at node and bounded by its subtree. A nil node
// yields an end iterator.
func NewPreOrderIterator[T any](node *Node[T]) *Iterator[T] {
	return &Iterator[T]{current: node, bound: node, advance: advancePreOrder[T]}
}

// NewPostOrderIterator returns an iterator that visits a node only after all
// of its children, bounded by the subtree of node. The first node visited is
// the leftmost leaf reachable from node by repeated first-child descent. A
// nil node yields an end iterator.
func NewPostOrderIterator[T any](node *Node[T]) *Iterator[T] {
	return &Iterator[T]{current: leftmostLeaf(node), bound: node, advance: advancePostOrder[T]}
}

// NewLeafIterator returns an iterator over the childless nodes of the
// subtree rooted at node, in pre-order. A nil node yields an end iterator.
func NewLeafIterator[T any](node *Node[T]) *Iterator[T] {
	return &Iterator[T]{current: leftmostLeaf(node), bound: node, advance: advanceLeaf[T]}
}

// NewSiblingIterator returns an iterator that starts at node and advances
// strictly through next-sibling links, ignoring children and parents.
func NewSiblingIterator[T any](node *Node[T]) *Iterator[T] {
	return &Iterator[T]{current: node, advance: advanceSibling[T]}
}

// Valid reports whether the iterator references a node, i.e. is not at the
// end sentinel.
func (it *Iterator[T]) Valid() bool {
	return it.current != nil
}

// Node returns the node the iterator currently references, or nil at the end
// sentinel.
func (it *Iterator[T]) Node() *Node[T] {
	return it.current
}

// Next advances the iterator one position in its traversal order and reports
// whether it still references a node. Advancing an end iterator is a no-op.
func (it *Iterator[T]) Next() bool {
	if it.current == nil {
		return false
	}
	it.current = it.advance(it.current, it.bound)
	return it.current != nil
}

// Equal reports whether two iterators reference the same node. Two end
// iterators compare equal regardless of how they were constructed.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return it.current == other.current
}

// Nodes adapts the iterator to a range-over-func sequence, consuming it from
// its current position:
//
//	for node := range tree.PostOrder().Nodes() { ... }
func (it *Iterator[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for ; it.Valid(); it.Next() {
			if !yield(it.current) {
				return
			}
		}
	}
}

// leftmostLeaf descends through first-child links until it reaches a
// childless node.
func leftmostLeaf[T any](node *Node[T]) *Node[T] {
	if node == nil {
		return nil
	}
	for node.firstChild != nil {
		node = node.firstChild
	}
	return node
}

// advancePreOrder descends to the first child when one exists; otherwise it
// ascends looking for the nearest unvisited next sibling, stopping at the
// bound so the traversal never leaves the bound's subtree.
func advancePreOrder[T any](current, bound *Node[T]) *Node[T] {
	if current.firstChild != nil {
		return current.firstChild
	}
	for node := current; node != nil; node = node.parent {
		if node == bound {
			return nil
		}
		if node.nextSibling != nil {
			return node.nextSibling
		}
	}
	return nil
}

// advancePostOrder moves to the next sibling's leftmost leaf when a next
// sibling exists, and to the parent otherwise. The bound is always the last
// node of its own traversal, so reaching it ends the iteration.
func advancePostOrder[T any](current, bound *Node[T]) *Node[T] {
	if current == bound {
		return nil
	}
	if current.nextSibling != nil {
		return leftmostLeaf(current.nextSibling)
	}
	return current.parent
}

// advanceLeaf repeats the pre-order advance until it lands on a childless
// node or falls off the end.
func advanceLeaf[T any](current, bound *Node[T]) *Node[T] {
	for {
		current = advancePreOrder(current, bound)
		if current == nil || !current.HasChildren() {
			return current
		}
	}
}

// advanceSibling follows next-sibling links only.
func advanceSibling[T any](current, _ *Node[T]) *Node[T] {
	return current.nextSibling
}
