package tree

// Tree owns a single root node and hands out iterators over the structure.
// All structural state lives in the nodes themselves; the tree is only the
// entry point.
type Tree[T any] struct {
	head *Node[T]
}

// NewTree creates a tree whose root node holds the provided value.
func NewTree[T any](value T) *Tree[T] {
	return &Tree[T]{head: NewNode(value)}
}

// GetHead returns the root node of the tree.
func (t *Tree[T]) GetHead() *Node[T] {
	return t.head
}

// Size counts every node in the tree, the root included. The count is
// recomputed by a full traversal on every call, it is never cached.
func (t *Tree[T]) Size() int {
	count := 0
	for it := t.PostOrder(); it.Valid(); it.Next() {
		count++
	}
	return count
}

// Depth returns the number of ancestor hops from the node to its root.
// A root node has depth zero.
func Depth[T any](n *Node[T]) int {
	depth := 0
	for current := n.parent; current != nil; current = current.parent {
		depth++
	}
	return depth
}

// Clone deep-copies the whole tree. Every node is recreated and relinked; the
// copy shares no ownership with the original. The copy walk is iterative so
// tree height does not bound it.
func (t *Tree[T]) Clone() *Tree[T] {
	copied := NewTree(t.head.Data)

	type pair struct {
		src *Node[T]
		dst *Node[T]
	}
	stack := []pair{{src: t.head, dst: copied.head}}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for child := current.src.firstChild; child != nil; child = child.nextSibling {
			stack = append(stack, pair{src: child, dst: current.dst.AppendChild(child.Data)})
		}
	}
	return copied
}

// PostOrder returns an iterator over the whole tree in post-order. This is
// the natural order for the container: children are always visited, and can
// therefore be deleted, before their parent.
func (t *Tree[T]) PostOrder() *Iterator[T] {
	return NewPostOrderIterator(t.head)
}

// PreOrder returns an iterator over the whole tree in pre-order.
func (t *Tree[T]) PreOrder() *Iterator[T] {
	return NewPreOrderIterator(t.head)
}

// Leaves returns an iterator over every childless node of the tree, in
// pre-order.
func (t *Tree[T]) Leaves() *Iterator[T] {
	return NewLeafIterator(t.head)
}
