package tree

import "cmp"

// Node is a single vertex of an N-ary tree. It owns its payload and its list
// of children; parent and sibling links are plain back-references.
type Node[T any] struct {
	Data T // the payload carried by this node

	parent          *Node[T]
	firstChild      *Node[T]
	lastChild       *Node[T]
	previousSibling *Node[T]
	nextSibling     *Node[T]
	childCount      int
}

// NewNode creates a standalone node holding the provided payload.
// Nodes attached to a tree are normally created through AppendChild or
// PrependChild instead.
func NewNode[T any](data T) *Node[T] {
	return &Node[T]{Data: data}
}

// isRoot checks if the current node has no parent.
func (n *Node[T]) isRoot() bool {
	return n.parent == nil
}

// GetParent returns the parent node, or nil if this is a root.
func (n *Node[T]) GetParent() *Node[T] {
	return n.parent
}

// GetFirstChild returns the head of the child list, or nil.
func (n *Node[T]) GetFirstChild() *Node[T] {
	return n.firstChild
}

// GetLastChild returns the tail of the child list, or nil.
func (n *Node[T]) GetLastChild() *Node[T] {
	return n.lastChild
}

// GetNextSibling returns the next node sharing this node's parent, or nil.
func (n *Node[T]) GetNextSibling() *Node[T] {
	return n.nextSibling
}

// GetPreviousSibling returns the previous node sharing this node's parent, or nil.
func (n *Node[T]) GetPreviousSibling() *Node[T] {
	return n.previousSibling
}

// GetChildCount returns the number of immediate children, not a subtree total.
func (n *Node[T]) GetChildCount() int {
	return n.childCount
}

// HasChildren reports whether the node has at least one child.
func (n *Node[T]) HasChildren() bool {
	return n.childCount > 0
}

// AppendChild creates a new node owning value and links it as the new last
// child. Returns the new child so calls can be chained.
func (n *Node[T]) AppendChild(value T) *Node[T] {
	child := &Node[T]{Data: value, parent: n}

	if n.lastChild == nil {
		n.firstChild = child
	} else {
		child.previousSibling = n.lastChild
		n.lastChild.nextSibling = child
	}
	n.lastChild = child
	n.childCount++

	return child
}

// PrependChild creates a new node owning value and links it as the new first
// child. Returns the new child so calls can be chained.
func (n *Node[T]) PrependChild(value T) *Node[T] {
	child := &Node[T]{Data: value, parent: n}

	if n.firstChild == nil {
		n.lastChild = child
	} else {
		child.nextSibling = n.firstChild
		n.firstChild.previousSibling = child
	}
	n.firstChild = child
	n.childCount++

	return child
}

// CountAllDescendants counts every node in the subtree below this one,
// excluding the node itself. Uses an explicit worklist so arbitrarily deep
// trees cannot exhaust the call stack.
func (n *Node[T]) CountAllDescendants() int {
	count := 0
	stack := []*Node[T]{}
	for child := n.firstChild; child != nil; child = child.nextSibling {
		stack = append(stack, child)
	}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for child := current.firstChild; child != nil; child = child.nextSibling {
			stack = append(stack, child)
		}
	}
	return count
}

// DeleteFromTree unlinks this node from its parent's child list and severs
// every link in the subtree rooted here. The sibling chain and the parent's
// first/last child pointers are patched so iterators positioned on any other
// node keep working. Returns the number of nodes removed, this node included.
//
// The node must not be the root of its tree.
func (n *Node[T]) DeleteFromTree() int {
	if n.isRoot() {
		panic("[BUG] DeleteFromTree: you can not delete the root")
	}

	parent := n.parent
	if parent.firstChild == n {
		parent.firstChild = n.nextSibling
	}
	if parent.lastChild == n {
		parent.lastChild = n.previousSibling
	}
	if n.previousSibling != nil {
		n.previousSibling.nextSibling = n.nextSibling
	}
	if n.nextSibling != nil {
		n.nextSibling.previousSibling = n.previousSibling
	}
	parent.childCount--

	// Tear the subtree down iteratively, clearing links as we go so detached
	// nodes are unreachable and a stale DeleteFromTree on one of them is
	// detectable as a parentless node.
	count := 0
	stack := []*Node[T]{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for child := current.firstChild; child != nil; {
			next := child.nextSibling
			stack = append(stack, child)
			child = next
		}
		current.parent = nil
		current.firstChild = nil
		current.lastChild = nil
		current.previousSibling = nil
		current.nextSibling = nil
		current.childCount = 0
		count++
	}
	return count
}

// Less reports whether the payload of lhs orders before the payload of rhs.
// Comparisons look at payload values only, never at structural position.
func Less[T cmp.Ordered](lhs, rhs *Node[T]) bool {
	return lhs.Data < rhs.Data
}

// LessOrEqual reports whether the payload of lhs orders before or equal to rhs.
func LessOrEqual[T cmp.Ordered](lhs, rhs *Node[T]) bool {
	return lhs.Data <= rhs.Data
}

// Equal reports whether two nodes carry equal payloads.
func Equal[T cmp.Ordered](lhs, rhs *Node[T]) bool {
	return lhs.Data == rhs.Data
}

// Greater reports whether the payload of lhs orders after the payload of rhs.
func Greater[T cmp.Ordered](lhs, rhs *Node[T]) bool {
	return lhs.Data > rhs.Data
}

// GreaterOrEqual reports whether the payload of lhs orders after or equal to rhs.
func GreaterOrEqual[T cmp.Ordered](lhs, rhs *Node[T]) bool {
	return lhs.Data >= rhs.Data
}
