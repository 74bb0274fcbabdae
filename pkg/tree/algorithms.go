package tree

import "sort"

// SortChildren stably reorders the immediate children of the node according
// to less. Only the sibling chain one level down is relinked; grandchildren
// keep their order, and every child keeps its parent link. Callers wanting a
// whole-tree sort recurse explicitly, see SortTree.
func (n *Node[T]) SortChildren(less func(lhs, rhs T) bool) {
	if n.childCount < 2 {
		return
	}

	children := make([]*Node[T], 0, n.childCount)
	for child := n.firstChild; child != nil; child = child.nextSibling {
		children = append(children, child)
	}

	sort.SliceStable(children, func(i, j int) bool {
		return less(children[i].Data, children[j].Data)
	})

	for i, child := range children {
		if i == 0 {
			child.previousSibling = nil
		} else {
			child.previousSibling = children[i-1]
		}
		if i == len(children)-1 {
			child.nextSibling = nil
		} else {
			child.nextSibling = children[i+1]
		}
	}
	n.firstChild = children[0]
	n.lastChild = children[len(children)-1]
}

// SortTree applies SortChildren at every node of the tree, visiting in
// post-order so sorting a parent's children never disturbs grandchildren
// that were already sorted.
func SortTree[T any](t *Tree[T], less func(lhs, rhs T) bool) {
	for it := t.PostOrder(); it.Valid(); it.Next() {
		it.Node().SortChildren(less)
	}
}

// DeleteWhere removes every non-root node whose payload matches pred,
// together with its whole subtree, and returns the total number of nodes
// removed. It runs in two passes: matches are collected during a post-order
// traversal first, and only then deleted, so no live traversal ever stands
// on a node that is being destroyed. Nodes detached by the deletion of an
// earlier match are skipped.
func DeleteWhere[T any](t *Tree[T], pred func(data T) bool) int {
	matches := []*Node[T]{}
	for it := t.PostOrder(); it.Valid(); it.Next() {
		node := it.Node()
		if node != t.head && pred(node.Data) {
			matches = append(matches, node)
		}
	}

	removed := 0
	for _, node := range matches {
		if node.parent == nil {
			// already torn down by an earlier deletion
			continue
		}
		removed += node.DeleteFromTree()
	}
	return removed
}
