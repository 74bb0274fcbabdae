// ## Overview
// Package tree implements a generic N-ary tree container. Every node owns its
// payload and its doubly-linked list of children; parent and sibling links are
// plain back-references. Insertion order of children is preserved and defines
// traversal order.
//
// Four independent traversal strategies are provided over the same structure:
// pre-order, post-order, leaf-only and sibling-only. All four share one
// forward-only cursor type; an iterator constructed from an internal node is
// bounded by that node's subtree and never escapes it.
//
// ## Example usage:
//
//	t := tree.NewTree("F")
//	t.GetHead().AppendChild("B").AppendChild("A")
//	t.GetHead().AppendChild("G")
//
//	for it := t.PostOrder(); it.Valid(); it.Next() {
//	    fmt.Println(it.Node().Data) // A, B, G, F
//	}
//
// The container provides no internal locking. A multi-worker builder takes an
// external lock around AppendChild/PrependChild/DeleteFromTree and traverses
// only after the workers have joined.
package tree
