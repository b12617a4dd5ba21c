// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package merkletree

// Node is one node of a Merkle tree. A node with no children is a leaf and
// carries the hash of one input element; a node with children carries the
// hash of its children's concatenated hashes.
//
// Nodes are immutable once the tree is built and are never shared across
// trees: pointer identity is the structural identity, used for depth lookups
// and leaf offsets where equal hashes at different positions must stay
// distinct.
type Node struct {
	hash   string
	left   *Node
	right  *Node
	leaves int
}

// Hash returns the node's hash string.
func (n *Node) Hash() string { return n.hash }

// Left returns the left child, or nil for a leaf.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, or nil for a leaf or a single-child node.
func (n *Node) Right() *Node { return n.right }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return n.left == nil && n.right == nil }

// Leaves returns the number of leaves in the subtree rooted at n.
// The count is fixed at construction; no tree walk is needed.
func (n *Node) Leaves() int { return n.leaves }

// String returns the node's hash, tagged with its role.
func (n *Node) String() string {
	if n.IsLeaf() {
		return "leaf:" + n.hash
	}
	return "node:" + n.hash
}
