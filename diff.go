// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package merkletree

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// InvalidLeafIndices compares the tree against another tree of identical
// shape and returns the indices, in ascending order, of the leaves where the
// two disagree. Subtrees whose root hashes match are pruned without visiting
// their leaves, so k corrupted leaves cost O(k*height), not O(width).
//
// It returns ErrNilTree when other is nil and ErrShapeMismatch when the trees
// differ in width or height: such trees cannot represent the same data set
// and a leaf-by-leaf correspondence does not exist.
func (t *Tree[T]) InvalidLeafIndices(other *Tree[T]) ([]int, error) {
	if other == nil {
		return nil, ErrNilTree
	}
	if other.width != t.width || other.height != t.height {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrShapeMismatch, t.width, t.height, other.width, other.height)
	}

	invalid := bitset.New(uint(t.width))
	collectInvalid(t.root, other.root, 0, t.width-1, invalid)

	indices := make([]int, 0, invalid.Count())
	for i, ok := invalid.NextSet(0); ok; i, ok = invalid.NextSet(i + 1) {
		indices = append(indices, int(i))
	}
	return indices, nil
}

// collectInvalid co-descends both trees over the leaf range [start, end].
// Equal hashes prune the whole subtree; a mismatching leaf records its index;
// a mismatching internal node splits the range after the left subtree's last
// leaf and recurses into both sides.
func collectInvalid(a, b *Node, start, end int, invalid *bitset.BitSet) {
	if a == nil || b == nil || start > end {
		return
	}
	if a.hash == b.hash {
		return
	}
	if a.IsLeaf() {
		invalid.Set(uint(start))
		return
	}
	mid := start + a.left.leaves - 1
	collectInvalid(a.left, b.left, start, mid, invalid)
	collectInvalid(a.right, b.right, mid+1, end, invalid)
}
