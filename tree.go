// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package merkletree

import (
	"time"

	"github.com/consensys/merkletree/hasher"
	"github.com/consensys/merkletree/hashlist"
	"github.com/consensys/merkletree/logger"
)

// Tree is an immutable Merkle tree built from the hashes of a hashlist.List.
//
// Leaves correspond one to one, in order, to the list's elements. Adjacent
// nodes are paired left to right; an odd trailing node is promoted under a
// single-child parent rather than duplicated. After construction the tree is
// read-only and safe for concurrent queries.
type Tree[T comparable] struct {
	root   *Node
	h      hasher.Hash
	width  int
	height int

	// leafIndex maps a leaf hash to the indices producing it, in input order.
	leafIndex map[string][]int
	// hashes holds every hash appearing in the tree, leaves and internal.
	hashes map[string]struct{}
}

// New builds a Merkle tree from the ordered hashes of list, using the list's
// own digest. It returns ErrNilList or ErrEmptyList when there is nothing to
// build from.
func New[T comparable](list *hashlist.List[T]) (*Tree[T], error) {
	if list == nil {
		return nil, ErrNilList
	}
	if list.Len() == 0 {
		return nil, ErrEmptyList
	}

	start := time.Now()
	t := &Tree[T]{
		h:         list.Hasher(),
		width:     list.Len(),
		leafIndex: make(map[string][]int, list.Len()),
		hashes:    make(map[string]struct{}, 2*list.Len()),
	}
	t.root = t.build(list.Hashes())
	t.height = nodeHeight(t.root)

	log := logger.Logger()
	log.Debug().
		Int("width", t.width).
		Int("height", t.height).
		Dur("took", time.Since(start)).
		Msg("merkle tree built")

	return t, nil
}

// build constructs the tree bottom-up, one level at a time, recording leaf
// indices and the set of all hashes along the way.
func (t *Tree[T]) build(hashes []string) *Node {
	level := make([]*Node, len(hashes))
	for i, h := range hashes {
		level[i] = &Node{hash: h, leaves: 1}
		t.hashes[h] = struct{}{}
		t.leafIndex[h] = append(t.leafIndex[h], i)
	}

	for len(level) > 1 {
		next := make([]*Node, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			var right *Node
			if i+1 < len(level) {
				right = level[i+1]
			}
			parent := t.combine(left, right)
			t.hashes[parent.hash] = struct{}{}
			next = append(next, parent)
		}
		level = next
	}
	return level[0]
}

// combine creates the parent of left and right. A nil right is the odd
// trailing node case: the parent hashes the left hash alone.
func (t *Tree[T]) combine(left, right *Node) *Node {
	if right == nil {
		return &Node{
			hash:   hasher.SumPair(t.h, left.hash, ""),
			left:   left,
			leaves: left.leaves,
		}
	}
	return &Node{
		hash:   hasher.SumPair(t.h, left.hash, right.hash),
		left:   left,
		right:  right,
		leaves: left.leaves + right.leaves,
	}
}

func nodeHeight(n *Node) int {
	if n == nil {
		return -1
	}
	return 1 + max(nodeHeight(n.left), nodeHeight(n.right))
}

// Root returns the root node of the tree.
func (t *Tree[T]) Root() *Node { return t.root }

// Width returns the number of leaves.
func (t *Tree[T]) Width() int { return t.width }

// Height returns the number of edges on the longest root-to-leaf path.
func (t *Tree[T]) Height() int { return t.height }

// Hasher returns the digest the tree was built with.
func (t *Tree[T]) Hasher() hasher.Hash { return t.h }

// ValidateData reports whether v's hash appears as a leaf of the tree.
func (t *Tree[T]) ValidateData(v T) bool {
	_, ok := t.leafIndex[hasher.SumValue(t.h, v)]
	return ok
}

// ValidateBranch reports whether branch's hash appears anywhere in the tree,
// as a leaf or an internal node.
//
// This is a hash membership check, not a structural one: a node from another
// tree whose hash collides with any hash of this tree passes. Operations that
// need the real position (IndexOfDataInBranch, ProveBranch) re-descend the
// structure and are not fooled by such a node.
func (t *Tree[T]) ValidateBranch(branch *Node) bool {
	if branch == nil {
		return false
	}
	_, ok := t.hashes[branch.hash]
	return ok
}

// ValidateTree reports whether other commits to the same data set, by
// comparing root hashes. Whole-data-set equality compresses to this single
// comparison.
func (t *Tree[T]) ValidateTree(other *Tree[T]) (bool, error) {
	if other == nil {
		return false, ErrNilTree
	}
	return t.root.hash == other.root.hash, nil
}

// IndexOfData returns the index of the first leaf whose hash equals v's
// hash, or -1 when no leaf matches.
func (t *Tree[T]) IndexOfData(v T) int {
	if indices := t.leafIndex[hasher.SumValue(t.h, v)]; len(indices) > 0 {
		return indices[0]
	}
	return -1
}

// IndexOfDataInBranch returns the index of v relative to the leaf range of
// branch, i.e. the offset of v within the block of data the branch commits
// to, or -1 when v is absent from that block. The descent is guided by the
// per-subtree leaf counts, so it costs the branch's depth, not its width.
//
// It returns ErrNilBranch or ErrUnknownBranch when branch is nil or not part
// of the tree.
func (t *Tree[T]) IndexOfDataInBranch(branch *Node, v T) (int, error) {
	if branch == nil {
		return -1, ErrNilBranch
	}
	if !t.ValidateBranch(branch) {
		return -1, ErrUnknownBranch
	}
	return indexInBranch(branch, hasher.SumValue(t.h, v), 0), nil
}

func indexInBranch(n *Node, target string, offset int) int {
	if n == nil {
		return -1
	}
	if n.IsLeaf() {
		if n.hash == target {
			return offset
		}
		return -1
	}
	if i := indexInBranch(n.left, target, offset); i != -1 {
		return i
	}
	return indexInBranch(n.right, target, offset+n.left.leaves)
}

// Depth returns the number of edges from the root to n, matching by node
// identity, or -1 when n is not a node of this tree.
func (t *Tree[T]) Depth(n *Node) int {
	return nodeDepth(t.root, n, 0)
}

func nodeDepth(cur, target *Node, depth int) int {
	if cur == nil {
		return -1
	}
	if cur == target {
		return depth
	}
	if d := nodeDepth(cur.left, target, depth+1); d != -1 {
		return d
	}
	return nodeDepth(cur.right, target, depth+1)
}

// Prove generates the Merkle proof for v: one step per level between the leaf
// holding v's hash and the root. It returns ErrNotFound when v's hash is not
// a leaf of the tree.
func (t *Tree[T]) Prove(v T) (*Proof, error) {
	target := hasher.SumValue(t.h, v)
	if _, ok := t.leafIndex[target]; !ok {
		return nil, ErrNotFound
	}
	proof, err := NewProof(t.h, t.root.hash, t.height)
	if err != nil {
		return nil, err
	}
	t.appendPath(t.root, target, proof, true)
	return proof, nil
}

// ProveBranch generates the Merkle proof for a branch: one step per level
// between the branch and the root. The proof capacity is the tree height
// minus the branch's own subtree height, which is exactly the number of
// levels the audit path crosses; leaves sit at subtree height zero, so a
// leaf branch gets a full-height proof. It returns ErrNilBranch or
// ErrUnknownBranch on invalid input.
func (t *Tree[T]) ProveBranch(branch *Node) (*Proof, error) {
	if branch == nil {
		return nil, ErrNilBranch
	}
	if !t.ValidateBranch(branch) {
		return nil, ErrUnknownBranch
	}
	proof, err := NewProof(t.h, t.root.hash, t.height-nodeHeight(branch))
	if err != nil {
		return nil, err
	}
	if !t.appendPath(t.root, branch.hash, proof, false) {
		return nil, ErrNotFound
	}
	return proof, nil
}

// appendPath descends from n towards the node hashing to target and, while
// unwinding, appends one proof step per level: the hash of the sibling the
// search did not take, tagged with the side it recombines on. A missing
// sibling appends the empty placeholder so the proof keeps one step per
// level. leafOnly restricts matches to leaves (data proofs); otherwise any
// node hash matches (branch proofs).
func (t *Tree[T]) appendPath(n *Node, target string, proof *Proof, leafOnly bool) bool {
	if n == nil {
		return false
	}
	if (!leafOnly || n.IsLeaf()) && n.hash == target {
		return true
	}
	if t.appendPath(n.left, target, proof, leafOnly) {
		if n.right != nil {
			proof.AddStep(n.right.hash, false)
		} else {
			proof.AddStep("", false)
		}
		return true
	}
	if t.appendPath(n.right, target, proof, leafOnly) {
		proof.AddStep(n.left.hash, true)
		return true
	}
	return false
}
