// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package merkletree

import "errors"

var (
	// ErrNilList is returned when building a tree from a nil list.
	ErrNilList = errors.New("merkletree: list cannot be nil")

	// ErrEmptyList is returned when building a tree from a list with no
	// elements.
	ErrEmptyList = errors.New("merkletree: list cannot be empty")

	// ErrNilTree is returned when a tree-to-tree operation receives nil.
	ErrNilTree = errors.New("merkletree: tree cannot be nil")

	// ErrNilBranch is returned when a branch argument is nil.
	ErrNilBranch = errors.New("merkletree: branch cannot be nil")

	// ErrUnknownBranch is returned when a branch does not belong to the tree
	// being queried.
	ErrUnknownBranch = errors.New("merkletree: branch is not part of the tree")

	// ErrNotFound is returned when proving a value or branch that is absent
	// from the tree.
	ErrNotFound = errors.New("merkletree: target is not part of the tree")

	// ErrShapeMismatch is returned when diffing trees of different width or
	// height; such trees cannot represent the same data set.
	ErrShapeMismatch = errors.New("merkletree: trees have different shapes")

	// ErrNilValue is returned when verifying a nil value against a proof.
	ErrNilValue = errors.New("merkletree: value cannot be nil")

	// ErrEmptyRootHash is returned when creating a proof without a root hash.
	ErrEmptyRootHash = errors.New("merkletree: proof root hash cannot be empty")

	// ErrNegativeLength is returned when creating a proof with a negative
	// maximum length.
	ErrNegativeLength = errors.New("merkletree: proof length cannot be negative")
)
