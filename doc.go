// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package merkletree provides tamper-evident verification of an ordered data
// set with a binary Merkle (hash) tree.
//
// Values are collected in a hashlist.List, which pairs every element with its
// content hash at insertion time. A Tree built from the list commits to the
// whole sequence through a single root hash: membership of one value, of a
// contiguous block of values (a branch), or equality of two entire data sets
// is then checked by exchanging hashes instead of data. A Proof carries the
// logarithmic-size audit path that lets any holder of the root hash verify a
// candidate value or branch independently.
//
// The digest is pluggable through the hasher package; the tree, the list that
// seeded it and the proofs derived from it must share one digest.
package merkletree
