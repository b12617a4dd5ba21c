// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package merkletree

import (
	"reflect"

	"github.com/consensys/merkletree/hasher"
	"github.com/consensys/merkletree/hashlist"
)

// Step is one element of an audit path: a sibling hash and the side it
// recombines on during verification. An empty Sibling is the placeholder for
// a missing sibling at a single-child level; hashing the concatenation with
// an empty string degenerates to rehashing the working hash alone, exactly
// how the single-child parent hash was derived.
type Step struct {
	Sibling string
	Left    bool
}

// String renders the step as its sibling hash tagged with the combining side.
func (s Step) String() string {
	if s.Left {
		return s.Sibling + "L"
	}
	return s.Sibling + "R"
}

// Proof is an audit path bound to a root hash: the ordered sibling hashes
// needed to recombine a leaf or branch hash back into the root. Steps are
// appended bottom-up during generation, root-most step last, and the proof
// never grows past the capacity fixed at creation. A returned proof has no
// further mutation contract; any holder of the root hash can verify against
// it.
type Proof struct {
	h        hasher.Hash
	steps    *hashlist.List[Step]
	rootHash string
	maxLen   int
}

// NewProof returns an empty proof targeting rootHash, hashing with h and
// holding at most maxLen steps. maxLen is the tree height minus the proven
// node's own subtree height, which is exactly the number of steps a complete
// proof carries.
func NewProof(h hasher.Hash, rootHash string, maxLen int) (*Proof, error) {
	if rootHash == "" {
		return nil, ErrEmptyRootHash
	}
	if maxLen < 0 {
		return nil, ErrNegativeLength
	}
	return &Proof{
		h:        h,
		steps:    hashlist.New[Step](h),
		rootHash: rootHash,
		maxLen:   maxLen,
	}, nil
}

// RootHash returns the root hash the proof verifies against.
func (p *Proof) RootHash() string { return p.rootHash }

// Len returns the number of steps appended so far.
func (p *Proof) Len() int { return p.steps.Len() }

// MaxLen returns the number of steps the proof holds when complete.
func (p *Proof) MaxLen() int { return p.maxLen }

// Steps returns a snapshot of the appended steps in verification order.
func (p *Proof) Steps() []Step {
	steps := make([]Step, 0, p.steps.Len())
	it := p.steps.Iterator()
	for {
		s, ok, err := it.Next()
		if err != nil || !ok {
			break
		}
		steps = append(steps, s)
	}
	return steps
}

// AddStep appends one step to the proof and reports whether it was accepted.
// A proof that already holds MaxLen steps is saturated: the step is dropped
// and AddStep returns false. Saturation is an expected terminal state of
// proof construction, not an error.
func (p *Proof) AddStep(sibling string, left bool) bool {
	if p.steps.Len() >= p.maxLen {
		return false
	}
	if err := p.steps.PushBack(Step{Sibling: sibling, Left: left}); err != nil {
		return false
	}
	return true
}

// VerifyData reports whether v is valid under the proof: folding v's hash
// through the stored steps must reproduce the bound root hash. The cost is
// the proof length, independent of the tree size.
func (p *Proof) VerifyData(v any) (bool, error) {
	if v == nil || isNilValue(v) {
		return false, ErrNilValue
	}
	return p.fold(hasher.SumValue(p.h, v)) == p.rootHash, nil
}

// VerifyBranch reports whether branch is valid under the proof. For an
// internal branch the hash is first re-derived from the branch's own
// children; a mismatch there means a forged branch hash and fails the proof
// before any step is consulted.
func (p *Proof) VerifyBranch(branch *Node) (bool, error) {
	if branch == nil {
		return false, ErrNilBranch
	}
	if !branch.IsLeaf() {
		var right string
		if branch.right != nil {
			right = branch.right.hash
		}
		if hasher.SumPair(p.h, branch.left.hash, right) != branch.hash {
			return false, nil
		}
	}
	return p.fold(branch.hash) == p.rootHash, nil
}

// fold combines initial with every stored step in order: the sibling goes on
// the side its flag names, the concatenation is rehashed, and the result
// feeds the next step.
func (p *Proof) fold(initial string) string {
	working := initial
	it := p.steps.Iterator()
	for {
		s, ok, err := it.Next()
		if err != nil || !ok {
			break
		}
		if s.Left {
			working = hasher.SumPair(p.h, s.Sibling, working)
		} else {
			working = hasher.SumPair(p.h, working, s.Sibling)
		}
	}
	return working
}

func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
