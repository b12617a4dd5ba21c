// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package hasher defines the content digest used to build hash lists and
// Merkle trees, and provides interchangeable implementations.
//
// A digest maps an arbitrary byte string to a fixed-length lowercase
// hexadecimal string. The same digest must be used for a list, the tree built
// from it and the proofs derived from that tree; mixing digests produces
// hashes that never recombine to the same root.
package hasher

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"golang.org/x/crypto/blake2b"
)

// Hash computes a deterministic, fixed-length hexadecimal digest of a byte
// string. Implementations are stateless and safe for concurrent use.
type Hash interface {
	Sum(b []byte) string
}

// SumValue returns the digest of a value's canonical byte encoding.
//
// []byte and string values are hashed as-is, fmt.Stringer values through
// String(), anything else through its fmt "%v" rendering. Callers that need a
// different canonical form implement fmt.Stringer on their type.
func SumValue(h Hash, v any) string {
	return h.Sum(ValueBytes(v))
}

// SumPair returns the digest of the concatenation of two hash strings.
// An empty right operand degenerates to hashing the left hash alone, which is
// how a single-child node derives its hash.
func SumPair(h Hash, left, right string) string {
	return h.Sum([]byte(left + right))
}

// ValueBytes returns the canonical byte encoding of v used for hashing.
func ValueBytes(v any) []byte {
	switch x := v.(type) {
	case []byte:
		return x
	case string:
		return []byte(x)
	case fmt.Stringer:
		return []byte(x.String())
	default:
		return fmt.Appendf(nil, "%v", v)
	}
}

type md5Hash struct{}

// MD5 returns the default digest: a 128-bit MD5 rendered as a 32-character
// hex string. MD5 is not collision resistant; it is kept as the default for
// its fixed short output, not for cryptographic strength.
func MD5() Hash { return md5Hash{} }

func (md5Hash) Sum(b []byte) string {
	s := md5.Sum(b)
	return hex.EncodeToString(s[:])
}

type blake2bHash struct{}

// BLAKE2b returns a 256-bit BLAKE2b digest rendered as a 64-character hex
// string.
func BLAKE2b() Hash { return blake2bHash{} }

func (blake2bHash) Sum(b []byte) string {
	s := blake2b.Sum256(b)
	return hex.EncodeToString(s[:])
}

type mimcHash struct{}

// MiMC returns a digest backed by the MiMC permutation over the bn254 scalar
// field. Input bytes are split into 31-byte chunks, each left-padded to the
// 32-byte field block so arbitrary byte strings stay below the field modulus.
func MiMC() Hash { return mimcHash{} }

func (mimcHash) Sum(b []byte) string {
	h := mimc.NewMiMC()
	var block [mimc.BlockSize]byte
	const chunk = mimc.BlockSize - 1
	for start := 0; start < len(b); start += chunk {
		end := min(start+chunk, len(b))
		clear(block[:])
		copy(block[mimc.BlockSize-(end-start):], b[start:end])
		// cannot fail: a left-padded 31-byte chunk is below the modulus
		h.Write(block[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}
