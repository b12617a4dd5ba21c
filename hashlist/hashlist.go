// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package hashlist implements an ordered sequence of values paired with their
// content hashes.
//
// Each element's hash is computed once, at insertion, with the digest the
// list was created with. Element order is significant: it defines the leaf
// order of a Merkle tree built from the list. The list is not synchronized;
// callers sharing a list across goroutines must serialize mutations.
package hashlist

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/consensys/merkletree/hasher"
)

var (
	// ErrNilValue is returned when a nil value is inserted or removed.
	ErrNilValue = errors.New("hashlist: value cannot be nil")

	// ErrConcurrentModification is returned by an iterator whose list was
	// structurally modified after the iterator was created. The iterator is
	// permanently invalid afterwards.
	ErrConcurrentModification = errors.New("hashlist: list modified during iteration")
)

type node[T comparable] struct {
	value T
	hash  string
	next  *node[T]
}

// List is a singly linked list of (value, hash) pairs.
type List[T comparable] struct {
	h    hasher.Hash
	head *node[T]
	tail *node[T]
	size int

	// gen counts structural modifications, for fail-fast iteration
	gen uint64
}

// New returns an empty list whose elements are hashed with h.
func New[T comparable](h hasher.Hash) *List[T] {
	return &List[T]{h: h}
}

// Hasher returns the digest the list hashes its elements with.
func (l *List[T]) Hasher() hasher.Hash { return l.h }

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.size }

// PushFront inserts v at the head of the list, computing its hash eagerly.
func (l *List[T]) PushFront(v T) error {
	if isNil(v) {
		return fmt.Errorf("%w (push front)", ErrNilValue)
	}
	n := &node[T]{value: v, hash: hasher.SumValue(l.h, v)}
	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		n.next = l.head
		l.head = n
	}
	l.size++
	l.gen++
	return nil
}

// PushBack inserts v at the tail of the list, computing its hash eagerly.
func (l *List[T]) PushBack(v T) error {
	if isNil(v) {
		return fmt.Errorf("%w (push back)", ErrNilValue)
	}
	n := &node[T]{value: v, hash: hasher.SumValue(l.h, v)}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
	l.gen++
	return nil
}

// Remove deletes the first element equal to v and reports whether an element
// was removed. Equality is the == of the element type.
func (l *List[T]) Remove(v T) (bool, error) {
	if isNil(v) {
		return false, fmt.Errorf("%w (remove)", ErrNilValue)
	}
	if l.head == nil {
		return false, nil
	}
	if l.head.value == v {
		l.head = l.head.next
		if l.head == nil {
			l.tail = nil
		}
		l.size--
		l.gen++
		return true, nil
	}
	for prev, cur := l.head, l.head.next; cur != nil; prev, cur = cur, cur.next {
		if cur.value == v {
			prev.next = cur.next
			if cur == l.tail {
				l.tail = prev
			}
			l.size--
			l.gen++
			return true, nil
		}
	}
	return false, nil
}

// Hashes returns a fresh snapshot of the stored hashes, head to tail.
func (l *List[T]) Hashes() []string {
	hashes := make([]string, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		hashes = append(hashes, n.hash)
	}
	return hashes
}

// String renders every element as "Data: value, Hash: hash", one per line.
func (l *List[T]) String() string {
	var sb strings.Builder
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(&sb, "Data: %v, Hash: %s\n", n.value, n.hash)
	}
	return sb.String()
}

// Iterator returns a new iterator positioned at the head of the list.
// The iterator fails fast: if the list is structurally modified after this
// call, the next call to Next returns ErrConcurrentModification.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l, cur: l.head, gen: l.gen}
}

// Iterator walks a list head to tail.
type Iterator[T comparable] struct {
	list    *List[T]
	cur     *node[T]
	gen     uint64
	invalid bool
}

// Next returns the next value in the iteration. The second return is false
// once the list is exhausted. A structural modification of the underlying
// list makes Next return ErrConcurrentModification, on the call that detects
// it and on every call after.
func (it *Iterator[T]) Next() (T, bool, error) {
	var zero T
	if it.invalid || it.gen != it.list.gen {
		it.invalid = true
		it.cur = nil
		return zero, false, ErrConcurrentModification
	}
	if it.cur == nil {
		return zero, false, nil
	}
	v := it.cur.value
	it.cur = it.cur.next
	return v, true, nil
}

// isNil reports whether v is a nil pointer, interface, map, slice, channel or
// function hiding behind a non-nil interface value.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
