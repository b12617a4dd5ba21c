// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package hashlist

import (
	"fmt"
	"testing"

	"github.com/consensys/merkletree/hasher"
	"github.com/stretchr/testify/require"
)

func collect[T comparable](t *testing.T, l *List[T]) []T {
	t.Helper()
	var out []T
	it := l.Iterator()
	for {
		v, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestPushOrder(t *testing.T) {
	l := New[string](hasher.MD5())
	require.NoError(t, l.PushBack("b"))
	require.NoError(t, l.PushBack("c"))
	require.NoError(t, l.PushFront("a"))

	require.Equal(t, 3, l.Len())
	require.Equal(t, []string{"a", "b", "c"}, collect(t, l))
}

func TestHashesAreEagerAndOrdered(t *testing.T) {
	h := hasher.MD5()
	l := New[string](h)
	values := []string{"alpha", "beta", "gamma"}
	for _, v := range values {
		require.NoError(t, l.PushBack(v))
	}

	hashes := l.Hashes()
	require.Len(t, hashes, len(values))
	for i, v := range values {
		require.Equal(t, hasher.SumValue(h, v), hashes[i])
	}

	// snapshot is independent of the list
	hashes[0] = "clobbered"
	require.Equal(t, hasher.SumValue(h, "alpha"), l.Hashes()[0])
}

func TestRemove(t *testing.T) {
	newList := func() *List[string] {
		l := New[string](hasher.MD5())
		for _, v := range []string{"a", "b", "c"} {
			require.NoError(t, l.PushBack(v))
		}
		return l
	}

	t.Run("head", func(t *testing.T) {
		l := newList()
		ok, err := l.Remove("a")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, []string{"b", "c"}, collect(t, l))
	})

	t.Run("middle", func(t *testing.T) {
		l := newList()
		ok, err := l.Remove("b")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, []string{"a", "c"}, collect(t, l))
	})

	t.Run("tail keeps tail pointer coherent", func(t *testing.T) {
		l := newList()
		ok, err := l.Remove("c")
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, l.PushBack("d"))
		require.Equal(t, []string{"a", "b", "d"}, collect(t, l))
	})

	t.Run("absent", func(t *testing.T) {
		l := newList()
		ok, err := l.Remove("z")
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, 3, l.Len())
	})

	t.Run("first match only", func(t *testing.T) {
		l := New[string](hasher.MD5())
		for _, v := range []string{"x", "y", "x"} {
			require.NoError(t, l.PushBack(v))
		}
		ok, err := l.Remove("x")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, []string{"y", "x"}, collect(t, l))
	})

	t.Run("last element empties the list", func(t *testing.T) {
		l := New[string](hasher.MD5())
		require.NoError(t, l.PushBack("only"))
		ok, err := l.Remove("only")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 0, l.Len())
		require.NoError(t, l.PushBack("again"))
		require.Equal(t, []string{"again"}, collect(t, l))
	})
}

func TestNilValuesAreRejected(t *testing.T) {
	l := New[*string](hasher.MD5())

	require.ErrorIs(t, l.PushFront(nil), ErrNilValue)
	require.ErrorIs(t, l.PushBack(nil), ErrNilValue)
	_, err := l.Remove(nil)
	require.ErrorIs(t, err, ErrNilValue)
	require.Equal(t, 0, l.Len())
}

func TestIteratorFailsFastOnMutation(t *testing.T) {
	l := New[string](hasher.MD5())
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, l.PushBack(v))
	}

	it := l.Iterator()
	v, ok, err := it.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "a", v)

	require.NoError(t, l.PushFront("intruder"))

	_, _, err = it.Next()
	require.ErrorIs(t, err, ErrConcurrentModification)

	// the iterator is permanently invalid
	_, _, err = it.Next()
	require.ErrorIs(t, err, ErrConcurrentModification)
}

func TestIteratorFailsFastOnRemove(t *testing.T) {
	l := New[string](hasher.MD5())
	for _, v := range []string{"a", "b"} {
		require.NoError(t, l.PushBack(v))
	}

	it := l.Iterator()
	ok, err := l.Remove("b")
	require.NoError(t, err)
	require.True(t, ok)

	_, _, err = it.Next()
	require.ErrorIs(t, err, ErrConcurrentModification)
}

func TestFailedRemoveDoesNotInvalidateIterators(t *testing.T) {
	l := New[string](hasher.MD5())
	require.NoError(t, l.PushBack("a"))

	it := l.Iterator()
	ok, err := l.Remove("missing")
	require.NoError(t, err)
	require.False(t, ok)

	v, ok, err := it.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "a", v)
}

func TestIteratorsAreRestartable(t *testing.T) {
	l := New[string](hasher.MD5())
	for _, v := range []string{"a", "b"} {
		require.NoError(t, l.PushBack(v))
	}

	require.Equal(t, []string{"a", "b"}, collect(t, l))
	require.Equal(t, []string{"a", "b"}, collect(t, l))
}

func TestString(t *testing.T) {
	h := hasher.MD5()
	l := New[string](h)
	require.NoError(t, l.PushBack("one"))
	require.NoError(t, l.PushBack("two"))

	want := fmt.Sprintf("Data: one, Hash: %s\nData: two, Hash: %s\n",
		hasher.SumValue(h, "one"), hasher.SumValue(h, "two"))
	require.Equal(t, want, l.String())

	require.Empty(t, New[string](h).String())
}
