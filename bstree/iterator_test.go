package bstree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorForward(t *testing.T) {
	tree := newSample(t)

	var keys, values []int
	for it := tree.Begin(); !it.Equal(tree.End()); {
		k, err := it.Key()
		require.NoError(t, err)
		v, err := it.Value()
		require.NoError(t, err)
		keys = append(keys, k)
		values = append(values, v)
		require.NoError(t, it.Next())
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, keys)
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60, 70, 80, 90}, values)
}

func TestIteratorBackward(t *testing.T) {
	tree := newSample(t)

	var keys []int
	for it := tree.RBegin(); it.Valid(); {
		k, err := it.Key()
		require.NoError(t, err)
		keys = append(keys, k)
		require.NoError(t, it.Prev())
	}

	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, keys)
}

func TestIteratorEmptyTree(t *testing.T) {
	tree := New[int, string]()

	it := tree.Begin()
	assert.True(t, it.Equal(tree.End()))
	assert.True(t, tree.RBegin().Equal(tree.End()))
	assert.False(t, it.Valid())

	_, err := it.Value()
	assert.ErrorIs(t, err, ErrIteratorEnd)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = it.Key()
	assert.ErrorIs(t, err, ErrIteratorEnd)
	assert.ErrorIs(t, it.Next(), ErrIteratorEnd)
	assert.ErrorIs(t, it.Prev(), ErrIteratorEnd)
}

func TestIteratorFailsPastEnd(t *testing.T) {
	tree := New[int, int]()
	tree.Insert(1, 1)

	it := tree.Begin()
	require.NoError(t, it.Next())
	assert.True(t, it.Equal(tree.End()))
	assert.ErrorIs(t, it.Next(), ErrIteratorEnd)
	assert.ErrorIs(t, it.Prev(), ErrIteratorEnd)

	it = tree.Begin()
	require.NoError(t, it.Prev())
	assert.False(t, it.Valid())
}

func TestIteratorBothDirections(t *testing.T) {
	tree := newSample(t)

	it := tree.Begin()
	for i := 0; i < 5; i++ {
		require.NoError(t, it.Next())
	}
	k, err := it.Key()
	require.NoError(t, err)
	assert.Equal(t, 6, k)

	require.NoError(t, it.Prev())
	require.NoError(t, it.Prev())
	k, err = it.Key()
	require.NoError(t, err)
	assert.Equal(t, 4, k)
}

func TestIteratorEqual(t *testing.T) {
	tree := newSample(t)
	other := newSample(t)

	a, b := tree.Begin(), tree.Begin()
	assert.True(t, a.Equal(b))
	require.NoError(t, b.Next())
	assert.False(t, a.Equal(b))
	require.NoError(t, a.Next())
	assert.True(t, a.Equal(b))

	assert.False(t, tree.Begin().Equal(other.Begin()))
	assert.True(t, tree.End().Equal(other.End()))
}

func TestIteratorRefMutates(t *testing.T) {
	tree := newSample(t)

	for it := tree.Begin(); it.Valid(); {
		ref, err := it.Ref()
		require.NoError(t, err)
		*ref++
		require.NoError(t, it.Next())
	}

	v, err := tree.At(5)
	require.NoError(t, err)
	assert.Equal(t, 51, v)
}

func TestIteratorDegenerateTree(t *testing.T) {
	tree := New[int, int]()
	for i := 100; i > 0; i-- {
		tree.Insert(i, i)
	}

	n := 0
	for it := tree.Begin(); it.Valid(); n++ {
		k, err := it.Key()
		require.NoError(t, err)
		assert.Equal(t, n+1, k)
		require.NoError(t, it.Next())
	}
	assert.Equal(t, 100, n)
}
