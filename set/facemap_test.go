package set_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polylattice/set"
)

func TestFaceMap_FindIsStable(t *testing.T) {
	m := set.NewFaceMap()

	s := m.Find(set.New(0, 2))
	require.True(t, s.IsUnknown())
	s.SetIndex(7)

	again := m.Find(set.New(2, 0))
	assert.Same(t, s, again)
	assert.Equal(t, 7, again.Index())
	assert.Equal(t, 1, m.Len())
}

func TestFaceMap_PrefixesAreDistinct(t *testing.T) {
	m := set.NewFaceMap()
	m.Find(set.New(0, 1, 2)).SetIndex(1)
	m.Find(set.New(0, 1)).SetIndex(2)
	m.Find(set.Set{}).SetIndex(3)

	idx, ok := m.Lookup(set.New(0, 1))
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = m.Lookup(set.New(0))
	assert.False(t, ok, "prefix path without a slot is not a face")

	idx, ok = m.Lookup(set.Set{})
	assert.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestFaceMap_Unwanted(t *testing.T) {
	m := set.NewFaceMap()
	s := m.Find(set.New(4))
	s.MarkUnwanted()

	assert.True(t, m.Find(set.New(4)).IsUnwanted())
	assert.Equal(t, set.Unwanted, s.Index())
}

func TestFaceMap_EachLexicographic(t *testing.T) {
	m := set.NewFaceMap()
	m.Find(set.New(1)).SetIndex(0)
	m.Find(set.New(0, 2)).SetIndex(1)
	m.Find(set.New(0)).SetIndex(2)

	var faces []set.Set
	var idx []int
	m.Each(func(f set.Set, i int) {
		faces = append(faces, f)
		idx = append(idx, i)
	})
	assert.Equal(t, []set.Set{{0}, {0, 2}, {1}}, faces)
	assert.Equal(t, []int{2, 1, 0}, idx)
}
