package store_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/simplicial"
	"github.com/katalvlaran/polylattice/set"
	"github.com/katalvlaran/polylattice/store"
)

type basic = lattice.BasicDecoration

func triangle(t *testing.T) *lattice.Lattice[basic] {
	t.Helper()
	c, err := simplicial.New([]set.Set{set.New(0, 1, 2)})
	require.NoError(t, err)
	l, err := simplicial.HasseDiagram(c)
	require.NoError(t, err)

	return l
}

func openMemory(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(store.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStore_PutGet(t *testing.T) {
	s := openMemory(t)
	l := triangle(t)

	id, err := store.Put(s, "triangle", l)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	got, err := store.Get[basic](s, id)
	require.NoError(t, err)
	assert.Equal(t, l.Nodes(), got.Nodes())
	assert.Equal(t, l.Edges(), got.Edges())
	assert.Equal(t, l.TopNode(), got.TopNode())
	for n := 0; n < l.Nodes(); n++ {
		assert.True(t, l.Face(n).Equal(got.Face(n)), "node %d", n)
	}

	byName, err := store.GetByName[basic](s, "triangle")
	require.NoError(t, err)
	assert.Equal(t, got.Nodes(), byName.Nodes())
}

func TestStore_ListAndRename(t *testing.T) {
	s := openMemory(t)
	l := triangle(t)

	first, err := store.Put(s, "t", l)
	require.NoError(t, err)
	second, err := store.Put(s, "t", l)
	require.NoError(t, err)

	metas, err := s.List()
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.ElementsMatch(t, []uuid.UUID{first, second}, []uuid.UUID{metas[0].ID, metas[1].ID})
	assert.Equal(t, l.Nodes(), metas[0].Nodes)
	assert.Equal(t, l.EdgeCount(), metas[0].Edges)
	assert.Equal(t, "t", metas[1].Name)

	id, err := s.Resolve("t")
	require.NoError(t, err)
	assert.Equal(t, second, id)

	// the older lattice stays reachable by id
	_, err = store.Get[basic](s, first)
	assert.NoError(t, err)
}

func TestStore_Delete(t *testing.T) {
	s := openMemory(t)
	id, err := store.Put(s, "gone", triangle(t))
	require.NoError(t, err)

	require.NoError(t, s.Delete(id))
	_, err = store.Get[basic](s, id)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Resolve("gone")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.Delete(id), store.ErrNotFound)
}

func TestStore_Persistent(t *testing.T) {
	cfg := store.DefaultConfig()
	cfg.Path = t.TempDir()

	s, err := store.Open(cfg)
	require.NoError(t, err)
	id, err := store.Put(s, "kept", triangle(t))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = store.Open(cfg)
	require.NoError(t, err)
	defer s.Close()
	l, err := store.Get[basic](s, id)
	require.NoError(t, err)
	assert.Equal(t, triangle(t).Nodes(), l.Nodes())
}

func TestOpen_NoPath(t *testing.T) {
	_, err := store.Open(store.DefaultConfig())
	assert.ErrorIs(t, err, store.ErrNoPath)
}
