package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polylattice/store"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

const twoTriangles = `kind: simplicial
facets: [[0, 1, 2], [1, 2, 3]]
`

const square = `kind: polytope
vertices: 4
facets: [[0, 1], [1, 2], [2, 3], [0, 3]]
`

const uniform23 = `kind: matroid
vertices: 3
bases: [[0, 1], [0, 2], [1, 2]]
`

// run executes the command line args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestBuild_Kinds(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		file, content, want string
	}{
		{"two_triangles.yaml", twoTriangles, "two_triangles nodes=13 edges=22 rank=4 f=[4 5 2]\n"},
		{"square.yaml", square, "square nodes=10 edges=16 rank=3 f=[4 4]\n"},
		{"u23.yaml", uniform23, "u23 nodes=2 edges=1 rank=2 f=[0]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			out, err := run(t, "build", writeFile(t, dir, tc.file, tc.content), "--in-memory")
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestBuild_Flags(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tt.yaml", twoTriangles)

	out, err := run(t, "build", path, "--in-memory", "--dual")
	require.NoError(t, err)
	assert.Equal(t, "tt nodes=13 edges=22 rank=4 f=[4 5 2]\n", out)

	// the triangles are cut off and the edges join the artificial top
	out, err = run(t, "build", path, "--in-memory", "--rank-bound", "2")
	require.NoError(t, err)
	assert.Equal(t, "tt nodes=11 edges=19 rank=3 f=[4 5]\n", out)

	_, err = run(t, "build", path, "--in-memory", "--max-nodes", "3")
	assert.Error(t, err)
}

func TestBuild_Dot(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tt.yaml", twoTriangles)

	out, err := run(t, "build", path, "--in-memory", "--dot", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `digraph "tt" {`), out)
	assert.Equal(t, 22, strings.Count(out, "->"))

	dotPath := filepath.Join(dir, "tt.dot")
	_, err = run(t, "build", path, "--in-memory", "--dot", dotPath, "--rank-dir", "TB")
	require.NoError(t, err)
	raw, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `rankdir="TB";`)
}

func TestBuild_InvalidInput(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "build", writeFile(t, dir, "a.yaml", "kind: sphere\nfacets: [[0]]\n"), "--in-memory")
	assert.ErrorIs(t, err, errInput)

	_, err = run(t, "build", writeFile(t, dir, "b.yaml", "kind: polytope\nvertices: 3\n"), "--in-memory")
	assert.ErrorIs(t, err, errInput)

	_, err = run(t, "build", writeFile(t, dir, "c.yaml", "kind: simplicial\nfaces: [[0]]\n"), "--in-memory")
	assert.Error(t, err, "unknown fields are rejected")

	_, err = run(t, "build", filepath.Join(dir, "missing.yaml"), "--in-memory")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "build", writeFile(t, dir, "d.yaml", twoTriangles), "--in-memory", "--log-level", "loud")
	assert.Error(t, err)
}

func TestStoreCommands(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "db")
	path := writeFile(t, dir, "tt.yaml", twoTriangles)

	_, err := run(t, "build", path, "--store", db, "--save", "glued")
	require.NoError(t, err)

	out, err := run(t, "show", "glued", "--store", db)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "glued nodes=13 edges=22 rank=4 f=[4 5 2]", lines[0])
	assert.Equal(t, "  rank 0: {}", lines[1])
	assert.Equal(t, "  rank 4: {-1}", lines[5])

	out, err = run(t, "list", "--store", db)
	require.NoError(t, err)
	assert.Contains(t, out, "glued")

	s, err := store.Open(store.Config{Path: db})
	require.NoError(t, err)
	id, err := s.Resolve("glued")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	out, err = run(t, "show", id.String(), "--store", db, "--dot", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph"), out)

	out, err = run(t, "delete", "glued", "--store", db)
	require.NoError(t, err)
	assert.Equal(t, "deleted "+id.String()+"\n", out)

	_, err = run(t, "show", "glued", "--store", db)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_square.yaml", square)
	writeFile(t, dir, "a_triangles.yml", twoTriangles)
	writeFile(t, dir, "c_u23.yaml", uniform23)
	writeFile(t, dir, "notes.txt", "ignored")

	out, err := run(t, "batch", dir, "--in-memory", "--workers", "2", "--save")
	require.NoError(t, err)
	assert.Equal(t,
		"a_triangles nodes=13 edges=22 rank=4 f=[4 5 2]\n"+
			"b_square nodes=10 edges=16 rank=3 f=[4 4]\n"+
			"c_u23 nodes=2 edges=1 rank=2 f=[0]\n", out)

	writeFile(t, dir, "d_bad.yaml", "kind: matroid\nvertices: 2\n")
	_, err = run(t, "batch", dir, "--in-memory")
	assert.ErrorIs(t, err, errInput)

	_, err = run(t, "batch", t.TempDir(), "--in-memory")
	assert.ErrorIs(t, err, errInput)
}

func TestHungarian(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "w.yaml", "weights:\n  - [4, 1, 3]\n  - [2, 0, 5]\n  - [3, 2, 2]\n")

	out, err := run(t, "hungarian", path)
	require.NoError(t, err)
	assert.Equal(t, "0 -> 1 (1)\n1 -> 0 (2)\n2 -> 2 (2)\nvalue 5\n", out)

	out, err = run(t, "hungarian", path, "--maximize")
	require.NoError(t, err)
	assert.Equal(t, "0 -> 0 (4)\n1 -> 2 (5)\n2 -> 1 (2)\nvalue 11\n", out)

	inf := writeFile(t, dir, "inf.yaml", "weights:\n  - [.inf, .inf]\n  - [1, 2]\n")
	out, err = run(t, "hungarian", inf)
	require.NoError(t, err)
	assert.Equal(t, "no finite assignment\n", out)
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "hasse.yaml", "rank_bound: 2\nstore:\n  in_memory: true\n")
	path := writeFile(t, dir, "tt.yaml", twoTriangles)

	out, err := run(t, "build", path, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "tt nodes=11 edges=19 rank=3 f=[4 5]\n", out)

	t.Setenv("POLYLATTICE_RANK_BOUND", "-1")
	out, err = run(t, "build", path, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "tt nodes=13 edges=22 rank=4 f=[4 5 2]\n", out)

	out, err = run(t, "build", path, "--config", cfg, "--rank-bound", "1")
	require.NoError(t, err)
	assert.Equal(t, "tt nodes=6 edges=8 rank=2 f=[4]\n", out)
}
