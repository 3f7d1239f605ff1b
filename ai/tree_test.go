package ai

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/connect4/c4"
)

func TestTreeRender(t *testing.T) {
	p := c4.New(c4.MustConfig(4, 4), c4.Computer)
	r := New(Config{Depth: 1, Tree: true}).Analyze(p)
	require.NotNil(t, r.Tree)

	var buf bytes.Buffer
	require.NoError(t, r.Tree.Render(&buf))
	assert.Equal(t, "1 (0)\n  2 (0)\n  3 (0)\n  4 (0)\n  5 (0)\n", buf.String())

	buf.Reset()
	require.NoError(t, r.Tree.DumpDot(&buf))
	assert.Contains(t, buf.String(), "digraph G {")
	assert.Contains(t, buf.String(), "n1 -> n5")
}

func TestTreeIDs(t *testing.T) {
	p := c4.New(c4.MustConfig(4, 4), c4.Computer)

	mm := New(Config{Depth: 2, Tree: true}).Analyze(p)
	tr := mm.Tree
	assert.Equal(t, 1, tr.Root())
	assert.Equal(t, 21, tr.Len())
	kids := tr.Children(tr.Root())
	require.Len(t, kids, 4)
	assert.Equal(t, 2, kids[0].Child)
	assert.Equal(t, 7, kids[1].Child)
	grandkids := tr.Children(2)
	require.Len(t, grandkids, 4)
	for i, e := range grandkids {
		assert.Equal(t, 3+i, e.Child)
	}
	first, _ := p.Move(0)
	id, ok := tr.Lookup(first.Value())
	assert.True(t, ok)
	assert.Equal(t, 2, id)

	ab := New(Config{Depth: 2, Algorithm: AlphaBeta, Tree: true}).Analyze(p)
	// every leaf scores 0, so each later reply refutes its move at once
	assert.Equal(t, uint64(3), ab.Stats.Cutoffs)
	assert.Equal(t, 12, ab.Tree.Len())
	for _, e := range ab.Tree.Children(ab.Tree.Root())[1:] {
		assert.Len(t, ab.Tree.Children(e.Child), 1)
	}
}

func TestTreeSharedNodes(t *testing.T) {
	tr := NewTree(10)
	tr.AddEdge(10, 11, 1)
	tr.AddEdge(10, 12, 2)
	tr.AddEdge(11, 13, 3)
	tr.AddEdge(12, 13, 4)
	assert.Equal(t, 4, tr.Len())
	id, _ := tr.Lookup(13)
	assert.Equal(t, 4, id)
	assert.Equal(t, 4.0, tr.Value(id))
	assert.Equal(t, uint64(13), tr.Key(id))

	var buf bytes.Buffer
	require.NoError(t, tr.Render(&buf))
	assert.Equal(t, "1 (0)\n  2 (1)\n    4 (3)\n  3 (2)\n    4 (4)\n", buf.String())

	var nilTree *Tree
	nilTree.AddEdge(1, 2, 3)
	nilTree.SetValue(1, 2)
}

func assertNoRepeatedEdges(t *testing.T, tr *Tree) {
	t.Helper()
	for id := 1; id <= tr.Len(); id++ {
		seen := make(map[int]bool)
		for _, e := range tr.Children(id) {
			assert.False(t, seen[e.Child], "node %d lists child %d twice", id, e.Child)
			seen[e.Child] = true
		}
	}
}

func TestTreeNoTable(t *testing.T) {
	p := c4.New(c4.MustConfig(5, 5), c4.Computer)

	cached := New(Config{Depth: 4, Tree: true}).Analyze(p)
	bare := New(Config{Depth: 4, Tree: true, NoTable: true}).Analyze(p)
	assertNoRepeatedEdges(t, cached.Tree)
	assertNoRepeatedEdges(t, bare.Tree)
	assert.Equal(t, cached.Value, bare.Value)
	assert.Equal(t, cached.Tree.Len(), bare.Tree.Len())

	var a, b bytes.Buffer
	require.NoError(t, cached.Tree.Render(&a))
	require.NoError(t, bare.Tree.Render(&b))
	assert.Equal(t, a.String(), b.String())

	ab := New(Config{Depth: 5, Algorithm: AlphaBeta, Tree: true}).Analyze(p)
	assertNoRepeatedEdges(t, ab.Tree)
}

func TestTreeExpandReplacesEdges(t *testing.T) {
	tr := NewTree(10)
	tr.Expand(10)
	tr.AddEdge(10, 11, 1)
	tr.AddEdge(10, 12, 2)
	tr.Expand(10)
	tr.AddEdge(10, 11, 5)
	kids := tr.Children(tr.Root())
	require.Len(t, kids, 1)
	assert.Equal(t, 5.0, kids[0].Value)

	var nilTree *Tree
	nilTree.Expand(10)
}
