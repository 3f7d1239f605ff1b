package ai

import (
	"fmt"
	"io"
	"strings"
)

// Tree records the edges a search expanded. Nodes live in an arena and
// are numbered from 1 in the order they were first seen; a position
// reached along several paths shares one node.
type Tree struct {
	root  int
	nodes []treeNode
	ids   map[uint64]int
}

type treeNode struct {
	key      uint64
	value    float64
	children []Edge
}

type Edge struct {
	Child int
	Value float64
}

func NewTree(root uint64) *Tree {
	t := &Tree{
		nodes: make([]treeNode, 1),
		ids:   make(map[uint64]int),
	}
	t.root = t.ID(root)
	return t
}

// ID returns key's node id, allocating one on first sight.
func (t *Tree) ID(key uint64) int {
	if id, ok := t.ids[key]; ok {
		return id
	}
	id := len(t.nodes)
	t.nodes = append(t.nodes, treeNode{key: key})
	t.ids[key] = id
	return id
}

func (t *Tree) Lookup(key uint64) (int, bool) {
	id, ok := t.ids[key]
	return id, ok
}

func (t *Tree) Root() int {
	return t.root
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes) - 1
}

func (t *Tree) Key(id int) uint64 {
	return t.nodes[id].key
}

func (t *Tree) Value(id int) float64 {
	return t.nodes[id].value
}

func (t *Tree) Children(id int) []Edge {
	return t.nodes[id].children
}

// Expand starts a fresh expansion of key, dropping any edges recorded
// by an earlier expansion. It is a no-op on a nil Tree.
func (t *Tree) Expand(key uint64) {
	if t == nil {
		return
	}
	id := t.ID(key)
	t.nodes[id].children = t.nodes[id].children[:0]
}

// AddEdge records that parent was expanded into child, which was
// valued at v. It is a no-op on a nil Tree.
func (t *Tree) AddEdge(parent, child uint64, v float64) {
	if t == nil {
		return
	}
	p := t.ID(parent)
	c := t.ID(child)
	t.nodes[c].value = v
	t.nodes[p].children = append(t.nodes[p].children, Edge{Child: c, Value: v})
}

func (t *Tree) SetValue(key uint64, v float64) {
	if t == nil {
		return
	}
	t.nodes[t.ID(key)].value = v
}

// Render prints the tree depth-first from the root, one "id (value)"
// line per edge, indented two spaces per ply.
func (t *Tree) Render(out io.Writer) error {
	if _, e := fmt.Fprintf(out, "%d (%g)\n", t.root, t.nodes[t.root].value); e != nil {
		return e
	}
	return t.render(out, t.root, 1)
}

func (t *Tree) render(out io.Writer, id, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, e := range t.nodes[id].children {
		if _, err := fmt.Fprintf(out, "%s%d (%g)\n", indent, e.Child, e.Value); err != nil {
			return err
		}
		if err := t.render(out, e.Child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// DumpDot writes the tree in graphviz format.
func (t *Tree) DumpDot(out io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph G {\n")
	for id := 1; id < len(t.nodes); id++ {
		n := &t.nodes[id]
		fmt.Fprintf(&b, "  n%d [label=\"%d v=%g\"]\n", id, id, n.value)
	}
	for id := 1; id < len(t.nodes); id++ {
		for _, e := range t.nodes[id].children {
			fmt.Fprintf(&b, "  n%d -> n%d [label=\"%g\"]\n", id, e.Child, e.Value)
		}
	}
	fmt.Fprintf(&b, "}\n")
	_, e := io.WriteString(out, b.String())
	return e
}
