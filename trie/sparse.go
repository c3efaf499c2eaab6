// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trie

// edge links a node to its child for byte key.
type edge struct {
	key   byte
	child Node
}

// SparseTrie stores for each node the list of its edges in insertion
// order. Child access requires a linear search over the children
// actually present.
type SparseTrie struct {
	table
	edges [][]edge
}

// NewSparse creates a sparse dictionary containing the 256 single-byte
// sequences.
func NewSparse(capacity int) (d *SparseTrie, err error) {
	if err = verifyCapacity(capacity); err != nil {
		return nil, err
	}
	d = &SparseTrie{edges: make([][]edge, 1, Alphabet+1)}
	d.edges[Root] = make([]edge, 0, Alphabet)
	d.table.init(d, capacity)
	return d, nil
}

func (d *SparseTrie) child(n Node, b byte) Node {
	for _, e := range d.edges[n] {
		if e.key == b {
			return e.child
		}
	}
	return Root
}

func (d *SparseTrie) addChild(n Node, b byte) Node {
	c := d.newNode()
	d.edges = append(d.edges, nil)
	d.edges[n] = append(d.edges[n], edge{key: b, child: c})
	return c
}

// Lookup returns the code for seq.
func (d *SparseTrie) Lookup(seq []byte) (c Code, ok bool) {
	return d.lookup(d, seq)
}

// Insert assigns the next code to seq unless the dictionary is full or
// seq has already a code.
func (d *SparseTrie) Insert(seq []byte) (c Code, ok bool) {
	return d.insert(d, seq)
}

// LookupOrCreateChild returns the child of n for b and creates it if
// required.
func (d *SparseTrie) LookupOrCreateChild(n Node, b byte) Node {
	return lookupOrCreate(d, n, b)
}

// Assign gives node n the next code unless the dictionary is full.
func (d *SparseTrie) Assign(n Node) (c Code, ok bool) { return d.assign(n) }

// Child returns the child of n for b if it exists.
func (d *SparseTrie) Child(n Node, b byte) (child Node, ok bool) {
	child = d.child(n, b)
	return child, child != Root
}

// Code returns the code of node n.
func (d *SparseTrie) Code(n Node) (c Code, ok bool) { return d.code(n) }

// ChildCount returns the length of the edge list of n.
func (d *SparseTrie) ChildCount(n Node) int { return len(d.edges[n]) }
