// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trie

// DenseTrie stores for each node a table of 256 child slots indexed by
// the byte value. Child access is O(1) but every node costs 1 KiB.
type DenseTrie struct {
	table
	// children[n][b] is the child of node n for byte b; Root marks an
	// empty slot since the root is never a child.
	children [][Alphabet]Node
}

// NewDense creates a dense dictionary containing the 256 single-byte
// sequences.
func NewDense(capacity int) (d *DenseTrie, err error) {
	if err = verifyCapacity(capacity); err != nil {
		return nil, err
	}
	d = &DenseTrie{children: make([][Alphabet]Node, 1, Alphabet+1)}
	d.table.init(d, capacity)
	return d, nil
}

func (d *DenseTrie) child(n Node, b byte) Node { return d.children[n][b] }

func (d *DenseTrie) addChild(n Node, b byte) Node {
	c := d.newNode()
	d.children = append(d.children, [Alphabet]Node{})
	d.children[n][b] = c
	return c
}

// Lookup returns the code for seq.
func (d *DenseTrie) Lookup(seq []byte) (c Code, ok bool) {
	return d.lookup(d, seq)
}

// Insert assigns the next code to seq unless the dictionary is full or
// seq has already a code.
func (d *DenseTrie) Insert(seq []byte) (c Code, ok bool) {
	return d.insert(d, seq)
}

// LookupOrCreateChild returns the child of n for b and creates it if
// required.
func (d *DenseTrie) LookupOrCreateChild(n Node, b byte) Node {
	return lookupOrCreate(d, n, b)
}

// Assign gives node n the next code unless the dictionary is full.
func (d *DenseTrie) Assign(n Node) (c Code, ok bool) { return d.assign(n) }

// Child returns the child of n for b if it exists.
func (d *DenseTrie) Child(n Node, b byte) (child Node, ok bool) {
	child = d.children[n][b]
	return child, child != Root
}

// Code returns the code of node n.
func (d *DenseTrie) Code(n Node) (c Code, ok bool) { return d.code(n) }

// ChildCount counts the occupied slots of node n.
func (d *DenseTrie) ChildCount(n Node) int {
	k := 0
	for _, c := range &d.children[n] {
		if c != Root {
			k++
		}
	}
	return k
}
