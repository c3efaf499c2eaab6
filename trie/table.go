// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trie

// arena is implemented by the backends. It manages the children of the
// nodes.
type arena interface {
	// child returns the child node or Root if it doesn't exist.
	child(n Node, b byte) Node
	// addChild adds a new codeless child. The child must not exist.
	addChild(n Node, b byte) Node
}

// table keeps the codes of the nodes and the count of the assigned codes.
// It is shared by all backends.
type table struct {
	codes    []Code
	count    int
	capacity int
}

// init initializes the table and the arena with the single-byte
// sequences. The codes of the single-byte sequences are the byte values.
func (t *table) init(a arena, capacity int) {
	*t = table{
		codes:    make([]Code, 1, Alphabet+1),
		capacity: capacity,
	}
	t.codes[Root] = noCode
	for i := 0; i < Alphabet; i++ {
		n := a.addChild(Root, byte(i))
		t.codes[n] = Code(i)
	}
	t.count = Alphabet
}

// newNode allocates an entry for a new codeless node.
func (t *table) newNode() Node {
	n := Node(len(t.codes))
	t.codes = append(t.codes, noCode)
	return n
}

func (t *table) code(n Node) (c Code, ok bool) {
	c = t.codes[n]
	return c, c != noCode
}

func (t *table) lookup(a arena, seq []byte) (c Code, ok bool) {
	if len(seq) == 0 {
		return 0, false
	}
	n := Root
	for _, b := range seq {
		if n = a.child(n, b); n == Root {
			return 0, false
		}
	}
	return t.code(n)
}

func lookupOrCreate(a arena, n Node, b byte) Node {
	if c := a.child(n, b); c != Root {
		return c
	}
	return a.addChild(n, b)
}

func (t *table) insert(a arena, seq []byte) (c Code, ok bool) {
	if len(seq) == 0 || t.count >= t.capacity {
		return 0, false
	}
	n := Root
	for _, b := range seq {
		n = lookupOrCreate(a, n, b)
	}
	return t.assign(n)
}

func (t *table) assign(n Node) (c Code, ok bool) {
	if c, ok = t.code(n); ok {
		return c, false
	}
	if t.count >= t.capacity {
		return 0, false
	}
	c = Code(t.count)
	t.codes[n] = c
	t.count++
	return c, true
}

func (t *table) Len() int   { return t.count }
func (t *table) Cap() int   { return t.capacity }
func (t *table) Nodes() int { return len(t.codes) }
