// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trie provides the symbol dictionary used by the LZW coder. A
// dictionary maps byte sequences to codes. The package supports two
// backends: [DenseTrie] stores a table of 256 child slots per node and
// [SparseTrie] stores an ordered list of edges per node. Both backends
// produce identical results for identical sequences of operations; the
// choice is a memory versus speed tradeoff.
//
// Nodes are kept in an arena and addressed by [Node] indexes. The root
// represents the empty sequence and never carries a code.
package trie

import (
	"errors"
	"fmt"
)

// Code identifies a dictionary entry.
type Code uint32

// Node is the index of a trie node in the arena of a dictionary.
type Node uint32

// Root is the node representing the empty sequence.
const Root Node = 0

const (
	// Alphabet is the number of single-byte sequences. Codes below
	// Alphabet are reserved for them.
	Alphabet = 256
	// DefaultCapacity is the number of code values representable by a
	// 16-bit code minus one.
	DefaultCapacity = 1<<16 - 1
	// MaxCapacity is the largest capacity supported by the package.
	MaxCapacity = 1<<24 - 1
)

// noCode marks nodes that don't represent a dictionary entry.
const noCode = ^Code(0)

// Dictionary is the capability interface shared by the trie backends.
type Dictionary interface {
	// Lookup returns the code for the sequence. The value ok is false
	// if the sequence is not in the dictionary.
	Lookup(seq []byte) (c Code, ok bool)
	// Insert assigns the next code to seq. The value ok reports
	// whether a new code has been assigned. A full dictionary refuses
	// the insertion silently. If seq has already a code, it is
	// returned with ok set to false.
	Insert(seq []byte) (c Code, ok bool)
	// LookupOrCreateChild returns the child of n for byte b. If the
	// child doesn't exist a new node without code is created.
	LookupOrCreateChild(n Node, b byte) Node
	// Assign gives the codeless node n the next code. The value ok is
	// false if the dictionary is full or n has already a code; then
	// the existing code, if any, is returned.
	Assign(n Node) (c Code, ok bool)
	// Child returns an existing child of n.
	Child(n Node, b byte) (child Node, ok bool)
	// Code returns the code stored at node n.
	Code(n Node) (c Code, ok bool)
	// ChildCount returns the number of children of n.
	ChildCount(n Node) int
	// Len returns the number of codes assigned, which is also the
	// next code to assign.
	Len() int
	// Cap returns the capacity of the dictionary.
	Cap() int
	// Nodes returns the number of nodes in the arena including the
	// root.
	Nodes() int
}

// Kind selects a dictionary backend.
type Kind int

// Supported backends.
const (
	Dense Kind = iota
	Sparse
)

// String returns the name of the backend.
func (k Kind) String() string {
	switch k {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Verify checks whether k names a supported backend.
func (k Kind) Verify() error {
	if k != Dense && k != Sparse {
		return fmt.Errorf("trie: unsupported backend %v", k)
	}
	return nil
}

// New creates a dictionary with the given backend and capacity.
func New(k Kind, capacity int) (Dictionary, error) {
	if err := k.Verify(); err != nil {
		return nil, err
	}
	if err := verifyCapacity(capacity); err != nil {
		return nil, err
	}
	if k == Sparse {
		return NewSparse(capacity)
	}
	return NewDense(capacity)
}

var errCapacity = errors.New("trie: capacity out of range")

// verifyCapacity checks the capacity argument of the constructors.
func verifyCapacity(capacity int) error {
	if !(Alphabet <= capacity && capacity <= MaxCapacity) {
		return fmt.Errorf("%w: %d not in [%d,%d]", errCapacity,
			capacity, Alphabet, MaxCapacity)
	}
	return nil
}
