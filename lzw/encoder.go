// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"github.com/filiphrenic/compression/internal/xlog"
	"github.com/filiphrenic/compression/trie"
)

// Stats describes the progress of an encoder or decoder.
type Stats struct {
	// Bytes is the number of uncompressed bytes processed.
	Bytes int64
	// Codes is the number of codes processed.
	Codes int64
	// Entries is the number of dictionary entries including the
	// single-byte entries.
	Entries int
	// Frozen reports whether the dictionary reached its capacity.
	Frozen bool
}

// Encoder converts bytes into LZW codes. It matches the input greedily
// against the dictionary and emits the code of the longest match each time
// the match cannot be extended. The extended sequence becomes a new
// dictionary entry.
type Encoder struct {
	dict trie.Dictionary
	cw   CodeWriter
	// node of the longest match; Root before the first byte
	cur trie.Node
	// pending word matched by cur extended by the last byte
	word   trie.Word
	bytes  int64
	codes  int64
	closed bool
	err    error
}

// NewEncoder creates an encoder writing the codes into cw.
func NewEncoder(cw CodeWriter, cfg Config) (e *Encoder, err error) {
	cfg.SetDefaults()
	if err = cfg.Verify(); err != nil {
		return nil, err
	}
	dict, err := trie.New(cfg.Backend, cfg.Capacity)
	if err != nil {
		return nil, err
	}
	return &Encoder{dict: dict, cw: cw}, nil
}

// emit writes the code for node n.
func (e *Encoder) emit(n trie.Node) error {
	c, ok := e.dict.Code(n)
	if !ok {
		panic("lzw: matched node without code")
	}
	if err := e.cw.WriteCode(c); err != nil {
		return err
	}
	e.codes++
	return nil
}

// WriteByte encodes a single byte.
func (e *Encoder) WriteByte(b byte) error {
	if e.err != nil {
		return e.err
	}
	next, ok := e.dict.Child(e.cur, b)
	if ok {
		_, ok = e.dict.Code(next)
	}
	e.word.Append(b)
	if !ok {
		if err := e.emit(e.cur); err != nil {
			e.err = err
			return err
		}
		if debug != nil {
			w := e.word.Bytes()
			xlog.Printf(debug, "emit %q", w[:len(w)-1])
		}
		// a full dictionary gets no new nodes
		if e.dict.Len() < e.dict.Cap() {
			e.dict.Assign(e.dict.LookupOrCreateChild(e.cur, b))
		}
		e.word.Reset(b)
		next, _ = e.dict.Child(trie.Root, b)
	}
	e.cur = next
	e.bytes++
	return nil
}

// Write encodes all bytes of p.
func (e *Encoder) Write(p []byte) (n int, err error) {
	for i, b := range p {
		if err = e.WriteByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Close emits the code for the pending word. An encoder that has seen no
// input emits nothing. Calling Close twice has no effect; later writes
// return ErrClosed.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	if e.err != nil {
		return e.err
	}
	e.closed = true
	e.err = ErrClosed
	if e.cur == trie.Root {
		return nil
	}
	if err := e.emit(e.cur); err != nil {
		e.err = err
		return err
	}
	if debug != nil {
		xlog.Printf(debug, "emit %q", e.word.Snapshot())
	}
	e.cur = trie.Root
	e.word.Clear()
	return nil
}

// Stats returns the statistics of the encoder.
func (e *Encoder) Stats() Stats {
	return Stats{
		Bytes:   e.bytes,
		Codes:   e.codes,
		Entries: e.dict.Len(),
		Frozen:  e.dict.Len() == e.dict.Cap(),
	}
}
