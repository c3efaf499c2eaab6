// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"github.com/filiphrenic/compression/internal/xlog"
	"github.com/filiphrenic/compression/trie"
)

// entry describes the sequence of a code by the code of its prefix and its
// last byte. The first byte and the length are cached.
type entry struct {
	prefix Code
	last   byte
	first  byte
	n      int32
}

// Decoder converts LZW codes back into bytes. It rebuilds the dictionary
// of the encoder in the same order without seeing the encoder's trie.
type Decoder struct {
	// table[c] describes the sequence for code c; len(table) is the
	// next code to assign
	table    []entry
	capacity int
	prev     Code
	started  bool
	buf      []byte
	bytes    int64
	codes    int64
	err      error
}

// NewDecoder creates a decoder for codes generated with the same
// configuration.
func NewDecoder(cfg Config) (d *Decoder, err error) {
	cfg.SetDefaults()
	if err = cfg.Verify(); err != nil {
		return nil, err
	}
	n := cfg.Capacity
	if n > trie.DefaultCapacity {
		n = trie.DefaultCapacity
	}
	d = &Decoder{
		table:    make([]entry, trie.Alphabet, n),
		capacity: cfg.Capacity,
	}
	for i := range d.table {
		b := byte(i)
		d.table[i] = entry{last: b, first: b, n: 1}
	}
	return d, nil
}

// next returns the code the decoder assigns next.
func (d *Decoder) next() Code { return Code(len(d.table)) }

// Decode returns the sequence for code c. The returned slice is only
// valid until the next call of Decode. After an error all further calls
// return the same error.
func (d *Decoder) Decode(c Code) (p []byte, err error) {
	if d.err != nil {
		return nil, d.err
	}
	next := d.next()
	if !d.started {
		// only single-byte codes are possible
		if c >= trie.Alphabet {
			d.err = &CodeError{Code: c, Next: next}
			return nil, d.err
		}
		d.started = true
		d.prev = c
		d.codes++
		return d.expand(c), nil
	}

	var first byte
	switch {
	case c < next:
		first = d.table[c].first
	case c == next && len(d.table) < d.capacity:
		// The code references the entry that is created by this
		// step: prev followed by its own first byte.
		first = d.table[d.prev].first
		xlog.Printf(debug, "self-referential code %d", c)
	default:
		d.err = &CodeError{Code: c, Next: next}
		return nil, d.err
	}

	if len(d.table) < d.capacity {
		pe := d.table[d.prev]
		d.table = append(d.table, entry{
			prefix: d.prev,
			last:   first,
			first:  pe.first,
			n:      pe.n + 1,
		})
	}
	d.prev = c
	d.codes++
	return d.expand(c), nil
}

// expand writes the sequence for c into the buffer of the decoder.
func (d *Decoder) expand(c Code) []byte {
	e := d.table[c]
	n := int(e.n)
	if cap(d.buf) < n {
		d.buf = make([]byte, n, 2*n)
	}
	p := d.buf[:n]
	for i := n - 1; i > 0; i-- {
		p[i] = e.last
		e = d.table[e.prefix]
	}
	p[0] = e.last
	d.bytes += int64(n)
	return p
}

// Len returns the number of dictionary entries.
func (d *Decoder) Len() int { return len(d.table) }

// Stats returns the statistics of the decoder. Codes counts the codes
// decoded successfully.
func (d *Decoder) Stats() Stats {
	return Stats{
		Bytes:   d.bytes,
		Codes:   d.codes,
		Entries: len(d.table),
		Frozen:  len(d.table) == d.capacity,
	}
}
