// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trie

// wordCapacity is the initial capacity of a word buffer.
const wordCapacity = 1 << 3

// Word is a growable byte buffer. The encoder uses it to hold the
// pending word, the longest prefix matched in the dictionary so far. The
// zero value is an empty word ready to use.
type Word struct {
	buf []byte
}

// Append adds a byte at the end of the word.
func (w *Word) Append(b byte) {
	if w.buf == nil {
		w.buf = make([]byte, 0, wordCapacity)
	}
	w.buf = append(w.buf, b)
}

// Reset sets the word to the single byte b. The buffer is reused.
func (w *Word) Reset(b byte) {
	w.buf = w.buf[:0]
	w.Append(b)
}

// Clear makes the word empty.
func (w *Word) Clear() { w.buf = w.buf[:0] }

// Len returns the length of the word.
func (w *Word) Len() int { return len(w.buf) }

// Bytes returns the word. The slice is only valid until the next
// modification of the word.
func (w *Word) Bytes() []byte { return w.buf }

// Snapshot returns an immutable copy of the word.
func (w *Word) Snapshot() string { return string(w.buf) }
