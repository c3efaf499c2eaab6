// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xio provides tools to handle I/O operations. The
// [WriteCloserStack] type combines the output file, its buffer and a
// compressor into a single [io.WriteCloser] that closes the layers in the
// right order.
package xio

import (
	"bufio"
	"errors"
	"io"
)

// WriteCloserStack allows to handle multiple WriteClosers as single
// WriteCloser. Writes go to the top of the stack.
type WriteCloserStack struct {
	Stack []io.WriteCloser
}

// NewWriteCloserStack creates a new WriteCloserStack with an empty stack.
func NewWriteCloserStack() *WriteCloserStack {
	return &WriteCloserStack{}
}

// Write writes data to the top WriteCloser in the stack. If the stack is
// empty Write will always succeed.
func (w *WriteCloserStack) Write(p []byte) (n int, err error) {
	k := len(w.Stack)
	if k == 0 {
		return len(p), nil
	}
	return w.Stack[k-1].Write(p)
}

// Close closes all writers on the stack starting at the top and combines
// the errors. It will clear the stack.
func (w *WriteCloserStack) Close() error {
	var errs []error
	for k := len(w.Stack) - 1; k >= 0; k-- {
		errs = append(errs, w.Stack[k].Close())
	}
	w.Stack = nil
	return errors.Join(errs...)
}

// Push adds a new WriteCloser to the top of the stack. It panics if the
// WriteCloser is nil.
func (w *WriteCloserStack) Push(wc io.WriteCloser) {
	if wc == nil {
		panic("cannot push nil WriteCloser onto stack")
	}
	w.Stack = append(w.Stack, wc)
}

// Len returns the number of writers on the stack.
func (w *WriteCloserStack) Len() int { return len(w.Stack) }

// bufferedWriteCloser flushes the buffer on Close.
type bufferedWriteCloser struct {
	*bufio.Writer
}

func (b bufferedWriteCloser) Close() error { return b.Flush() }

// NewBufferedWriteCloser returns a buffered writer for w, which is flushed
// by Close. The writer w is not closed.
func NewBufferedWriteCloser(w io.Writer) io.WriteCloser {
	return bufferedWriteCloser{bufio.NewWriter(w)}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a Close method doing nothing. It is
// used for standard output.
func NopCloser(w io.Writer) io.WriteCloser { return nopCloser{w} }

// CountWriter counts the bytes written and discards them.
type CountWriter struct {
	N int64
}

// Write adds the length of p to the count.
func (w *CountWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.N += int64(n)
	return n, nil
}
