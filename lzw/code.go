// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"bufio"
	"fmt"
	"io"
)

// CodeWriter consumes the codes generated by an encoder.
type CodeWriter interface {
	WriteCode(c Code) error
}

// CodeReader provides the codes for a decoder. ReadCode returns io.EOF at
// the end of the stream.
type CodeReader interface {
	ReadCode() (c Code, err error)
}

// CodeSlice collects codes in memory. The pointer type supports the
// CodeWriter interface.
type CodeSlice []Code

// WriteCode appends c to the slice.
func (s *CodeSlice) WriteCode(c Code) error {
	*s = append(*s, c)
	return nil
}

// WireWriter writes codes as little-endian integers of a fixed width. The
// output is buffered; call Flush at the end.
type WireWriter struct {
	bw    *bufio.Writer
	width int
	max   Code
	p     [4]byte
	n     int64
}

// NewWireWriter creates a writer for codes with the given width in bits.
func NewWireWriter(w io.Writer, codeWidth int) (*WireWriter, error) {
	if err := verifyCodeWidth(codeWidth); err != nil {
		return nil, err
	}
	return &WireWriter{
		bw:    bufio.NewWriter(w),
		width: codeWidth / 8,
		max:   Code(1)<<codeWidth - 1,
	}, nil
}

// WriteCode writes a single code. Codes that don't fit the code width are
// rejected.
func (w *WireWriter) WriteCode(c Code) error {
	if c > w.max {
		return fmt.Errorf("lzw: code %d exceeds %d-bit code width",
			c, 8*w.width)
	}
	putCode(w.p[:w.width], c)
	if _, err := w.bw.Write(w.p[:w.width]); err != nil {
		return err
	}
	w.n++
	return nil
}

// Count returns the number of codes written.
func (w *WireWriter) Count() int64 { return w.n }

// Flush writes the buffered codes to the underlying writer.
func (w *WireWriter) Flush() error { return w.bw.Flush() }

// WireReader reads codes written by WireWriter.
type WireReader struct {
	br    *bufio.Reader
	width int
	p     [4]byte
	n     int64
}

// NewWireReader creates a reader for codes with the given width in bits.
func NewWireReader(r io.Reader, codeWidth int) (*WireReader, error) {
	if err := verifyCodeWidth(codeWidth); err != nil {
		return nil, err
	}
	return &WireReader{br: bufio.NewReader(r), width: codeWidth / 8}, nil
}

// ReadCode reads the next code. It returns io.EOF if the stream ends at a
// code boundary and io.ErrUnexpectedEOF if the last code is incomplete.
func (r *WireReader) ReadCode() (c Code, err error) {
	if _, err = io.ReadFull(r.br, r.p[:r.width]); err != nil {
		return 0, err
	}
	r.n++
	return getCode(r.p[:r.width]), nil
}

// Count returns the number of codes read.
func (r *WireReader) Count() int64 { return r.n }

func verifyCodeWidth(codeWidth int) error {
	if codeWidth != 16 && codeWidth != 24 {
		return fmt.Errorf("lzw: code width %d not supported", codeWidth)
	}
	return nil
}

// putCode stores c in little-endian byte order using all of p.
func putCode(p []byte, c Code) {
	for i := range p {
		p[i] = byte(c)
		c >>= 8
	}
}

// getCode decodes a little-endian code from p.
func getCode(p []byte) Code {
	var c Code
	for i := len(p) - 1; i >= 0; i-- {
		c = c<<8 | Code(p[i])
	}
	return c
}
