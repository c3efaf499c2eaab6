// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed indicates a code that cannot appear in a stream
	// generated by the encoder.
	ErrMalformed = errors.New("lzw: malformed code stream")
	// ErrFormat indicates an invalid header or trailer of the framed
	// format.
	ErrFormat = errors.New("lzw: invalid format")
	// ErrChecksum indicates that the trailer doesn't match the decoded
	// data.
	ErrChecksum = errors.New("lzw: checksum error")
	// ErrClosed is returned by writing to a closed encoder or writer.
	ErrClosed = errors.New("lzw: write after close")
)

// CodeError reports a code out of range. It wraps ErrMalformed.
type CodeError struct {
	// Code is the offending code.
	Code Code
	// Next is the code the decoder would have assigned next.
	Next Code
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("lzw: code %d out of range; next code %d",
		e.Code, e.Next)
}

// Unwrap supports errors.Is(err, ErrMalformed).
func (e *CodeError) Unwrap() error { return ErrMalformed }
