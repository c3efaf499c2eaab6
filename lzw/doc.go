// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzw implements the LZW compression scheme with fixed-width
// codes.
//
// The [Encoder] transforms a byte stream into a sequence of codes. Each
// code references an entry of a dictionary that is built from the data
// itself. The [Decoder] rebuilds the same dictionary from the codes alone.
// Dictionaries start with the 256 single-byte sequences and grow by one
// entry per emitted code until the capacity is reached. After that the
// dictionary is frozen on both sides.
//
// Codes are written as little-endian unsigned integers of 16 bits by
// default. The [Writer] and [Reader] types provide the io.Writer and
// io.Reader interfaces for raw code streams and for the framed .lzw
// format, which adds a header with the coding parameters and a trailer
// with the code count, the uncompressed size and a CRC-32 checksum.
package lzw
