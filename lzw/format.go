// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
)

/*** Header ***/

// headerMagic stores the magic bytes for the header.
var headerMagic = []byte{0x89, 'L', 'Z', 'W', 0x0d, 0x0a}

// MagicLen is the number of bytes IsFramed requires.
const MagicLen = 6

const (
	formatVersion = 1
	headerLen     = 16
)

// checksum computes the CRC-32 checksum used by the framed format.
func checksum(p []byte) uint32 { return crc32.ChecksumIEEE(p) }

// IsFramed checks whether p starts with the header magic of the framed
// format.
func IsFramed(p []byte) bool { return bytes.HasPrefix(p, headerMagic) }

// header provides the coding parameters of a framed stream.
type header struct {
	codeWidth int
	capacity  int
}

// writeHeader writes the stream header into the provided writer.
func writeHeader(w io.Writer, h header) (n int, err error) {
	p := make([]byte, headerLen)
	copy(p, headerMagic)
	p[6] = formatVersion
	p[7] = byte(h.codeWidth)
	binary.LittleEndian.PutUint32(p[8:], uint32(h.capacity))
	binary.LittleEndian.PutUint32(p[12:], checksum(p[6:12]))
	return w.Write(p)
}

// readHeader reads the stream header and verifies the checksum and the
// parameters.
func readHeader(r io.Reader) (h header, err error) {
	p := make([]byte, headerLen)
	if _, err = io.ReadFull(r, p); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return h, fmt.Errorf("%w: short header", ErrFormat)
		}
		return h, err
	}
	if !IsFramed(p) {
		return h, fmt.Errorf("%w: invalid header magic", ErrFormat)
	}
	if binary.LittleEndian.Uint32(p[12:]) != checksum(p[6:12]) {
		return h, fmt.Errorf("%w: invalid checksum for header",
			ErrFormat)
	}
	if p[6] != formatVersion {
		return h, fmt.Errorf("%w: unsupported version %d", ErrFormat,
			p[6])
	}
	h = header{
		codeWidth: int(p[7]),
		capacity:  int(binary.LittleEndian.Uint32(p[8:])),
	}
	cfg := Config{CodeWidth: h.codeWidth, Capacity: h.capacity}
	if err = cfg.Verify(); err != nil {
		return h, fmt.Errorf("%w: %s", ErrFormat, err)
	}
	return h, nil
}

/*** Trailer ***/

// footerMagic terminates the trailer.
var footerMagic = []byte{'L', 'Z', 'W', 'E'}

const trailerLen = 24

// trailer records what the writer has encoded.
type trailer struct {
	codes int64
	size  int64
	crc   uint32
}

func (t *trailer) MarshalBinary() (data []byte, err error) {
	data = make([]byte, trailerLen)
	binary.LittleEndian.PutUint64(data, uint64(t.codes))
	binary.LittleEndian.PutUint64(data[8:], uint64(t.size))
	binary.LittleEndian.PutUint32(data[16:], t.crc)
	copy(data[20:], footerMagic)
	return data, nil
}

func (t *trailer) UnmarshalBinary(data []byte) error {
	if len(data) != trailerLen {
		return fmt.Errorf("%w: trailer length %d", ErrFormat, len(data))
	}
	if !bytes.Equal(data[20:], footerMagic) {
		return fmt.Errorf("%w: invalid footer magic", ErrFormat)
	}
	codes := binary.LittleEndian.Uint64(data)
	size := binary.LittleEndian.Uint64(data[8:])
	if codes > 1<<62 || size > 1<<62 {
		return fmt.Errorf("%w: trailer values out of range", ErrFormat)
	}
	*t = trailer{
		codes: int64(codes),
		size:  int64(size),
		crc:   binary.LittleEndian.Uint32(data[16:]),
	}
	return nil
}

// verify compares the trailer read from the stream with the trailer
// computed by the reader.
func (t *trailer) verify(g *trailer) error {
	if t.codes != g.codes {
		return fmt.Errorf("%w: trailer has %d codes; decoded %d",
			ErrChecksum, t.codes, g.codes)
	}
	if t.size != g.size {
		return fmt.Errorf("%w: trailer has size %d; decoded %d",
			ErrChecksum, t.size, g.size)
	}
	if t.crc != g.crc {
		return fmt.Errorf("%w: CRC-32 %08x; want %08x",
			ErrChecksum, g.crc, t.crc)
	}
	return nil
}

// holdbackReader passes all data of the underlying reader except the
// last n bytes, which are available by tail after Read returned io.EOF.
type holdbackReader struct {
	r   io.Reader
	n   int
	buf []byte
	// start of unread data in buf
	off int
	err error
}

func newHoldbackReader(r io.Reader, n int) *holdbackReader {
	return &holdbackReader{r: r, n: n, buf: make([]byte, 0, n+32<<10)}
}

// errTruncated indicates a stream that is shorter than the trailer.
var errTruncated = errors.New("truncated stream")

func (h *holdbackReader) Read(p []byte) (n int, err error) {
	for {
		if k := len(h.buf) - h.off - h.n; k > 0 {
			if k > len(p) {
				k = len(p)
			}
			n = copy(p, h.buf[h.off:h.off+k])
			h.off += n
			return n, nil
		}
		if h.err != nil {
			return 0, h.err
		}
		// keep the held back bytes and fill the buffer
		m := copy(h.buf[:cap(h.buf)], h.buf[h.off:])
		h.buf, h.off = h.buf[:m], 0
		k, err := h.r.Read(h.buf[m:cap(h.buf)])
		h.buf = h.buf[:m+k]
		if err != nil {
			if err == io.EOF && len(h.buf) < h.n {
				err = fmt.Errorf("%w: %s", ErrFormat, errTruncated)
			}
			h.err = err
		}
	}
}

// tail returns the held back bytes. It must only be called after Read
// returned io.EOF.
func (h *holdbackReader) tail() []byte {
	return h.buf[h.off:]
}
