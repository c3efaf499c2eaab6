// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"errors"
	"hash"
	"hash/crc32"
	"io"
)

// ReaderConfig defines the parameters for a Reader.
type ReaderConfig struct {
	// Config is ignored in framed mode; the header provides the
	// parameters.
	Config
	// Framed expects the .lzw format with header and trailer.
	Framed bool
}

// Verify checks the reader parameters for validity. Zero values will be
// replaced by default values.
func (cfg *ReaderConfig) Verify() error {
	if cfg == nil {
		return errors.New("lzw: ReaderConfig pointer must not be nil")
	}
	cfg.SetDefaults()
	return cfg.Config.Verify()
}

// Reader decompresses a code stream.
type Reader struct {
	dec *Decoder
	wr  *WireReader
	// hb is only set for the framed format
	hb      *holdbackReader
	crc     hash.Hash32
	size    int64
	pending []byte
	err     error
}

// NewReader creates a reader for raw code streams with the default
// configuration.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderConfig(r, ReaderConfig{})
}

// NewReaderConfig creates a reader for the given configuration. In framed
// mode the header is read and checked immediately.
func NewReaderConfig(r io.Reader, cfg ReaderConfig) (z *Reader, err error) {
	z = &Reader{}
	if cfg.Framed {
		h, err := readHeader(r)
		if err != nil {
			return nil, err
		}
		cfg.CodeWidth = h.codeWidth
		cfg.Capacity = h.capacity
		z.hb = newHoldbackReader(r, trailerLen)
		z.crc = crc32.NewIEEE()
		r = z.hb
	}
	if err = cfg.Verify(); err != nil {
		return nil, err
	}
	if z.wr, err = NewWireReader(r, cfg.CodeWidth); err != nil {
		return nil, err
	}
	if z.dec, err = NewDecoder(cfg.Config); err != nil {
		return nil, err
	}
	return z, nil
}

// Read decompresses data into p. A code out of range results in an error
// wrapping ErrMalformed.
func (z *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(z.pending) > 0 {
			k := copy(p[n:], z.pending)
			z.pending = z.pending[k:]
			n += k
			continue
		}
		if z.err != nil {
			break
		}
		var c Code
		if c, err = z.wr.ReadCode(); err != nil {
			if err == io.EOF {
				err = z.finish()
			}
			z.err = err
			continue
		}
		if z.pending, err = z.dec.Decode(c); err != nil {
			z.err = err
			continue
		}
		if z.crc != nil {
			z.crc.Write(z.pending)
		}
		z.size += int64(len(z.pending))
	}
	if n > 0 {
		return n, nil
	}
	return 0, z.err
}

// finish checks the trailer at the end of a framed stream. It returns
// io.EOF if all is fine.
func (z *Reader) finish() error {
	if z.hb == nil {
		return io.EOF
	}
	var t trailer
	if err := t.UnmarshalBinary(z.hb.tail()); err != nil {
		return err
	}
	g := trailer{codes: z.wr.Count(), size: z.size, crc: z.crc.Sum32()}
	if err := t.verify(&g); err != nil {
		return err
	}
	return io.EOF
}

// Stats returns the statistics of the decoder.
func (z *Reader) Stats() Stats { return z.dec.Stats() }
