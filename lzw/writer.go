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

// WriterConfig describes the parameters for a Writer.
type WriterConfig struct {
	Config
	// Framed selects the .lzw format with header and trailer. Otherwise
	// only the raw code stream is written.
	Framed bool
}

// Verify checks the configuration for errors. Zero values will be
// replaced by default values.
func (cfg *WriterConfig) Verify() error {
	if cfg == nil {
		return errors.New("lzw: WriterConfig pointer must not be nil")
	}
	cfg.SetDefaults()
	return cfg.Config.Verify()
}

// Writer compresses the data written to it. Close must be called to emit
// the last code.
type Writer struct {
	enc    *Encoder
	ww     *WireWriter
	w      io.Writer
	framed bool
	crc    hash.Hash32
	size   int64
	err    error
}

// NewWriter creates a writer for raw code streams with the default
// configuration.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterConfig(w, WriterConfig{})
}

// NewWriterConfig creates a new writer using the given configuration. In
// framed mode the header is written immediately.
func NewWriterConfig(w io.Writer, cfg WriterConfig) (z *Writer, err error) {
	if err = cfg.Verify(); err != nil {
		return nil, err
	}
	if cfg.Framed {
		h := header{codeWidth: cfg.CodeWidth, capacity: cfg.Capacity}
		if _, err = writeHeader(w, h); err != nil {
			return nil, err
		}
	}
	ww, err := NewWireWriter(w, cfg.CodeWidth)
	if err != nil {
		return nil, err
	}
	enc, err := NewEncoder(ww, cfg.Config)
	if err != nil {
		return nil, err
	}
	z = &Writer{enc: enc, ww: ww, w: w, framed: cfg.Framed}
	if cfg.Framed {
		z.crc = crc32.NewIEEE()
	}
	return z, nil
}

// Write compresses p.
func (z *Writer) Write(p []byte) (n int, err error) {
	if z.err != nil {
		return 0, z.err
	}
	n, err = z.enc.Write(p)
	if z.crc != nil {
		z.crc.Write(p[:n])
	}
	z.size += int64(n)
	if err != nil {
		z.err = err
	}
	return n, err
}

// Close writes the last code and in framed mode the trailer. It doesn't
// close the underlying writer.
func (z *Writer) Close() error {
	if z.err == ErrClosed {
		return nil
	}
	if z.err != nil {
		return z.err
	}
	z.err = ErrClosed
	if err := z.enc.Close(); err != nil {
		z.err = err
		return err
	}
	if err := z.ww.Flush(); err != nil {
		z.err = err
		return err
	}
	if !z.framed {
		return nil
	}
	t := trailer{codes: z.ww.Count(), size: z.size, crc: z.crc.Sum32()}
	p, _ := t.MarshalBinary()
	if _, err := z.w.Write(p); err != nil {
		z.err = err
		return err
	}
	return nil
}

// Stats returns the statistics of the encoder.
func (z *Writer) Stats() Stats { return z.enc.Stats() }
