// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tuning supports the measurement of the LZW coder on corpora. It
// computes compressed sizes for LZW configurations and baselines for an
// LZ77 parser and the GIF-style LZW coder of the standard library.
package tuning

import (
	"bytes"
	stdlzw "compress/lzw"
	"io"
	"io/fs"

	"github.com/ulikunitz/lz"

	"github.com/filiphrenic/compression/lzw"
	"github.com/filiphrenic/compression/xio"
)

type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

// LZWCompress returns the total size of the files compressed
// individually with the given configuration.
func LZWCompress(files []File, cfg lzw.WriterConfig) (compressedSize int64, err error) {
	for _, f := range files {
		cw := &xio.CountWriter{}
		w, err := lzw.NewWriterConfig(cw, cfg)
		if err != nil {
			return compressedSize, err
		}
		_, err = io.Copy(w, bytes.NewReader(f.Data))
		if err != nil {
			return compressedSize, err
		}
		if err = w.Close(); err != nil {
			return compressedSize, err
		}
		compressedSize += cw.N
	}
	return compressedSize, nil
}

// GIFCompress returns the total compressed size of the files using the
// variable-width LZW coder of the standard library.
func GIFCompress(files []File) (compressedSize int64, err error) {
	for _, f := range files {
		cw := &xio.CountWriter{}
		w := stdlzw.NewWriter(cw, stdlzw.LSB, 8)
		if _, err = w.Write(f.Data); err != nil {
			return compressedSize, err
		}
		if err = w.Close(); err != nil {
			return compressedSize, err
		}
		compressedSize += cw.N
	}
	return compressedSize, nil
}

// LZStats counts the output of an LZ77 parser.
type LZStats struct {
	Sequences int64
	Literals  int64
}

// LZParse parses the files with a sequencer created from cfg. The number
// of sequences and literals provides a baseline for the number of LZW
// codes.
func LZParse(files []File, cfg lz.SeqConfig) (stats LZStats, err error) {
	cfg.SetDefaults()
	if err = cfg.Verify(); err != nil {
		return stats, err
	}
	seq, err := cfg.NewSequencer()
	if err != nil {
		return stats, err
	}
	bufSize := cfg.BufConfig().BufferSize
	var blk lz.Block
	for _, f := range files {
		data := f.Data
		for len(data) > 0 {
			n := len(data)
			if n > bufSize {
				n = bufSize
			}
			if err = seq.Reset(data[:n]); err != nil {
				return stats, err
			}
			data = data[n:]
			for {
				blk.Sequences = blk.Sequences[:0]
				blk.Literals = blk.Literals[:0]
				_, err = seq.Sequence(&blk, 0)
				stats.Sequences += int64(len(blk.Sequences))
				stats.Literals += int64(len(blk.Literals))
				if err == lz.ErrEmptyBuffer {
					break
				}
				if err != nil {
					return stats, err
				}
			}
		}
	}
	return stats, nil
}
