// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"bytes"
	"io"
)

// Encode compresses data in memory.
func Encode(data []byte, cfg WriterConfig) ([]byte, error) {
	buf := new(bytes.Buffer)
	w, err := NewWriterConfig(buf, cfg)
	if err != nil {
		return nil, err
	}
	if _, err = w.Write(data); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decompresses data in memory. If an error occurs the bytes decoded
// so far are returned together with the error.
func Decode(data []byte, cfg ReaderConfig) ([]byte, error) {
	r, err := NewReaderConfig(bytes.NewReader(data), cfg)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	_, err = io.Copy(buf, r)
	return buf.Bytes(), err
}

// EncodeCodes returns the codes for data.
func EncodeCodes(data []byte, cfg Config) ([]Code, error) {
	var codes CodeSlice
	e, err := NewEncoder(&codes, cfg)
	if err != nil {
		return nil, err
	}
	if _, err = e.Write(data); err != nil {
		return nil, err
	}
	if err = e.Close(); err != nil {
		return nil, err
	}
	return codes, nil
}

// DecodeCodes returns the bytes for the codes.
func DecodeCodes(codes []Code, cfg Config) ([]byte, error) {
	d, err := NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	var out []byte
	for _, c := range codes {
		p, err := d.Decode(c)
		if err != nil {
			return out, err
		}
		out = append(out, p...)
	}
	return out, nil
}
